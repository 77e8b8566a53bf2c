package validators

import (
	"net"
	"strings"
)

// EmailDomainChecker reports whether an address's domain can plausibly
// receive mail. Registration takes one as a dependency; the live
// implementation asks DNS, tests substitute a stub.
type EmailDomainChecker func(email string) bool

// DNSEmailDomain accepts a domain that has a mail exchanger, or at least
// resolves to a host. It cannot prove the mailbox exists, only that the
// domain is not garbage.
func DNSEmailDomain(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
