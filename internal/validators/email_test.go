package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Malformed addresses are rejected before any DNS query is made.
func TestDNSEmailDomainRejectsMalformedAddresses(t *testing.T) {
	assert.False(t, DNSEmailDomain("no-at-sign"))
	assert.False(t, DNSEmailDomain("trailing@"))
	assert.False(t, DNSEmailDomain(""))
}
