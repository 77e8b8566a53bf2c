package notify

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/servibook/booking-api/internal/config"
	"github.com/servibook/booking-api/internal/models"
)

// Result reports the outcome of a single send. Mail failures are never
// fatal to the request that triggered them.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type Notifier interface {
	BookingReceived(b *models.Booking) Result
	StatusUpdate(b *models.Booking, newStatus string) Result
	AdminAlert(b *models.Booking) Result
}

// Mailer sends booking mail over SMTP.
type Mailer struct {
	dialer      *gomail.Dialer
	from        string
	adminEmail  string
	frontendURL string
}

func NewMailer(cfg *config.Config) *Mailer {
	adminEmail := cfg.AdminEmail
	if adminEmail == "" {
		adminEmail = cfg.EmailUser
	}

	return &Mailer{
		dialer:      gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPassword),
		from:        cfg.EmailUser,
		adminEmail:  adminEmail,
		frontendURL: cfg.FrontendURL,
	}
}

func (m *Mailer) BookingReceived(b *models.Booking) Result {
	body, err := renderBookingReceived(b)
	if err != nil {
		return m.fail("render booking received", err)
	}
	return m.send(b.User.Email, "Booking Received - Service Booking Platform", body)
}

func (m *Mailer) StatusUpdate(b *models.Booking, newStatus string) Result {
	cfgTpl := statusTemplate(newStatus)
	body, err := renderStatusUpdate(b, newStatus)
	if err != nil {
		return m.fail("render status update", err)
	}
	return m.send(b.User.Email, cfgTpl.Title+" - Service Booking Platform", body)
}

func (m *Mailer) AdminAlert(b *models.Booking) Result {
	body, err := renderAdminAlert(b, m.frontendURL)
	if err != nil {
		return m.fail("render admin alert", err)
	}
	return m.send(m.adminEmail, "New Booking Received - Action Required", body)
}

func (m *Mailer) send(to, subject, htmlBody string) Result {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "Service Booking")
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return m.fail(fmt.Sprintf("send to %s", to), err)
	}
	return Result{Success: true}
}

func (m *Mailer) fail(what string, err error) Result {
	log.Printf("mail error: %s: %v", what, err)
	return Result{Success: false, Error: err.Error()}
}
