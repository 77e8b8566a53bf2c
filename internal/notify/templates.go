package notify

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/servibook/booking-api/internal/models"
)

// Per-status presentation of the customer status-update mail. A revert to
// pending gets its own template instead of reusing the confirmed one,
// which would tell the customer the opposite of what happened.
type statusStyle struct {
	Title   string
	Message string
	Color   string
}

var statusStyles = map[string]statusStyle{
	"pending": {
		Title:   "Booking Pending Review",
		Message: "Your booking has been moved back to pending and is awaiting review by our team.",
		Color:   "#fbbf24",
	},
	"confirmed": {
		Title:   "Booking Confirmed",
		Message: "Great news! Your booking has been confirmed by our team.",
		Color:   "#10b981",
	},
	"completed": {
		Title:   "Service Completed",
		Message: "Thank you for using our service! We hope you had a great experience.",
		Color:   "#6366f1",
	},
	"cancelled": {
		Title:   "Booking Cancelled",
		Message: "Your booking has been cancelled.",
		Color:   "#ef4444",
	},
}

func statusTemplate(status string) statusStyle {
	if s, ok := statusStyles[status]; ok {
		return s
	}
	return statusStyles["confirmed"]
}

const dateLayout = "Monday, January 2, 2006"

var bookingReceivedTpl = template.Must(template.New("bookingReceived").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #667eea; color: white; padding: 30px; text-align: center;">
      <h1>Booking Received!</h1>
    </div>
    <div style="background: #f9f9f9; padding: 30px;">
      <p>Hi <strong>{{.UserName}}</strong>,</p>
      <p>We have received your booking request. Here are your booking details:</p>
      <div style="background: white; padding: 20px;">
        <p><strong>Service:</strong> {{.ServiceName}}</p>
        <p><strong>Date:</strong> {{.Date}}</p>
        <p><strong>Time:</strong> {{.TimeSlot}}</p>
        <p><strong>Duration:</strong> {{.Duration}} minutes</p>
        <p><strong>Address:</strong> {{.Address}}</p>
        <p><strong>Total Amount:</strong> ${{printf "%.2f" .TotalPrice}}</p>
        <p><strong>Status:</strong> PENDING APPROVAL</p>
      </div>
      <p><strong>What's Next?</strong> Your booking is currently pending approval.
      Our team will review and confirm your booking shortly. You will receive
      another email once your booking is confirmed.</p>
      <p><strong>Important:</strong> Please be ready 5 minutes before your scheduled time once confirmed.</p>
      <p>Thank you for choosing our service!</p>
      <p>Best regards,<br><strong>Service Booking Team</strong></p>
    </div>
  </div>
</body>
</html>`))

var statusUpdateTpl = template.Must(template.New("statusUpdate").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: {{.Color}}; color: white; padding: 30px; text-align: center;">
      <h1>{{.Title}}</h1>
    </div>
    <div style="background: #f9f9f9; padding: 30px;">
      <p>Hi <strong>{{.UserName}}</strong>,</p>
      <p>{{.Message}}</p>
      <div style="background: white; padding: 20px;">
        <p><strong>Service:</strong> {{.ServiceName}}</p>
        <p><strong>Date:</strong> {{.Date}}</p>
        <p><strong>Time:</strong> {{.TimeSlot}}</p>
        <p><strong>Status:</strong> <span style="color: {{.Color}};">{{.Status}}</span></p>
      </div>
      {{if eq .Status "CONFIRMED"}}<p><strong>You're all set!</strong> Please be ready 5 minutes before your scheduled time.</p>{{end}}
      {{if eq .Status "COMPLETED"}}<p>We would love to hear your feedback! Please rate your experience.</p>{{end}}
      {{if eq .Status "CANCELLED"}}<p>If you have any questions about this cancellation, please contact us.</p>{{end}}
      <p>Best regards,<br><strong>Service Booking Team</strong></p>
    </div>
  </div>
</body>
</html>`))

var adminAlertTpl = template.Must(template.New("adminAlert").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px; background: #f9f9f9;">
    <div style="background: #dc2626; color: white; padding: 20px; text-align: center;">
      <h2>New Booking Alert</h2>
    </div>
    <div style="background: white; padding: 20px;">
      <p><strong>Action Required:</strong> A new booking is pending your approval.</p>
      <h3>Customer Information</h3>
      <p><strong>Name:</strong> {{.UserName}}</p>
      <p><strong>Email:</strong> {{.UserEmail}}</p>
      <p><strong>Phone:</strong> {{.UserPhone}}</p>
      <p><strong>Address:</strong> {{.Address}}</p>
      <h3>Booking Details</h3>
      <p><strong>Service:</strong> {{.ServiceName}}</p>
      <p><strong>Date:</strong> {{.Date}}</p>
      <p><strong>Time:</strong> {{.TimeSlot}}</p>
      <p><strong>Duration:</strong> {{.Duration}} minutes</p>
      <p><strong>Amount:</strong> ${{printf "%.2f" .TotalPrice}}</p>
      <p style="text-align: center; margin-top: 20px;">
        <a href="{{.AdminPanelURL}}" style="background: #dc2626; color: white; padding: 12px 30px; text-decoration: none;">View in Admin Panel</a>
      </p>
    </div>
  </div>
</body>
</html>`))

type bookingMailData struct {
	UserName    string
	UserEmail   string
	UserPhone   string
	ServiceName string
	Date        string
	TimeSlot    string
	Duration    int
	Address     string
	TotalPrice  float64

	Title   string
	Message string
	Color   string
	Status  string

	AdminPanelURL string
}

func mailData(b *models.Booking) bookingMailData {
	return bookingMailData{
		UserName:    b.User.Name,
		UserEmail:   b.User.Email,
		UserPhone:   b.User.Phone,
		ServiceName: b.Service.Name,
		Date:        b.BookingDate.Format(dateLayout),
		TimeSlot:    b.TimeSlot,
		Duration:    b.Service.Duration,
		Address:     b.Address,
		TotalPrice:  b.TotalPrice,
	}
}

func renderBookingReceived(b *models.Booking) (string, error) {
	return render(bookingReceivedTpl, mailData(b))
}

func renderStatusUpdate(b *models.Booking, newStatus string) (string, error) {
	data := mailData(b)
	style := statusTemplate(newStatus)
	data.Title = style.Title
	data.Message = style.Message
	data.Color = style.Color
	data.Status = strings.ToUpper(newStatus)
	return render(statusUpdateTpl, data)
}

func renderAdminAlert(b *models.Booking, frontendURL string) (string, error) {
	data := mailData(b)
	data.AdminPanelURL = frontendURL + "/admin/bookings"
	return render(adminAlertTpl, data)
}

func render(tpl *template.Template, data bookingMailData) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
