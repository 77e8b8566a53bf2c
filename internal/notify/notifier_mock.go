package notify

import (
	"sync"

	"github.com/servibook/booking-api/internal/models"
)

// SentMail records one delivery attempt made through MockNotifier.
type SentMail struct {
	Kind      EventKind
	BookingID uint
	To        string
	NewStatus string
}

// MockNotifier captures mail instead of sending it (primarily for testing).
type MockNotifier struct {
	mu   sync.Mutex
	sent []SentMail

	// Fail makes every send report a transport failure.
	Fail bool
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) BookingReceived(b *models.Booking) Result {
	return m.record(SentMail{Kind: EventBookingReceived, BookingID: b.ID, To: b.User.Email})
}

func (m *MockNotifier) StatusUpdate(b *models.Booking, newStatus string) Result {
	return m.record(SentMail{Kind: EventStatusUpdate, BookingID: b.ID, To: b.User.Email, NewStatus: newStatus})
}

func (m *MockNotifier) AdminAlert(b *models.Booking) Result {
	return m.record(SentMail{Kind: EventAdminAlert, BookingID: b.ID})
}

func (m *MockNotifier) record(s SentMail) Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, s)
	if m.Fail {
		return Result{Success: false, Error: "mock transport failure"}
	}
	return Result{Success: true}
}

func (m *MockNotifier) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

func (m *MockNotifier) SentOfKind(kind EventKind) []SentMail {
	var out []SentMail
	for _, s := range m.Sent() {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}
