package notify

import (
	"log"

	"github.com/servibook/booking-api/internal/models"
)

type EventKind string

const (
	EventBookingReceived EventKind = "booking_received"
	EventStatusUpdate    EventKind = "status_update"
	EventAdminAlert      EventKind = "admin_alert"
)

type Event struct {
	Kind      EventKind
	Booking   *models.Booking
	NewStatus string
}

// Dispatcher delivers mail off the request path. A status change or a new
// booking is committed whether or not the mail transport is healthy;
// Dispatch never blocks the caller.
type Dispatcher struct {
	notifier Notifier
	queue    chan Event
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		var res Result
		switch ev.Kind {
		case EventBookingReceived:
			res = d.notifier.BookingReceived(ev.Booking)
		case EventStatusUpdate:
			res = d.notifier.StatusUpdate(ev.Booking, ev.NewStatus)
		case EventAdminAlert:
			res = d.notifier.AdminAlert(ev.Booking)
		default:
			continue
		}

		if !res.Success {
			log.Printf("notify: %s for booking %d failed: %s", ev.Kind, ev.Booking.ID, res.Error)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue must never break the API
		log.Println("notify queue full, dropping event")
	}
}
