package booking

import "github.com/servibook/booking-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// ParseStatus validates an admin-supplied status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// Terminal statuses free their slot: a cancelled or completed booking no
// longer blocks the (date, time slot) pair.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ActiveStatuses are the statuses that occupy a slot.
func ActiveStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}
