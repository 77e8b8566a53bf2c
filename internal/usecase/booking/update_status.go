package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/servibook/booking-api/internal/domain/booking"
	"github.com/servibook/booking-api/internal/httperr"
	"github.com/servibook/booking-api/internal/models"
	"github.com/servibook/booking-api/internal/notify"
)

type UpdateBookingStatus struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:   repo,
		notify: notify,
	}
}

// Execute applies an admin status change. The customer is mailed only
// when the status actually changes, and the change is committed whether
// or not that mail can be delivered.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	bookingID uint,
	newStatus string,
) (*models.Booking, error) {

	status, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	if b.Status == string(status) {
		return b, nil
	}

	if err := uc.repo.UpdateBookingStatus(ctx, b.ID, status); err != nil {
		return nil, err
	}

	b.Status = string(status)
	uc.notify.Dispatch(notify.Event{
		Kind:      notify.EventStatusUpdate,
		Booking:   b,
		NewStatus: string(status),
	})

	return b, nil
}
