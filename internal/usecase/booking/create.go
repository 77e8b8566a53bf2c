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

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID    uint
	ServiceID uint

	Date     string
	TimeSlot string
	Address  string
	Notes    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		notify: notify,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	day, err := parseDay(in.Date)
	if err != nil {
		return nil, err
	}

	// Retired services stay bookable by id on purpose: only public
	// listings hide them.
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}

	b := &models.Booking{
		UserID:      in.UserID,
		ServiceID:   svc.ID,
		BookingDate: day,
		TimeSlot:    in.TimeSlot,
		Address:     in.Address,
		Notes:       in.Notes,
		Status:      string(domain.InitialStatus()),
		TotalPrice:  svc.Price,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	created, err := uc.repo.GetBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{Kind: notify.EventBookingReceived, Booking: created})
	uc.notify.Dispatch(notify.Event{Kind: notify.EventAdminAlert, Booking: created})

	return created, nil
}
