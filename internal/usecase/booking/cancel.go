package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/servibook/booking-api/internal/domain/booking"
	"github.com/servibook/booking-api/internal/httperr"
	"github.com/servibook/booking-api/internal/models"
)

type CancelBooking struct {
	repo domain.Repository
}

func NewCancelBooking(repo domain.Repository) *CancelBooking {
	return &CancelBooking{repo: repo}
}

// Execute sets the booking to cancelled regardless of its current status;
// only the owner may do it.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	if b.UserID != userID {
		return nil, httperr.ErrBusiness("not_owner")
	}

	if err := uc.repo.UpdateBookingStatus(ctx, b.ID, domain.StatusCancelled); err != nil {
		return nil, err
	}

	b.Status = string(domain.StatusCancelled)
	return b, nil
}
