package booking

import (
	"context"

	domain "github.com/servibook/booking-api/internal/domain/booking"
)

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute returns the slot labels occupied on a day by pending or
// confirmed bookings. Cancelled and completed bookings free their slot.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	date string,
) ([]string, error) {

	day, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	return uc.repo.OccupiedSlots(ctx, day)
}
