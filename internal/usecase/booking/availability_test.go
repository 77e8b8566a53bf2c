package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/servibook/booking-api/internal/domain/booking"
	"github.com/servibook/booking-api/internal/httperr"
)

func TestCheckAvailability(t *testing.T) {
	f := setup(t)
	create := NewCreateBooking(f.repo, f.dispatch)
	avail := NewCheckAvailability(f.repo)
	ctx := context.Background()

	kept, err := create.Execute(ctx, f.createInput("2025-06-01", "10:00"))
	require.NoError(t, err)

	dropped, err := create.Execute(ctx, f.createInput("2025-06-01", "14:00"))
	require.NoError(t, err)
	require.NoError(t, f.repo.UpdateBookingStatus(ctx, dropped.ID, domain.StatusCancelled))

	slots, err := avail.Execute(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, slots)
	assert.Equal(t, kept.TimeSlot, slots[0])

	empty, err := avail.Execute(ctx, "2025-07-01")
	require.NoError(t, err)
	assert.Equal(t, []string{}, empty)
}

func TestCheckAvailabilityInvalidDate(t *testing.T) {
	f := setup(t)
	avail := NewCheckAvailability(f.repo)

	_, err := avail.Execute(context.Background(), "June 1st")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
