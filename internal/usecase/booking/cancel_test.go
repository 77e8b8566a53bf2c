package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/servibook/booking-api/internal/domain/booking"
	"github.com/servibook/booking-api/internal/httperr"
)

func TestCancelBooking(t *testing.T) {
	f := setup(t)
	create := NewCreateBooking(f.repo, f.dispatch)
	cancel := NewCancelBooking(f.repo)
	ctx := context.Background()

	b, err := create.Execute(ctx, f.createInput("2025-06-01", "10:00"))
	require.NoError(t, err)

	cancelled, err := cancel.Execute(ctx, b.ID, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)

	reloaded, err := f.repo.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), reloaded.Status)
}

func TestCancelBookingOwnerOnly(t *testing.T) {
	f := setup(t)
	create := NewCreateBooking(f.repo, f.dispatch)
	cancel := NewCancelBooking(f.repo)
	ctx := context.Background()

	b, err := create.Execute(ctx, f.createInput("2025-06-01", "10:00"))
	require.NoError(t, err)

	_, err = cancel.Execute(ctx, b.ID, f.user.ID+1)
	assert.True(t, httperr.IsBusiness(err, "not_owner"))

	reloaded, err := f.repo.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), reloaded.Status)
}

func TestCancelBookingNotFound(t *testing.T) {
	f := setup(t)
	cancel := NewCancelBooking(f.repo)

	_, err := cancel.Execute(context.Background(), 9999, f.user.ID)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestCancelBookingIsUnconditional(t *testing.T) {
	f := setup(t)
	create := NewCreateBooking(f.repo, f.dispatch)
	cancel := NewCancelBooking(f.repo)
	ctx := context.Background()

	b, err := create.Execute(ctx, f.createInput("2025-06-01", "10:00"))
	require.NoError(t, err)
	require.NoError(t, f.repo.UpdateBookingStatus(ctx, b.ID, domain.StatusCompleted))

	cancelled, err := cancel.Execute(ctx, b.ID, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
}
