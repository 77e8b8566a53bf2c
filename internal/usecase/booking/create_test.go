package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/servibook/booking-api/internal/domain/booking"
	"github.com/servibook/booking-api/internal/httperr"
	"github.com/servibook/booking-api/internal/notify"
)

func TestCreateBookingSnapshotsPrice(t *testing.T) {
	f := setup(t)
	uc := NewCreateBooking(f.repo, f.dispatch)

	b, err := uc.Execute(context.Background(), f.createInput("2025-06-01", "10:00"))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), b.Status)
	assert.Equal(t, 29.99, b.TotalPrice)
	assert.Equal(t, "Jane", b.User.Name)
	assert.Equal(t, "Basic Car Wash", b.Service.Name)

	// Later price edits must not move the snapshot.
	require.NoError(t, f.db.Model(f.svc).Update("price", 59.99).Error)
	reloaded, err := f.repo.GetBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 29.99, reloaded.TotalPrice)
}

func TestCreateBookingServiceNotFound(t *testing.T) {
	f := setup(t)
	uc := NewCreateBooking(f.repo, f.dispatch)

	in := f.createInput("2025-06-01", "10:00")
	in.ServiceID = 9999
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateBookingInvalidDate(t *testing.T) {
	f := setup(t)
	uc := NewCreateBooking(f.repo, f.dispatch)

	_, err := uc.Execute(context.Background(), f.createInput("06/01/2025", "10:00"))
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestCreateBookingSlotConflict(t *testing.T) {
	f := setup(t)
	uc := NewCreateBooking(f.repo, f.dispatch)

	_, err := uc.Execute(context.Background(), f.createInput("2025-06-01", "10:00"))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), f.createInput("2025-06-01", "10:00"))
	assert.True(t, httperr.IsBusiness(err, "slot_already_booked"))
}

func TestCreateBookingRetiredServiceStillBookable(t *testing.T) {
	f := setup(t)
	uc := NewCreateBooking(f.repo, f.dispatch)

	require.NoError(t, f.db.Model(f.svc).Update("status", "retired").Error)

	b, err := uc.Execute(context.Background(), f.createInput("2025-06-01", "10:00"))
	require.NoError(t, err)
	assert.Equal(t, f.svc.ID, b.ServiceID)
}

func TestCreateBookingNotifiesCustomerAndAdmin(t *testing.T) {
	f := setup(t)
	uc := NewCreateBooking(f.repo, f.dispatch)

	b, err := uc.Execute(context.Background(), f.createInput("2025-06-01", "10:00"))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		received := f.notifier.SentOfKind(notify.EventBookingReceived)
		alerts := f.notifier.SentOfKind(notify.EventAdminAlert)
		return len(received) == 1 && received[0].BookingID == b.ID &&
			received[0].To == "jane@example.com" && len(alerts) == 1
	}, eventuallyWait, eventuallyTick)
}
