package booking

import (
	"context"
	"time"

	"github.com/servibook/booking-api/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (read) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListBookingsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)

	// -------- Booking (state change) --------
	UpdateBookingStatus(
		ctx context.Context,
		id uint,
		status Status,
	) error

	// -------- Availability --------
	OccupiedSlots(
		ctx context.Context,
		day time.Time,
	) ([]string, error)
}
