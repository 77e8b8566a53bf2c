package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/servibook/booking-api/internal/domain/booking"
	"github.com/servibook/booking-api/internal/httperr"
	"github.com/servibook/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

// CreateBooking claims the (date, slot) pair atomically. The in-transaction
// check gives a friendly error for the common case; the partial unique
// index on active bookings is what actually closes the race between two
// concurrent creations.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Where(
				"booking_date >= ? AND booking_date < ? AND time_slot = ? AND status IN ?",
				b.BookingDate, b.BookingDate.Add(24*time.Hour),
				b.TimeSlot,
				domain.ActiveStatuses(),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_already_booked")
		}

		return tx.Create(b).Error
	})

	if err != nil && isUniqueViolation(err) {
		return httperr.ErrBusiness("slot_already_booked")
	}
	return err
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Service").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

// UpdateBookingStatus touches only the status column, so the price
// snapshot can never drift on a state change. Reactivating a booking
// whose slot has since been claimed trips the unique index and reports a
// slot conflict, same as a double create.
func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return httperr.ErrBusiness("slot_already_booked")
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) OccupiedSlots(
	ctx context.Context,
	day time.Time,
) ([]string, error) {

	var slots []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"booking_date >= ? AND booking_date < ? AND status IN ?",
			day, day.Add(24*time.Hour),
			domain.ActiveStatuses(),
		).
		Order("time_slot ASC").
		Pluck("time_slot", &slots).Error; err != nil {
		return nil, err
	}

	if slots == nil {
		slots = []string{}
	}
	return slots, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite, used by the test suite
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
