package dto

import (
	"time"

	"github.com/servibook/booking-api/internal/models"
)

// BookingSummary is the slim row used by the admin dashboard lists.
type BookingSummary struct {
	ID          uint      `json:"id"`
	BookingDate time.Time `json:"booking_date"`
	TimeSlot    string    `json:"time_slot"`
	Status      string    `json:"status"`
	TotalPrice  float64   `json:"total_price"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	ServiceName string    `json:"service_name"`
}

func SummarizeBookings(bookings []models.Booking) []BookingSummary {
	out := make([]BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingSummary{
			ID:          b.ID,
			BookingDate: b.BookingDate,
			TimeSlot:    b.TimeSlot,
			Status:      b.Status,
			TotalPrice:  b.TotalPrice,
			UserName:    b.User.Name,
			UserEmail:   b.User.Email,
			ServiceName: b.Service.Name,
		})
	}
	return out
}
