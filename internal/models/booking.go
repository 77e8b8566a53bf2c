package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	BookingDate time.Time `gorm:"index" json:"booking_date"`
	TimeSlot    string    `gorm:"size:20;not null" json:"time_slot"`

	Address string `gorm:"size:255" json:"address"`
	Notes   string `gorm:"size:255" json:"notes"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Price of the service at the moment the booking was made. Later
	// price edits on the service never touch this column.
	TotalPrice float64 `gorm:"not null" json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
