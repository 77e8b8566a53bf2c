package models

import "time"

// Service lifecycle. A retired service stays in the catalog table so
// historical bookings keep a valid reference; it is only hidden from
// public listings.
const (
	ServiceStatusActive  = "active"
	ServiceStatusRetired = "retired"
)

var ServiceCategories = []string{"car_wash", "home_cleaning", "salon", "other"}

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:500;not null" json:"description"`
	Category    string  `gorm:"size:50;not null" json:"category"`
	Price       float64 `gorm:"not null" json:"price"`
	Duration    int     `gorm:"not null" json:"duration"`
	Image       string  `gorm:"size:255;default:'default-service.jpg'" json:"image"`
	Status      string  `gorm:"size:20;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) IsActive() bool {
	return s.Status == ServiceStatusActive
}

func ValidCategory(c string) bool {
	for _, v := range ServiceCategories {
		if v == c {
			return true
		}
	}
	return false
}
