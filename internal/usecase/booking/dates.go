package booking

import (
	"time"

	"github.com/servibook/booking-api/internal/httperr"
)

const dayLayout = "2006-01-02"

// parseDay normalizes a YYYY-MM-DD string to midnight UTC. Booking dates
// are day labels, not instants; every range query in the store assumes
// this normalization.
func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}
	return t.UTC(), nil
}
