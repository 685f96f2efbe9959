package models

import (
	"time"

	"github.com/google/uuid"
)

// OpeningHour is the weekly open/close template for one day of the week
type OpeningHour struct {
	ID         string    `json:"id"`
	MerchantID string    `json:"merchant_id"`
	DayOfWeek  int       `json:"day_of_week"` // 0=Sunday, 6=Saturday
	IsClosed   bool      `json:"is_closed"`
	Is24Hours  bool      `json:"is_24_hours"`
	OpenTime   *string   `json:"open_time"`
	CloseTime  *string   `json:"close_time"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewOpeningHour creates an opening hour row for the given weekday
func NewOpeningHour(merchantID string, dayOfWeek int) *OpeningHour {
	now := time.Now()
	return &OpeningHour{
		ID:         uuid.New().String(),
		MerchantID: merchantID,
		DayOfWeek:  dayOfWeek,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Validate checks the opening hour row. Times are ignored for closed days.
func (h *OpeningHour) Validate() error {
	if !IsValidDayOfWeek(h.DayOfWeek) {
		return ErrInvalidDayOfWeek
	}
	if h.IsClosed || h.Is24Hours {
		return nil
	}
	if h.OpenTime == nil || !IsValidTimeOfDay(*h.OpenTime) {
		return invalidTime("open_time")
	}
	if h.CloseTime == nil || !IsValidTimeOfDay(*h.CloseTime) {
		return invalidTime("close_time")
	}
	return nil
}

// IsValidDayOfWeek checks the 0 (Sunday) .. 6 (Saturday) range
func IsValidDayOfWeek(day int) bool {
	return day >= int(time.Sunday) && day <= int(time.Saturday)
}
