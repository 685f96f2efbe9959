package models

import (
	"time"

	"github.com/google/uuid"
)

// ModeSchedule is one availability window of an order mode on a weekday.
// A mode may have several windows on the same day (lunch and dinner).
type ModeSchedule struct {
	ID         string    `json:"id"`
	MerchantID string    `json:"merchant_id"`
	Mode       OrderMode `json:"mode"`
	DayOfWeek  int       `json:"day_of_week"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewModeSchedule creates an active window
func NewModeSchedule(merchantID string, mode OrderMode, dayOfWeek int, start, end string) *ModeSchedule {
	now := time.Now()
	return &ModeSchedule{
		ID:         uuid.New().String(),
		MerchantID: merchantID,
		Mode:       mode,
		DayOfWeek:  dayOfWeek,
		StartTime:  start,
		EndTime:    end,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *ModeSchedule) Validate() error {
	if !s.Mode.IsValid() {
		return ErrInvalidOrderMode
	}
	if !IsValidDayOfWeek(s.DayOfWeek) {
		return ErrInvalidDayOfWeek
	}
	if !IsValidTimeOfDay(s.StartTime) {
		return invalidTime("start_time")
	}
	if !IsValidTimeOfDay(s.EndTime) {
		return invalidTime("end_time")
	}
	return nil
}
