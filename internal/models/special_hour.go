package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SpecialHour overrides the weekly template for a single calendar date
type SpecialHour struct {
	ID                string    `json:"id"`
	MerchantID        string    `json:"merchant_id"`
	Date              string    `json:"date"` // YYYY-MM-DD, merchant local
	Name              *string   `json:"name"`
	IsClosed          bool      `json:"is_closed"`
	OpenTime          *string   `json:"open_time"`
	CloseTime         *string   `json:"close_time"`
	IsDineInEnabled   *bool     `json:"is_dine_in_enabled"`
	IsTakeawayEnabled *bool     `json:"is_takeaway_enabled"`
	IsDeliveryEnabled *bool     `json:"is_delivery_enabled"`
	DineInStartTime   *string   `json:"dine_in_start_time"`
	DineInEndTime     *string   `json:"dine_in_end_time"`
	TakeawayStartTime *string   `json:"takeaway_start_time"`
	TakeawayEndTime   *string   `json:"takeaway_end_time"`
	DeliveryStartTime *string   `json:"delivery_start_time"`
	DeliveryEndTime   *string   `json:"delivery_end_time"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewSpecialHour creates an empty override for a date
func NewSpecialHour(merchantID, date string) *SpecialHour {
	now := time.Now()
	return &SpecialHour{
		ID:         uuid.New().String(),
		MerchantID: merchantID,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *SpecialHour) Validate() error {
	if !IsValidDate(s.Date) {
		return ErrInvalidDate
	}
	if !validOptionalTime(s.OpenTime) {
		return invalidTime("open_time")
	}
	if !validOptionalTime(s.CloseTime) {
		return invalidTime("close_time")
	}
	if !bothOrNeither(s.OpenTime, s.CloseTime) {
		return &ValidationError{Field: "open_time", Message: "open_time and close_time must be set together"}
	}

	for _, mode := range OrderModes {
		_, start, end := s.ModeOverride(mode)
		field := strings.ToLower(string(mode))
		if !validOptionalTime(start) || !validOptionalTime(end) {
			return invalidTime(field + "_start_time")
		}
		if !bothOrNeither(start, end) {
			return &ValidationError{Field: field + "_start_time", Message: field + " start and end times must be set together"}
		}
	}
	return nil
}

// DisplayName returns the trimmed name or an empty string
func (s *SpecialHour) DisplayName() string {
	if s.Name == nil {
		return ""
	}
	return strings.TrimSpace(*s.Name)
}

// ModeOverride returns the per-mode enable flag and window for the date.
// A nil flag means the record does not override that mode.
func (s *SpecialHour) ModeOverride(mode OrderMode) (enabled *bool, start, end *string) {
	switch mode {
	case OrderModeDineIn:
		return s.IsDineInEnabled, s.DineInStartTime, s.DineInEndTime
	case OrderModeTakeaway:
		return s.IsTakeawayEnabled, s.TakeawayStartTime, s.TakeawayEndTime
	case OrderModeDelivery:
		return s.IsDeliveryEnabled, s.DeliveryStartTime, s.DeliveryEndTime
	default:
		return nil, nil, nil
	}
}
