package models

import (
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
)

// Merchant is a tenant of the platform together with its store status flags
type Merchant struct {
	ID                          string    `json:"id"`
	Code                        string    `json:"code"`
	Name                        string    `json:"name"`
	Timezone                    string    `json:"timezone"`
	Latitude                    *float64  `json:"latitude"`
	Longitude                   *float64  `json:"longitude"`
	IsOpen                      bool      `json:"is_open"`
	IsManualOverride            bool      `json:"is_manual_override"`
	IsPerDayModeScheduleEnabled bool      `json:"is_per_day_mode_schedule_enabled"`
	IsDineInEnabled             bool      `json:"is_dine_in_enabled"`
	IsTakeawayEnabled           bool      `json:"is_takeaway_enabled"`
	IsDeliveryEnabled           bool      `json:"is_delivery_enabled"`
	DineInScheduleStart         *string   `json:"dine_in_schedule_start"`
	DineInScheduleEnd           *string   `json:"dine_in_schedule_end"`
	TakeawayScheduleStart       *string   `json:"takeaway_schedule_start"`
	TakeawayScheduleEnd         *string   `json:"takeaway_schedule_end"`
	DeliveryScheduleStart       *string   `json:"delivery_schedule_start"`
	DeliveryScheduleEnd         *string   `json:"delivery_schedule_end"`
	IsActive                    bool      `json:"is_active"`
	CreatedAt                   time.Time `json:"created_at"`
	UpdatedAt                   time.Time `json:"updated_at"`
}

// NewMerchant creates a merchant with the default mode flags
func NewMerchant(code, name, timezone string) *Merchant {
	now := time.Now()
	return &Merchant{
		ID:                uuid.New().String(),
		Code:              strings.ToUpper(strings.TrimSpace(code)),
		Name:              strings.TrimSpace(name),
		Timezone:          timezone,
		IsDineInEnabled:   true,
		IsTakeawayEnabled: true,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Validate checks the merchant fields that can be edited from the back office
func (m *Merchant) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrMerchantNameRequired
	}
	if _, err := time.LoadLocation(m.Timezone); err != nil || m.Timezone == "" {
		return ErrInvalidTimezone
	}
	if (m.Latitude == nil) != (m.Longitude == nil) {
		return ErrInvalidCoordinates
	}
	if m.Latitude != nil && (*m.Latitude < -90 || *m.Latitude > 90 || *m.Longitude < -180 || *m.Longitude > 180) {
		return ErrInvalidCoordinates
	}

	for _, mode := range OrderModes {
		start, end := m.LegacyWindow(mode)
		field := strings.ToLower(string(mode)) + "_schedule"
		if !validOptionalTime(start) || !validOptionalTime(end) {
			return invalidTime(field)
		}
		if !bothOrNeither(start, end) {
			return &ValidationError{Field: field, Message: field + " start and end must be set together"}
		}
	}
	return nil
}

// ModeEnabled returns the top-level enable flag for a mode
func (m *Merchant) ModeEnabled(mode OrderMode) bool {
	switch mode {
	case OrderModeDineIn:
		return m.IsDineInEnabled
	case OrderModeTakeaway:
		return m.IsTakeawayEnabled
	case OrderModeDelivery:
		return m.IsDeliveryEnabled
	default:
		return false
	}
}

// LegacyWindow returns the merchant-level start/end pair for a mode
func (m *Merchant) LegacyWindow(mode OrderMode) (start, end *string) {
	switch mode {
	case OrderModeDineIn:
		return m.DineInScheduleStart, m.DineInScheduleEnd
	case OrderModeTakeaway:
		return m.TakeawayScheduleStart, m.TakeawayScheduleEnd
	case OrderModeDelivery:
		return m.DeliveryScheduleStart, m.DeliveryScheduleEnd
	default:
		return nil, nil
	}
}

// HasCoordinates checks if the merchant has a delivery origin point
func (m *Merchant) HasCoordinates() bool {
	return m.Latitude != nil && m.Longitude != nil
}
