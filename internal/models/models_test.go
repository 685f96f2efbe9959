package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestIsValidTimeOfDay(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"9:30", false},
		{"12:60", false},
		{"12:5", false},
		{"", false},
		{"ab:cd", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsValidTimeOfDay(tc.input))
		})
	}
}

func TestParseOrderMode(t *testing.T) {
	mode, err := ParseOrderMode("DELIVERY")
	assert.NoError(t, err)
	assert.Equal(t, OrderModeDelivery, mode)
	assert.Equal(t, "Delivery", mode.Label())

	_, err = ParseOrderMode("delivery")
	assert.Equal(t, ErrInvalidOrderMode, err)
}

func TestMerchantValidate(t *testing.T) {
	t.Run("Defaults are valid", func(t *testing.T) {
		m := NewMerchant("cafe1", "Cafe One", "Asia/Jakarta")
		assert.NoError(t, m.Validate())
		assert.Equal(t, "CAFE1", m.Code)
		assert.True(t, m.IsDineInEnabled)
		assert.True(t, m.IsTakeawayEnabled)
		assert.False(t, m.IsDeliveryEnabled)
	})

	t.Run("Unknown timezone", func(t *testing.T) {
		m := NewMerchant("cafe1", "Cafe One", "Mars/Olympus")
		assert.Equal(t, ErrInvalidTimezone, m.Validate())
	})

	t.Run("Half set coordinates", func(t *testing.T) {
		m := NewMerchant("cafe1", "Cafe One", "UTC")
		lat := -6.2
		m.Latitude = &lat
		assert.Equal(t, ErrInvalidCoordinates, m.Validate())
	})

	t.Run("Legacy window must be complete", func(t *testing.T) {
		m := NewMerchant("cafe1", "Cafe One", "UTC")
		m.DineInScheduleStart = strPtr("10:00")
		err := m.Validate()
		assert.Error(t, err)
		assert.Equal(t, "dine_in_schedule", err.(*ValidationError).Field)
	})
}

func TestOpeningHourValidate(t *testing.T) {
	h := NewOpeningHour("m1", 1)
	assert.Error(t, h.Validate(), "open day without times")

	h.IsClosed = true
	assert.NoError(t, h.Validate(), "closed day ignores times")

	h.IsClosed = false
	h.OpenTime = strPtr("18:00")
	h.CloseTime = strPtr("02:00")
	assert.NoError(t, h.Validate(), "overnight windows are allowed")

	h.DayOfWeek = 7
	assert.Equal(t, ErrInvalidDayOfWeek, h.Validate())
}

func TestSpecialHourModeOverride(t *testing.T) {
	s := NewSpecialHour("m1", "2025-12-25")
	s.IsDeliveryEnabled = boolPtr(true)
	s.DeliveryStartTime = strPtr("11:00")
	s.DeliveryEndTime = strPtr("15:00")
	assert.NoError(t, s.Validate())

	enabled, start, end := s.ModeOverride(OrderModeDelivery)
	assert.True(t, *enabled)
	assert.Equal(t, "11:00", *start)
	assert.Equal(t, "15:00", *end)

	enabled, start, end = s.ModeOverride(OrderModeDineIn)
	assert.Nil(t, enabled)
	assert.Nil(t, start)
	assert.Nil(t, end)

	s.Date = "25-12-2025"
	assert.Equal(t, ErrInvalidDate, s.Validate())
}

func TestUserCanManageMerchant(t *testing.T) {
	merchantID := "m1"
	owner := &User{Role: RoleMerchantOwner, MerchantID: &merchantID}
	admin := &User{Role: RoleSuperAdmin}

	assert.True(t, owner.CanManageMerchant("m1"))
	assert.False(t, owner.CanManageMerchant("m2"))
	assert.True(t, admin.CanManageMerchant("m2"))
}
