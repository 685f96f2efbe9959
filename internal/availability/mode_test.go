package availability

import (
	"testing"

	"github.com/alimgiray/menuhub/internal/models"
	"github.com/stretchr/testify/assert"
)

var monday = LocalTime{Date: "2025-06-02", DayOfWeek: 1}

func mondayAt(hhmm string) LocalTime {
	lt := monday
	lt.Time = hhmm
	return lt
}

func TestIsModeAvailablePerDayScheduleGap(t *testing.T) {
	merchant := newTestMerchant()
	merchant.IsDeliveryEnabled = true
	merchant.IsPerDayModeScheduleEnabled = true

	schedules := []models.ModeSchedule{
		*models.NewModeSchedule(merchant.ID, models.OrderModeDelivery, 1, "11:00", "15:00"),
		*models.NewModeSchedule(merchant.ID, models.OrderModeDelivery, 1, "18:00", "21:00"),
	}

	testCases := []struct {
		now      string
		expected bool
	}{
		{"10:59", false},
		{"11:00", true},
		{"14:59", true},
		{"15:00", false},
		{"16:00", false},
		{"18:00", true},
		{"20:59", true},
		{"21:00", false},
	}

	for _, tc := range testCases {
		t.Run(tc.now, func(t *testing.T) {
			result := IsModeAvailable(models.OrderModeDelivery, merchant, schedules, nil, mondayAt(tc.now))
			assert.Equal(t, tc.expected, result.Available)
			if !tc.expected {
				assert.Equal(t, "Available 11:00 - 15:00, 18:00 - 21:00", result.Reason)
			}
		})
	}
}

func TestIsModeAvailablePerDayScheduleIsOptIn(t *testing.T) {
	merchant := newTestMerchant()
	merchant.IsPerDayModeScheduleEnabled = true

	schedules := []models.ModeSchedule{
		*models.NewModeSchedule(merchant.ID, models.OrderModeDineIn, 2, "00:00", "00:00"),
		*models.NewModeSchedule(merchant.ID, models.OrderModeTakeaway, 1, "00:00", "00:00"),
	}
	inactive := models.NewModeSchedule(merchant.ID, models.OrderModeDineIn, 1, "00:00", "00:00")
	inactive.IsActive = false
	schedules = append(schedules, *inactive)

	result := IsModeAvailable(models.OrderModeDineIn, merchant, schedules, nil, mondayAt("12:00"))
	assert.False(t, result.Available)
	assert.Equal(t, "Dine In not available today", result.Reason)

	result = IsModeAvailable(models.OrderModeTakeaway, merchant, schedules, nil, mondayAt("12:00"))
	assert.True(t, result.Available)
}

func TestIsModeAvailableModeDisabled(t *testing.T) {
	merchant := newTestMerchant()
	merchant.IsTakeawayEnabled = false

	result := IsModeAvailable(models.OrderModeTakeaway, merchant, nil, nil, mondayAt("12:00"))
	assert.False(t, result.Available)
	assert.Equal(t, "Takeaway is not available", result.Reason)
}

func TestIsModeAvailableSpecialOverride(t *testing.T) {
	merchant := newTestMerchant()
	merchant.IsPerDayModeScheduleEnabled = true
	schedules := []models.ModeSchedule{
		*models.NewModeSchedule(merchant.ID, models.OrderModeDineIn, 1, "08:00", "22:00"),
		*models.NewModeSchedule(merchant.ID, models.OrderModeTakeaway, 1, "08:00", "22:00"),
	}

	special := &models.SpecialHour{
		Date:              "2025-06-02",
		IsDineInEnabled:   boolPtr(true),
		DineInStartTime:   strPtr("17:00"),
		DineInEndTime:     strPtr("23:00"),
		IsTakeawayEnabled: boolPtr(false),
		TakeawayStartTime: strPtr("08:00"),
		TakeawayEndTime:   strPtr("22:00"),
	}

	t.Run("Override window replaces schedule", func(t *testing.T) {
		result := IsModeAvailable(models.OrderModeDineIn, merchant, schedules, special, mondayAt("12:00"))
		assert.False(t, result.Available)
		assert.Equal(t, "Available 17:00 - 23:00", result.Reason)

		result = IsModeAvailable(models.OrderModeDineIn, merchant, schedules, special, mondayAt("22:30"))
		assert.True(t, result.Available)
	})

	t.Run("Override disables mode", func(t *testing.T) {
		result := IsModeAvailable(models.OrderModeTakeaway, merchant, schedules, special, mondayAt("12:00"))
		assert.False(t, result.Available)
		assert.Equal(t, "Takeaway not available today", result.Reason)
	})

	t.Run("Windows without a flag fall through", func(t *testing.T) {
		unflagged := &models.SpecialHour{Date: "2025-06-02", DineInStartTime: strPtr("17:00"), DineInEndTime: strPtr("23:00")}
		result := IsModeAvailable(models.OrderModeDineIn, merchant, schedules, unflagged, mondayAt("12:00"))
		assert.True(t, result.Available)
	})

	t.Run("Flag without window", func(t *testing.T) {
		flagged := &models.SpecialHour{Date: "2025-06-02", IsDineInEnabled: boolPtr(true)}
		result := IsModeAvailable(models.OrderModeDineIn, merchant, nil, flagged, mondayAt("03:00"))
		assert.True(t, result.Available)
	})

	t.Run("Top-level flag still applies", func(t *testing.T) {
		result := IsModeAvailable(models.OrderModeDelivery, merchant, schedules, &models.SpecialHour{
			Date:              "2025-06-02",
			IsDeliveryEnabled: boolPtr(true),
		}, mondayAt("12:00"))
		assert.False(t, result.Available)
		assert.Equal(t, "Delivery is not available", result.Reason)
	})
}

func TestIsModeAvailableLegacyWindow(t *testing.T) {
	merchant := newTestMerchant()
	merchant.TakeawayScheduleStart = strPtr("22:00")
	merchant.TakeawayScheduleEnd = strPtr("03:00")

	assert.True(t, IsModeAvailable(models.OrderModeTakeaway, merchant, nil, nil, mondayAt("01:00")).Available)

	result := IsModeAvailable(models.OrderModeTakeaway, merchant, nil, nil, mondayAt("12:00"))
	assert.False(t, result.Available)
	assert.Equal(t, "Available 22:00 - 03:00", result.Reason)

	assert.True(t, IsModeAvailable(models.OrderModeDineIn, merchant, nil, nil, mondayAt("12:00")).Available,
		"no legacy window means no restriction")
}

func TestIsModeAvailableLegacyIgnoredWhenPerDayEnabled(t *testing.T) {
	merchant := newTestMerchant()
	merchant.IsPerDayModeScheduleEnabled = true
	merchant.DineInScheduleStart = strPtr("00:00")
	merchant.DineInScheduleEnd = strPtr("00:00")

	result := IsModeAvailable(models.OrderModeDineIn, merchant, nil, nil, mondayAt("12:00"))
	assert.False(t, result.Available)
}

func TestResolveToday(t *testing.T) {
	specials := []models.SpecialHour{{Date: "2025-06-01"}, {Date: "2025-06-02", Name: strPtr("Holiday")}}

	found := ResolveToday(specials, "2025-06-02")
	if assert.NotNil(t, found) {
		assert.Equal(t, "Holiday", found.DisplayName())
	}
	assert.Nil(t, ResolveToday(specials, "2025-06-03"))
	assert.Nil(t, ResolveToday(nil, "2025-06-03"))
}
