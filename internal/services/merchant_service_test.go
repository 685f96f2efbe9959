package services

import (
	"errors"
	"testing"

	"github.com/alimgiray/menuhub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMerchant(t *testing.T) {
	env := newTestEnv(t)

	merchant, err := env.merchants.CreateMerchant(" warung-1 ", "Warung Satu", "Asia/Jakarta")
	require.NoError(t, err)
	assert.Equal(t, "WARUNG-1", merchant.Code)
	assert.True(t, merchant.IsDineInEnabled)
	assert.True(t, merchant.IsTakeawayEnabled)
	assert.False(t, merchant.IsDeliveryEnabled)

	generated, err := env.merchants.CreateMerchant("", "Kopi Dua", "")
	require.NoError(t, err)
	assert.Len(t, generated.Code, 8)
	assert.Equal(t, "UTC", generated.Timezone)

	testCases := []struct {
		name     string
		code     string
		merchant string
		timezone string
		field    string
	}{
		{"Duplicate code", "warung-1", "Other", "UTC", "code"},
		{"Bad code", "a!", "Other", "UTC", "code"},
		{"Missing name", "NONAME", "  ", "UTC", "name"},
		{"Bad timezone", "BADTZ", "Other", "Mars/Olympus", "timezone"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.merchants.CreateMerchant(tc.code, tc.merchant, tc.timezone)
			var validationErr *models.ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestGetMerchantByCodeIsCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	created, err := env.merchants.CreateMerchant("KOPI", "Kopi", "UTC")
	require.NoError(t, err)

	found, err := env.merchants.GetMerchantByCode(" kopi ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = env.merchants.GetMerchantByCode("nope")
	assert.ErrorIs(t, err, ErrMerchantNotFound)
}

func TestUpdateSettings(t *testing.T) {
	env := newTestEnv(t)
	merchant, err := env.merchants.CreateMerchant("SETTINGS", "Settings", "UTC")
	require.NoError(t, err)

	lat, lng := -6.2, 106.8
	updated, err := env.merchants.UpdateSettings(merchant.ID, MerchantSettings{
		Name:                  "Settings Renamed",
		Timezone:              "Asia/Jakarta",
		Latitude:              &lat,
		Longitude:             &lng,
		IsDeliveryEnabled:     true,
		TakeawayScheduleStart: strPtr("10:00"),
		TakeawayScheduleEnd:   strPtr("14:00"),
		DineInScheduleStart:   strPtr(""),
		DineInScheduleEnd:     strPtr(" "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Settings Renamed", updated.Name)
	assert.False(t, updated.IsDineInEnabled)
	assert.Nil(t, updated.DineInScheduleStart, "blank windows are stored as unset")

	stored, err := env.merchants.GetMerchantByID(merchant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", stored.Timezone)
	assert.Equal(t, "10:00", *stored.TakeawayScheduleStart)
	assert.True(t, stored.HasCoordinates())

	t.Run("Half window rejected", func(t *testing.T) {
		_, err := env.merchants.UpdateSettings(merchant.ID, MerchantSettings{
			Name:                  "Settings",
			Timezone:              "UTC",
			DeliveryScheduleStart: strPtr("10:00"),
		})
		var validationErr *models.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("Malformed time rejected", func(t *testing.T) {
		_, err := env.merchants.UpdateSettings(merchant.ID, MerchantSettings{
			Name:                "Settings",
			Timezone:            "UTC",
			DineInScheduleStart: strPtr("9:00"),
			DineInScheduleEnd:   strPtr("17:00"),
		})
		var validationErr *models.ValidationError
		assert.True(t, errors.As(err, &validationErr))
	})

	t.Run("Unknown merchant", func(t *testing.T) {
		_, err := env.merchants.UpdateSettings("missing", MerchantSettings{Name: "x", Timezone: "UTC"})
		assert.ErrorIs(t, err, ErrMerchantNotFound)
	})
}

func TestSetManualOverride(t *testing.T) {
	env := newTestEnv(t)
	merchant, err := env.merchants.CreateMerchant("OVERRIDE", "Override", "UTC")
	require.NoError(t, err)

	updated, err := env.merchants.SetManualOverride(merchant.ID, true, true)
	require.NoError(t, err)
	assert.True(t, updated.IsManualOverride)
	assert.True(t, updated.IsOpen)

	updated, err = env.merchants.SetManualOverride(merchant.ID, false, false)
	require.NoError(t, err)
	assert.False(t, updated.IsManualOverride)
	assert.True(t, updated.IsOpen, "snapshot is kept until the next sweep")

	stored, err := env.merchants.GetMerchantByID(merchant.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsManualOverride)
}

func TestDeactivate(t *testing.T) {
	env := newTestEnv(t)
	merchant, err := env.merchants.CreateMerchant("BYE", "Bye", "UTC")
	require.NoError(t, err)

	require.NoError(t, env.merchants.Deactivate(merchant.ID))
	assert.ErrorIs(t, env.merchants.Deactivate("missing"), ErrMerchantNotFound)

	active, err := env.merchants.ListMerchants(true)
	require.NoError(t, err)
	assert.Empty(t, active)
}
