// Package fixtures loads merchants and their schedules from a YAML file.
package fixtures

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alimgiray/menuhub/internal/models"
	"github.com/alimgiray/menuhub/internal/services"
	"github.com/alimgiray/menuhub/pkg/logger"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// File is the root of a fixtures document
type File struct {
	Merchants []Merchant `yaml:"merchants"`
	Users     []User     `yaml:"users"`
}

type Merchant struct {
	Code                string                  `yaml:"code"`
	Name                string                  `yaml:"name"`
	Timezone            string                  `yaml:"timezone"`
	Latitude            *float64                `yaml:"latitude,omitempty"`
	Longitude           *float64                `yaml:"longitude,omitempty"`
	PerDayModeSchedules bool                    `yaml:"per_day_mode_schedules"`
	DineIn              *bool                   `yaml:"dine_in,omitempty"`
	Takeaway            *bool                   `yaml:"takeaway,omitempty"`
	Delivery            *bool                   `yaml:"delivery,omitempty"`
	OpeningHours        []OpeningHour           `yaml:"opening_hours"`
	ModeSchedules       map[string][]ModeWindow `yaml:"mode_schedules"`
	SpecialHours        []SpecialHour           `yaml:"special_hours"`
}

type OpeningHour struct {
	Day    int    `yaml:"day"` // 0=Sunday
	Closed bool   `yaml:"closed,omitempty"`
	AllDay bool   `yaml:"all_day,omitempty"`
	Open   string `yaml:"open,omitempty"`
	Close  string `yaml:"close,omitempty"`
}

type ModeWindow struct {
	Day   int    `yaml:"day"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type SpecialHour struct {
	Date   string `yaml:"date"`
	Name   string `yaml:"name,omitempty"`
	Closed bool   `yaml:"closed,omitempty"`
	Open   string `yaml:"open,omitempty"`
	Close  string `yaml:"close,omitempty"`
}

type User struct {
	Email    string      `yaml:"email"`
	Name     string      `yaml:"name"`
	Merchant string      `yaml:"merchant"`
	Role     models.Role `yaml:"role"`
}

// Load reads and parses a fixtures file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	return &file, nil
}

// Seeder writes fixtures through the services so every record is validated
type Seeder struct {
	merchants     *services.MerchantService
	openingHours  *services.OpeningHourService
	modeSchedules *services.ModeScheduleService
	specialHours  *services.SpecialHourService
	users         *services.UserService
}

func NewSeeder(
	merchants *services.MerchantService,
	openingHours *services.OpeningHourService,
	modeSchedules *services.ModeScheduleService,
	specialHours *services.SpecialHourService,
	users *services.UserService,
) *Seeder {
	return &Seeder{
		merchants:     merchants,
		openingHours:  openingHours,
		modeSchedules: modeSchedules,
		specialHours:  specialHours,
		users:         users,
	}
}

// Apply creates or updates every merchant and user in file. Running it twice
// leaves the database unchanged.
func (s *Seeder) Apply(file *File) error {
	ids := make(map[string]string, len(file.Merchants))
	for _, fixture := range file.Merchants {
		merchant, err := s.applyMerchant(fixture)
		if err != nil {
			return fmt.Errorf("merchant %s: %w", fixture.Code, err)
		}
		ids[merchant.Code] = merchant.ID
	}

	for _, fixture := range file.Users {
		if err := s.applyUser(fixture, ids); err != nil {
			return fmt.Errorf("user %s: %w", fixture.Email, err)
		}
	}
	return nil
}

func (s *Seeder) applyMerchant(fixture Merchant) (*models.Merchant, error) {
	merchant, err := s.merchants.GetMerchantByCode(fixture.Code)
	if errors.Is(err, services.ErrMerchantNotFound) {
		merchant, err = s.merchants.CreateMerchant(fixture.Code, fixture.Name, fixture.Timezone)
	}
	if err != nil {
		return nil, err
	}

	settings := services.MerchantSettings{
		Name:                        fixture.Name,
		Timezone:                    fixture.Timezone,
		Latitude:                    fixture.Latitude,
		Longitude:                   fixture.Longitude,
		IsPerDayModeScheduleEnabled: fixture.PerDayModeSchedules,
		IsDineInEnabled:             flag(fixture.DineIn, true),
		IsTakeawayEnabled:           flag(fixture.Takeaway, true),
		IsDeliveryEnabled:           flag(fixture.Delivery, false),
	}
	if settings.Timezone == "" {
		settings.Timezone = merchant.Timezone
	}
	if merchant, err = s.merchants.UpdateSettings(merchant.ID, settings); err != nil {
		return nil, err
	}

	hours := make([]models.OpeningHour, 0, len(fixture.OpeningHours))
	for _, h := range fixture.OpeningHours {
		hours = append(hours, models.OpeningHour{
			DayOfWeek: h.Day,
			IsClosed:  h.Closed,
			Is24Hours: h.AllDay,
			OpenTime:  optional(h.Open),
			CloseTime: optional(h.Close),
		})
	}
	if _, err := s.openingHours.ReplaceWeek(merchant.ID, hours); err != nil {
		return nil, err
	}

	for rawMode, windows := range fixture.ModeSchedules {
		mode, err := models.ParseOrderMode(rawMode)
		if err != nil {
			return nil, err
		}
		submitted := make([]services.ModeScheduleWindow, 0, len(windows))
		for _, w := range windows {
			submitted = append(submitted, services.ModeScheduleWindow{DayOfWeek: w.Day, StartTime: w.Start, EndTime: w.End})
		}
		if _, err := s.modeSchedules.ReplaceForMode(merchant.ID, mode, submitted); err != nil {
			return nil, err
		}
	}

	for _, special := range fixture.SpecialHours {
		_, err := s.specialHours.Upsert(merchant.ID, special.Date, models.SpecialHour{
			Name:      optional(special.Name),
			IsClosed:  special.Closed,
			OpenTime:  optional(special.Open),
			CloseTime: optional(special.Close),
		})
		if err != nil {
			return nil, err
		}
	}

	logger.WithFields(logrus.Fields{
		"merchant_code": merchant.Code,
		"opening_hours": len(hours),
		"special_hours": len(fixture.SpecialHours),
	}).Info("Merchant seeded")
	return merchant, nil
}

func (s *Seeder) applyUser(fixture User, merchantIDs map[string]string) error {
	merchantID, ok := merchantIDs[normalize(fixture.Merchant)]
	if !ok {
		return fmt.Errorf("unknown merchant %q", fixture.Merchant)
	}
	role := fixture.Role
	if role == "" {
		role = models.RoleMerchantStaff
	}
	if role != models.RoleMerchantOwner && role != models.RoleMerchantStaff {
		return &models.ValidationError{Field: "role", Message: "Seeded users must be MERCHANT_OWNER or MERCHANT_STAFF"}
	}

	user, err := s.users.SignIn(&services.OAuthUser{Email: fixture.Email, Name: fixture.Name}, "")
	if err != nil {
		return err
	}
	return s.users.AssignMerchant(user, merchantID, role)
}

func flag(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
