package services

import (
	"regexp"
	"strings"

	"github.com/alimgiray/menuhub/internal/models"
	"github.com/alimgiray/menuhub/internal/repositories"
	"github.com/alimgiray/menuhub/pkg/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var merchantCodePattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]{2,31}$`)

// MerchantSettings are the fields a merchant can edit from the back office
type MerchantSettings struct {
	Name                        string   `json:"name"`
	Timezone                    string   `json:"timezone"`
	Latitude                    *float64 `json:"latitude"`
	Longitude                   *float64 `json:"longitude"`
	IsPerDayModeScheduleEnabled bool     `json:"is_per_day_mode_schedule_enabled"`
	IsDineInEnabled             bool     `json:"is_dine_in_enabled"`
	IsTakeawayEnabled           bool     `json:"is_takeaway_enabled"`
	IsDeliveryEnabled           bool     `json:"is_delivery_enabled"`
	DineInScheduleStart         *string  `json:"dine_in_schedule_start"`
	DineInScheduleEnd           *string  `json:"dine_in_schedule_end"`
	TakeawayScheduleStart       *string  `json:"takeaway_schedule_start"`
	TakeawayScheduleEnd         *string  `json:"takeaway_schedule_end"`
	DeliveryScheduleStart       *string  `json:"delivery_schedule_start"`
	DeliveryScheduleEnd         *string  `json:"delivery_schedule_end"`
}

type MerchantService struct {
	merchantRepo *repositories.MerchantRepository
}

func NewMerchantService(merchantRepo *repositories.MerchantRepository) *MerchantService {
	return &MerchantService{
		merchantRepo: merchantRepo,
	}
}

// CreateMerchant provisions a merchant. An empty code is generated.
func (s *MerchantService) CreateMerchant(code, name, timezone string) (*models.Merchant, error) {
	if strings.TrimSpace(code) == "" {
		code = strings.ToUpper(uuid.New().String()[:8])
	}
	if timezone == "" {
		timezone = "UTC"
	}

	merchant := models.NewMerchant(code, name, timezone)
	if !merchantCodePattern.MatchString(merchant.Code) {
		return nil, &models.ValidationError{Field: "code", Message: "Code must be 3-32 letters, digits or dashes"}
	}
	if err := merchant.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.merchantRepo.GetByCode(merchant.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &models.ValidationError{Field: "code", Message: "Code is already in use"}
	}

	if err := s.merchantRepo.Create(merchant); err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"merchant_id":   merchant.ID,
		"merchant_code": merchant.Code,
	}).Info("Merchant created")

	return merchant, nil
}

// GetMerchantByID retrieves a merchant or ErrMerchantNotFound
func (s *MerchantService) GetMerchantByID(id string) (*models.Merchant, error) {
	merchant, err := s.merchantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, ErrMerchantNotFound
	}
	return merchant, nil
}

// GetMerchantByCode retrieves a merchant by its public code
func (s *MerchantService) GetMerchantByCode(code string) (*models.Merchant, error) {
	merchant, err := s.merchantRepo.GetByCode(normalizeCode(code))
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, ErrMerchantNotFound
	}
	return merchant, nil
}

func (s *MerchantService) ListMerchants(activeOnly bool) ([]*models.Merchant, error) {
	return s.merchantRepo.List(activeOnly)
}

// UpdateSettings replaces the editable fields of a merchant
func (s *MerchantService) UpdateSettings(id string, settings MerchantSettings) (*models.Merchant, error) {
	merchant, err := s.GetMerchantByID(id)
	if err != nil {
		return nil, err
	}

	merchant.Name = strings.TrimSpace(settings.Name)
	merchant.Timezone = settings.Timezone
	merchant.Latitude = settings.Latitude
	merchant.Longitude = settings.Longitude
	merchant.IsPerDayModeScheduleEnabled = settings.IsPerDayModeScheduleEnabled
	merchant.IsDineInEnabled = settings.IsDineInEnabled
	merchant.IsTakeawayEnabled = settings.IsTakeawayEnabled
	merchant.IsDeliveryEnabled = settings.IsDeliveryEnabled
	merchant.DineInScheduleStart = emptyToNil(settings.DineInScheduleStart)
	merchant.DineInScheduleEnd = emptyToNil(settings.DineInScheduleEnd)
	merchant.TakeawayScheduleStart = emptyToNil(settings.TakeawayScheduleStart)
	merchant.TakeawayScheduleEnd = emptyToNil(settings.TakeawayScheduleEnd)
	merchant.DeliveryScheduleStart = emptyToNil(settings.DeliveryScheduleStart)
	merchant.DeliveryScheduleEnd = emptyToNil(settings.DeliveryScheduleEnd)

	if err := merchant.Validate(); err != nil {
		return nil, err
	}

	if err := s.merchantRepo.UpdateSettings(merchant); err != nil {
		return nil, err
	}
	return merchant, nil
}

// SetManualOverride forces the store open or closed. Turning the override off
// keeps isOpen until the next snapshot sweep recomputes it.
func (s *MerchantService) SetManualOverride(id string, enabled, isOpen bool) (*models.Merchant, error) {
	merchant, err := s.GetMerchantByID(id)
	if err != nil {
		return nil, err
	}
	if !enabled {
		isOpen = merchant.IsOpen
	}

	if err := s.merchantRepo.SetManualOverride(id, enabled, isOpen); err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"merchant_id": id,
		"override":    enabled,
		"is_open":     isOpen,
	}).Info("Manual override changed")

	merchant.IsManualOverride = enabled
	merchant.IsOpen = isOpen
	return merchant, nil
}

func (s *MerchantService) Deactivate(id string) error {
	if _, err := s.GetMerchantByID(id); err != nil {
		return err
	}
	return s.merchantRepo.Deactivate(id)
}

// emptyToNil treats a blank optional time as unset
func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
