package services

import (
	"time"

	"github.com/alimgiray/menuhub/internal/availability"
	"github.com/alimgiray/menuhub/internal/metrics"
	"github.com/alimgiray/menuhub/internal/models"
	"github.com/alimgiray/menuhub/internal/repositories"
	"github.com/alimgiray/menuhub/pkg/logger"
	"github.com/sirupsen/logrus"
)

const reasonDeliveryLocationMissing = "Delivery location not configured"

// StoreStatus is the public status document of a merchant
type StoreStatus struct {
	MerchantCode string `json:"merchantCode"`
	MerchantName string `json:"merchantName"`
	Timezone     string `json:"timezone"`
	availability.Status
}

type StoreStatusService struct {
	merchantRepo     *repositories.MerchantRepository
	openingHourRepo  *repositories.OpeningHourRepository
	modeScheduleRepo *repositories.ModeScheduleRepository
	specialHourRepo  *repositories.SpecialHourRepository
}

func NewStoreStatusService(
	merchantRepo *repositories.MerchantRepository,
	openingHourRepo *repositories.OpeningHourRepository,
	modeScheduleRepo *repositories.ModeScheduleRepository,
	specialHourRepo *repositories.SpecialHourRepository,
) *StoreStatusService {
	return &StoreStatusService{
		merchantRepo:     merchantRepo,
		openingHourRepo:  openingHourRepo,
		modeScheduleRepo: modeScheduleRepo,
		specialHourRepo:  specialHourRepo,
	}
}

// GetStatus evaluates the store and every mode of an active merchant at now
func (s *StoreStatusService) GetStatus(merchantCode string, now time.Time) (*StoreStatus, error) {
	merchant, err := s.activeMerchant(merchantCode)
	if err != nil {
		return nil, err
	}

	status, err := s.Evaluate(merchant, now)
	if err != nil {
		return nil, err
	}

	metrics.IncStatusEvaluation(status.IsOpen)
	for mode, result := range status.Modes {
		metrics.IncModeAvailability(string(mode), result.Available)
	}

	return &StoreStatus{
		MerchantCode: merchant.Code,
		MerchantName: merchant.Name,
		Timezone:     merchant.Timezone,
		Status:       status,
	}, nil
}

// CheckAvailability answers whether a mode can be used at a given instant,
// for scheduled orders and reservations
func (s *StoreStatusService) CheckAvailability(merchantCode string, mode models.OrderMode, at time.Time) (*availability.ModeResult, error) {
	if !mode.IsValid() {
		return nil, models.ErrInvalidOrderMode
	}

	merchant, err := s.activeMerchant(merchantCode)
	if err != nil {
		return nil, err
	}

	status, err := s.Evaluate(merchant, at)
	if err != nil {
		return nil, err
	}

	result := status.Modes[mode]
	metrics.IncModeAvailability(string(mode), result.Available)
	return &result, nil
}

// Evaluate loads the schedules of merchant and runs the evaluator at instant.
// Delivery is reported unavailable while the merchant has no coordinates.
func (s *StoreStatusService) Evaluate(merchant *models.Merchant, instant time.Time) (availability.Status, error) {
	input, err := s.loadInput(merchant, instant)
	if err != nil {
		return availability.Status{}, err
	}

	status := availability.Evaluate(input, instant)

	if delivery := status.Modes[models.OrderModeDelivery]; delivery.Available && !merchant.HasCoordinates() {
		status.Modes[models.OrderModeDelivery] = availability.ModeResult{Available: false, Reason: reasonDeliveryLocationMissing}
	}
	return status, nil
}

func (s *StoreStatusService) loadInput(merchant *models.Merchant, instant time.Time) (availability.Input, error) {
	loc := merchantLocation(merchant)
	local := availability.NormalizeIn(instant, loc)

	openingHours, err := s.openingHourRepo.GetByMerchantID(merchant.ID)
	if err != nil {
		return availability.Input{}, err
	}

	modeSchedules, err := s.modeScheduleRepo.GetByMerchantID(merchant.ID)
	if err != nil {
		return availability.Input{}, err
	}

	special, err := s.specialHourRepo.GetByDate(merchant.ID, local.Date)
	if err != nil {
		return availability.Input{}, err
	}

	input := availability.Input{
		Merchant:      merchant,
		Location:      loc,
		OpeningHours:  openingHours,
		ModeSchedules: modeSchedules,
	}
	if special != nil {
		input.SpecialHours = []models.SpecialHour{*special}
	}
	return input, nil
}

func (s *StoreStatusService) activeMerchant(code string) (*models.Merchant, error) {
	merchant, err := s.merchantRepo.GetByCode(normalizeCode(code))
	if err != nil {
		return nil, err
	}
	if merchant == nil || !merchant.IsActive {
		return nil, ErrMerchantNotFound
	}
	return merchant, nil
}

// merchantLocation loads the merchant timezone. A bad stored zone falls back to UTC.
func merchantLocation(merchant *models.Merchant) *time.Location {
	loc, err := time.LoadLocation(merchant.Timezone)
	if err != nil || merchant.Timezone == "" {
		logger.WithFields(logrus.Fields{
			"merchant_id": merchant.ID,
			"timezone":    merchant.Timezone,
		}).Warn("Invalid merchant timezone, falling back to UTC")
		return time.UTC
	}
	return loc
}
