package services

import (
	"errors"

	"github.com/alimgiray/menuhub/internal/models"
	"github.com/alimgiray/menuhub/internal/repositories"
)

type SpecialHourService struct {
	specialHourRepo *repositories.SpecialHourRepository
	merchantRepo    *repositories.MerchantRepository
}

func NewSpecialHourService(specialHourRepo *repositories.SpecialHourRepository, merchantRepo *repositories.MerchantRepository) *SpecialHourService {
	return &SpecialHourService{
		specialHourRepo: specialHourRepo,
		merchantRepo:    merchantRepo,
	}
}

// List returns the overrides between from and to, inclusive. Empty bounds are open.
func (s *SpecialHourService) List(merchantID, from, to string) ([]models.SpecialHour, error) {
	for _, bound := range []string{from, to} {
		if bound != "" && !models.IsValidDate(bound) {
			return nil, models.ErrInvalidDate
		}
	}
	if err := requireMerchant(s.merchantRepo, merchantID); err != nil {
		return nil, err
	}

	specials, err := s.specialHourRepo.ListRange(merchantID, from, to)
	if err != nil {
		return nil, err
	}
	if specials == nil {
		specials = []models.SpecialHour{}
	}
	return specials, nil
}

// Upsert stores the override for date, replacing any existing one
func (s *SpecialHourService) Upsert(merchantID, date string, input models.SpecialHour) (*models.SpecialHour, error) {
	if err := requireMerchant(s.merchantRepo, merchantID); err != nil {
		return nil, err
	}

	special := models.NewSpecialHour(merchantID, date)
	special.Name = emptyToNil(input.Name)
	special.IsClosed = input.IsClosed
	special.OpenTime = emptyToNil(input.OpenTime)
	special.CloseTime = emptyToNil(input.CloseTime)
	special.IsDineInEnabled = input.IsDineInEnabled
	special.IsTakeawayEnabled = input.IsTakeawayEnabled
	special.IsDeliveryEnabled = input.IsDeliveryEnabled
	special.DineInStartTime = emptyToNil(input.DineInStartTime)
	special.DineInEndTime = emptyToNil(input.DineInEndTime)
	special.TakeawayStartTime = emptyToNil(input.TakeawayStartTime)
	special.TakeawayEndTime = emptyToNil(input.TakeawayEndTime)
	special.DeliveryStartTime = emptyToNil(input.DeliveryStartTime)
	special.DeliveryEndTime = emptyToNil(input.DeliveryEndTime)

	if err := special.Validate(); err != nil {
		return nil, err
	}

	if err := s.specialHourRepo.Upsert(special); err != nil {
		return nil, err
	}
	return s.specialHourRepo.GetByDate(merchantID, date)
}

func (s *SpecialHourService) Delete(merchantID, date string) error {
	if !models.IsValidDate(date) {
		return models.ErrInvalidDate
	}
	if err := requireMerchant(s.merchantRepo, merchantID); err != nil {
		return err
	}

	err := s.specialHourRepo.Delete(merchantID, date)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrSpecialHourNotFound
	}
	return err
}
