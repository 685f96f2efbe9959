package services

import (
	"fmt"

	"github.com/alimgiray/menuhub/internal/models"
	"github.com/alimgiray/menuhub/internal/repositories"
	"github.com/google/uuid"
)

type OpeningHourService struct {
	openingHourRepo *repositories.OpeningHourRepository
	merchantRepo    *repositories.MerchantRepository
}

func NewOpeningHourService(openingHourRepo *repositories.OpeningHourRepository, merchantRepo *repositories.MerchantRepository) *OpeningHourService {
	return &OpeningHourService{
		openingHourRepo: openingHourRepo,
		merchantRepo:    merchantRepo,
	}
}

// GetWeek returns exactly seven rows, Sunday first. Days without a row are reported closed.
func (s *OpeningHourService) GetWeek(merchantID string) ([]models.OpeningHour, error) {
	if err := requireMerchant(s.merchantRepo, merchantID); err != nil {
		return nil, err
	}

	stored, err := s.openingHourRepo.GetByMerchantID(merchantID)
	if err != nil {
		return nil, err
	}

	week := make([]models.OpeningHour, 7)
	for day := range week {
		week[day] = models.OpeningHour{MerchantID: merchantID, DayOfWeek: day, IsClosed: true}
	}
	for _, h := range stored {
		if models.IsValidDayOfWeek(h.DayOfWeek) {
			week[h.DayOfWeek] = h
		}
	}
	return week, nil
}

// ReplaceWeek validates and stores the weekly template. Each day may appear at most once.
func (s *OpeningHourService) ReplaceWeek(merchantID string, hours []models.OpeningHour) ([]models.OpeningHour, error) {
	if err := requireMerchant(s.merchantRepo, merchantID); err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(hours))
	rows := make([]models.OpeningHour, 0, len(hours))
	for _, h := range hours {
		if err := h.Validate(); err != nil {
			return nil, err
		}
		if seen[h.DayOfWeek] {
			return nil, &models.ValidationError{Field: "day_of_week", Message: fmt.Sprintf("Day %d is listed more than once", h.DayOfWeek)}
		}
		seen[h.DayOfWeek] = true

		h.ID = uuid.New().String()
		h.MerchantID = merchantID
		if h.IsClosed || h.Is24Hours {
			h.OpenTime = nil
			h.CloseTime = nil
		}
		rows = append(rows, h)
	}

	if err := s.openingHourRepo.ReplaceWeek(merchantID, rows); err != nil {
		return nil, err
	}
	return s.GetWeek(merchantID)
}
