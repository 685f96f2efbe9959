package services

import (
	"github.com/alimgiray/menuhub/internal/models"
	"github.com/alimgiray/menuhub/internal/repositories"
)

// ModeScheduleWindow is one window submitted for a mode. A nil IsActive means active.
type ModeScheduleWindow struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  *bool  `json:"is_active"`
}

type ModeScheduleService struct {
	modeScheduleRepo *repositories.ModeScheduleRepository
	merchantRepo     *repositories.MerchantRepository
}

func NewModeScheduleService(modeScheduleRepo *repositories.ModeScheduleRepository, merchantRepo *repositories.MerchantRepository) *ModeScheduleService {
	return &ModeScheduleService{
		modeScheduleRepo: modeScheduleRepo,
		merchantRepo:     merchantRepo,
	}
}

// ListByMerchant returns the windows of every mode grouped by mode
func (s *ModeScheduleService) ListByMerchant(merchantID string) (map[models.OrderMode][]models.ModeSchedule, error) {
	if err := requireMerchant(s.merchantRepo, merchantID); err != nil {
		return nil, err
	}

	schedules, err := s.modeScheduleRepo.GetByMerchantID(merchantID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[models.OrderMode][]models.ModeSchedule, len(models.OrderModes))
	for _, mode := range models.OrderModes {
		grouped[mode] = []models.ModeSchedule{}
	}
	for _, schedule := range schedules {
		grouped[schedule.Mode] = append(grouped[schedule.Mode], schedule)
	}
	return grouped, nil
}

// ReplaceForMode stores the full set of windows of one mode. Several windows on the same day are allowed.
func (s *ModeScheduleService) ReplaceForMode(merchantID string, mode models.OrderMode, windows []ModeScheduleWindow) ([]models.ModeSchedule, error) {
	if !mode.IsValid() {
		return nil, models.ErrInvalidOrderMode
	}
	if err := requireMerchant(s.merchantRepo, merchantID); err != nil {
		return nil, err
	}

	schedules := make([]models.ModeSchedule, 0, len(windows))
	for _, w := range windows {
		schedule := models.NewModeSchedule(merchantID, mode, w.DayOfWeek, w.StartTime, w.EndTime)
		if w.IsActive != nil {
			schedule.IsActive = *w.IsActive
		}
		if err := schedule.Validate(); err != nil {
			return nil, err
		}
		schedules = append(schedules, *schedule)
	}

	if err := s.modeScheduleRepo.ReplaceForMode(merchantID, mode, schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}
