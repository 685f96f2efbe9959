package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alimgiray/menuhub/internal/models"
)

type ModeScheduleRepository struct {
	db *sql.DB
}

func NewModeScheduleRepository(db *sql.DB) *ModeScheduleRepository {
	return &ModeScheduleRepository{db: db}
}

// GetByMerchantID returns every mode schedule window of a merchant
func (r *ModeScheduleRepository) GetByMerchantID(merchantID string) ([]models.ModeSchedule, error) {
	query := `
		SELECT id, merchant_id, mode, day_of_week, start_time, end_time, is_active, created_at, updated_at
		FROM merchant_mode_schedules
		WHERE merchant_id = ?
		ORDER BY mode ASC, day_of_week ASC, start_time ASC
	`

	rows, err := r.db.Query(query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("error getting mode schedules: %w", err)
	}
	defer rows.Close()

	var schedules []models.ModeSchedule
	for rows.Next() {
		var s models.ModeSchedule
		if err := rows.Scan(&s.ID, &s.MerchantID, &s.Mode, &s.DayOfWeek, &s.StartTime, &s.EndTime,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning mode schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

// ReplaceForMode swaps all windows of one mode in one transaction
func (r *ModeScheduleRepository) ReplaceForMode(merchantID string, mode models.OrderMode, schedules []models.ModeSchedule) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM merchant_mode_schedules WHERE merchant_id = ? AND mode = ?`, merchantID, mode); err != nil {
		return fmt.Errorf("error clearing mode schedules: %w", err)
	}

	query := `
		INSERT INTO merchant_mode_schedules (id, merchant_id, mode, day_of_week, start_time, end_time, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	for _, s := range schedules {
		if _, err := tx.Exec(query, s.ID, merchantID, mode, s.DayOfWeek, s.StartTime, s.EndTime,
			s.IsActive, now, now); err != nil {
			return fmt.Errorf("error inserting mode schedule: %w", err)
		}
	}

	return tx.Commit()
}
