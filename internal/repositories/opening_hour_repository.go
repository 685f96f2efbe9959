package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alimgiray/menuhub/internal/models"
)

type OpeningHourRepository struct {
	db *sql.DB
}

func NewOpeningHourRepository(db *sql.DB) *OpeningHourRepository {
	return &OpeningHourRepository{db: db}
}

// GetByMerchantID returns the weekly rows of a merchant ordered by day of week
func (r *OpeningHourRepository) GetByMerchantID(merchantID string) ([]models.OpeningHour, error) {
	query := `
		SELECT id, merchant_id, day_of_week, is_closed, is_24_hours, open_time, close_time, created_at, updated_at
		FROM merchant_opening_hours
		WHERE merchant_id = ?
		ORDER BY day_of_week ASC
	`

	rows, err := r.db.Query(query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("error getting opening hours: %w", err)
	}
	defer rows.Close()

	var hours []models.OpeningHour
	for rows.Next() {
		var h models.OpeningHour
		if err := rows.Scan(&h.ID, &h.MerchantID, &h.DayOfWeek, &h.IsClosed, &h.Is24Hours,
			&h.OpenTime, &h.CloseTime, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning opening hour: %w", err)
		}
		hours = append(hours, h)
	}
	return hours, rows.Err()
}

// ReplaceWeek swaps every opening hour row of the merchant in one transaction
func (r *OpeningHourRepository) ReplaceWeek(merchantID string, hours []models.OpeningHour) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM merchant_opening_hours WHERE merchant_id = ?`, merchantID); err != nil {
		return fmt.Errorf("error clearing opening hours: %w", err)
	}

	query := `
		INSERT INTO merchant_opening_hours (id, merchant_id, day_of_week, is_closed, is_24_hours, open_time, close_time, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	for _, h := range hours {
		if _, err := tx.Exec(query, h.ID, merchantID, h.DayOfWeek, h.IsClosed, h.Is24Hours,
			h.OpenTime, h.CloseTime, now, now); err != nil {
			return fmt.Errorf("error inserting opening hour for day %d: %w", h.DayOfWeek, err)
		}
	}

	return tx.Commit()
}
