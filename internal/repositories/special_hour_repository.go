package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alimgiray/menuhub/internal/models"
)

const specialHourColumns = `
	id, merchant_id, date, name, is_closed, open_time, close_time,
	is_dine_in_enabled, is_takeaway_enabled, is_delivery_enabled,
	dine_in_start_time, dine_in_end_time,
	takeaway_start_time, takeaway_end_time,
	delivery_start_time, delivery_end_time,
	created_at, updated_at`

type SpecialHourRepository struct {
	db *sql.DB
}

func NewSpecialHourRepository(db *sql.DB) *SpecialHourRepository {
	return &SpecialHourRepository{db: db}
}

// GetByDate returns the override of a merchant for one date, or nil
func (r *SpecialHourRepository) GetByDate(merchantID, date string) (*models.SpecialHour, error) {
	query := `SELECT ` + specialHourColumns + ` FROM merchant_special_hours WHERE merchant_id = ? AND date = ?`

	special, err := scanSpecialHour(r.db.QueryRow(query, merchantID, date))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting special hour: %w", err)
	}
	return special, nil
}

// ListRange returns overrides with from <= date <= to. Empty bounds are open.
func (r *SpecialHourRepository) ListRange(merchantID, from, to string) ([]models.SpecialHour, error) {
	query := `SELECT ` + specialHourColumns + ` FROM merchant_special_hours WHERE merchant_id = ?`
	args := []interface{}{merchantID}
	if from != "" {
		query += ` AND date >= ?`
		args = append(args, from)
	}
	if to != "" {
		query += ` AND date <= ?`
		args = append(args, to)
	}
	query += ` ORDER BY date ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing special hours: %w", err)
	}
	defer rows.Close()

	var specials []models.SpecialHour
	for rows.Next() {
		special, err := scanSpecialHour(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning special hour: %w", err)
		}
		specials = append(specials, *special)
	}
	return specials, rows.Err()
}

// Upsert creates the override for its date or replaces the existing one
func (r *SpecialHourRepository) Upsert(s *models.SpecialHour) error {
	s.UpdatedAt = time.Now()
	query := `
		INSERT INTO merchant_special_hours (` + specialHourColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (merchant_id, date) DO UPDATE SET
			name = excluded.name,
			is_closed = excluded.is_closed,
			open_time = excluded.open_time,
			close_time = excluded.close_time,
			is_dine_in_enabled = excluded.is_dine_in_enabled,
			is_takeaway_enabled = excluded.is_takeaway_enabled,
			is_delivery_enabled = excluded.is_delivery_enabled,
			dine_in_start_time = excluded.dine_in_start_time,
			dine_in_end_time = excluded.dine_in_end_time,
			takeaway_start_time = excluded.takeaway_start_time,
			takeaway_end_time = excluded.takeaway_end_time,
			delivery_start_time = excluded.delivery_start_time,
			delivery_end_time = excluded.delivery_end_time,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query,
		s.ID, s.MerchantID, s.Date, s.Name, s.IsClosed, s.OpenTime, s.CloseTime,
		s.IsDineInEnabled, s.IsTakeawayEnabled, s.IsDeliveryEnabled,
		s.DineInStartTime, s.DineInEndTime,
		s.TakeawayStartTime, s.TakeawayEndTime,
		s.DeliveryStartTime, s.DeliveryEndTime,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving special hour: %w", err)
	}
	return nil
}

// Delete removes the override of a date
func (r *SpecialHourRepository) Delete(merchantID, date string) error {
	result, err := r.db.Exec(`DELETE FROM merchant_special_hours WHERE merchant_id = ? AND date = ?`, merchantID, date)
	if err != nil {
		return fmt.Errorf("error deleting special hour: %w", err)
	}
	return requireAffected(result, "special hour", date)
}

func scanSpecialHour(row rowScanner) (*models.SpecialHour, error) {
	var s models.SpecialHour
	err := row.Scan(
		&s.ID, &s.MerchantID, &s.Date, &s.Name, &s.IsClosed, &s.OpenTime, &s.CloseTime,
		&s.IsDineInEnabled, &s.IsTakeawayEnabled, &s.IsDeliveryEnabled,
		&s.DineInStartTime, &s.DineInEndTime,
		&s.TakeawayStartTime, &s.TakeawayEndTime,
		&s.DeliveryStartTime, &s.DeliveryEndTime,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
