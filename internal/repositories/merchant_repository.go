package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/alimgiray/menuhub/internal/models"
)

const merchantColumns = `
	id, code, name, timezone, latitude, longitude,
	is_open, is_manual_override, is_per_day_mode_schedule_enabled,
	is_dine_in_enabled, is_takeaway_enabled, is_delivery_enabled,
	dine_in_schedule_start, dine_in_schedule_end,
	takeaway_schedule_start, takeaway_schedule_end,
	delivery_schedule_start, delivery_schedule_end,
	is_active, created_at, updated_at`

type MerchantRepository struct {
	db *sql.DB
}

func NewMerchantRepository(db *sql.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

// Create creates a new merchant
func (r *MerchantRepository) Create(m *models.Merchant) error {
	query := `INSERT INTO merchants (` + merchantColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		m.ID, m.Code, m.Name, m.Timezone, m.Latitude, m.Longitude,
		m.IsOpen, m.IsManualOverride, m.IsPerDayModeScheduleEnabled,
		m.IsDineInEnabled, m.IsTakeawayEnabled, m.IsDeliveryEnabled,
		m.DineInScheduleStart, m.DineInScheduleEnd,
		m.TakeawayScheduleStart, m.TakeawayScheduleEnd,
		m.DeliveryScheduleStart, m.DeliveryScheduleEnd,
		m.IsActive, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating merchant: %w", err)
	}
	return nil
}

// GetByID retrieves a merchant by ID. Returns nil when it does not exist.
func (r *MerchantRepository) GetByID(id string) (*models.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE id = ?`
	return r.getOne(query, id)
}

// GetByCode retrieves a merchant by its public code
func (r *MerchantRepository) GetByCode(code string) (*models.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE code = ?`
	return r.getOne(query, code)
}

func (r *MerchantRepository) getOne(query string, arg interface{}) (*models.Merchant, error) {
	merchant, err := scanMerchant(r.db.QueryRow(query, arg))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting merchant: %w", err)
	}
	return merchant, nil
}

// List returns merchants ordered by name
func (r *MerchantRepository) List(activeOnly bool) ([]*models.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY name ASC`
	return r.list(query)
}

// ListScheduled returns active merchants whose status follows their schedule
func (r *MerchantRepository) ListScheduled() ([]*models.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants
		WHERE is_active = 1 AND is_manual_override = 0
		ORDER BY code ASC`
	return r.list(query)
}

func (r *MerchantRepository) list(query string, args ...interface{}) ([]*models.Merchant, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing merchants: %w", err)
	}
	defer rows.Close()

	var merchants []*models.Merchant
	for rows.Next() {
		merchant, err := scanMerchant(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning merchant: %w", err)
		}
		merchants = append(merchants, merchant)
	}
	return merchants, rows.Err()
}

// UpdateSettings saves the back-office editable fields
func (r *MerchantRepository) UpdateSettings(m *models.Merchant) error {
	m.UpdatedAt = time.Now()
	query := `
		UPDATE merchants
		SET name = ?, timezone = ?, latitude = ?, longitude = ?,
		    is_per_day_mode_schedule_enabled = ?,
		    is_dine_in_enabled = ?, is_takeaway_enabled = ?, is_delivery_enabled = ?,
		    dine_in_schedule_start = ?, dine_in_schedule_end = ?,
		    takeaway_schedule_start = ?, takeaway_schedule_end = ?,
		    delivery_schedule_start = ?, delivery_schedule_end = ?,
		    updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		m.Name, m.Timezone, m.Latitude, m.Longitude,
		m.IsPerDayModeScheduleEnabled,
		m.IsDineInEnabled, m.IsTakeawayEnabled, m.IsDeliveryEnabled,
		m.DineInScheduleStart, m.DineInScheduleEnd,
		m.TakeawayScheduleStart, m.TakeawayScheduleEnd,
		m.DeliveryScheduleStart, m.DeliveryScheduleEnd,
		m.UpdatedAt, m.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating merchant: %w", err)
	}
	return requireAffected(result, "merchant", m.ID)
}

// SetManualOverride toggles the override and stores the forced status
func (r *MerchantRepository) SetManualOverride(id string, override, isOpen bool) error {
	query := `UPDATE merchants SET is_manual_override = ?, is_open = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.Exec(query, override, isOpen, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error setting manual override: %w", err)
	}
	return requireAffected(result, "merchant", id)
}

// UpdateOpenSnapshot stores a computed status. Merchants under manual override are left untouched.
func (r *MerchantRepository) UpdateOpenSnapshot(id string, isOpen bool) (bool, error) {
	query := `UPDATE merchants SET is_open = ?, updated_at = ? WHERE id = ? AND is_manual_override = 0 AND is_open != ?`

	result, err := r.db.Exec(query, isOpen, time.Now(), id, isOpen)
	if err != nil {
		return false, fmt.Errorf("error updating open snapshot: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error getting rows affected: %w", err)
	}
	return affected > 0, nil
}

// Deactivate hides the merchant from public status and the snapshot sweep
func (r *MerchantRepository) Deactivate(id string) error {
	query := `UPDATE merchants SET is_active = 0, updated_at = ? WHERE id = ?`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error deactivating merchant: %w", err)
	}
	return requireAffected(result, "merchant", id)
}

func scanMerchant(row rowScanner) (*models.Merchant, error) {
	var m models.Merchant
	err := row.Scan(
		&m.ID, &m.Code, &m.Name, &m.Timezone, &m.Latitude, &m.Longitude,
		&m.IsOpen, &m.IsManualOverride, &m.IsPerDayModeScheduleEnabled,
		&m.IsDineInEnabled, &m.IsTakeawayEnabled, &m.IsDeliveryEnabled,
		&m.DineInScheduleStart, &m.DineInScheduleEnd,
		&m.TakeawayScheduleStart, &m.TakeawayScheduleEnd,
		&m.DeliveryScheduleStart, &m.DeliveryScheduleEnd,
		&m.IsActive, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func requireAffected(result sql.Result, entity, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no %s found with id %s: %w", entity, id, ErrNotFound)
	}
	return nil
}
