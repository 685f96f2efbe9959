package repositories

import (
	"database/sql"
	"fmt"

	"github.com/alimgiray/menuhub/internal/models"
	"github.com/google/uuid"
)

const userColumns = `id, name, email, role, merchant_id, access_token, created_at`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		user.ID.String(),
		user.Name,
		user.Email,
		user.Role,
		user.MerchantID,
		user.AccessToken,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.getOne(query, id)
}

// GetByEmail retrieves a user by e-mail address
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return r.getOne(query, email)
}

func (r *UserRepository) getOne(query string, arg string) (*models.User, error) {
	var user models.User
	var userID string
	err := r.db.QueryRow(query, arg).Scan(
		&userID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.MerchantID,
		&user.AccessToken,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	user.ID, err = uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	query := `
		UPDATE users
		SET name = ?, email = ?, role = ?, merchant_id = ?, access_token = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		user.Name,
		user.Email,
		user.Role,
		user.MerchantID,
		user.AccessToken,
		user.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}
	return requireAffected(result, "user", user.ID.String())
}
