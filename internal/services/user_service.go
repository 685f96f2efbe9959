package services

import (
	"strings"
	"time"

	"github.com/alimgiray/menuhub/internal/models"
	"github.com/alimgiray/menuhub/internal/repositories"
	"github.com/alimgiray/menuhub/pkg/logger"
	"github.com/google/uuid"
)

type UserService struct {
	userRepo         *repositories.UserRepository
	superAdminEmails map[string]bool
}

func NewUserService(userRepo *repositories.UserRepository, superAdminEmails []string) *UserService {
	admins := make(map[string]bool, len(superAdminEmails))
	for _, email := range superAdminEmails {
		admins[strings.ToLower(email)] = true
	}
	return &UserService{
		userRepo:         userRepo,
		superAdminEmails: admins,
	}
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// GetUserByEmail retrieves a user by email
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	return s.userRepo.GetByEmail(strings.ToLower(email))
}

// SignIn finds or creates the user of a provider identity. Configured
// super-admin addresses are promoted on every sign in.
func (s *UserService) SignIn(info *OAuthUser, accessToken string) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(info.Email))

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &models.User{
			ID:          uuid.New(),
			Name:        info.Name,
			Email:       email,
			Role:        models.RoleMerchantStaff,
			AccessToken: accessToken,
			CreatedAt:   time.Now(),
		}
		if s.superAdminEmails[email] {
			user.Role = models.RoleSuperAdmin
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, err
		}
		logger.WithField("user_id", user.ID.String()).Info("User created")
		return user, nil
	}

	user.AccessToken = accessToken
	if info.Name != "" {
		user.Name = info.Name
	}
	if s.superAdminEmails[email] {
		user.Role = models.RoleSuperAdmin
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// AssignMerchant links a user to the merchant they operate
func (s *UserService) AssignMerchant(user *models.User, merchantID string, role models.Role) error {
	user.MerchantID = &merchantID
	user.Role = role
	return s.userRepo.Update(user)
}
