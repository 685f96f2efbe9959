package models

import (
	"time"

	"github.com/google/uuid"
)

// Role controls which back-office surfaces a user can reach
type Role string

const (
	RoleSuperAdmin    Role = "SUPER_ADMIN"
	RoleMerchantOwner Role = "MERCHANT_OWNER"
	RoleMerchantStaff Role = "MERCHANT_STAFF"
)

type User struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Role        Role
	MerchantID  *string
	AccessToken string
	CreatedAt   time.Time
}

// IsSuperAdmin checks if the user can use the admin console
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// CanManageMerchant checks if the user may edit the given merchant
func (u *User) CanManageMerchant(merchantID string) bool {
	if u.IsSuperAdmin() {
		return true
	}
	return u.MerchantID != nil && *u.MerchantID == merchantID
}
