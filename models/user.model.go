package models

import (
	"strings"

	"gorm.io/gorm"
)

// Role values are normalized once at login and carried in the JWT role claim.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents a learner or an admin account
type User struct {
	gorm.Model
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Password  string `json:"-"` // bcrypt hash, empty for OAuth-only accounts
	Role      string `json:"role" gorm:"default:'USER'"`
	GoogleID  string `json:"-" gorm:"index"`
	IsDeleted bool   `gorm:"default:false"`
}

// NormalizeRole maps any stored role value onto the two-value enum.
// Older rows may carry lowercase or padded values.
func NormalizeRole(role string) string {
	if strings.ToUpper(strings.TrimSpace(role)) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}
