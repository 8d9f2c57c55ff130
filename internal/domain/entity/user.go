package entity

import (
	"time"
)

// User represents a registered account in the system
type User struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	Username     string     `bson:"username" json:"username"`
	PasswordHash string     `bson:"password_hash" json:"-"`
	Role         UserRole   `bson:"role" json:"role"`
	Status       UserStatus `bson:"status" json:"status"`
	CreatedAt    time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updatedAt"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleMerchant   UserRole = "merchant"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperAdmin UserRole = "super_admin"
)

func DefaultRole() UserRole {
	return UserRoleMerchant
}

// IsAdmin reports whether the role carries blanket read/write/audit rights.
// super_admin is always a superset of admin.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin || r == UserRoleSuperAdmin
}

// IsValid reports whether the role is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleMerchant, UserRoleAdmin, UserRoleSuperAdmin:
		return true
	}
	return false
}

// UserStatus represents the account status of a user
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// IsValid reports whether the status is one of the known account statuses.
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusSuspended
}
