package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	Email          string     `json:"email" db:"email"`
	PasswordHash   string     `json:"-" db:"password_hash"`
	Role           UserRole   `json:"role" db:"role"`
	Status         UserStatus `json:"status" db:"status"`
	TACCode        *string    `json:"-" db:"tac_code"`
	TACExpiry      *time.Time `json:"-" db:"tac_expiry"`
	ResetCode      *string    `json:"-" db:"reset_code"`
	ResetExpiry    *time.Time `json:"-" db:"reset_expiry"`
	ProfilePicture *string    `json:"profile_picture,omitempty" db:"profile_picture"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleMember  UserRole = "member"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleStudent, RoleMember, RoleAdmin:
		return true
	default:
		return false
	}
}

type UserStatus string

const (
	StatusPending  UserStatus = "pending"
	StatusApproved UserStatus = "approved"
)

type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyTACInput struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

type ResetPasswordInput struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// LoginChallenge is the first-step login response. TestTAC is populated only
// when the delivery channel captured the code instead of transmitting it.
type LoginChallenge struct {
	TACRequired bool    `json:"tac_required"`
	ExpiresIn   int64   `json:"expires_in"`
	TestTAC     *string `json:"test_tac,omitempty"`
}

type AuthToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	User        *User  `json:"user,omitempty"`
}

// HasRole reports whether the user's role satisfies the required one.
// Admins satisfy every role; members satisfy member and student.
func (u *User) HasRole(required UserRole) bool {
	switch required {
	case RoleAdmin:
		return u.Role == RoleAdmin
	case RoleMember:
		return u.Role == RoleMember || u.Role == RoleAdmin
	case RoleStudent:
		return u.Role == RoleStudent || u.Role == RoleMember || u.Role == RoleAdmin
	default:
		return false
	}
}

func (u *User) IsApproved() bool {
	return u.Status == StatusApproved
}
