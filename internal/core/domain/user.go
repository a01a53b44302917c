package domain

import (
	"errors"
	"time"
)

// Role is the coarse-grained authorization level of a user.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// Valid reports whether r is one of the closed set of roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStandard
}

// Toggle returns the opposite role. Applying it twice is the identity.
func (r Role) Toggle() Role {
	if r == RoleAdmin {
		return RoleStandard
	}
	return RoleAdmin
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrAdminProtected = errors.New("cannot delete an admin user")
var ErrForbidden = errors.New("access forbidden")

// User models an authenticated actor in the system.
// PasswordHash never leaves the process on any read path.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
