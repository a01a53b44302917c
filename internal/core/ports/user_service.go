package ports

import (
	"context"

	"github.com/tahadev/portfolio/internal/core/domain"
)

// UserService exposes the admin-facing user management operations.
type UserService interface {
	// List returns every user record with the password hash stripped.
	List(ctx context.Context) ([]*domain.User, error)
	// Delete removes a user. Deleting an admin fails with
	// domain.ErrAdminProtected and leaves the store unchanged.
	Delete(ctx context.Context, id string) error
	// ToggleRole flips the user's role between admin and standard and
	// returns the updated record.
	ToggleRole(ctx context.Context, id string) (*domain.User, error)
}
