package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tahadev/portfolio/internal/core/domain"
	"github.com/tahadev/portfolio/internal/core/ports"
)

// UserService implements the admin-facing user management operations.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// List returns all user records. The password hash is excluded from
// serialization at the domain level and is additionally blanked here so it
// never crosses the service boundary on a read path.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		u.PasswordHash = ""
	}
	return users, nil
}

// Delete removes a non-admin user. Admin records are protected: the delete
// fails and the store is left unchanged.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleAdmin {
		return domain.ErrAdminProtected
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// ToggleRole flips the user's role between admin and standard. Applying it
// twice restores the original role.
func (s *UserService) ToggleRole(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateRole(ctx, id, user.Role.Toggle())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Str("role", string(updated.Role)).Msg("user role toggled")
	updated.PasswordHash = ""
	return updated, nil
}
