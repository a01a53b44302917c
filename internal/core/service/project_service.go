package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tahadev/portfolio/internal/core/domain"
	"github.com/tahadev/portfolio/internal/core/ports"
)

// ProjectService implements the project gallery operations.
type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new project. The category must belong to the closed set;
// request-level validation already enforces this, the check here keeps the
// invariant independent of the transport.
func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	category := domain.ProjectCategory(input.Category)
	if !category.Valid() {
		return nil, domain.ErrInvalidCategory
	}

	project := &domain.Project{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		LiveURL:     input.LiveURL,
		RepoURL:     input.RepoURL,
		Category:    category,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("title", created.Title).Msg("project created")
	return created, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}
