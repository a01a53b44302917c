package ports

import (
	"context"

	"github.com/tahadev/portfolio/internal/core/domain"
)

// CreateProjectInput carries the fields for a new portfolio project.
type CreateProjectInput struct {
	Title       string
	Description string
	ImageURL    string
	LiveURL     string
	RepoURL     string
	Category    string
}

// ProjectService exposes the project gallery operations. List and Get are
// public; Create and Delete are admin-only (enforced at the route boundary).
type ProjectService interface {
	List(ctx context.Context) ([]*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
