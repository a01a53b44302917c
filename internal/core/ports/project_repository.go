package ports

import (
	"context"

	"github.com/tahadev/portfolio/internal/core/domain"
)

// ProjectRepository defines persistence operations for portfolio projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
