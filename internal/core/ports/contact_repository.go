package ports

import (
	"context"

	"github.com/tahadev/portfolio/internal/core/domain"
)

// ContactRepository defines persistence operations for contact messages.
type ContactRepository interface {
	Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]*domain.ContactMessage, error)
}
