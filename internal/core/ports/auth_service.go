package ports

import (
	"context"

	"github.com/tahadev/portfolio/internal/core/domain"
)

// AuthService implements credential exchange: registration and login both
// return a freshly issued bearer token alongside the identity.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenService issues and verifies signed bearer tokens. Verification fails
// distinctly for malformed tokens, bad signatures, and expiry.
type TokenService interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}
