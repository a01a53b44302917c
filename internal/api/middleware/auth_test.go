package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tahadev/portfolio/internal/core/domain"
	"github.com/tahadev/portfolio/internal/core/service"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) { return u, nil }
func (r *stubUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) { return nil, nil }
func (r *stubUserRepo) UpdateRole(_ context.Context, _ string, _ domain.Role) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubUserRepo) Delete(_ context.Context, _ string) error   { return nil }
func (r *stubUserRepo) Count(_ context.Context) (int64, error)     { return int64(len(r.users)), nil }
func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func newAuthFixture(t *testing.T) (echo.MiddlewareFunc, *service.TokenService, *stubUserRepo) {
	t.Helper()
	tokens := service.NewTokenService("secret", time.Hour, zerolog.Nop())
	repo := &stubUserRepo{users: map[string]*domain.User{
		"u1": {ID: "u1", Name: "Alice", Email: "alice@example.com", PasswordHash: "hash", Role: domain.RoleAdmin},
	}}
	return Authenticate(tokens, repo, zerolog.Nop()), tokens, repo
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	mw, tokens, _ := newAuthFixture(t)

	signed, err := tokens.Issue("u1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		user, ok := CurrentUser(c)
		if !ok {
			t.Fatalf("user not attached to context")
		}
		if user.ID != "u1" || user.Name != "Alice" {
			t.Fatalf("wrong user attached: %+v", user)
		}
		if user.PasswordHash != "" {
			t.Fatalf("password hash leaked into request context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e := echo.New()
	mw, _, _ := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuthenticate_MalformedToken(t *testing.T) {
	e := echo.New()
	mw, _, _ := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	e := echo.New()
	mw, _, _ := newAuthFixture(t)

	// Signed with the right key but already past its expiry instant.
	expired := service.NewTokenService("secret", time.Nanosecond, zerolog.Nop())
	signed, err := expired.Issue("u1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err = handler(c)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestAuthenticate_UserNoLongerExists(t *testing.T) {
	e := echo.New()
	mw, tokens, repo := newAuthFixture(t)

	signed, err := tokens.Issue("u1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	delete(repo.users, "u1")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err = handler(c)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func assertHTTPError(t *testing.T, err error, want int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != want {
		t.Fatalf("expected status %d, got %d", want, he.Code)
	}
}
