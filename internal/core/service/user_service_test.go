package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tahadev/portfolio/internal/core/domain"
)

func seedUser(repo *stubUserRepo, name, email string, role domain.Role) *domain.User {
	u, _ := repo.Create(context.Background(), &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
	})
	return u
}

func TestUserService_List_StripsPasswordHash(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "Alice", "alice@example.com", domain.RoleAdmin)
	svc := NewUserService(repo, zerolog.Nop())

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].PasswordHash != "" {
		t.Fatalf("password hash leaked through read path")
	}
}

func TestUserService_Delete_AdminProtected(t *testing.T) {
	repo := newStubUserRepo()
	admin := seedUser(repo, "Alice", "alice@example.com", domain.RoleAdmin)
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), admin.ID); err != domain.ErrAdminProtected {
		t.Fatalf("expected ErrAdminProtected, got %v", err)
	}
	if n, _ := repo.Count(context.Background()); n != 1 {
		t.Fatalf("store changed after protected delete: %d records", n)
	}
}

func TestUserService_Delete_RemovesExactlyOneStandardUser(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "Alice", "alice@example.com", domain.RoleAdmin)
	bob := seedUser(repo, "Bob", "bob@example.com", domain.RoleStandard)
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), bob.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if n, _ := repo.Count(context.Background()); n != 1 {
		t.Fatalf("expected 1 remaining record, got %d", n)
	}
	if _, err := repo.FindByID(context.Background(), bob.ID); err != domain.ErrUserNotFound {
		t.Fatalf("deleted user still present")
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ToggleRole_Involution(t *testing.T) {
	repo := newStubUserRepo()
	bob := seedUser(repo, "Bob", "bob@example.com", domain.RoleStandard)
	svc := NewUserService(repo, zerolog.Nop())

	once, err := svc.ToggleRole(context.Background(), bob.ID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if once.Role != domain.RoleAdmin {
		t.Fatalf("expected admin after first toggle, got %s", once.Role)
	}

	twice, err := svc.ToggleRole(context.Background(), bob.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if twice.Role != domain.RoleStandard {
		t.Fatalf("expected original role after two toggles, got %s", twice.Role)
	}
}

func TestUserService_ToggleRole_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.ToggleRole(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
