package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/tahadev/portfolio/internal/client/guard"
	"github.com/tahadev/portfolio/internal/client/session"
	"github.com/tahadev/portfolio/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := session.NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
	return New(srv.URL, store), store
}

func writeAuthPayload(w http.ResponseWriter, token string, role domain.Role) {
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"token": token,
		"user": map[string]any{
			"id":    "u1",
			"name":  "Alice",
			"email": "alice@example.com",
			"role":  role,
		},
	})
}

func TestClient_LoginPersistsSessionAndRedirects(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		writeAuthPayload(w, "tok-admin", domain.RoleAdmin)
	}))

	result, err := client.Login(context.Background(), "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Redirect != guard.RouteAdmin {
		t.Errorf("admin login redirect = %q, want %q", result.Redirect, guard.RouteAdmin)
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if snap == nil || snap.Token != "tok-admin" || snap.Role != domain.RoleAdmin {
		t.Errorf("persisted snapshot = %+v", snap)
	}
}

func TestClient_StandardLoginRedirectsToRoot(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAuthPayload(w, "tok-std", domain.RoleStandard)
	}))

	result, err := client.Login(context.Background(), "bob@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Redirect != guard.RouteRoot {
		t.Errorf("standard login redirect = %q, want %q", result.Redirect, guard.RouteRoot)
	}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))

	if err := store.Save(&session.Snapshot{Token: "tok-abc", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	if _, err := client.Users(context.Background()); err != nil {
		t.Fatalf("users: %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-abc")
	}
}

func TestClient_NoTokenWhenAnonymous(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))

	if _, err := client.Projects(context.Background()); err != nil {
		t.Fatalf("projects: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("anonymous request carried Authorization = %q", gotAuth)
	}
}

func TestClient_DecodesErrorEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid email or password"})
	}))

	_, err := client.Login(context.Background(), "alice@example.com", "wrong")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", apiErr.StatusCode)
	}
	if apiErr.Message != "invalid email or password" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestClient_FallsBackToStatusTextOnBadEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream says no"))
	}))

	_, err := client.Projects(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestClient_SuppressesConcurrentSubmissions(t *testing.T) {
	release := make(chan struct{})
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		writeAuthPayload(w, "tok", domain.RoleStandard)
	}))

	var wg sync.WaitGroup
	firstErr := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := client.Login(context.Background(), "alice@example.com", "secret1")
		firstErr <- err
	}()

	// Wait until the first submission is holding the in-flight flag.
	deadline := time.After(2 * time.Second)
	for {
		client.mu.Lock()
		busy := client.submitting
		client.mu.Unlock()
		if busy {
			break
		}
		select {
		case <-deadline:
			t.Fatal("first submission never started")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if _, err := client.Login(context.Background(), "alice@example.com", "secret1"); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("second submission error = %v, want ErrSubmitInFlight", err)
	}

	close(release)
	wg.Wait()
	if err := <-firstErr; err != nil {
		t.Errorf("first submission failed: %v", err)
	}

	// Once the first completes, submissions are accepted again.
	if _, err := client.Login(context.Background(), "alice@example.com", "secret1"); err != nil {
		t.Errorf("post-completion submission failed: %v", err)
	}
}

func TestClient_LogoutClearsSession(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	if err := store.Save(&session.Snapshot{Token: "tok"}); err != nil {
		t.Fatalf("seed session: %v", err)
	}
	if err := client.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}

	snap, err := client.Session()
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if snap != nil {
		t.Errorf("expected nil session after logout, got %+v", snap)
	}
}
