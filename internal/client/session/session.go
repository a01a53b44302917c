// Package session holds the client's cached identity snapshot: who is logged
// in, their role, and the bearer token attached to outgoing requests. The
// snapshot is the client's source of truth for conditional behaviour; the
// server-side middleware remains the actual authority.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tahadev/portfolio/internal/core/domain"
)

const sessionFile = "session.json"

// Snapshot is the persisted identity: {name, email, role, token}. It is
// mutated only by login/registration and logout.
type Snapshot struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	Token string      `json:"token"`
}

// IsAdmin reports whether the snapshot carries the admin role.
func (s *Snapshot) IsAdmin() bool {
	return s != nil && s.Role == domain.RoleAdmin
}

// Store persists the snapshot as a JSON file. It is an explicit, injectable
// object rather than ambient global state.
type Store struct {
	path string
}

// NewStore creates a Store rooted at ~/.portfolio.
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".portfolio")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session directory: %w", err)
	}
	return &Store{path: filepath.Join(dir, sessionFile)}, nil
}

// NewStoreAt creates a Store using an explicit file path. Used in tests.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Load returns the persisted snapshot, or nil when there is none. A corrupt
// file degrades to "no session" rather than erroring.
func (s *Store) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil || snap.Token == "" {
		return nil, nil
	}
	return &snap, nil
}

// Save persists the snapshot, replacing any previous one.
func (s *Store) Save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear deletes the persisted snapshot. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(s.path)
}
