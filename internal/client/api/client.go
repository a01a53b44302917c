// Package api is the typed HTTP client for the portfolio API. It attaches
// the session's bearer token to every outgoing request and implements the
// login/registration submission flow, including suppression of concurrent
// duplicate submissions.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tahadev/portfolio/internal/client/guard"
	"github.com/tahadev/portfolio/internal/client/session"
	"github.com/tahadev/portfolio/internal/core/domain"
)

const defaultTimeout = 15 * time.Second

// ErrSubmitInFlight is returned when a login or registration is attempted
// while a previous submission has not yet completed.
var ErrSubmitInFlight = errors.New("submission already in flight")

// Error is a failure reported by the server's error envelope.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client calls the portfolio API. The zero value is not usable; construct
// with New.
type Client struct {
	baseURL string
	http    *http.Client
	store   *session.Store

	mu         sync.Mutex
	submitting bool
}

// New creates a Client against baseURL, persisting identity through store.
func New(baseURL string, store *session.Store) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		store:   store,
	}
}

// Identity is the public shape of a user as returned by the server.
type Identity struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

type authPayload struct {
	Token string   `json:"token"`
	User  Identity `json:"user"`
}

// AuthResult reports a successful login or registration: the stored snapshot
// and the route the client should navigate to next.
type AuthResult struct {
	Snapshot *session.Snapshot
	Redirect guard.Route
}

// Login exchanges credentials for a session. Only one submission may be in
// flight at a time; concurrent attempts fail with ErrSubmitInFlight. On
// success the snapshot is persisted and the role-dependent destination
// returned. The password is never stored.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	return c.submitAuth(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// Register creates an account and logs the new user in.
func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	return c.submitAuth(ctx, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
}

func (c *Client) submitAuth(ctx context.Context, path string, body map[string]string) (*AuthResult, error) {
	if err := c.beginSubmit(); err != nil {
		return nil, err
	}
	defer c.endSubmit()

	var payload authPayload
	if err := c.do(ctx, http.MethodPost, path, body, &payload); err != nil {
		return nil, err
	}

	snap := &session.Snapshot{
		Name:  payload.User.Name,
		Email: payload.User.Email,
		Role:  payload.User.Role,
		Token: payload.Token,
	}
	if err := c.store.Save(snap); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	return &AuthResult{Snapshot: snap, Redirect: guard.Home(snap)}, nil
}

// Logout deletes the local session. The server keeps no session state, so
// the token stays valid until its natural expiry; this is a documented
// limitation of the design.
func (c *Client) Logout() error {
	return c.store.Clear()
}

// Session returns the current snapshot, or nil when logged out.
func (c *Client) Session() (*session.Snapshot, error) {
	return c.store.Load()
}

// Projects lists all portfolio projects. Public, no session required.
func (c *Client) Projects(ctx context.Context) ([]*domain.Project, error) {
	var resp struct {
		Data []*domain.Project `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Project fetches a single project by id.
func (c *Client) Project(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	if err := c.do(ctx, http.MethodGet, "/api/projects/"+id, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProjectInput mirrors the server's creation payload.
type CreateProjectInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	LiveURL     string `json:"live_url,omitempty"`
	RepoURL     string `json:"repo_url,omitempty"`
	Category    string `json:"category"`
}

// CreateProject creates a project. Requires an admin session.
func (c *Client) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	var p domain.Project
	if err := c.do(ctx, http.MethodPost, "/api/projects", input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProject removes a project. Requires an admin session.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/projects/"+id, nil, nil)
}

// Users lists all users. Requires an admin session.
func (c *Client) Users(ctx context.Context) ([]Identity, error) {
	var resp struct {
		Data []Identity `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// DeleteUser removes a non-admin user. Requires an admin session.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil)
}

// ToggleRole flips a user's role and returns the updated identity.
func (c *Client) ToggleRole(ctx context.Context, id string) (*Identity, error) {
	var identity Identity
	if err := c.do(ctx, http.MethodPut, "/api/users/"+id+"/role", nil, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// UploadImage uploads a local image file and returns the public URL the
// server stored it under, suitable for a project's image field. Requires an
// admin session.
func (c *Client) UploadImage(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if snap, err := c.store.Load(); err == nil && snap != nil {
		req.Header.Set("Authorization", "Bearer "+snap.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", decodeError(resp)
	}

	var payload struct {
		ImageURL string `json:"image_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return payload.ImageURL, nil
}

// SendContact submits a contact form message. Public.
func (c *Client) SendContact(ctx context.Context, name, email, message string) error {
	body := map[string]string{"name": name, "email": email, "message": message}
	return c.do(ctx, http.MethodPost, "/api/contact", body, nil)
}

func (c *Client) beginSubmit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return ErrSubmitInFlight
	}
	c.submitting = true
	return nil
}

func (c *Client) endSubmit() {
	c.mu.Lock()
	c.submitting = false
	c.mu.Unlock()
}

// do performs a request, attaching the bearer token when a session exists,
// and decodes either the success payload or the {message} error envelope.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// A corrupt session degrades to anonymous rather than failing the call.
	if snap, err := c.store.Load(); err == nil && snap != nil {
		req.Header.Set("Authorization", "Bearer "+snap.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var envelope struct {
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.Message == "" {
		envelope.Message = http.StatusText(resp.StatusCode)
	}
	return &Error{StatusCode: resp.StatusCode, Message: envelope.Message}
}
