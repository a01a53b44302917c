package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tahadev/portfolio/internal/core/domain"
	"github.com/tahadev/portfolio/internal/core/ports"
)

type stubContactRepo struct {
	messages []*domain.ContactMessage
}

func (r *stubContactRepo) Create(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	copy := *m
	copy.ID = "m" + strconv.Itoa(len(r.messages)+1)
	r.messages = append(r.messages, &copy)
	result := copy
	return &result, nil
}

func (r *stubContactRepo) List(_ context.Context) ([]*domain.ContactMessage, error) {
	return r.messages, nil
}

type stubDeduper struct {
	seen    map[string]bool
	failing bool
}

func newStubDeduper() *stubDeduper {
	return &stubDeduper{seen: make(map[string]bool)}
}

func (d *stubDeduper) IsDuplicate(_ context.Context, email, message string) (bool, error) {
	if d.failing {
		return false, errors.New("redis down")
	}
	return d.seen[email+"|"+message], nil
}

func (d *stubDeduper) Mark(_ context.Context, email, message string) error {
	if d.failing {
		return errors.New("redis down")
	}
	d.seen[email+"|"+message] = true
	return nil
}

type stubQueue struct {
	enqueued []ports.ContactNotification
}

func (q *stubQueue) Enqueue(n ports.ContactNotification) {
	q.enqueued = append(q.enqueued, n)
}

func TestContactService_Submit_StoresAndEnqueues(t *testing.T) {
	repo := &stubContactRepo{}
	queue := &stubQueue{}
	svc := NewContactService(repo, newStubDeduper(), queue, zerolog.Nop())

	result, err := svc.Submit(context.Background(), ports.SubmitContactInput{
		Name:    "Visitor",
		Email:   "v@example.com",
		Message: "Hello!",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if result.Duplicate {
		t.Fatalf("first submission flagged duplicate")
	}
	if result.Message == nil || result.Message.ID == "" {
		t.Fatalf("expected stored message with id")
	}
	if len(queue.enqueued) != 1 {
		t.Fatalf("expected 1 enqueued notification, got %d", len(queue.enqueued))
	}
	if queue.enqueued[0].MessageID != result.Message.ID {
		t.Fatalf("notification references wrong message")
	}
}

func TestContactService_Submit_SuppressesDuplicate(t *testing.T) {
	repo := &stubContactRepo{}
	svc := NewContactService(repo, newStubDeduper(), &stubQueue{}, zerolog.Nop())

	input := ports.SubmitContactInput{Name: "Visitor", Email: "v@example.com", Message: "Hello!"}
	if _, err := svc.Submit(context.Background(), input); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	result, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}
	if !result.Duplicate {
		t.Fatalf("expected duplicate flag on repeat submission")
	}
	if len(repo.messages) != 1 {
		t.Fatalf("duplicate was persisted: %d records", len(repo.messages))
	}
}

func TestContactService_Submit_DedupFailureDegradesToStore(t *testing.T) {
	repo := &stubContactRepo{}
	deduper := newStubDeduper()
	deduper.failing = true
	svc := NewContactService(repo, deduper, &stubQueue{}, zerolog.Nop())

	result, err := svc.Submit(context.Background(), ports.SubmitContactInput{
		Name:    "Visitor",
		Email:   "v@example.com",
		Message: "Hello!",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if result.Duplicate {
		t.Fatalf("dedup outage must not flag duplicates")
	}
	if len(repo.messages) != 1 {
		t.Fatalf("message not stored during dedup outage")
	}
}
