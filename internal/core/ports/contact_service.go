package ports

import (
	"context"
	"time"

	"github.com/tahadev/portfolio/internal/core/domain"
)

// SubmitContactInput carries a contact form submission.
type SubmitContactInput struct {
	Name    string
	Email   string
	Message string
}

// ContactResult reports the outcome of a submission. Duplicate is true when
// an identical submission was seen recently and no new record was written.
type ContactResult struct {
	Message   *domain.ContactMessage
	Duplicate bool
}

// ContactService persists contact form submissions with duplicate
// suppression and asynchronous notification dispatch.
type ContactService interface {
	Submit(ctx context.Context, input SubmitContactInput) (*ContactResult, error)
}

// ContactDeduper performs idempotency checks on contact submissions.
type ContactDeduper interface {
	IsDuplicate(ctx context.Context, email, message string) (bool, error)
	Mark(ctx context.Context, email, message string) error
}

// ContactNotification is the payload handed to the notification dispatcher
// after a contact message is accepted.
type ContactNotification struct {
	MessageID  string
	Name       string
	Email      string
	ReceivedAt time.Time
}

// Notifier delivers a single contact notification out-of-band.
type Notifier interface {
	Notify(ctx context.Context, n ContactNotification) error
}
