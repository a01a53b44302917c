package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tahadev/portfolio/internal/core/domain"
	"github.com/tahadev/portfolio/internal/core/ports"
)

// Enqueuer hands accepted contact messages to the notification dispatcher.
type Enqueuer interface {
	Enqueue(n ports.ContactNotification)
}

// ContactService persists contact form submissions. An identical
// {email, message} pair re-submitted within the dedup window is accepted but
// not written twice. Dedup failures degrade to "not a duplicate" so a Redis
// outage never blocks the contact form.
type ContactService struct {
	repo    ports.ContactRepository
	deduper ports.ContactDeduper
	queue   Enqueuer
	logger  zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, deduper ports.ContactDeduper, queue Enqueuer, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, deduper: deduper, queue: queue, logger: logger}
}

func (s *ContactService) Submit(ctx context.Context, input ports.SubmitContactInput) (*ports.ContactResult, error) {
	if s.deduper != nil {
		dup, err := s.deduper.IsDuplicate(ctx, input.Email, input.Message)
		if err != nil {
			s.logger.Warn().Err(err).Msg("contact dedup check failed, treating as new")
		} else if dup {
			s.logger.Info().Str("email", input.Email).Msg("duplicate contact submission suppressed")
			return &ports.ContactResult{Duplicate: true}, nil
		}
	}

	msg := &domain.ContactMessage{
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	if s.deduper != nil {
		if err := s.deduper.Mark(ctx, input.Email, input.Message); err != nil {
			s.logger.Warn().Err(err).Msg("contact dedup mark failed")
		}
	}

	if s.queue != nil {
		s.queue.Enqueue(ports.ContactNotification{
			MessageID:  created.ID,
			Name:       created.Name,
			Email:      created.Email,
			ReceivedAt: created.CreatedAt,
		})
	}

	s.logger.Info().Str("message_id", created.ID).Msg("contact message stored")
	return &ports.ContactResult{Message: created}, nil
}
