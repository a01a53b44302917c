package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tahadev/portfolio/internal/core/ports"
)

// LogNotifier records accepted contact messages to the structured log. It
// stands in for an outbound channel such as email; swapping it for a real
// sender only requires another ports.Notifier implementation.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, msg ports.ContactNotification) error {
	n.log.Info().
		Str("message_id", msg.MessageID).
		Str("from", msg.Email).
		Str("name", msg.Name).
		Time("received_at", msg.ReceivedAt).
		Msg("new contact message")
	return nil
}
