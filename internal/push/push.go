// Package push delivers notification jobs to devices.
package push

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// Message is one push to one device.
type Message struct {
	Token     string
	Title     string
	Body      string
	Type      string
	RequestID string
}

// Sender delivers a message and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, m Message) (string, error)
}

// DeliveryError is a provider rejection. Code is the provider reason.
type DeliveryError struct {
	Code   string
	Status int
}

func (e *DeliveryError) Error() string {
	if invalidToken(e.Code) {
		return "Invalid or expired push token"
	}
	return fmt.Sprintf("push rejected: %s (%d)", e.Code, e.Status)
}

// LogSender writes messages to the log instead of a device. Used in dev mode.
type LogSender struct {
	log *zap.Logger
}

// NewLogSender constructs a LogSender.
func NewLogSender(log *zap.Logger) *LogSender {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogSender{log: log}
}

// Send logs m and returns a random id.
func (s *LogSender) Send(_ context.Context, m Message) (string, error) {
	id := uuid.Must(uuid.NewV4()).String()
	s.log.Info("push (log only)",
		zap.String("id", id),
		zap.String("type", m.Type),
		zap.String("title", m.Title),
		zap.Int("bodyLen", len(m.Body)),
	)
	return id, nil
}
