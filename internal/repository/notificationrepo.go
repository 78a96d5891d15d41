package repository

import (
	"context"
	"time"

	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
)

// NotificationRepository stores push jobs and their delivery outcome.
type NotificationRepository interface {
	// Enqueue inserts a new job.
	Enqueue(ctx context.Context, n *model.Notification) error
	// Get loads a job by ID.
	Get(ctx context.Context, id uuid.UUID) (*model.Notification, error)
	// MarkSent records a successful delivery.
	MarkSent(ctx context.Context, id uuid.UUID, messageID string, at time.Time) error
	// MarkBlocked records a policy block.
	MarkBlocked(ctx context.Context, id uuid.UUID, reason string, at time.Time) error
	// MarkFailed records a delivery or validation failure.
	MarkFailed(ctx context.Context, id uuid.UUID, msg, code string, at time.Time) error
}
