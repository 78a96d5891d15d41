package repository

import (
	"context"
	"time"

	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
)

// DareRepository provides access to dares. Every terminal write is conditional
// on the current status, so a dare changes terminal state at most once.
type DareRepository interface {
	// Create inserts a new dare.
	Create(ctx context.Context, d *model.Dare) error
	// Get loads a dare by ID.
	Get(ctx context.Context, id uuid.UUID) (*model.Dare, error)
	// Reject moves a pending dare to rejected; ErrVersionConflict when it is not pending.
	Reject(ctx context.Context, id uuid.UUID, reason, message string, at time.Time) error
	// RecordScore writes the scoring fields of a completed dare once;
	// ErrVersionConflict when it is already scored or not completed.
	RecordScore(ctx context.Context, id uuid.UUID, s model.Score, at time.Time) error
	// ClaimSenderCredit marks the sender credit as paid; claimed is false when it already was.
	ClaimSenderCredit(ctx context.Context, id uuid.UUID, at time.Time) (claimed bool, err error)
}
