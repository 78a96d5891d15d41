package repository

import (
	"context"
	"time"

	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
)

// LinkRequestRepository stores partner link requests.
type LinkRequestRepository interface {
	// Create inserts a pending request; ErrAlreadyExists when the ordered pair already has one.
	Create(ctx context.Context, r *model.LinkRequest) error
	// Get loads a request by ID.
	Get(ctx context.Context, id uuid.UUID) (*model.LinkRequest, error)
	// HasPending reports whether from already has a pending request to to.
	HasPending(ctx context.Context, from, to uuid.UUID) (bool, error)
	// Resolve moves a pending request to status; ErrVersionConflict when it is no longer pending.
	Resolve(ctx context.Context, id uuid.UUID, status model.LinkStatus, at time.Time) error
	// Accept links both accounts and accepts the request in one transaction.
	// ErrVersionConflict when the request is no longer pending,
	// ErrAlreadyLinked when either account already has a partner.
	Accept(ctx context.Context, id uuid.UUID, at time.Time) error
}
