// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"
	"time"

	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
)

// UserRepository provides access to player accounts. Counters and lists are
// changed with single-statement deltas so concurrent handlers never lose updates.
type UserRepository interface {
	// Create inserts a new account.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads an account by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// GetByInviteCode loads the account currently holding code.
	GetByInviteCode(ctx context.Context, code string) (*model.User, error)
	// InviteCodeTaken reports whether any account holds code.
	InviteCodeTaken(ctx context.Context, code string) (bool, error)
	// SetInviteCode claims code for the account; ErrAlreadyExists when another account holds it.
	SetInviteCode(ctx context.Context, id uuid.UUID, code string, at time.Time) error

	// AddPoints atomically adds delta (may be negative) and records the reason.
	AddPoints(ctx context.Context, id uuid.UUID, delta int64, reason string, at time.Time) error
	// SpendPoints debits cost only if the balance covers it and returns the new balance.
	// ErrFailedPrecondition when the balance is short.
	SpendPoints(ctx context.Context, id uuid.UUID, cost int64, reason string, at time.Time) (int64, error)
	// IncrementDaresSent bumps daresSent and stamps lastDareSentAt.
	IncrementDaresSent(ctx context.Context, id uuid.UUID, at time.Time) error
	// IncrementTotalDares bumps totalDares.
	IncrementTotalDares(ctx context.Context, id uuid.UUID) error

	// AppendFailedInviteAttempt appends at and drops entries not after keepAfter.
	AppendFailedInviteAttempt(ctx context.Context, id uuid.UUID, at, keepAfter time.Time) error
	// ClearFailedInviteAttempts empties the failed attempt list.
	ClearFailedInviteAttempts(ctx context.Context, id uuid.UUID) error
	// AddBadge adds badgeID to the unlocked set; added is false when it was already there.
	AddBadge(ctx context.Context, id uuid.UUID, badgeID string) (added bool, err error)
	// SetPremium overwrites the premium entitlement.
	SetPremium(ctx context.Context, id uuid.UUID, tier model.PremiumTier, expiresAt time.Time) error
}
