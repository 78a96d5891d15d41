package repository

import (
	"context"

	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
)

// CompetitionRepository stores monthly competitions and their daily history.
type CompetitionRepository interface {
	// Get loads a competition by ID.
	Get(ctx context.Context, id uuid.UUID) (*model.Competition, error)
	// ListByMonth returns every competition of monthCode.
	ListByMonth(ctx context.Context, monthCode string) ([]model.Competition, error)
	// MarkRevealed sets the revealed flag of user1 (forUser1) or user2.
	MarkRevealed(ctx context.Context, id uuid.UUID, forUser1 bool) error
	// AddSnapshot appends a daily standing; added is false when that day is already recorded.
	AddSnapshot(ctx context.Context, s model.Snapshot) (added bool, err error)
}
