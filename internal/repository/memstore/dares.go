package memstore

import (
	"context"
	"time"

	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
)

// Dares implements repository.DareRepository.
type Dares struct{ s *Store }

// Create inserts a new dare.
func (r *Dares) Create(_ context.Context, d *model.Dare) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.dares[d.ID]; ok {
		return errs.ErrAlreadyExists
	}
	c := *d
	r.s.dares[d.ID] = &c
	return nil
}

// Get loads a dare by ID.
func (r *Dares) Get(_ context.Context, id uuid.UUID) (*model.Dare, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.dares[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *d
	return &c, nil
}

// Complete moves a pending dare to completed, as the recipient's client would.
// Only tests call it; in a deployment the client writes the row directly.
func (r *Dares) Complete(_ context.Context, id uuid.UUID, at time.Time) (before, after model.Dare, err error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.dares[id]
	if !ok {
		return before, after, errs.ErrNotFound
	}
	if d.Status != model.DarePending {
		return before, after, errs.ErrVersionConflict
	}
	before = *d
	d.Status = model.DareCompleted
	d.CompletedAt = at
	return before, *d, nil
}

// Reject moves a pending dare to rejected.
func (r *Dares) Reject(_ context.Context, id uuid.UUID, reason, message string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.dares[id]
	if !ok {
		return errs.ErrNotFound
	}
	if d.Status != model.DarePending {
		return errs.ErrVersionConflict
	}
	d.Status = model.DareRejected
	d.RejectionReason = reason
	d.RejectionMessage = message
	d.RejectedAt = at
	return nil
}

// RecordScore writes scoring fields once.
func (r *Dares) RecordScore(_ context.Context, id uuid.UUID, s model.Score, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.dares[id]
	if !ok {
		return errs.ErrNotFound
	}
	if d.Status != model.DareCompleted || !d.ScoredAt.IsZero() {
		return errs.ErrVersionConflict
	}
	d.EarnedPoints = s.TotalPoints
	d.BonusPoints = s.BonusPoints
	d.BasePoints = s.BasePoints
	d.CompletionDay = s.DaysElapsed
	d.ScoredAt = at
	return nil
}

// ClaimSenderCredit marks the sender credit as paid.
func (r *Dares) ClaimSenderCredit(_ context.Context, id uuid.UUID, _ time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.dares[id]; !ok {
		return false, errs.ErrNotFound
	}
	if r.s.credited[id] {
		return false, nil
	}
	r.s.credited[id] = true
	return true, nil
}
