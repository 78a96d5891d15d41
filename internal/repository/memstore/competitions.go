package memstore

import (
	"context"

	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
)

// Competitions implements repository.CompetitionRepository.
type Competitions struct{ s *Store }

// Create inserts a competition.
func (r *Competitions) Create(_ context.Context, c *model.Competition) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.comps[c.ID]; ok {
		return errs.ErrAlreadyExists
	}
	cc := *c
	r.s.comps[c.ID] = &cc
	return nil
}

// Get loads a competition by ID.
func (r *Competitions) Get(_ context.Context, id uuid.UUID) (*model.Competition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comps[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cc := *c
	return &cc, nil
}

// ListByMonth returns every competition of monthCode.
func (r *Competitions) ListByMonth(_ context.Context, monthCode string) ([]model.Competition, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Competition
	for _, c := range r.s.comps {
		if c.MonthCode == monthCode {
			out = append(out, *c)
		}
	}
	return out, nil
}

// MarkRevealed sets a revealed flag.
func (r *Competitions) MarkRevealed(_ context.Context, id uuid.UUID, forUser1 bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comps[id]
	if !ok {
		return errs.ErrNotFound
	}
	if forUser1 {
		c.User1Revealed = true
	} else {
		c.User2Revealed = true
	}
	return nil
}

// AddSnapshot appends a daily standing unless that day is recorded.
func (r *Competitions) AddSnapshot(_ context.Context, s model.Snapshot) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	day := s.Date.Format("2006-01-02")
	for _, x := range r.s.snaps {
		if x.CompetitionID == s.CompetitionID && x.Date.Format("2006-01-02") == day {
			return false, nil
		}
	}
	r.s.snaps = append(r.s.snaps, s)
	return true, nil
}

// Snapshots returns the history of one competition.
func (r *Competitions) Snapshots(id uuid.UUID) []model.Snapshot {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []model.Snapshot
	for _, x := range r.s.snaps {
		if x.CompetitionID == id {
			out = append(out, x)
		}
	}
	return out
}
