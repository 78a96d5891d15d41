package memstore

import (
	"context"
	"time"

	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
)

// Links implements repository.LinkRequestRepository.
type Links struct{ s *Store }

// Create inserts a pending request.
func (r *Links) Create(_ context.Context, req *model.LinkRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.pending(req.FromUserID, req.ToUserID) {
		return errs.ErrAlreadyExists
	}
	c := *req
	r.s.links[req.ID] = &c
	return nil
}

// Get loads a request by ID.
func (r *Links) Get(_ context.Context, id uuid.UUID) (*model.LinkRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.links[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *l
	return &c, nil
}

// HasPending reports whether from has a pending request to to.
func (r *Links) HasPending(_ context.Context, from, to uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.pending(from, to), nil
}

func (r *Links) pending(from, to uuid.UUID) bool {
	for _, l := range r.s.links {
		if l.FromUserID == from && l.ToUserID == to && l.Status == model.LinkPending {
			return true
		}
	}
	return false
}

// Resolve moves a pending request to status.
func (r *Links) Resolve(_ context.Context, id uuid.UUID, status model.LinkStatus, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.links[id]
	if !ok {
		return errs.ErrNotFound
	}
	if l.Status != model.LinkPending {
		return errs.ErrVersionConflict
	}
	l.Status = status
	l.ResolvedAt = at
	return nil
}

// Accept links both accounts and accepts the request under the store lock.
func (r *Links) Accept(_ context.Context, id uuid.UUID, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.links[id]
	if !ok {
		return errs.ErrNotFound
	}
	if l.Status != model.LinkPending {
		return errs.ErrVersionConflict
	}
	from, okFrom := r.s.users[l.FromUserID]
	to, okTo := r.s.users[l.ToUserID]
	if !okFrom || !okTo {
		return errs.ErrNotFound
	}
	if from.HasPartner() || to.HasPartner() {
		return errs.ErrAlreadyLinked
	}
	from.PartnerID, from.PartnerLinkedAt = to.ID, at
	to.PartnerID, to.PartnerLinkedAt = from.ID, at
	l.Status = model.LinkAccepted
	l.ResolvedAt = at
	return nil
}
