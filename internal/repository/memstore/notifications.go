package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
)

// Notifications implements repository.NotificationRepository.
type Notifications struct{ s *Store }

// Enqueue inserts a new job.
func (r *Notifications) Enqueue(_ context.Context, n *model.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.notes[n.ID]; ok {
		return errs.ErrAlreadyExists
	}
	c := *n
	r.s.notes[n.ID] = &c
	return nil
}

// Get loads a job by ID.
func (r *Notifications) Get(_ context.Context, id uuid.UUID) (*model.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notes[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *n
	return &c, nil
}

// All returns every job ordered by timestamp.
func (r *Notifications) All() []model.Notification {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]model.Notification, 0, len(r.s.notes))
	for _, n := range r.s.notes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out
}

// MarkSent records a successful delivery.
func (r *Notifications) MarkSent(_ context.Context, id uuid.UUID, messageID string, at time.Time) error {
	return r.update(id, func(n *model.Notification) {
		n.Sent = true
		n.SentAt = at
		n.MessageID = messageID
	})
}

// MarkBlocked records a policy block.
func (r *Notifications) MarkBlocked(_ context.Context, id uuid.UUID, reason string, _ time.Time) error {
	return r.update(id, func(n *model.Notification) {
		n.Blocked = true
		n.BlockReason = reason
	})
}

// MarkFailed records a failure.
func (r *Notifications) MarkFailed(_ context.Context, id uuid.UUID, msg, code string, _ time.Time) error {
	return r.update(id, func(n *model.Notification) {
		n.Error = msg
		n.ErrorCode = code
	})
}

func (r *Notifications) update(id uuid.UUID, fn func(n *model.Notification)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notes[id]
	if !ok {
		return errs.ErrNotFound
	}
	fn(n)
	return nil
}
