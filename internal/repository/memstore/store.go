// Package memstore is an in-memory implementation of every repository
// interface. It backs the -storage=memory dev mode and the service tests.
package memstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dareus/dareguard/internal/limiter"
	"github.com/dareus/dareguard/internal/model"
	"github.com/dareus/dareguard/internal/repository"
	"github.com/gofrs/uuid/v5"
)

// Store holds all entities behind one mutex. Every accessor returns copies.
type Store struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*model.User
	dares     map[uuid.UUID]*model.Dare
	credited  map[uuid.UUID]bool
	links     map[uuid.UUID]*model.LinkRequest
	notes     map[uuid.UUID]*model.Notification
	comps     map[uuid.UUID]*model.Competition
	snaps     []model.Snapshot
	audit     []model.AuditEvent
	purchases []model.Purchase
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users:    map[uuid.UUID]*model.User{},
		dares:    map[uuid.UUID]*model.Dare{},
		credited: map[uuid.UUID]bool{},
		links:    map[uuid.UUID]*model.LinkRequest{},
		notes:    map[uuid.UUID]*model.Notification{},
		comps:    map[uuid.UUID]*model.Competition{},
	}
}

var (
	_ repository.UserRepository         = (*Users)(nil)
	_ repository.DareRepository         = (*Dares)(nil)
	_ repository.LinkRequestRepository  = (*Links)(nil)
	_ repository.NotificationRepository = (*Notifications)(nil)
	_ repository.CompetitionRepository  = (*Competitions)(nil)
	_ repository.AuditSink              = (*Store)(nil)
	_ repository.PurchaseRepository     = (*Store)(nil)
	_ limiter.EventLog                  = (*Store)(nil)
)

// Users returns the account repository view.
func (s *Store) Users() *Users { return &Users{s: s} }

// Dares returns the dare repository view.
func (s *Store) Dares() *Dares { return &Dares{s: s} }

// Links returns the link request repository view.
func (s *Store) Links() *Links { return &Links{s: s} }

// Notifications returns the notification repository view.
func (s *Store) Notifications() *Notifications { return &Notifications{s: s} }

// Competitions returns the competition repository view.
func (s *Store) Competitions() *Competitions { return &Competitions{s: s} }

// Append implements repository.AuditSink.
func (s *Store) Append(_ context.Context, e model.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit = append(s.audit, e)
	return nil
}

// AuditEvents returns every recorded audit event in order.
func (s *Store) AuditEvents() []model.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.audit)
}

// Record implements repository.PurchaseRepository.
func (s *Store) Record(_ context.Context, p model.Purchase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = append(s.purchases, p)
	return nil
}

// Purchases returns every recorded purchase.
func (s *Store) Purchases() []model.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.purchases)
}

// CountDaresSent implements limiter.EventLog.
func (s *Store) CountDaresSent(_ context.Context, from uuid.UUID, since time.Time, except uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, d := range s.dares {
		if id != except && d.FromUserID == from && !d.SentAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// CountNotificationsTo implements limiter.EventLog.
func (s *Store) CountNotificationsTo(_ context.Context, toToken string, since time.Time, except uuid.UUID) (int, error) {
	return s.countNotes(func(n *model.Notification) bool { return n.ToToken == toToken }, since, except), nil
}

// CountNotificationsFrom implements limiter.EventLog.
func (s *Store) CountNotificationsFrom(_ context.Context, from uuid.UUID, since time.Time, except uuid.UUID) (int, error) {
	return s.countNotes(func(n *model.Notification) bool { return n.FromUserID == from }, since, except), nil
}

func (s *Store) countNotes(match func(*model.Notification) bool, since time.Time, except uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, note := range s.notes {
		if id != except && match(note) && !note.Timestamp.Before(since) {
			n++
		}
	}
	return n
}
