package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dareus/dareguard/internal/audit"
	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/limiter"
	"github.com/dareus/dareguard/internal/model"
	"github.com/dareus/dareguard/internal/moderation"
	"github.com/dareus/dareguard/internal/policy"
	"github.com/dareus/dareguard/internal/repository/memstore"
	"github.com/dareus/dareguard/internal/scoring"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

var t0 = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// harness wires the real collaborators over an in-memory store and a settable clock.
type harness struct {
	store  *memstore.Store
	now    time.Time
	log    *zap.Logger
	lim    *limiter.RateLimiter
	audit  *audit.Logger
	points *scoring.Engine
	mod    *moderation.Moderator
	queue  *Enqueuer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{store: memstore.New(), now: t0, log: zaptest.NewLogger(t)}
	cat, err := policy.Default()
	require.NoError(t, err)
	h.mod, err = moderation.New(cat.Moderation)
	require.NoError(t, err)
	h.lim = limiter.New(h.store.Users(), h.store, limiter.WithClock(h.clock))
	h.audit = audit.New(h.store, h.log)
	h.points = scoring.NewEngine(h.store.Users(), cat, h.audit, h.log)
	h.points.SetClock(h.clock)
	h.queue = NewEnqueuer(h.store.Notifications(), h.log)
	h.queue.now = h.clock
	return h
}

func (h *harness) clock() time.Time { return h.now }

func (h *harness) advance(d time.Duration) { h.now = h.now.Add(d) }

func (h *harness) addUser(t *testing.T, name, token string, opts ...func(*model.User)) uuid.UUID {
	t.Helper()
	u := &model.User{ID: uuid.Must(uuid.NewV4()), FirstName: name, PushToken: token, CreatedAt: h.now}
	for _, o := range opts {
		o(u)
	}
	require.NoError(t, h.store.Users().Create(context.Background(), u))
	return u.ID
}

func (h *harness) user(t *testing.T, id uuid.UUID) *model.User {
	t.Helper()
	u, err := h.store.Users().GetByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

func (h *harness) auditTypes() []string {
	var out []string
	for _, e := range h.store.AuditEvents() {
		out = append(out, e.EventType)
	}
	return out
}

func newID() uuid.UUID { return uuid.Must(uuid.NewV4()) }

// requireErr asserts both the kind and the caller-facing message of err.
func requireErr(t *testing.T, err error, kind error, msg string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, kind), "want kind %v, got %v", kind, err)
	require.Equal(t, msg, errs.Message(err))
}
