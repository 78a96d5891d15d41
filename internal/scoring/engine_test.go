package scoring

import (
	"context"
	"testing"
	"time"

	"github.com/dareus/dareguard/internal/audit"
	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/model"
	"github.com/dareus/dareguard/internal/policy"
	"github.com/dareus/dareguard/internal/repository/memstore"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newEngine(t *testing.T) (*Engine, *memstore.Store) {
	t.Helper()
	cat, err := policy.Default()
	require.NoError(t, err)
	st := memstore.New()
	log := zaptest.NewLogger(t)
	e := NewEngine(st.Users(), cat, audit.New(st, log), log)
	e.SetClock(func() time.Time { return time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC) })
	return e, st
}

func seedUser(t *testing.T, st *memstore.Store) uuid.UUID {
	t.Helper()
	id := uuid.Must(uuid.NewV4())
	require.NoError(t, st.Users().Create(context.Background(), &model.User{ID: id}))
	return id
}

func TestAward(t *testing.T) {
	t.Parallel()
	e, st := newEngine(t)
	ctx := context.Background()
	id := seedUser(t, st)

	require.True(t, e.Award(ctx, id, 12, "Sent fun dare"))
	require.True(t, e.Award(ctx, id, -2, "adjust"))
	u, err := st.Users().GetByID(ctx, id)
	require.NoError(t, err)
	require.EqualValues(t, 10, u.Points)
	require.Equal(t, "adjust", u.LastPointsReason)

	require.False(t, e.Award(ctx, uuid.Must(uuid.NewV4()), 5, "ghost"))
}

func TestAwardBadge_ExactlyOnce(t *testing.T) {
	t.Parallel()
	e, st := newEngine(t)
	ctx := context.Background()
	id := seedUser(t, st)

	res, err := e.AwardBadge(ctx, id, "speed_demon")
	require.NoError(t, err)
	require.True(t, res.Awarded)
	require.EqualValues(t, 50, res.Points)
	require.Equal(t, "Badge unlocked! +50 points", res.Message)

	res, err = e.AwardBadge(ctx, id, "speed_demon")
	require.NoError(t, err)
	require.False(t, res.Awarded)
	require.Equal(t, "Badge already unlocked", res.Message)

	u, _ := st.Users().GetByID(ctx, id)
	require.EqualValues(t, 50, u.Points)
	require.Equal(t, []string{"speed_demon"}, u.UnlockedBadges)
	require.Equal(t, "Unlocked badge: speed_demon", u.LastPointsReason)
}

func TestAwardBadge_UnknownIsFraudSignal(t *testing.T) {
	t.Parallel()
	e, st := newEngine(t)
	ctx := context.Background()
	id := seedUser(t, st)

	_, err := e.AwardBadge(ctx, id, "infinite_points")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	events := st.AuditEvents()
	require.Len(t, events, 1)
	require.Equal(t, audit.EventBadgeFraud, events[0].EventType)
	require.Equal(t, "infinite_points", events[0].Details["badgeId"])
}

func TestAwardBadge_UnknownUser(t *testing.T) {
	t.Parallel()
	e, _ := newEngine(t)

	_, err := e.AwardBadge(context.Background(), uuid.Must(uuid.NewV4()), "first_dare")
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSpend(t *testing.T) {
	t.Parallel()
	e, st := newEngine(t)
	ctx := context.Background()
	id := seedUser(t, st)
	require.True(t, e.Award(ctx, id, 40, "seed"))

	bal, err := e.Spend(ctx, id, 25, "Revealed partner prize")
	require.NoError(t, err)
	require.EqualValues(t, 15, bal)

	_, err = e.Spend(ctx, id, 25, "Revealed partner prize")
	require.ErrorIs(t, err, errs.ErrFailedPrecondition)
}
