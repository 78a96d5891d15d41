package hooks

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dareus/dareguard/internal/events"
	"github.com/dareus/dareguard/internal/jobs/snapshot"
	"github.com/dareus/dareguard/internal/model"
	"github.com/dareus/dareguard/internal/repository/memstore"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const hookToken = "hook-secret"

type fakeSnapshot struct {
	res snapshot.Result
	err error
}

func (f fakeSnapshot) Run(context.Context) (snapshot.Result, error) { return f.res, f.err }

type recorder struct {
	mu      sync.Mutex
	created []uuid.UUID
}

func (r *recorder) onCreated(_ context.Context, d model.Dare) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, d.ID)
	return nil
}

func newHookServer(t *testing.T, snap SnapshotRunner) (*httptest.Server, *memstore.Store, *recorder) {
	t.Helper()
	log := zaptest.NewLogger(t)
	store := memstore.New()
	rec := &recorder{}
	reg := events.NewRegistry(log)
	reg.OnDareCreated(rec.onCreated)
	pump := events.NewPump(events.Loader{Dares: store.Dares(), Notifications: store.Notifications()}, reg, 1, log)

	ts := httptest.NewServer(New(pump, snap, hookToken, log).Routes())
	t.Cleanup(ts.Close)
	return ts, store, rec
}

func post(t *testing.T, url, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	ts, _, _ := newHookServer(t, fakeSnapshot{})
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEvents_RequireToken(t *testing.T) {
	t.Parallel()
	ts, _, _ := newHookServer(t, fakeSnapshot{})

	require.Equal(t, http.StatusUnauthorized, post(t, ts.URL+"/v1/events", "", `{}`).StatusCode)
	require.Equal(t, http.StatusUnauthorized, post(t, ts.URL+"/v1/events", "wrong", `{}`).StatusCode)
	require.Equal(t, http.StatusUnauthorized, post(t, ts.URL+"/v1/jobs/daily-snapshot", "", ``).StatusCode)
}

func TestEvents_Dispatch(t *testing.T) {
	t.Parallel()
	ts, store, rec := newHookServer(t, fakeSnapshot{})
	d := model.Dare{ID: uuid.Must(uuid.NewV4()), Status: model.DarePending, Text: "Dance"}
	require.NoError(t, store.Dares().Create(context.Background(), &d))

	resp := post(t, ts.URL+"/v1/events", hookToken, `{"kind":"dare.created","id":"`+d.ID.String()+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []uuid.UUID{d.ID}, rec.created)

	resp = post(t, ts.URL+"/v1/events", hookToken, `{"kind":"dare.created","id":"`+uuid.Must(uuid.NewV4()).String()+`"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = post(t, ts.URL+"/v1/events", hookToken, `{"kind":"dare.deleted","id":"`+d.ID.String()+`"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, ts.URL+"/v1/events", hookToken, `not json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDailySnapshot(t *testing.T) {
	t.Parallel()
	ok, _, _ := newHookServer(t, fakeSnapshot{res: snapshot.Result{Day: "2025-03-10", MonthCode: "2025-3", Added: 2}})
	resp := post(t, ok.URL+"/v1/jobs/daily-snapshot", hookToken, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	skipped, _, _ := newHookServer(t, fakeSnapshot{err: snapshot.ErrAlreadyRan})
	resp = post(t, skipped.URL+"/v1/jobs/daily-snapshot", hookToken, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	failed, _, _ := newHookServer(t, fakeSnapshot{err: errors.New("db down")})
	resp = post(t, failed.URL+"/v1/jobs/daily-snapshot", hookToken, "")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
