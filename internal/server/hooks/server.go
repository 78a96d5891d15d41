// Package hooks serves the HTTP entry points used by the scheduler and by
// storage triggers that cannot reach Postgres LISTEN.
package hooks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	pkgcrypto "github.com/dareus/dareguard/internal/crypto"
	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/events"
	"github.com/dareus/dareguard/internal/jobs/snapshot"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// maxEnvelopeBytes bounds a hook request body.
const maxEnvelopeBytes = 4 << 10

// Ingester handles one change notice.
type Ingester interface {
	Ingest(ctx context.Context, env events.Envelope) error
}

// SnapshotRunner runs the daily snapshot job.
type SnapshotRunner interface {
	Run(ctx context.Context) (snapshot.Result, error)
}

// Server holds the hook handlers.
type Server struct {
	ingest Ingester
	snap   SnapshotRunner
	token  string
	log    *zap.Logger
}

// New constructs a Server. Requests must carry "Authorization: Bearer <token>".
func New(ingest Ingester, snap SnapshotRunner, token string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{ingest: ingest, snap: snap, token: token, log: log}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.requestLog)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Use(s.auth)
		r.Post("/events", s.handleEvent)
		r.Post("/jobs/daily-snapshot", s.handleSnapshot)
	})
	return r
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxEnvelopeBytes))
	if err != nil {
		respondError(w, "Unreadable body", http.StatusBadRequest)
		return
	}
	env, err := events.DecodeEnvelope(body)
	if err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}
	err = s.ingest.Ingest(r.Context(), env)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		respondError(w, "Entity not found", http.StatusNotFound)
	case err != nil:
		s.log.Error("hook event", zap.String("kind", string(env.Kind)), zap.String("id", env.ID.String()), zap.Error(err))
		respondError(w, "Event handling failed", http.StatusInternalServerError)
	default:
		respondJSON(w, http.StatusOK, map[string]string{"status": "processed"})
	}
}

type snapshotResponse struct {
	Success   bool   `json:"success"`
	Skipped   bool   `json:"skipped,omitempty"`
	Day       string `json:"day"`
	MonthCode string `json:"monthCode"`
	Snapshots int    `json:"snapshots"`
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	res, err := s.snap.Run(r.Context())
	if errors.Is(err, snapshot.ErrAlreadyRan) {
		respondJSON(w, http.StatusOK, snapshotResponse{Success: true, Skipped: true, Day: res.Day, MonthCode: res.MonthCode})
		return
	}
	if err != nil {
		s.log.Error("daily snapshot", zap.Error(err))
		respondError(w, "Snapshot failed", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, snapshotResponse{Success: true, Day: res.Day, MonthCode: res.MonthCode, Snapshots: res.Added})
}

// auth checks the shared hook secret.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		tok, ok := strings.CutPrefix(h, "Bearer ")
		if !ok || s.token == "" || !pkgcrypto.EqualToken(strings.TrimSpace(tok), s.token) {
			respondError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("http",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("dur", time.Since(start)),
			zap.String("request_id", chimw.GetReqID(r.Context())),
		)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, errorResponse{Error: message})
}

func respondJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
