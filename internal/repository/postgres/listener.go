package postgres

import (
	"context"
	"time"

	"github.com/dareus/dareguard/internal/events"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// EventChannel is the NOTIFY channel fed by the dares and notifications triggers.
const EventChannel = "dareguard_events"

// Rows left unhandled while no listener was attached are replayed from the
// tables after each LISTEN. Unsent notifications older than backlogWindow
// are not pushed late.
const (
	backlogLimit  = 1000
	backlogWindow = 24 * time.Hour
)

const backlogQuery = `
(SELECT 'dare.created', id, '' FROM dares
  WHERE status = 'pending' AND sender_credited_at IS NULL
  ORDER BY sent_at LIMIT $1)
UNION ALL
(SELECT 'dare.updated', id, 'pending' FROM dares
  WHERE status = 'completed' AND scored_at IS NULL
  ORDER BY completed_at LIMIT $1)
UNION ALL
(SELECT 'notification.created', id, '' FROM notifications
  WHERE NOT sent AND NOT blocked AND error IS NULL AND created_at > $2
  ORDER BY created_at LIMIT $1)`

type notifyConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
}

type pooledConn struct{ *pgxpool.Conn }

func (c pooledConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	return c.Conn.Conn().WaitForNotification(ctx)
}

// Listener holds one connection in LISTEN mode and forwards decoded
// envelopes. It reconnects after connection loss and replays the backlog
// missed while disconnected.
type Listener struct {
	acquire func(ctx context.Context) (notifyConn, func(), error)
	backoff time.Duration
	now     func() time.Time
	log     *zap.Logger
}

// NewListener constructs a listener over pool.
func NewListener(pool *pgxpool.Pool, log *zap.Logger) *Listener {
	return newListener(func(ctx context.Context) (notifyConn, func(), error) {
		c, err := pool.Acquire(ctx)
		if err != nil {
			return nil, nil, err
		}
		return pooledConn{c}, c.Release, nil
	}, log)
}

func newListener(acquire func(ctx context.Context) (notifyConn, func(), error), log *zap.Logger) *Listener {
	if log == nil {
		log = zap.NewNop()
	}
	return &Listener{acquire: acquire, backoff: 2 * time.Second, now: time.Now, log: log}
}

// Run forwards envelopes to out until ctx is done.
func (l *Listener) Run(ctx context.Context, out chan<- events.Envelope) error {
	for {
		err := l.listen(ctx, out)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		l.log.Warn("event listener disconnected", zap.Error(err), zap.Duration("retry_in", l.backoff))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.backoff):
		}
	}
}

func (l *Listener) listen(ctx context.Context, out chan<- events.Envelope) error {
	conn, release, err := l.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if _, err := conn.Exec(ctx, "LISTEN "+EventChannel); err != nil {
		return err
	}
	l.log.Info("listening for events", zap.String("channel", EventChannel))

	// LISTEN is active before the sweep, so a row changed in between is both
	// swept and notified. The notice for a swept row is dropped once.
	swept, err := l.backlog(ctx, conn)
	if err != nil {
		return err
	}
	if len(swept) > 0 {
		l.log.Info("replaying event backlog", zap.Int("events", len(swept)))
	}
	seen := make(map[backlogKey]struct{}, len(swept))
	for _, env := range swept {
		seen[backlogKey{env.Kind, env.ID}] = struct{}{}
		if err := send(ctx, out, env); err != nil {
			return err
		}
	}

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		env, err := events.DecodeEnvelope([]byte(n.Payload))
		if err != nil {
			l.log.Warn("drop malformed event", zap.String("payload", n.Payload), zap.Error(err))
			continue
		}
		k := backlogKey{env.Kind, env.ID}
		if _, dup := seen[k]; dup {
			delete(seen, k)
			continue
		}
		if err := send(ctx, out, env); err != nil {
			return err
		}
	}
}

type backlogKey struct {
	kind events.Kind
	id   uuid.UUID
}

// backlog lists the dares and notifications whose handler has not run yet.
func (l *Listener) backlog(ctx context.Context, conn notifyConn) ([]events.Envelope, error) {
	rows, err := conn.Query(ctx, backlogQuery, backlogLimit, l.now().Add(-backlogWindow))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var envs []events.Envelope
	for rows.Next() {
		var (
			kind string
			env  events.Envelope
		)
		if err := rows.Scan(&kind, &env.ID, &env.BeforeStatus); err != nil {
			return nil, err
		}
		env.Kind = events.Kind(kind)
		envs = append(envs, env)
	}
	return envs, rows.Err()
}

func send(ctx context.Context, out chan<- events.Envelope, env events.Envelope) error {
	select {
	case out <- env:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
