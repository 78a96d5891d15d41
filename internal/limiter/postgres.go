package limiter

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// PG is a PostgreSQL-backed EventLog counting rows of the dares and
// notifications tables.
type PG struct {
	pool pgxQuerier
}

type pgxQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPGWithQuerier constructs a PostgreSQL-backed event log over a pool or a transaction.
func NewPGWithQuerier(q pgxQuerier) *PG {
	return &PG{pool: q}
}

// CountDaresSent counts dares sent by from at or after since.
func (p *PG) CountDaresSent(ctx context.Context, from uuid.UUID, since time.Time, except uuid.UUID) (int, error) {
	const q = `SELECT count(*) FROM dares WHERE from_user_id=$1 AND sent_at >= $2 AND id <> $3`
	return p.count(ctx, q, from, since, except)
}

// CountNotificationsTo counts jobs addressed to toToken at or after since.
func (p *PG) CountNotificationsTo(ctx context.Context, toToken string, since time.Time, except uuid.UUID) (int, error) {
	const q = `SELECT count(*) FROM notifications WHERE to_token=$1 AND created_at >= $2 AND id <> $3`
	return p.count(ctx, q, toToken, since, except)
}

// CountNotificationsFrom counts jobs enqueued on behalf of from at or after since.
func (p *PG) CountNotificationsFrom(ctx context.Context, from uuid.UUID, since time.Time, except uuid.UUID) (int, error) {
	const q = `SELECT count(*) FROM notifications WHERE from_user_id=$1 AND created_at >= $2 AND id <> $3`
	return p.count(ctx, q, from, since, except)
}

func (p *PG) count(ctx context.Context, q string, args ...any) (int, error) {
	var n int
	if err := p.pool.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
