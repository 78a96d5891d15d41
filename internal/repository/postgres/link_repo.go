package postgres

import (
	"context"
	"time"

	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// LinkRepo implements LinkRequestRepository using PostgreSQL.
type LinkRepo struct{ db *DB }

// NewLinkRepo constructs a link request repository.
func NewLinkRepo(db *DB) *LinkRepo { return &LinkRepo{db: db} }

// Create inserts a pending request. The partial unique index on pending
// (from_user_id, to_user_id) rejects a second pending request for the pair.
func (r *LinkRepo) Create(ctx context.Context, req *model.LinkRequest) error {
	const q = `
INSERT INTO link_requests (id, from_user_id, to_user_id, from_user_name, to_user_name, status, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, 'pending', $6, $7)`
	_, err := r.db.Pool.Exec(ctx, q, req.ID, req.FromUserID, req.ToUserID, req.FromUserName, req.ToUserName, req.CreatedAt, req.ExpiresAt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Get selects a request by ID.
func (r *LinkRepo) Get(ctx context.Context, id uuid.UUID) (*model.LinkRequest, error) {
	const q = `
SELECT id, from_user_id, to_user_id, from_user_name, to_user_name, status, created_at, expires_at, resolved_at
FROM link_requests WHERE id=$1`
	var (
		l          model.LinkRequest
		status     string
		resolvedAt *time.Time
	)
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(
		&l.ID, &l.FromUserID, &l.ToUserID, &l.FromUserName, &l.ToUserName, &status, &l.CreatedAt, &l.ExpiresAt, &resolvedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	l.Status = model.LinkStatus(status)
	l.ResolvedAt = timeOrZero(resolvedAt)
	return &l, nil
}

// HasPending reports whether from has a pending request to to.
func (r *LinkRepo) HasPending(ctx context.Context, from, to uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM link_requests WHERE from_user_id=$1 AND to_user_id=$2 AND status='pending')`
	var ok bool
	err := r.db.Pool.QueryRow(ctx, q, from, to).Scan(&ok)
	return ok, err
}

// Resolve moves a pending request to status.
func (r *LinkRepo) Resolve(ctx context.Context, id uuid.UUID, status model.LinkStatus, at time.Time) error {
	const q = `UPDATE link_requests SET status=$2, resolved_at=$3 WHERE id=$1 AND status='pending'`
	tag, err := r.db.Pool.Exec(ctx, q, id, string(status), at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
		return errs.ErrVersionConflict
	}
	return nil
}

// Accept links both accounts. The request row and both user rows are locked
// (users in id order) before the preconditions are re-checked.
func (r *LinkRepo) Accept(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		const selReq = `SELECT from_user_id, to_user_id, status FROM link_requests WHERE id=$1 FOR UPDATE`
		const selUsers = `SELECT id, partner_id FROM users WHERE id IN ($1, $2) ORDER BY id FOR UPDATE`
		const link = `
UPDATE users
SET partner_id = CASE WHEN id=$1 THEN $2::uuid ELSE $1::uuid END, partner_linked_at=$3
WHERE id IN ($1, $2)`
		const accept = `UPDATE link_requests SET status='accepted', resolved_at=$2 WHERE id=$1`

		var from, to uuid.UUID
		var status string
		if err := tx.QueryRow(ctx, selReq, id).Scan(&from, &to, &status); err != nil {
			return notFound(err)
		}
		if model.LinkStatus(status) != model.LinkPending {
			return errs.ErrVersionConflict
		}

		rows, err := tx.Query(ctx, selUsers, from, to)
		if err != nil {
			return err
		}
		found, linked := 0, false
		for rows.Next() {
			var uid uuid.UUID
			var partner uuid.NullUUID
			if err := rows.Scan(&uid, &partner); err != nil {
				rows.Close()
				return err
			}
			found++
			linked = linked || partner.Valid
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		if found < 2 {
			return errs.ErrNotFound
		}
		if linked {
			return errs.ErrAlreadyLinked
		}

		if _, err := tx.Exec(ctx, link, from, to, at); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, accept, id, at); err != nil {
			return err
		}
		return nil
	})
}
