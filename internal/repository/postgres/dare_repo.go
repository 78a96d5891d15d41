package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
)

// DareRepo implements DareRepository using PostgreSQL.
type DareRepo struct{ db *DB }

// NewDareRepo constructs a dare repository.
func NewDareRepo(db *DB) *DareRepo { return &DareRepo{db: db} }

// Create inserts a pending dare.
func (r *DareRepo) Create(ctx context.Context, d *model.Dare) error {
	const q = `
INSERT INTO dares (id, from_user_id, to_user_id, text, category, is_custom, points, status, sent_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	status := d.Status
	if status == "" {
		status = model.DarePending
	}
	_, err := r.db.Pool.Exec(ctx, q, d.ID, d.FromUserID, d.ToUserID, d.Text, d.Category, d.IsCustom, d.Points, string(status), d.SentAt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Get selects a dare by ID.
func (r *DareRepo) Get(ctx context.Context, id uuid.UUID) (*model.Dare, error) {
	const q = `
SELECT id, from_user_id, to_user_id, text, category, is_custom, points, status, sent_at, completed_at,
       earned_points, bonus_points, base_points, completion_day, scored_at,
       rejection_reason, rejection_message, rejected_at
FROM dares WHERE id=$1`
	var (
		d                   model.Dare
		status              string
		earned, bonus, base *int64
		day                 *int32
		reason, message     *string
	)
	var completedAt, scoredAt, rejectedAt *time.Time
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(
		&d.ID, &d.FromUserID, &d.ToUserID, &d.Text, &d.Category, &d.IsCustom, &d.Points, &status, &d.SentAt, &completedAt,
		&earned, &bonus, &base, &day, &scoredAt,
		&reason, &message, &rejectedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	d.Status = model.DareStatus(status)
	d.CompletedAt = timeOrZero(completedAt)
	if earned != nil {
		d.EarnedPoints = *earned
	}
	if bonus != nil {
		d.BonusPoints = *bonus
	}
	if base != nil {
		d.BasePoints = *base
	}
	if day != nil {
		d.CompletionDay = int(*day)
	}
	d.ScoredAt = timeOrZero(scoredAt)
	d.RejectionReason = stringOrEmpty(reason)
	d.RejectionMessage = stringOrEmpty(message)
	d.RejectedAt = timeOrZero(rejectedAt)
	return &d, nil
}

// Reject moves a pending dare to rejected.
func (r *DareRepo) Reject(ctx context.Context, id uuid.UUID, reason, message string, at time.Time) error {
	const q = `
UPDATE dares
SET status='rejected', rejection_reason=$2, rejection_message=$3, rejected_at=$4
WHERE id=$1 AND status='pending'`
	return r.conditional(ctx, id, q, id, reason, message, at)
}

// RecordScore writes the scoring fields once.
func (r *DareRepo) RecordScore(ctx context.Context, id uuid.UUID, s model.Score, at time.Time) error {
	const q = `
UPDATE dares
SET earned_points=$2, bonus_points=$3, base_points=$4, completion_day=$5, scored_at=$6
WHERE id=$1 AND status='completed' AND scored_at IS NULL`
	return r.conditional(ctx, id, q, id, s.TotalPoints, s.BonusPoints, s.BasePoints, int32(s.DaysElapsed), at)
}

// ClaimSenderCredit stamps sender_credited_at once.
func (r *DareRepo) ClaimSenderCredit(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	const q = `UPDATE dares SET sender_credited_at=$2 WHERE id=$1 AND sender_credited_at IS NULL`
	err := r.conditional(ctx, id, q, id, at)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errs.ErrVersionConflict):
		return false, nil
	default:
		return false, err
	}
}

// conditional runs a guarded update and tells a missing row apart from a failed guard.
func (r *DareRepo) conditional(ctx context.Context, id uuid.UUID, q string, args ...any) error {
	tag, err := r.db.Pool.Exec(ctx, q, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	var exists bool
	if err := r.db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM dares WHERE id=$1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return errs.ErrNotFound
	}
	return errs.ErrVersionConflict
}
