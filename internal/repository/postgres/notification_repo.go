package postgres

import (
	"context"
	"time"

	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
)

// NotificationRepo implements NotificationRepository using PostgreSQL.
type NotificationRepo struct{ db *DB }

// NewNotificationRepo constructs a notification repository.
func NewNotificationRepo(db *DB) *NotificationRepo { return &NotificationRepo{db: db} }

// Enqueue inserts a job; the insert trigger announces it on the event channel.
func (r *NotificationRepo) Enqueue(ctx context.Context, n *model.Notification) error {
	const q = `
INSERT INTO notifications (id, to_token, from_user_id, title, body, type, request_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Pool.Exec(ctx, q, n.ID, n.ToToken, nullUUID(n.FromUserID), n.Title, n.Body, n.Type, nullUUID(n.RequestID), n.Timestamp)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Get selects a job by ID.
func (r *NotificationRepo) Get(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	const q = `
SELECT id, to_token, from_user_id, title, body, type, request_id, created_at,
       sent, sent_at, message_id, blocked, block_reason, error, error_code
FROM notifications WHERE id=$1`
	var (
		n                              model.Notification
		from, request                  uuid.NullUUID
		sentAt                         *time.Time
		msgID, reason, errMsg, errCode *string
	)
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(
		&n.ID, &n.ToToken, &from, &n.Title, &n.Body, &n.Type, &request, &n.Timestamp,
		&n.Sent, &sentAt, &msgID, &n.Blocked, &reason, &errMsg, &errCode,
	)
	if err != nil {
		return nil, notFound(err)
	}
	if from.Valid {
		n.FromUserID = from.UUID
	}
	if request.Valid {
		n.RequestID = request.UUID
	}
	n.SentAt = timeOrZero(sentAt)
	n.MessageID = stringOrEmpty(msgID)
	n.BlockReason = stringOrEmpty(reason)
	n.Error = stringOrEmpty(errMsg)
	n.ErrorCode = stringOrEmpty(errCode)
	return &n, nil
}

// MarkSent records a delivery.
func (r *NotificationRepo) MarkSent(ctx context.Context, id uuid.UUID, messageID string, at time.Time) error {
	const q = `UPDATE notifications SET sent=true, sent_at=$2, message_id=$3, updated_at=$2 WHERE id=$1`
	return r.exec(ctx, q, id, at, messageID)
}

// MarkBlocked records a rate-limit block.
func (r *NotificationRepo) MarkBlocked(ctx context.Context, id uuid.UUID, reason string, at time.Time) error {
	const q = `UPDATE notifications SET blocked=true, block_reason=$2, updated_at=$3 WHERE id=$1`
	return r.exec(ctx, q, id, reason, at)
}

// MarkFailed records a validation or delivery failure.
func (r *NotificationRepo) MarkFailed(ctx context.Context, id uuid.UUID, msg, code string, at time.Time) error {
	const q = `UPDATE notifications SET error=$2, error_code=$3, updated_at=$4 WHERE id=$1`
	return r.exec(ctx, q, id, msg, nullString(code), at)
}

func (r *NotificationRepo) exec(ctx context.Context, q string, args ...any) error {
	tag, err := r.db.Pool.Exec(ctx, q, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
