package service

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/dareus/dareguard/internal/limiter"
	"github.com/dareus/dareguard/internal/model"
	"github.com/dareus/dareguard/internal/push"
	"github.com/dareus/dareguard/internal/repository"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// Push payload bounds, in characters.
const (
	maxTitleLen = 100
	maxBodyLen  = 500
)

// Enqueuer queues push jobs on behalf of other services. Queueing is
// best-effort: failures are logged and never surface to the caller.
type Enqueuer struct {
	notes repository.NotificationRepository
	log   *zap.Logger
	now   func() time.Time
}

// NewEnqueuer constructs an Enqueuer.
func NewEnqueuer(notes repository.NotificationRepository, log *zap.Logger) *Enqueuer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Enqueuer{notes: notes, log: log, now: time.Now}
}

// Enqueue stores n with a fresh ID and timestamp. Jobs without a token are dropped.
func (q *Enqueuer) Enqueue(ctx context.Context, n model.Notification) {
	if q == nil || n.ToToken == "" {
		return
	}
	id, err := uuid.NewV4()
	if err != nil {
		q.log.Error("notification id", zap.Error(err))
		return
	}
	n.ID = id
	n.Timestamp = q.now().UTC()
	if err := q.notes.Enqueue(ctx, &n); err != nil {
		q.log.Warn("enqueue notification failed", zap.String("type", n.Type), zap.Error(err))
	}
}

// Dispatcher delivers queued push jobs and records the outcome on the job.
type Dispatcher struct {
	notes  repository.NotificationRepository
	lim    *limiter.RateLimiter
	sender push.Sender
	log    *zap.Logger
	now    func() time.Time
}

// NewDispatcher constructs a Dispatcher.
func NewDispatcher(notes repository.NotificationRepository, lim *limiter.RateLimiter, sender push.Sender, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{notes: notes, lim: lim, sender: sender, log: log, now: time.Now}
}

// OnCreated handles a newly queued job.
func (d *Dispatcher) OnCreated(ctx context.Context, n model.Notification) error {
	if n.Sent {
		return nil
	}
	now := d.now().UTC()
	if n.ToToken == "" || n.Title == "" || n.Body == "" {
		d.log.Warn("notification missing required fields", zap.String("id", n.ID.String()))
		return d.notes.MarkFailed(ctx, n.ID, "Missing required fields", "", now)
	}

	v, err := d.lim.CheckNotificationExcept(ctx, n.FromUserID, n.ToToken, n.ID)
	if err != nil {
		return err
	}
	if !v.Allowed {
		d.log.Warn("notification blocked", zap.String("id", n.ID.String()), zap.String("reason", v.Reason))
		return d.notes.MarkBlocked(ctx, n.ID, v.Reason, now)
	}
	if utf8.RuneCountInString(n.Body) > maxBodyLen {
		return d.notes.MarkFailed(ctx, n.ID, "Body too long (max 500 chars)", "", now)
	}

	msgID, err := d.sender.Send(ctx, push.Message{
		Token:     n.ToToken,
		Title:     truncate(n.Title, maxTitleLen),
		Body:      truncate(n.Body, maxBodyLen),
		Type:      n.Type,
		RequestID: requestID(n.RequestID),
	})
	if err != nil {
		code := "unknown"
		var de *push.DeliveryError
		if errors.As(err, &de) {
			code = de.Code
		}
		d.log.Warn("push failed", zap.String("id", n.ID.String()), zap.String("code", code), zap.Error(err))
		return d.notes.MarkFailed(ctx, n.ID, err.Error(), code, d.now().UTC())
	}
	d.log.Info("push sent", zap.String("id", n.ID.String()), zap.String("message_id", msgID))
	return d.notes.MarkSent(ctx, n.ID, msgID, d.now().UTC())
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func requestID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
