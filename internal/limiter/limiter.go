// Package limiter answers "may this actor act right now" from counts of past
// events inside trailing time windows.
package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/dareus/dareguard/internal/model"
	"github.com/gofrs/uuid/v5"
)

// Unlimited is reported as limit and remaining for premium accounts.
const Unlimited = 999

// Messages shown to callers when a window is exhausted.
const (
	ReasonRecipientFlood = "Notification limit reached (20/hour)"
	ReasonSenderFlood    = "You've sent too many notifications (30/hour)"
	ReasonVerifyLockout  = "Too many failed attempts. Please wait 1 hour before trying again."
)

// Verdict is the structured answer of every check.
type Verdict struct {
	Allowed   bool
	Premium   bool
	Reason    string
	Limit     int
	Used      int
	Remaining int
}

// UserReader loads the account snapshot a check decides on.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// EventLog counts logged events at or after since. except names an event that
// must not be counted (the one being evaluated); uuid.Nil excludes nothing.
type EventLog interface {
	CountDaresSent(ctx context.Context, from uuid.UUID, since time.Time, except uuid.UUID) (int, error)
	CountNotificationsTo(ctx context.Context, toToken string, since time.Time, except uuid.UUID) (int, error)
	CountNotificationsFrom(ctx context.Context, from uuid.UUID, since time.Time, except uuid.UUID) (int, error)
}

// Policy holds the quota of every check.
type Policy struct {
	DareSend        Window
	NotifyRecipient Window
	NotifySender    Window
	InviteCooldown  time.Duration
	InviteVerify    Window
}

// DefaultPolicy returns the production quotas.
func DefaultPolicy() Policy {
	return Policy{
		DareSend:        Window{Span: 7 * 24 * time.Hour, Limit: 5},
		NotifyRecipient: Window{Span: time.Hour, Limit: 20},
		NotifySender:    Window{Span: time.Hour, Limit: 30},
		InviteCooldown:  24 * time.Hour,
		InviteVerify:    Window{Span: time.Hour, Limit: 5},
	}
}

// RateLimiter runs the quota checks. Checks are read-then-decide and are not
// atomic against concurrent identical requests.
type RateLimiter struct {
	users  UserReader
	log    EventLog
	policy Policy
	now    func() time.Time
}

// Option configures a RateLimiter.
type Option func(*RateLimiter)

// WithPolicy overrides DefaultPolicy.
func WithPolicy(p Policy) Option { return func(l *RateLimiter) { l.policy = p } }

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option { return func(l *RateLimiter) { l.now = now } }

// New constructs a RateLimiter.
func New(users UserReader, log EventLog, opts ...Option) *RateLimiter {
	l := &RateLimiter{users: users, log: log, policy: DefaultPolicy(), now: time.Now}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Policy returns the active quotas.
func (l *RateLimiter) Policy() Policy { return l.policy }

// CheckDareSend decides whether userID may send another dare.
func (l *RateLimiter) CheckDareSend(ctx context.Context, userID uuid.UUID) (Verdict, error) {
	return l.CheckDareSendExcept(ctx, userID, uuid.Nil)
}

// CheckDareSendExcept is CheckDareSend that ignores the dare except.
func (l *RateLimiter) CheckDareSendExcept(ctx context.Context, userID, except uuid.UUID) (Verdict, error) {
	u, err := l.users.GetByID(ctx, userID)
	if err != nil {
		return Verdict{}, err
	}
	now := l.now()
	if u.IsPremium(now) {
		return Verdict{Allowed: true, Premium: true, Limit: Unlimited, Remaining: Unlimited}, nil
	}
	w := l.policy.DareSend
	return w.Check(ctx, now, func(ctx context.Context, since time.Time) (int, error) {
		return l.log.CountDaresSent(ctx, userID, since, except)
	}, fmt.Sprintf("Weekly limit reached (%d dares)", w.Limit))
}

// CheckNotification decides whether a push to toToken may go out. The recipient
// window is checked first and wins when both are exhausted.
func (l *RateLimiter) CheckNotification(ctx context.Context, fromUserID uuid.UUID, toToken string) (Verdict, error) {
	return l.CheckNotificationExcept(ctx, fromUserID, toToken, uuid.Nil)
}

// CheckNotificationExcept is CheckNotification that ignores the job except.
func (l *RateLimiter) CheckNotificationExcept(ctx context.Context, fromUserID uuid.UUID, toToken string, except uuid.UUID) (Verdict, error) {
	now := l.now()
	v, err := l.policy.NotifyRecipient.Check(ctx, now, func(ctx context.Context, since time.Time) (int, error) {
		return l.log.CountNotificationsTo(ctx, toToken, since, except)
	}, ReasonRecipientFlood)
	if err != nil || !v.Allowed || fromUserID == uuid.Nil {
		return v, err
	}
	return l.policy.NotifySender.Check(ctx, now, func(ctx context.Context, since time.Time) (int, error) {
		return l.log.CountNotificationsFrom(ctx, fromUserID, since, except)
	}, ReasonSenderFlood)
}

// CheckInviteGeneration allows one invite code per cooldown period.
func (l *RateLimiter) CheckInviteGeneration(ctx context.Context, userID uuid.UUID) (Verdict, error) {
	u, err := l.users.GetByID(ctx, userID)
	if err != nil {
		return Verdict{}, err
	}
	now := l.now()
	cooldown := l.policy.InviteCooldown
	last := u.LastCodeGeneratedAt
	if !last.IsZero() && last.After(now.Add(-cooldown)) {
		hours := ceilHours(last.Add(cooldown).Sub(now))
		return Verdict{
			Allowed: false,
			Reason:  fmt.Sprintf("You can only generate one invite code per day. Try again in %d hours.", hours),
			Limit:   1,
			Used:    1,
		}, nil
	}
	return Verdict{Allowed: true, Limit: 1, Remaining: 1}, nil
}

// CheckInviteVerify locks verification out after too many recent failures.
func (l *RateLimiter) CheckInviteVerify(ctx context.Context, userID uuid.UUID) (Verdict, error) {
	u, err := l.users.GetByID(ctx, userID)
	if err != nil {
		return Verdict{}, err
	}
	w := l.policy.InviteVerify
	recent := w.Prune(u.FailedInviteAttempts, l.now())
	return w.Decide(len(recent), ReasonVerifyLockout), nil
}
