// Package audit records security and fraud signals. Writes are best-effort:
// a failing sink is logged and never fails the operation being audited.
package audit

import (
	"context"
	"time"

	"github.com/dareus/dareguard/internal/model"
	"github.com/dareus/dareguard/internal/repository"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// Event types.
const (
	EventInappropriateContent = "inappropriate_content_detected"
	EventDareRateLimited      = "dare_rate_limit_exceeded"
	EventInviteBruteForce     = "invite_code_brute_force_attempt"
	EventInviteNotFound       = "invite_code_not_found"
	EventBadgeFraud           = "badge_fraud_attempt"
	EventPurchaseVerified     = "premium_purchase_verified"
)

// Logger appends events to a sink.
type Logger struct {
	sink repository.AuditSink
	log  *zap.Logger
	now  func() time.Time
}

// New constructs a Logger. A nil log discards sink failures.
func New(sink repository.AuditSink, log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{sink: sink, log: log, now: time.Now}
}

// Record appends one event. A nil Logger is a no-op.
func (l *Logger) Record(ctx context.Context, eventType string, userID uuid.UUID, details map[string]any) {
	if l == nil || l.sink == nil {
		return
	}
	e := model.AuditEvent{
		EventType: eventType,
		UserID:    userID,
		Details:   details,
		Timestamp: l.now().UTC(),
	}
	if err := l.sink.Append(ctx, e); err != nil {
		l.log.Warn("audit append failed",
			zap.String("event", eventType),
			zap.String("user", userID.String()),
			zap.Error(err),
		)
	}
}
