package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dareus/dareguard/internal/audit"
	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/policy"
	"github.com/dareus/dareguard/internal/repository"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// BadgeResult reports the outcome of AwardBadge.
type BadgeResult struct {
	Awarded bool
	Points  int64
	Message string
}

// Engine mutates the point ledger.
type Engine struct {
	users   repository.UserRepository
	catalog *policy.Catalog
	audit   *audit.Logger
	log     *zap.Logger
	now     func() time.Time
}

// NewEngine constructs an Engine.
func NewEngine(users repository.UserRepository, catalog *policy.Catalog, auditLog *audit.Logger, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{users: users, catalog: catalog, audit: auditLog, log: log, now: time.Now}
}

// SetClock overrides time.Now.
func (e *Engine) SetClock(now func() time.Time) { e.now = now }

// Award adds delta to the account. It reports false instead of failing when the
// account is missing or the write fails; callers check balances before debits.
func (e *Engine) Award(ctx context.Context, userID uuid.UUID, delta int64, reason string) bool {
	if err := e.users.AddPoints(ctx, userID, delta, reason, e.now()); err != nil {
		lvl := zap.ErrorLevel
		if errors.Is(err, errs.ErrNotFound) {
			lvl = zap.WarnLevel
		}
		e.log.Log(lvl, "award points",
			zap.String("user", userID.String()),
			zap.Int64("delta", delta),
			zap.String("reason", reason),
			zap.Error(err),
		)
		return false
	}
	return true
}

// Spend debits cost when the balance covers it and returns the new balance.
func (e *Engine) Spend(ctx context.Context, userID uuid.UUID, cost int64, reason string) (int64, error) {
	return e.users.SpendPoints(ctx, userID, cost, reason, e.now())
}

// AwardBadge unlocks a catalog badge once and pays its bonus.
func (e *Engine) AwardBadge(ctx context.Context, userID uuid.UUID, badgeID string) (BadgeResult, error) {
	if !e.catalog.IsBadge(badgeID) {
		e.audit.Record(ctx, audit.EventBadgeFraud, userID, map[string]any{
			"badgeId":        badgeID,
			"catalogVersion": e.catalog.Version,
		})
		return BadgeResult{}, errs.New(errs.ErrInvalidArgument, "Invalid badge ID")
	}
	if _, err := e.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return BadgeResult{}, errs.New(errs.ErrNotFound, "User not found")
		}
		return BadgeResult{}, fmt.Errorf("load user: %w", err)
	}
	added, err := e.users.AddBadge(ctx, userID, badgeID)
	if err != nil {
		return BadgeResult{}, fmt.Errorf("add badge: %w", err)
	}
	if !added {
		return BadgeResult{Message: "Badge already unlocked"}, nil
	}
	bonus := e.catalog.Badges.BonusPoints
	if !e.Award(ctx, userID, bonus, "Unlocked badge: "+badgeID) {
		return BadgeResult{}, fmt.Errorf("badge %s unlocked but bonus not credited", badgeID)
	}
	return BadgeResult{
		Awarded: true,
		Points:  bonus,
		Message: fmt.Sprintf("Badge unlocked! +%d points", bonus),
	}, nil
}
