package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dareus/dareguard/internal/audit"
	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/limiter"
	"github.com/dareus/dareguard/internal/model"
	"github.com/dareus/dareguard/internal/moderation"
	"github.com/dareus/dareguard/internal/repository"
	"github.com/dareus/dareguard/internal/scoring"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// Rejection reasons written on dares refused by the creation handler.
const (
	RejectInappropriate = "inappropriate_content"
	RejectRateLimited   = "rate_limit_exceeded"
)

// DareService validates dares and reacts to their lifecycle.
type DareService interface {
	// Validate moderates text without storing anything.
	Validate(text string, isCustom bool) (moderation.Verdict, error)
	// CheckRateLimit reports the caller's weekly dare quota.
	CheckRateLimit(ctx context.Context, userID uuid.UUID) (limiter.Verdict, error)
	// OnCreated screens a new dare and credits the sender.
	OnCreated(ctx context.Context, d model.Dare) error
	// OnCompleted scores a dare on its pending -> completed edge.
	OnCompleted(ctx context.Context, before, after model.Dare) error
}

type DareServiceImpl struct {
	users  repository.UserRepository
	dares  repository.DareRepository
	mod    *moderation.Moderator
	lim    *limiter.RateLimiter
	points *scoring.Engine
	audit  *audit.Logger
	log    *zap.Logger
	now    func() time.Time
}

// NewDareService constructs DareService with required dependencies.
func NewDareService(
	users repository.UserRepository,
	dares repository.DareRepository,
	mod *moderation.Moderator,
	lim *limiter.RateLimiter,
	points *scoring.Engine,
	auditLog *audit.Logger,
	log *zap.Logger,
) *DareServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &DareServiceImpl{
		users:  users,
		dares:  dares,
		mod:    mod,
		lim:    lim,
		points: points,
		audit:  auditLog,
		log:    log,
		now:    time.Now,
	}
}

// Validate moderates text.
func (s *DareServiceImpl) Validate(text string, isCustom bool) (moderation.Verdict, error) {
	if text == "" {
		return moderation.Verdict{}, errs.New(errs.ErrInvalidArgument, "Dare text required")
	}
	return s.mod.Moderate(text, isCustom), nil
}

// CheckRateLimit reports the weekly quota of userID.
func (s *DareServiceImpl) CheckRateLimit(ctx context.Context, userID uuid.UUID) (limiter.Verdict, error) {
	v, err := s.lim.CheckDareSend(ctx, userID)
	if err != nil {
		return limiter.Verdict{}, userErr("check dare quota", err)
	}
	return v, nil
}

// OnCreated rejects inappropriate or over-quota dares; otherwise it credits the
// sender once, however often the creation event is delivered.
func (s *DareServiceImpl) OnCreated(ctx context.Context, d model.Dare) error {
	if d.Status != model.DarePending {
		return nil
	}
	log := s.log.With(zap.String("dare", d.ID.String()), zap.String("from", d.FromUserID.String()))

	if verdict := s.mod.Moderate(d.Text, d.IsCustom); !verdict.Valid {
		log.Warn("dare failed moderation", zap.Strings("errors", verdict.Errors))
		s.audit.Record(ctx, audit.EventInappropriateContent, d.FromUserID, map[string]any{
			"dareId":   d.ID.String(),
			"dareText": d.Text,
			"errors":   verdict.Errors,
			"category": d.Category,
			"isCustom": d.IsCustom,
		})
		return s.reject(ctx, d.ID, RejectInappropriate, verdict.Errors[0])
	}

	v, err := s.lim.CheckDareSendExcept(ctx, d.FromUserID, d.ID)
	if err != nil {
		return fmt.Errorf("check dare quota: %w", err)
	}
	if !v.Allowed {
		log.Warn("dare over quota", zap.String("reason", v.Reason))
		s.audit.Record(ctx, audit.EventDareRateLimited, d.FromUserID, map[string]any{
			"dareId": d.ID.String(),
			"reason": v.Reason,
			"limit":  v.Limit,
			"used":   v.Used,
		})
		return s.reject(ctx, d.ID, RejectRateLimited, v.Reason)
	}

	now := s.now().UTC()
	claimed, err := s.dares.ClaimSenderCredit(ctx, d.ID, now)
	if err != nil {
		return fmt.Errorf("claim sender credit: %w", err)
	}
	if !claimed {
		return nil
	}
	credit := max(d.Points, 1)
	s.points.Award(ctx, d.FromUserID, credit, fmt.Sprintf("Sent %s dare", d.Category))
	if err := s.users.IncrementDaresSent(ctx, d.FromUserID, now); err != nil {
		log.Error("increment dares sent", zap.Error(err))
	}
	log.Info("sender credited", zap.Int64("points", credit), zap.Int("remaining", v.Remaining))
	return nil
}

// OnCompleted writes the score once and pays the completer.
func (s *DareServiceImpl) OnCompleted(ctx context.Context, _, after model.Dare) error {
	now := s.now().UTC()
	sentAt, completedAt := after.SentAt, after.CompletedAt
	if sentAt.IsZero() {
		sentAt = now
	}
	if completedAt.IsZero() {
		completedAt = now
	}
	score := scoring.BonusFor(after.Points, sentAt, completedAt)

	err := s.dares.RecordScore(ctx, after.ID, score, now)
	if errors.Is(err, errs.ErrVersionConflict) {
		s.log.Info("dare already scored", zap.String("dare", after.ID.String()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("record score: %w", err)
	}

	reason := fmt.Sprintf("Completed %s dare in %d days", after.Category, score.DaysElapsed)
	s.points.Award(ctx, after.ToUserID, score.TotalPoints, reason)
	if err := s.users.IncrementTotalDares(ctx, after.ToUserID); err != nil {
		s.log.Error("increment total dares", zap.String("user", after.ToUserID.String()), zap.Error(err))
	}
	s.log.Info("dare scored",
		zap.String("dare", after.ID.String()),
		zap.Int64("base", score.BasePoints),
		zap.Int64("bonus", score.BonusPoints),
	)
	return nil
}

func (s *DareServiceImpl) reject(ctx context.Context, id uuid.UUID, reason, message string) error {
	err := s.dares.Reject(ctx, id, reason, message, s.now().UTC())
	if errors.Is(err, errs.ErrVersionConflict) {
		return nil
	}
	return err
}
