package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/repository"
	"github.com/dareus/dareguard/internal/scoring"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// RevealCost is the point price of revealing the partner's prize.
const RevealCost = 25

// RevealResult is a paid reveal.
type RevealResult struct {
	PointsDeducted int64
	NewBalance     int64
}

// CompetitionService runs paid actions on monthly competitions.
type CompetitionService interface {
	// RevealPrize charges userID and reveals their partner's prize.
	RevealPrize(ctx context.Context, userID, competitionID uuid.UUID) (RevealResult, error)
}

type CompetitionServiceImpl struct {
	users  repository.UserRepository
	comps  repository.CompetitionRepository
	points *scoring.Engine
	log    *zap.Logger
}

// NewCompetitionService constructs CompetitionService with required dependencies.
func NewCompetitionService(
	users repository.UserRepository,
	comps repository.CompetitionRepository,
	points *scoring.Engine,
	log *zap.Logger,
) *CompetitionServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &CompetitionServiceImpl{users: users, comps: comps, points: points, log: log}
}

// RevealPrize debits RevealCost and flags the partner's side as revealed.
// The debit is conditional on the balance, so concurrent reveals cannot overdraw.
func (s *CompetitionServiceImpl) RevealPrize(ctx context.Context, userID, competitionID uuid.UUID) (RevealResult, error) {
	if competitionID == uuid.Nil {
		return RevealResult{}, errs.New(errs.ErrInvalidArgument, "Competition ID required")
	}
	c, err := s.comps.Get(ctx, competitionID)
	if errors.Is(err, errs.ErrNotFound) {
		return RevealResult{}, errs.New(errs.ErrNotFound, "Competition not found")
	}
	if err != nil {
		return RevealResult{}, fmt.Errorf("load competition: %w", err)
	}
	isUser1 := c.User1ID == userID
	if !isUser1 && c.User2ID != userID {
		return RevealResult{}, errs.New(errs.ErrPermissionDenied, "You are not part of this competition")
	}

	balance, err := s.points.Spend(ctx, userID, RevealCost, "Revealed partner prize")
	if errors.Is(err, errs.ErrFailedPrecondition) {
		have := int64(0)
		if u, uerr := s.users.GetByID(ctx, userID); uerr == nil {
			have = u.Points
		}
		return RevealResult{}, errs.Newf(errs.ErrFailedPrecondition, "Insufficient points. Need %d, have %d", RevealCost, have)
	}
	if err != nil {
		return RevealResult{}, userErr("spend points", err)
	}

	// The caller reveals the other participant's prize.
	if err := s.comps.MarkRevealed(ctx, competitionID, !isUser1); err != nil {
		s.points.Award(ctx, userID, RevealCost, "Refund: prize reveal failed")
		return RevealResult{}, fmt.Errorf("mark revealed: %w", err)
	}
	s.log.Info("prize revealed", zap.String("user", userID.String()), zap.String("competition", competitionID.String()))
	return RevealResult{PointsDeducted: RevealCost, NewBalance: balance}, nil
}
