package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dareus/dareguard/internal/audit"
	pkgcrypto "github.com/dareus/dareguard/internal/crypto"
	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/limiter"
	"github.com/dareus/dareguard/internal/repository"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// maxCodeAttempts bounds the generate-and-claim loop.
const maxCodeAttempts = 10

// VerifyResult is a successful invite code lookup.
type VerifyResult struct {
	PartnerID   uuid.UUID
	PartnerName string
	Message     string
}

// InviteService issues and redeems invite codes.
type InviteService interface {
	// Generate issues a fresh code for userID, at most once per cooldown.
	Generate(ctx context.Context, userID uuid.UUID) (code, message string, err error)
	// Verify resolves code to its holder, locking out after repeated misses.
	Verify(ctx context.Context, userID uuid.UUID, code string) (VerifyResult, error)
}

type InviteServiceImpl struct {
	users   repository.UserRepository
	lim     *limiter.RateLimiter
	audit   *audit.Logger
	log     *zap.Logger
	now     func() time.Time
	newCode func() (string, error)
}

// NewInviteService constructs InviteService with required dependencies.
func NewInviteService(users repository.UserRepository, lim *limiter.RateLimiter, auditLog *audit.Logger, log *zap.Logger) *InviteServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &InviteServiceImpl{
		users:   users,
		lim:     lim,
		audit:   auditLog,
		log:     log,
		now:     time.Now,
		newCode: pkgcrypto.NewInviteCode,
	}
}

// Generate issues a unique code. A code that is already held, or that another
// request claims between the check and the write, counts as a collision.
func (s *InviteServiceImpl) Generate(ctx context.Context, userID uuid.UUID) (string, string, error) {
	v, err := s.lim.CheckInviteGeneration(ctx, userID)
	if err != nil {
		return "", "", userErr("check invite generation", err)
	}
	if !v.Allowed {
		return "", "", errs.New(errs.ErrRateLimited, v.Reason)
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return "", "", fmt.Errorf("generate code: %w", err)
		}
		taken, err := s.users.InviteCodeTaken(ctx, code)
		if err != nil {
			return "", "", fmt.Errorf("lookup code: %w", err)
		}
		if taken {
			continue
		}
		err = s.users.SetInviteCode(ctx, userID, code, s.now())
		if errors.Is(err, errs.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return "", "", userErr("store code", err)
		}
		s.log.Info("invite code generated", zap.String("user", userID.String()))
		return code, "Invite code generated successfully!", nil
	}
	return "", "", errs.New(errs.ErrInternal, "Failed to generate unique code")
}

// Verify looks up the holder of code on behalf of userID.
func (s *InviteServiceImpl) Verify(ctx context.Context, userID uuid.UUID, code string) (VerifyResult, error) {
	if utf8.RuneCountInString(code) != pkgcrypto.InviteCodeLen {
		return VerifyResult{}, errs.New(errs.ErrInvalidArgument, "Invalid invite code format")
	}

	v, err := s.lim.CheckInviteVerify(ctx, userID)
	if err != nil {
		return VerifyResult{}, userErr("check invite verify", err)
	}
	if !v.Allowed {
		s.audit.Record(ctx, audit.EventInviteBruteForce, userID, map[string]any{
			"attemptedCode":  code,
			"failedAttempts": v.Used,
		})
		return VerifyResult{}, errs.New(errs.ErrRateLimited, v.Reason)
	}

	partner, err := s.users.GetByInviteCode(ctx, strings.ToUpper(code))
	if errors.Is(err, errs.ErrNotFound) {
		now := s.now()
		window := s.lim.Policy().InviteVerify
		if err := s.users.AppendFailedInviteAttempt(ctx, userID, now, window.Since(now)); err != nil {
			s.log.Error("record failed invite attempt", zap.String("user", userID.String()), zap.Error(err))
		}
		s.audit.Record(ctx, audit.EventInviteNotFound, userID, map[string]any{"attemptedCode": code})
		return VerifyResult{}, errs.New(errs.ErrNotFound, "Invite code not found. Please check the code and try again.")
	}
	if err != nil {
		return VerifyResult{}, fmt.Errorf("lookup code: %w", err)
	}
	if partner.ID == userID {
		return VerifyResult{}, errs.New(errs.ErrInvalidArgument, "You cannot link with yourself!")
	}

	if err := s.users.ClearFailedInviteAttempts(ctx, userID); err != nil {
		return VerifyResult{}, userErr("clear failed attempts", err)
	}
	name := partner.DisplayName("Partner")
	return VerifyResult{
		PartnerID:   partner.ID,
		PartnerName: name,
		Message:     fmt.Sprintf("Found %s! Ready to link.", name),
	}, nil
}
