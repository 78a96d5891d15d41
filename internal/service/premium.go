package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dareus/dareguard/internal/audit"
	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/model"
	"github.com/dareus/dareguard/internal/repository"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// ReceiptState is the store's view of a purchase.
type ReceiptState int

const (
	ReceiptPurchased ReceiptState = iota
	ReceiptCancelled
	ReceiptInvalid
)

// ErrVerifierAuth is returned by a ReceiptVerifier whose store credentials were refused.
var ErrVerifierAuth = errors.New("receipt verifier authentication failed")

// ReceiptVerifier checks a purchase token with the app store.
type ReceiptVerifier interface {
	Verify(ctx context.Context, packageName, productID, token string) (ReceiptState, error)
}

// StaticReceiptVerifier reports the same state for every receipt. It backs dev mode.
type StaticReceiptVerifier struct{ State ReceiptState }

// Verify returns v.State.
func (v StaticReceiptVerifier) Verify(context.Context, string, string, string) (ReceiptState, error) {
	return v.State, nil
}

// PremiumStatus is the entitlement of an account at a point in time.
type PremiumStatus struct {
	IsPremium     bool
	Tier          model.PremiumTier
	ExpiresAt     time.Time
	DaysRemaining int
	Expired       bool
	Message       string
}

// PurchaseResult is a granted entitlement.
type PurchaseResult struct {
	Tier      model.PremiumTier
	ExpiresAt time.Time
	Message   string
}

// PremiumService reports and grants premium entitlements.
type PremiumService interface {
	// Status reports the entitlement, downgrading an expired one.
	Status(ctx context.Context, userID uuid.UUID) (PremiumStatus, error)
	// VerifyPurchase checks a store receipt and grants the matching tier.
	VerifyPurchase(ctx context.Context, userID uuid.UUID, token, productID, packageName string) (PurchaseResult, error)
}

type PremiumServiceImpl struct {
	users     repository.UserRepository
	purchases repository.PurchaseRepository
	verifier  ReceiptVerifier
	audit     *audit.Logger
	log       *zap.Logger
	now       func() time.Time
}

// NewPremiumService constructs PremiumService. A nil verifier disables VerifyPurchase.
func NewPremiumService(
	users repository.UserRepository,
	purchases repository.PurchaseRepository,
	verifier ReceiptVerifier,
	auditLog *audit.Logger,
	log *zap.Logger,
) *PremiumServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &PremiumServiceImpl{users: users, purchases: purchases, verifier: verifier, audit: auditLog, log: log, now: time.Now}
}

// Status reports the entitlement of userID.
func (s *PremiumServiceImpl) Status(ctx context.Context, userID uuid.UUID) (PremiumStatus, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return PremiumStatus{}, userErr("load user", err)
	}
	now := s.now().UTC()
	tier := u.PremiumTier
	if tier == "" {
		tier = model.TierFree
	}
	if tier == model.TierFree {
		return PremiumStatus{Tier: model.TierFree}, nil
	}
	if u.PremiumExpiresAt.Before(now) {
		if err := s.users.SetPremium(ctx, userID, model.TierFree, u.PremiumExpiresAt); err != nil {
			return PremiumStatus{}, userErr("downgrade premium", err)
		}
		s.log.Info("premium expired", zap.String("user", userID.String()), zap.String("tier", string(tier)))
		return PremiumStatus{Tier: model.TierFree, Expired: true, Message: "Premium subscription expired"}, nil
	}
	return PremiumStatus{
		IsPremium:     true,
		Tier:          tier,
		ExpiresAt:     u.PremiumExpiresAt,
		DaysRemaining: int(u.PremiumExpiresAt.Sub(now) / (24 * time.Hour)),
	}, nil
}

// VerifyPurchase grants the tier encoded in productID.
func (s *PremiumServiceImpl) VerifyPurchase(ctx context.Context, userID uuid.UUID, token, productID, packageName string) (PurchaseResult, error) {
	if token == "" || productID == "" || packageName == "" {
		return PurchaseResult{}, errs.New(errs.ErrInvalidArgument, "Purchase token, product ID, and package name required")
	}
	if s.verifier == nil {
		return PurchaseResult{}, errs.New(errs.ErrUnavailable, "Purchase verification is not configured")
	}

	state, err := s.verifier.Verify(ctx, packageName, productID, token)
	if errors.Is(err, ErrVerifierAuth) {
		return PurchaseResult{}, errs.New(errs.ErrPermissionDenied, "Store API authentication failed. Check service account credentials.")
	}
	if err != nil {
		return PurchaseResult{}, errs.Newf(errs.ErrInternal, "Purchase verification failed: %v", err)
	}
	switch state {
	case ReceiptPurchased:
	case ReceiptCancelled:
		return PurchaseResult{}, errs.New(errs.ErrFailedPrecondition, "Purchase was cancelled")
	default:
		return PurchaseResult{}, errs.New(errs.ErrFailedPrecondition, "Purchase not in valid state")
	}

	tier, days := entitlementFor(productID)
	now := s.now().UTC()
	expiresAt := now.Add(time.Duration(days) * 24 * time.Hour)
	if err := s.users.SetPremium(ctx, userID, tier, expiresAt); err != nil {
		return PurchaseResult{}, userErr("grant premium", err)
	}
	if err := s.purchases.Record(ctx, model.Purchase{
		UserID:        userID,
		ProductID:     productID,
		PurchaseToken: token,
		PackageName:   packageName,
		Tier:          tier,
		PurchasedAt:   now,
		ExpiresAt:     expiresAt,
	}); err != nil {
		s.log.Error("record purchase", zap.String("user", userID.String()), zap.Error(err))
	}
	s.audit.Record(ctx, audit.EventPurchaseVerified, userID, map[string]any{
		"productId":     productID,
		"premiumTier":   string(tier),
		"expiresAt":     expiresAt.UnixMilli(),
		"purchaseToken": partialToken(token),
	})
	return PurchaseResult{
		Tier:      tier,
		ExpiresAt: expiresAt,
		Message:   fmt.Sprintf("Premium activated! Expires %s", expiresAt.Format("1/2/2006")),
	}, nil
}

// entitlementFor maps a store product id to a tier and duration in days.
func entitlementFor(productID string) (model.PremiumTier, int) {
	tier := model.TierPremiumCouple
	if strings.Contains(productID, "plus") {
		tier = model.TierPremiumCouplePlus
	}
	days := 30
	if strings.Contains(productID, "year") {
		days = 365
	}
	return tier, days
}

func partialToken(token string) string {
	if len(token) <= 20 {
		return token + "..."
	}
	return token[:20] + "..."
}
