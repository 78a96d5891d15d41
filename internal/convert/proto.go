// Package convert maps service results onto wire messages.
package convert

import (
	"time"

	pb "github.com/dareus/dareguard/gen/go/dareguard/v1"
	"github.com/dareus/dareguard/internal/limiter"
	"github.com/dareus/dareguard/internal/moderation"
	"github.com/dareus/dareguard/internal/service"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// --- Dares ---

// ToProtoValidation wraps a moderation verdict.
func ToProtoValidation(v moderation.Verdict) *pb.ValidateDareResponse {
	return &pb.ValidateDareResponse{
		Valid:   v.Valid,
		Cleaned: v.Cleaned,
		Message: v.Message(),
		Errors:  v.Errors,
	}
}

// ToProtoRateLimit wraps a weekly quota verdict.
func ToProtoRateLimit(v limiter.Verdict) *pb.CheckDareRateLimitResponse {
	return &pb.CheckDareRateLimitResponse{
		Allowed:   v.Allowed,
		IsPremium: v.Premium,
		Limit:     int32(v.Limit),
		Used:      int32(v.Used),
		Remaining: int32(v.Remaining),
		Reason:    v.Reason,
	}
}

// --- Premium ---

// ToProtoPremiumStatus wraps an entitlement. Free accounts carry no expiry.
func ToProtoPremiumStatus(st service.PremiumStatus) *pb.CheckPremiumStatusResponse {
	return &pb.CheckPremiumStatusResponse{
		IsPremium:     st.IsPremium,
		Tier:          string(st.Tier),
		ExpiresAt:     ts(st.ExpiresAt),
		DaysRemaining: int32(st.DaysRemaining),
		Expired:       st.Expired,
		Message:       st.Message,
	}
}

// ToProtoPurchase wraps a granted entitlement.
func ToProtoPurchase(res service.PurchaseResult) *pb.VerifyPurchaseResponse {
	return &pb.VerifyPurchaseResponse{
		Success:     true,
		PremiumTier: string(res.Tier),
		ExpiresAt:   ts(res.ExpiresAt),
		Message:     res.Message,
	}
}
