// Package grpcserver exposes the DareGuard gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"

	pb "github.com/dareus/dareguard/gen/go/dareguard/v1"
	"github.com/dareus/dareguard/internal/convert"
	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/scoring"
	"github.com/dareus/dareguard/internal/service"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BadgeAwarder unlocks catalog badges.
type BadgeAwarder interface {
	AwardBadge(ctx context.Context, userID uuid.UUID, badgeID string) (scoring.BadgeResult, error)
}

// Services are the application services behind the handlers.
type Services struct {
	Dares        service.DareService
	Invites      service.InviteService
	Links        service.LinkService
	Badges       BadgeAwarder
	Competitions service.CompetitionService
	Premium      service.PremiumService
}

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedDareGuardServer
	svc     Services
	signKey []byte
	log     *zap.Logger
}

// New constructs a gRPC server with injected services.
func New(svc Services, signKey []byte, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{svc: svc, signKey: signKey, log: log}
}

// --- Dares ---

// ValidateDare moderates dare text without storing it.
func (s *Server) ValidateDare(ctx context.Context, req *pb.ValidateDareRequest) (*pb.ValidateDareResponse, error) {
	if _, err := s.caller(ctx); err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	v, err := s.svc.Dares.Validate(req.GetDareText(), req.GetIsCustom())
	if err != nil {
		return nil, s.statusFromErr("validate dare", err)
	}
	return convert.ToProtoValidation(v), nil
}

// CheckDareRateLimit reports the caller's weekly dare quota.
func (s *Server) CheckDareRateLimit(ctx context.Context, _ *pb.CheckDareRateLimitRequest) (*pb.CheckDareRateLimitResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	v, err := s.svc.Dares.CheckRateLimit(ctx, userID)
	if err != nil {
		return nil, s.statusFromErr("check dare rate limit", err)
	}
	return convert.ToProtoRateLimit(v), nil
}

// --- Invites ---

// GenerateInviteCode issues a fresh invite code, once per day.
func (s *Server) GenerateInviteCode(ctx context.Context, _ *pb.GenerateInviteCodeRequest) (*pb.GenerateInviteCodeResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	code, msg, err := s.svc.Invites.Generate(ctx, userID)
	if err != nil {
		return nil, s.statusFromErr("generate invite code", err)
	}
	return &pb.GenerateInviteCodeResponse{Success: true, InviteCode: code, Message: msg}, nil
}

// VerifyInviteCode resolves an invite code to its holder.
func (s *Server) VerifyInviteCode(ctx context.Context, req *pb.VerifyInviteCodeRequest) (*pb.VerifyInviteCodeResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	res, err := s.svc.Invites.Verify(ctx, userID, req.GetInviteCode())
	if err != nil {
		return nil, s.statusFromErr("verify invite code", err)
	}
	return &pb.VerifyInviteCodeResponse{
		Success:     true,
		PartnerId:   res.PartnerID.String(),
		PartnerName: res.PartnerName,
		Message:     res.Message,
	}, nil
}

// --- Partner links ---

// SendPartnerLinkRequest asks another user to become the caller's partner.
func (s *Server) SendPartnerLinkRequest(ctx context.Context, req *pb.SendPartnerLinkRequestRequest) (*pb.SendPartnerLinkRequestResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	partnerID, err := parseID(req.GetPartnerId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad partner id")
	}
	id, msg, err := s.svc.Links.Request(ctx, userID, partnerID)
	if err != nil {
		return nil, s.statusFromErr("send link request", err)
	}
	return &pb.SendPartnerLinkRequestResponse{Success: true, RequestId: id.String(), Message: msg}, nil
}

// AcceptPartnerLinkRequest links the caller with the requester.
func (s *Server) AcceptPartnerLinkRequest(ctx context.Context, req *pb.AcceptPartnerLinkRequestRequest) (*pb.AcceptPartnerLinkRequestResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	requestID, err := parseID(req.GetRequestId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad request id")
	}
	res, err := s.svc.Links.Accept(ctx, userID, requestID)
	if err != nil {
		return nil, s.statusFromErr("accept link request", err)
	}
	return &pb.AcceptPartnerLinkRequestResponse{
		Success:     true,
		PartnerId:   res.PartnerID.String(),
		PartnerName: res.PartnerName,
		Message:     res.Message,
	}, nil
}

// RejectPartnerLinkRequest declines a pending request addressed to the caller.
func (s *Server) RejectPartnerLinkRequest(ctx context.Context, req *pb.RejectPartnerLinkRequestRequest) (*pb.RejectPartnerLinkRequestResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	requestID, err := parseID(req.GetRequestId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad request id")
	}
	msg, err := s.svc.Links.Reject(ctx, userID, requestID)
	if err != nil {
		return nil, s.statusFromErr("reject link request", err)
	}
	return &pb.RejectPartnerLinkRequestResponse{Success: true, Message: msg}, nil
}

// --- Points ---

// AwardBadgeBonus unlocks a catalog badge for the caller.
func (s *Server) AwardBadgeBonus(ctx context.Context, req *pb.AwardBadgeBonusRequest) (*pb.AwardBadgeBonusResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	res, err := s.svc.Badges.AwardBadge(ctx, userID, req.GetBadgeId())
	if err != nil {
		return nil, s.statusFromErr("award badge", err)
	}
	return &pb.AwardBadgeBonusResponse{Success: res.Awarded, PointsAwarded: res.Points, Message: res.Message}, nil
}

// RevealPartnerPrize spends points to reveal the partner's prize.
func (s *Server) RevealPartnerPrize(ctx context.Context, req *pb.RevealPartnerPrizeRequest) (*pb.RevealPartnerPrizeResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	competitionID, err := parseID(req.GetCompetitionId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad competition id")
	}
	res, err := s.svc.Competitions.RevealPrize(ctx, userID, competitionID)
	if err != nil {
		return nil, s.statusFromErr("reveal prize", err)
	}
	return &pb.RevealPartnerPrizeResponse{Success: true, PointsDeducted: res.PointsDeducted, NewBalance: res.NewBalance}, nil
}

// --- Premium ---

// CheckPremiumStatus reports the caller's entitlement.
func (s *Server) CheckPremiumStatus(ctx context.Context, _ *pb.CheckPremiumStatusRequest) (*pb.CheckPremiumStatusResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	st, err := s.svc.Premium.Status(ctx, userID)
	if err != nil {
		return nil, s.statusFromErr("check premium", err)
	}
	return convert.ToProtoPremiumStatus(st), nil
}

// VerifyPurchase grants premium from a store receipt.
func (s *Server) VerifyPurchase(ctx context.Context, req *pb.VerifyPurchaseRequest) (*pb.VerifyPurchaseResponse, error) {
	userID, err := s.caller(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	res, err := s.svc.Premium.VerifyPurchase(ctx, userID, req.GetPurchaseToken(), req.GetProductId(), req.GetPackageName())
	if err != nil {
		return nil, s.statusFromErr("verify purchase", err)
	}
	return convert.ToProtoPurchase(res), nil
}

// statusFromErr maps a service error to a gRPC status carrying its
// caller-facing message. Errors without one are logged and hidden.
func (s *Server) statusFromErr(op string, err error) error {
	msg := errs.Message(err)
	var code codes.Code
	switch {
	case errors.Is(err, errs.ErrInvalidArgument):
		code = codes.InvalidArgument
	case errors.Is(err, errs.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		code = codes.PermissionDenied
	case errors.Is(err, errs.ErrFailedPrecondition),
		errors.Is(err, errs.ErrVersionConflict),
		errors.Is(err, errs.ErrAlreadyLinked):
		code = codes.FailedPrecondition
	case errors.Is(err, errs.ErrAlreadyExists):
		code = codes.AlreadyExists
	case errors.Is(err, errs.ErrRateLimited):
		code = codes.ResourceExhausted
	case errors.Is(err, errs.ErrUnauthorized):
		code = codes.Unauthenticated
	case errors.Is(err, errs.ErrUnavailable):
		code = codes.Unavailable
	default:
		code = codes.Internal
	}
	if msg == "" {
		s.log.Error(op, zap.Error(err))
		if code == codes.Internal {
			return status.Errorf(codes.Internal, "%s: internal error", op)
		}
		msg = err.Error()
	}
	return status.Error(code, msg)
}

// parseID accepts an empty string as uuid.Nil so services report missing IDs.
func parseID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	return uuid.FromString(s)
}
