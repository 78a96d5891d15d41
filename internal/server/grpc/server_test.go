package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	pb "github.com/dareus/dareguard/gen/go/dareguard/v1"
	"github.com/dareus/dareguard/internal/audit"
	"github.com/dareus/dareguard/internal/errs"
	"github.com/dareus/dareguard/internal/limiter"
	"github.com/dareus/dareguard/internal/model"
	"github.com/dareus/dareguard/internal/moderation"
	"github.com/dareus/dareguard/internal/policy"
	"github.com/dareus/dareguard/internal/repository/memstore"
	"github.com/dareus/dareguard/internal/scoring"
	"github.com/dareus/dareguard/internal/service"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const bufSize = 1 << 20

var signKey = []byte("test-secret")

type testEnv struct {
	store   *memstore.Store
	client  pb.DareGuardClient
	catalog *policy.Catalog
}

func startBufGRPC(t *testing.T, srv *Server) (*grpc.ClientConn, func()) {
	t.Helper()
	log := zaptest.NewLogger(t)
	lis := bufconn.Listen(bufSize)
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(
		RecoverUnary(log),
		LoggingUnary(log),
		srv.AuthUnary(),
	))
	pb.RegisterDareGuardServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	stop := func() { _ = cc.Close(); gs.Stop(); _ = lis.Close() }
	return cc, stop
}

// newTestEnv serves the real services over an in-memory store.
func newTestEnv(t *testing.T, verifier service.ReceiptVerifier) *testEnv {
	t.Helper()
	log := zaptest.NewLogger(t)
	store := memstore.New()
	cat, err := policy.Default()
	require.NoError(t, err)
	mod, err := moderation.New(cat.Moderation)
	require.NoError(t, err)
	lim := limiter.New(store.Users(), store)
	auditLog := audit.New(store, log)
	points := scoring.NewEngine(store.Users(), cat, auditLog, log)
	queue := service.NewEnqueuer(store.Notifications(), log)

	srv := New(Services{
		Dares:        service.NewDareService(store.Users(), store.Dares(), mod, lim, points, auditLog, log),
		Invites:      service.NewInviteService(store.Users(), lim, auditLog, log),
		Links:        service.NewLinkService(store.Users(), store.Links(), queue, log),
		Badges:       points,
		Competitions: service.NewCompetitionService(store.Users(), store.Competitions(), points, log),
		Premium:      service.NewPremiumService(store.Users(), store, verifier, auditLog, log),
	}, signKey, log)

	cc, stop := startBufGRPC(t, srv)
	t.Cleanup(stop)
	return &testEnv{store: store, client: pb.NewDareGuardClient(cc), catalog: cat}
}

func (e *testEnv) addUser(t *testing.T, name string) uuid.UUID {
	t.Helper()
	id := uuid.Must(uuid.NewV4())
	require.NoError(t, e.store.Users().Create(context.Background(), &model.User{ID: id, FirstName: name, PushToken: "tok-" + name}))
	return id
}

/************ helpers ************/
func jwtFor(t *testing.T, sub string, key []byte, ttl time.Duration) string {
	t.Helper()
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now.Add(-5 * time.Second)),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl + 5*time.Second)),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}
	return s
}

func as(t *testing.T, id uuid.UUID) context.Context {
	t.Helper()
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+jwtFor(t, id.String(), signKey, time.Minute))
}

func requireStatus(t *testing.T, err error, code codes.Code, msg string) {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok, "not a status error: %v", err)
	require.Equal(t, code, st.Code(), st.Message())
	if msg != "" {
		require.Equal(t, msg, st.Message())
	}
}

func TestServer_RequiresAuth(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t, nil)

	_, err := e.client.ValidateDare(context.Background(), &pb.ValidateDareRequest{DareText: "Dance with me"})
	requireStatus(t, err, codes.Unauthenticated, "")

	wrongKey := jwtFor(t, uuid.Must(uuid.NewV4()).String(), []byte("other"), time.Minute)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+wrongKey)
	_, err = e.client.CheckPremiumStatus(ctx, &pb.CheckPremiumStatusRequest{})
	requireStatus(t, err, codes.Unauthenticated, "")
}

func TestServer_E2E_LinkFlow(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t, nil)
	a := e.addUser(t, "Sam")
	b := e.addUser(t, "Alex")

	gen, err := e.client.GenerateInviteCode(as(t, a), &pb.GenerateInviteCodeRequest{})
	require.NoError(t, err)
	require.True(t, gen.Success)
	require.Len(t, gen.InviteCode, 12)

	_, err = e.client.GenerateInviteCode(as(t, a), &pb.GenerateInviteCodeRequest{})
	requireStatus(t, err, codes.ResourceExhausted, "You can only generate one invite code per day. Try again in 24 hours.")

	ver, err := e.client.VerifyInviteCode(as(t, b), &pb.VerifyInviteCodeRequest{InviteCode: strings.ToLower(gen.InviteCode)})
	require.NoError(t, err)
	require.Equal(t, a.String(), ver.PartnerId)
	require.Equal(t, "Found Sam! Ready to link.", ver.Message)

	sent, err := e.client.SendPartnerLinkRequest(as(t, b), &pb.SendPartnerLinkRequestRequest{PartnerId: ver.PartnerId})
	require.NoError(t, err)
	require.True(t, sent.Success)

	_, err = e.client.SendPartnerLinkRequest(as(t, b), &pb.SendPartnerLinkRequestRequest{PartnerId: ver.PartnerId})
	requireStatus(t, err, codes.AlreadyExists, "You already sent a link request to this person")

	_, err = e.client.AcceptPartnerLinkRequest(as(t, b), &pb.AcceptPartnerLinkRequestRequest{RequestId: sent.RequestId})
	requireStatus(t, err, codes.PermissionDenied, "This request is not for you")

	acc, err := e.client.AcceptPartnerLinkRequest(as(t, a), &pb.AcceptPartnerLinkRequestRequest{RequestId: sent.RequestId})
	require.NoError(t, err)
	require.Equal(t, b.String(), acc.PartnerId)
	require.Equal(t, "Alex", acc.PartnerName)

	_, err = e.client.RejectPartnerLinkRequest(as(t, a), &pb.RejectPartnerLinkRequestRequest{RequestId: sent.RequestId})
	requireStatus(t, err, codes.FailedPrecondition, "Request already accepted")

	u, err := e.store.Users().GetByID(context.Background(), a)
	require.NoError(t, err)
	require.Equal(t, b, u.PartnerID)
}

func TestServer_InvalidArguments(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t, nil)
	a := e.addUser(t, "Sam")

	_, err := e.client.VerifyInviteCode(as(t, a), &pb.VerifyInviteCodeRequest{InviteCode: "short"})
	requireStatus(t, err, codes.InvalidArgument, "Invalid invite code format")

	_, err = e.client.SendPartnerLinkRequest(as(t, a), &pb.SendPartnerLinkRequestRequest{})
	requireStatus(t, err, codes.InvalidArgument, "Partner ID required")

	_, err = e.client.AcceptPartnerLinkRequest(as(t, a), &pb.AcceptPartnerLinkRequestRequest{RequestId: "not-a-uuid"})
	requireStatus(t, err, codes.InvalidArgument, "bad request id")

	_, err = e.client.RevealPartnerPrize(as(t, a), &pb.RevealPartnerPrizeRequest{})
	requireStatus(t, err, codes.InvalidArgument, "Competition ID required")

	_, err = e.client.RevealPartnerPrize(as(t, a), &pb.RevealPartnerPrizeRequest{CompetitionId: uuid.Must(uuid.NewV4()).String()})
	requireStatus(t, err, codes.NotFound, "Competition not found")

	_, err = e.client.ValidateDare(as(t, a), &pb.ValidateDareRequest{})
	requireStatus(t, err, codes.InvalidArgument, "Dare text required")

	_, err = e.client.AwardBadgeBonus(as(t, a), &pb.AwardBadgeBonusRequest{BadgeId: "made_up"})
	requireStatus(t, err, codes.InvalidArgument, "Invalid badge ID")
}

func TestServer_DaresAndBadges(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t, nil)
	a := e.addUser(t, "Sam")

	v, err := e.client.ValidateDare(as(t, a), &pb.ValidateDareRequest{DareText: "Call me at 555-123-4567", IsCustom: true})
	require.NoError(t, err)
	require.False(t, v.Valid)
	require.Equal(t, moderation.MsgPhone, v.Message)

	v, err = e.client.ValidateDare(as(t, a), &pb.ValidateDareRequest{DareText: "Cook dinner together"})
	require.NoError(t, err)
	require.True(t, v.Valid)
	require.Equal(t, moderation.MsgAcceptable, v.Message)

	rl, err := e.client.CheckDareRateLimit(as(t, a), &pb.CheckDareRateLimitRequest{})
	require.NoError(t, err)
	require.True(t, rl.Allowed)
	require.Equal(t, int32(5), rl.Limit)
	require.Equal(t, int32(5), rl.Remaining)

	badge := e.catalog.Badges.IDs[0]
	got, err := e.client.AwardBadgeBonus(as(t, a), &pb.AwardBadgeBonusRequest{BadgeId: badge})
	require.NoError(t, err)
	require.True(t, got.Success)
	require.Equal(t, e.catalog.Badges.BonusPoints, got.PointsAwarded)

	again, err := e.client.AwardBadgeBonus(as(t, a), &pb.AwardBadgeBonusRequest{BadgeId: badge})
	require.NoError(t, err)
	require.False(t, again.Success)
	require.Equal(t, "Badge already unlocked", again.Message)
}

func TestServer_Premium(t *testing.T) {
	t.Parallel()
	e := newTestEnv(t, nil)
	a := e.addUser(t, "Sam")

	st, err := e.client.CheckPremiumStatus(as(t, a), &pb.CheckPremiumStatusRequest{})
	require.NoError(t, err)
	require.False(t, st.IsPremium)
	require.Equal(t, string(model.TierFree), st.Tier)
	require.Nil(t, st.ExpiresAt)

	_, err = e.client.VerifyPurchase(as(t, a), &pb.VerifyPurchaseRequest{PurchaseToken: "t", ProductId: "p", PackageName: "n"})
	requireStatus(t, err, codes.Unavailable, "Purchase verification is not configured")

	_, err = e.client.CheckPremiumStatus(as(t, uuid.Must(uuid.NewV4())), &pb.CheckPremiumStatusRequest{})
	requireStatus(t, err, codes.NotFound, "User not found")

	dev := newTestEnv(t, service.StaticReceiptVerifier{State: service.ReceiptPurchased})
	b := dev.addUser(t, "Alex")
	res, err := dev.client.VerifyPurchase(as(t, b), &pb.VerifyPurchaseRequest{PurchaseToken: "t", ProductId: "couple_plus_yearly", PackageName: "n"})
	require.NoError(t, err)
	require.Equal(t, string(model.TierPremiumCouplePlus), res.PremiumTier)
	require.NotNil(t, res.ExpiresAt)
	require.True(t, res.ExpiresAt.AsTime().After(time.Now().Add(364*24*time.Hour)))

	st, err = dev.client.CheckPremiumStatus(as(t, b), &pb.CheckPremiumStatusRequest{})
	require.NoError(t, err)
	require.True(t, st.IsPremium)
	require.Equal(t, int32(364), st.DaysRemaining)
}

func TestStatusFromErr(t *testing.T) {
	t.Parallel()
	s := New(Services{}, nil, zaptest.NewLogger(t))

	tests := []struct {
		err  error
		code codes.Code
		msg  string
	}{
		{errs.New(errs.ErrInvalidArgument, "bad"), codes.InvalidArgument, "bad"},
		{errs.New(errs.ErrNotFound, "gone"), codes.NotFound, "gone"},
		{errs.New(errs.ErrPermissionDenied, "no"), codes.PermissionDenied, "no"},
		{errs.New(errs.ErrFailedPrecondition, "state"), codes.FailedPrecondition, "state"},
		{errs.New(errs.ErrAlreadyExists, "dup"), codes.AlreadyExists, "dup"},
		{errs.New(errs.ErrRateLimited, "slow"), codes.ResourceExhausted, "slow"},
		{errs.New(errs.ErrUnavailable, "off"), codes.Unavailable, "off"},
		{errs.New(errs.ErrInternal, "Failed to generate unique code"), codes.Internal, "Failed to generate unique code"},
		{fmt.Errorf("wrap: %w", errs.ErrVersionConflict), codes.FailedPrecondition, "wrap: version conflict"},
		{errors.New("pg: connection reset"), codes.Internal, "op: internal error"},
	}
	for _, tt := range tests {
		requireStatus(t, s.statusFromErr("op", tt.err), tt.code, tt.msg)
	}
}
