package grpcserver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/metadata"
)

// clockSkew is tolerated on exp, nbf and iat.
const clockSkew = 30 * time.Second

var (
	errNoMetadata   = errors.New("no metadata")
	errNoBearer     = errors.New("no bearer token")
	errInvalidToken = errors.New("invalid token")
	errBadSubject   = errors.New("bad subject")
)

type ctxKey string

const userIDKey ctxKey = "dareguard.userID"

// WithUserID stores the verified caller in ctx.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx returns the caller stored by WithUserID.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// caller returns the authenticated user, preferring the ID stored by AuthUnary
// so a chain without the interceptor still authenticates.
func (s *Server) caller(ctx context.Context) (uuid.UUID, error) {
	if id, ok := UserIDFromCtx(ctx); ok {
		return id, nil
	}
	return s.userIDFromCtx(ctx)
}

// userIDFromCtx verifies the bearer ID token in ctx and returns its subject.
func (s *Server) userIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	tok, err := bearerTokenFromMD(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return verifyIDToken(tok, s.signKey)
}

// verifyIDToken accepts only HS256 tokens signed with key whose subject is a
// non-nil UUID.
func verifyIDToken(tok string, key []byte) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tok, &claims,
		func(*jwt.Token) (any, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(clockSkew),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return uuid.Nil, errInvalidToken
	}
	id, err := uuid.FromString(claims.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errBadSubject
	}
	return id, nil
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errNoMetadata
	}
	for _, v := range md.Get("authorization") {
		scheme, tok, found := strings.Cut(strings.TrimSpace(v), " ")
		if !found || !strings.EqualFold(scheme, "bearer") {
			continue
		}
		if tok = strings.TrimSpace(tok); tok != "" {
			return tok, nil
		}
	}
	return "", errNoBearer
}
