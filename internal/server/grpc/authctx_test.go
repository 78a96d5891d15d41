package grpcserver

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

func makeJWT(t *testing.T, sub string, key []byte, method jwt.SigningMethod, iat time.Time, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(iat),
		NotBefore: jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(iat.Add(ttl)),
	}
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return s
}

func ctxWithAuth(token string) context.Context {
	md := metadata.New(map[string]string{"authorization": "Bearer " + token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestWithUserID_And_UserIDFromCtx(t *testing.T) {
	t.Parallel()

	if id, ok := UserIDFromCtx(context.Background()); ok || id != uuid.Nil {
		t.Fatalf("expected no user id in empty ctx")
	}

	want := uuid.Must(uuid.NewV4())
	got, ok := UserIDFromCtx(WithUserID(context.Background(), want))
	require.True(t, ok)
	require.Equal(t, want, got)

	bad := context.WithValue(context.Background(), userIDKey, want.String())
	if _, ok := UserIDFromCtx(bad); ok {
		t.Fatalf("expected miss on wrong typed value")
	}
}

func Test_bearerTokenFromMD(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		values []string
		want   string
		err    error
	}{
		{name: "bearer", values: []string{"Bearer abc.def.ghi"}, want: "abc.def.ghi"},
		{name: "lowercase scheme", values: []string{"  bearer   abc  "}, want: "abc"},
		{name: "second value", values: []string{"Basic foo", "Bearer xyz"}, want: "xyz"},
		{name: "basic only", values: []string{"Basic foo"}, err: errNoBearer},
		{name: "empty token", values: []string{"Bearer   "}, err: errNoBearer},
		{name: "scheme only", values: []string{"Bearer"}, err: errNoBearer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			md := metadata.MD{"authorization": tc.values}
			got, err := bearerTokenFromMD(metadata.NewIncomingContext(context.Background(), md))
			require.ErrorIs(t, err, tc.err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err := bearerTokenFromMD(context.Background())
	require.ErrorIs(t, err, errNoMetadata)
}

func Test_verifyIDToken(t *testing.T) {
	t.Parallel()

	key := []byte("secret")
	sub := uuid.Must(uuid.NewV4())
	now := time.Now().UTC()

	cases := []struct {
		name string
		tok  string
		err  error
	}{
		{name: "valid", tok: makeJWT(t, sub.String(), key, jwt.SigningMethodHS256, now.Add(-time.Minute), 10*time.Minute)},
		{name: "within skew", tok: makeJWT(t, sub.String(), key, jwt.SigningMethodHS256, now.Add(10*time.Second), time.Hour)},
		{name: "expired", tok: makeJWT(t, sub.String(), key, jwt.SigningMethodHS256, now.Add(-2*time.Hour), time.Hour), err: errInvalidToken},
		{name: "not yet valid", tok: makeJWT(t, sub.String(), key, jwt.SigningMethodHS256, now.Add(time.Hour), time.Hour), err: errInvalidToken},
		{name: "wrong alg", tok: makeJWT(t, sub.String(), key, jwt.SigningMethodHS384, now, time.Hour), err: errInvalidToken},
		{name: "wrong key", tok: makeJWT(t, sub.String(), []byte("other"), jwt.SigningMethodHS256, now, time.Hour), err: errInvalidToken},
		{name: "garbage", tok: "this-is-not-a-jwt", err: errInvalidToken},
		{name: "bad subject", tok: makeJWT(t, "not-a-uuid", key, jwt.SigningMethodHS256, now, time.Hour), err: errBadSubject},
		{name: "nil subject", tok: makeJWT(t, uuid.Nil.String(), key, jwt.SigningMethodHS256, now, time.Hour), err: errBadSubject},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := verifyIDToken(tc.tok, key)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			require.Equal(t, sub, id)
		})
	}
}

func TestServer_caller_PrefersStoredID(t *testing.T) {
	t.Parallel()

	s := &Server{signKey: []byte("secret")}
	stored := uuid.Must(uuid.NewV4())
	fromToken := uuid.Must(uuid.NewV4())

	ctx := ctxWithAuth(makeJWT(t, fromToken.String(), s.signKey, jwt.SigningMethodHS256, time.Now().UTC(), time.Hour))
	id, err := s.caller(ctx)
	require.NoError(t, err)
	require.Equal(t, fromToken, id)

	id, err = s.caller(WithUserID(ctx, stored))
	require.NoError(t, err)
	require.Equal(t, stored, id)

	_, err = s.caller(context.Background())
	require.ErrorIs(t, err, errNoMetadata)
}
