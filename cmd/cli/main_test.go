package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func withTmpConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "dareguard")
}

func Test_cfgDir_And_Paths(t *testing.T) {
	base := withTmpConfig(t)
	if got := cfgDir(); got != base {
		t.Fatalf("cfgDir=%q, want %q", got, base)
	}
	if !strings.HasPrefix(tokenPath(), base) || !strings.HasSuffix(tokenPath(), "token.json") {
		t.Fatalf("tokenPath unexpected: %s", tokenPath())
	}
}

func Test_token_SaveLoad(t *testing.T) {
	_ = withTmpConfig(t)

	if _, err := loadToken(); err == nil {
		t.Fatalf("expected error when token file missing")
	}
	if err := saveToken("tok", time.Now().Add(time.Minute)); err != nil {
		t.Fatalf("saveToken: %v", err)
	}
	tok, err := loadToken()
	if err != nil || tok != "tok" {
		t.Fatalf("loadToken: tok=%q err=%v", tok, err)
	}
	fi, err := os.Stat(tokenPath())
	if err != nil || fi.Mode().Perm() != 0o600 {
		t.Fatalf("token file mode: %v %v", fi, err)
	}
	if err := saveToken("tok2", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("saveToken expired: %v", err)
	}
	if _, err := loadToken(); err == nil {
		t.Fatalf("want error for expired token")
	}
}

func Test_mintToken_And_tokenExpiry(t *testing.T) {
	t.Parallel()

	key := []byte("k")
	tok, exp, err := mintToken("11111111-1111-1111-1111-111111111111", key, time.Hour)
	if err != nil {
		t.Fatalf("mintToken: %v", err)
	}
	got, err := tokenExpiry(tok, time.Minute)
	if err != nil {
		t.Fatalf("tokenExpiry: %v", err)
	}
	if !got.Equal(exp.Truncate(time.Second)) {
		t.Fatalf("exp mismatch: %v vs %v", got, exp)
	}

	var claims jwt.RegisteredClaims
	if _, err := jwt.ParseWithClaims(tok, &claims, func(*jwt.Token) (any, error) { return key, nil }); err != nil {
		t.Fatalf("minted token must verify: %v", err)
	}
	if claims.Subject != "11111111-1111-1111-1111-111111111111" {
		t.Fatalf("subject: %q", claims.Subject)
	}

	// no exp claim falls back
	bare, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "x"}).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	before := time.Now()
	got, err = tokenExpiry(bare, time.Minute)
	if err != nil || got.Before(before.Add(59*time.Second)) {
		t.Fatalf("fallback exp: %v %v", got, err)
	}

	if _, err := tokenExpiry("not-a-jwt", time.Minute); err == nil {
		t.Fatalf("garbage token should fail")
	}
}

func Test_readAll_File_And_Stdin(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "f.txt")
	_ = os.WriteFile(tmp, []byte("hello"), 0o600)
	b, err := readAll(tmp)
	if err != nil || string(b) != "hello" {
		t.Fatalf("readAll(file): %q %v", b, err)
	}

	r, w, _ := os.Pipe()
	old := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = old }()
	go func() { _, _ = io.WriteString(w, "from-stdin"); _ = w.Close() }()
	b, err = readAll("-")
	if err != nil || string(b) != "from-stdin" {
		t.Fatalf("readAll(stdin): %q %v", b, err)
	}
}

func Test_printJSON_WritesPretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printJSON(&buf, map[string]any{"a": 1})

	var m map[string]any
	if json.Unmarshal(buf.Bytes(), &m) != nil || m["a"] != float64(1) {
		t.Fatalf("printJSON produced invalid json: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Fatalf("printJSON should indent")
	}
}

func Test_bearerCreds_Metadata(t *testing.T) {
	t.Parallel()

	b := bearerCreds{token: "T"}
	md, err := b.GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("GetRequestMetadata: %v", err)
	}
	if md["authorization"] != "Bearer T" {
		t.Fatalf("auth header mismatch: %v", md)
	}
	if !b.RequireTransportSecurity() {
		t.Fatalf("bearerCreds must require TLS")
	}
	if (bearerCreds{token: "T", plaintext: true}).RequireTransportSecurity() {
		t.Fatalf("plaintext creds must not require TLS")
	}
}

func Test_loadTLS_Variants(t *testing.T) {
	t.Parallel()

	creds, err := loadTLS("", true)
	if err != nil || creds == nil {
		t.Fatalf("insecure: %v %v", creds, err)
	}

	creds, err = loadTLS("", false)
	if err != nil || creds == nil {
		t.Fatalf("default tls: %v %v", creds, err)
	}

	tmp := filepath.Join(t.TempDir(), "bad.pem")
	_ = os.WriteFile(tmp, []byte("not pem"), 0o600)
	creds, err = loadTLS(tmp, false)
	if err == nil || creds != nil {
		t.Fatalf("bad CA should error, got creds=%v err=%v", creds, err)
	}
}

func Test_dial_Plaintext(t *testing.T) {
	t.Parallel()

	cc, cli, err := dial(dialOpts{addr: "localhost:1", plaintext: true}, "tok")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer cc.Close()
	if cli == nil {
		t.Fatalf("nil client")
	}
}
