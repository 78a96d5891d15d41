// Command dareguard is a CLI client for the DareGuard service.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	pb "github.com/dareus/dareguard/gen/go/dareguard/v1"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// ---- config/token store ----

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "dareguard")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dareguard")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveToken(tok string, exp time.Time) error {
	_ = os.MkdirAll(cfgDir(), 0o700)
	f, err := os.OpenFile(tokenPath(), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenFile{AccessToken: tok, ExpiresAt: exp})
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return "", errors.New("no valid token (run login)")
	}
	return tf.AccessToken, nil
}

// tokenExpiry reads exp from an ID token without verifying it; the server does that.
func tokenExpiry(tok string, fallback time.Duration) (time.Time, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tok, &claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time, nil
	}
	return time.Now().Add(fallback), nil
}

// mintToken signs an HS256 ID token for sub. Only useful against a server
// whose jwt_key the operator holds, i.e. dev deployments.
func mintToken(sub string, key []byte, ttl time.Duration) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now.Add(-5 * time.Second)),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	return s, exp, err
}

// ---- grpc dial ----

type bearerCreds struct {
	token     string
	plaintext bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return !b.plaintext }

func loadTLS(caPath string, skipVerify bool) (credentials.TransportCredentials, error) {
	if skipVerify {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

type dialOpts struct {
	addr       string
	caPath     string
	skipVerify bool
	plaintext  bool
}

func dial(o dialOpts, bearer string) (*grpc.ClientConn, pb.DareGuardClient, error) {
	creds := insecure.NewCredentials()
	if !o.plaintext {
		var err error
		if creds, err = loadTLS(o.caPath, o.skipVerify); err != nil {
			return nil, nil, err
		}
	}
	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if bearer != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer, plaintext: o.plaintext}))
	}
	cc, err := grpc.NewClient(o.addr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cc, pb.NewDareGuardClient(cc), nil
}

// ---- utils ----

func readAll(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(p)
}

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func usage() {
	fmt.Fprintf(os.Stderr, `dareguard CLI
Usage:
  dareguard -addr HOST:PORT [-cacert file | -insecure | -plaintext] <cmd> [args]

Commands:
  version
  login         -token <id token>                  (saves token)
  mint          -sub <user uuid> -key <jwt key> [-ttl 1h]   (dev, saves token)
  validate      -text <dare> | -file <path|->  [-custom]
  limit                                            (weekly dare quota)
  invite-code
  verify-code   -code <XXXXXX>
  link-send     -partner <uuid>
  link-accept   -request <uuid>
  link-reject   -request <uuid>
  badge         -id <badge id>
  reveal        -competition <uuid>
  premium
  purchase      -token <purchase token> -product <product id> -package <package name>
`)
	os.Exit(2)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

// main dispatches subcommands and configures TLS/auth for RPC calls.
func main() {
	// global flags
	var o dialOpts
	flag.StringVar(&o.addr, "addr", "localhost:8443", "server addr")
	flag.StringVar(&o.caPath, "cacert", "", "CA cert (PEM)")
	flag.BoolVar(&o.skipVerify, "insecure", false, "skip cert verify (dev)")
	flag.BoolVar(&o.plaintext, "plaintext", false, "no TLS (dev)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd, args := flag.Arg(0), flag.Args()[1:]

	switch cmd {
	case "version":
		fmt.Printf("dareguard %s (%s)\n", version, buildDate)
		return

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		tok := fs.String("token", "", "ID token")
		_ = fs.Parse(args)
		if *tok == "" {
			fmt.Fprintln(os.Stderr, "need -token")
			os.Exit(1)
		}
		exp, err := tokenExpiry(*tok, 15*time.Minute)
		if err != nil {
			fail(err)
		}
		if err := saveToken(*tok, exp); err != nil {
			fail(err)
		}
		fmt.Println("ok")
		return

	case "mint":
		fs := flag.NewFlagSet("mint", flag.ExitOnError)
		sub := fs.String("sub", "", "user id")
		key := fs.String("key", "", "HS256 key")
		ttl := fs.Duration("ttl", time.Hour, "token TTL")
		_ = fs.Parse(args)
		if *sub == "" || *key == "" {
			fmt.Fprintln(os.Stderr, "need -sub and -key")
			os.Exit(1)
		}
		tok, exp, err := mintToken(*sub, []byte(*key), *ttl)
		if err != nil {
			fail(err)
		}
		if err := saveToken(tok, exp); err != nil {
			fail(err)
		}
		fmt.Println(tok)
		return
	}

	if _, ok := commands[cmd]; !ok {
		usage()
	}

	token, err := loadToken()
	if err != nil {
		fail(err)
	}
	cc, cli, err := dial(o, token)
	if err != nil {
		fail(err)
	}
	defer cc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, cli, cmd, args, os.Stdout); err != nil {
		fail(err)
	}
}

// ---- helpers ----

func fail(err error) {
	if s, ok := status.FromError(err); ok {
		fmt.Fprintf(os.Stderr, "rpc error: code=%s msg=%s\n", s.Code(), s.Message())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
