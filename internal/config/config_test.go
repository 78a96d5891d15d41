package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DAREGUARD_STORAGE", "DAREGUARD_DSN", "DAREGUARD_JWT_KEY", "DAREGUARD_HOOK_TOKEN",
		"DAREGUARD_REDIS_ADDR", "DAREGUARD_LOG_LEVEL", "DAREGUARD_EVENT_WORKERS", "DAREGUARD_SEED_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  grpc_addr: ":9443"
auth:
  jwt_key: secret
  hook_token: hook
apns:
  key_file: /keys/AuthKey.p8
  key_id: KEY
  team_id: TEAM
  topic: app.dareus
events:
  workers: 3
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9443", cfg.Server.GRPCAddr)
	require.Equal(t, ":8080", cfg.Server.HTTPAddr)
	require.Equal(t, "America/New_York", cfg.Jobs.SnapshotTimeZone)
	require.Equal(t, StoragePostgres, cfg.Storage)
	require.Equal(t, 3, cfg.Events.Workers)
	require.Equal(t, "app.dareus", cfg.APNs.Topic)
	require.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DAREGUARD_STORAGE", StorageMemory)
	t.Setenv("DAREGUARD_JWT_KEY", "from-env")
	t.Setenv("DAREGUARD_EVENT_WORKERS", "2")
	t.Setenv("DAREGUARD_SEED_FILE", "/fixtures/dev.yaml")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, StorageMemory, cfg.Storage)
	require.Equal(t, "from-env", cfg.Auth.JWTKey)
	require.Equal(t, 2, cfg.Events.Workers)
	require.Equal(t, "/fixtures/dev.yaml", cfg.Memory.SeedFile)

	t.Setenv("DAREGUARD_EVENT_WORKERS", "many")
	_, err = Load("")
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	clearConfigEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := cfg.Validate()
	require.ErrorContains(t, err, "auth.jwt_key is required")
	require.ErrorContains(t, err, "auth.hook_token is required")

	cfg.Auth.JWTKey = "k"
	cfg.Server.HTTPAddr = ""
	require.NoError(t, cfg.Validate())

	cfg.Storage = "sqlite"
	cfg.Server.TLSCert = "cert.pem"
	cfg.APNs.KeyFile = "key.p8"
	cfg.Events.Workers = 0
	err = cfg.Validate()
	require.ErrorContains(t, err, "storage must be")
	require.ErrorContains(t, err, "tls_key must be set together")
	require.ErrorContains(t, err, "apns.key_id")
	require.ErrorContains(t, err, "events.workers")
}

func TestValidateSeedFileNeedsMemoryStorage(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Auth.JWTKey = "k"
	cfg.Server.HTTPAddr = ""
	cfg.Memory.SeedFile = "seed.yaml"
	require.ErrorContains(t, cfg.Validate(), "memory.seed_file requires memory storage")

	cfg.Storage = StorageMemory
	require.NoError(t, cfg.Validate())
}
