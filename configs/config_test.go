package configs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:8080", cfg.AdminURL)
	assert.Equal(t, 10, cfg.RequestTimeout)
	assert.Empty(t, cfg.Auth.Token)
	assert.Nil(t, cfg.Auth.OAuth2)
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFrom_ParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `admin_url: http://pulsar.example.com:8080
default_tenant: acme
auth:
  oauth2:
    client_id: lgm
    client_secret: hunter2
    token_url: https://auth.example.com/oauth/token
    audience: urn:pulsar:cluster
request_timeout_seconds: 30
trace: true
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "http://pulsar.example.com:8080", cfg.AdminURL)
	assert.Equal(t, "acme", cfg.DefaultTenant)
	assert.Equal(t, 30, cfg.RequestTimeout)
	assert.True(t, cfg.Trace)
	require.NotNil(t, cfg.Auth.OAuth2)
	assert.Equal(t, "lgm", cfg.Auth.OAuth2.ClientID)
	assert.Equal(t, "https://auth.example.com/oauth/token", cfg.Auth.OAuth2.TokenURL)
}

func TestLoadFrom_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("admin_url: [broken"), 0o600))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestLoadFrom_TimeoutFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("request_timeout_seconds: -5\n"), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.RequestTimeout)
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.AdminURL = "http://broker:8080"
	cfg.Auth.Token = "secret-token"
	cfg.SetLastTenant("acme")
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "http://broker:8080", loaded.AdminURL)
	assert.Equal(t, "secret-token", loaded.Auth.Token)
	assert.Equal(t, "acme", loaded.LastTenant)
}

func TestSaveLastTenant_PreservesFileContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `admin_url: http://pulsar.example.com:8080
default_tenant: acme
auth:
  token: secret-token
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	require.NoError(t, SaveLastTenant(path, "shop"))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "shop", loaded.LastTenant)
	assert.Equal(t, "http://pulsar.example.com:8080", loaded.AdminURL, "file contents stay as written")
	assert.Equal(t, "acme", loaded.DefaultTenant)
	assert.Equal(t, "secret-token", loaded.Auth.Token)
}

func TestSaveLastTenant_DoesNotPersistSessionOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("admin_url: http://broker:8080\n"), 0o600))

	// The session mutated its in-memory config (flag overrides), but
	// only the last tenant reaches the file.
	session, err := LoadFrom(path)
	require.NoError(t, err)
	session.AdminURL = "http://other:8080"
	session.DefaultTenant = "flag-tenant"
	session.Trace = true
	session.SetLastTenant("visited")

	require.NoError(t, SaveLastTenant(path, session.LastTenant))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "visited", loaded.LastTenant)
	assert.Equal(t, "http://broker:8080", loaded.AdminURL)
	assert.Empty(t, loaded.DefaultTenant)
	assert.False(t, loaded.Trace)
}

func TestSaveLastTenant_EmptyTenantIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveLastTenant(path, ""))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no tenant visited, nothing written")
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.True(t, strings.HasSuffix(path, filepath.Join(".config", "lgm", "config.yaml")))
}

func TestStartTenant(t *testing.T) {
	cfg := &Config{}
	assert.Empty(t, cfg.StartTenant())

	cfg.LastTenant = "last"
	assert.Equal(t, "last", cfg.StartTenant())

	cfg.DefaultTenant = "default"
	assert.Equal(t, "default", cfg.StartTenant(), "explicit default wins over last session")
}
