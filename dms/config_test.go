package dms

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: https://api.example.com
project: power-ops
timeout: 30s
max_workers: 2
credentials:
  token_url: https://login.example.com/token
  client_id: from-file
  scopes: [a, b]
`), 0o600))

	t.Setenv("DMS_PROJECT", "from-env")
	t.Setenv("DMS_CLIENT_SECRET", "shh")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, "from-env", cfg.Project)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 2, cfg.MaxWorkers)
	assert.Equal(t, 3, cfg.MaxRetries, "defaults survive")
	require.NotNil(t, cfg.Credentials)
	assert.Equal(t, "from-file", cfg.Credentials.ClientID)
	assert.Equal(t, []string{"a", "b"}, cfg.Credentials.Scopes)
	require.NoError(t, cfg.Validate())

	ts, ok := cfg.tokenSource().(*ClientCredentials)
	require.True(t, ok)
	assert.Equal(t, "https://login.example.com/token", ts.TokenURL)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestConfigEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"DMS_BASE_URL":      "https://x",
		"DMS_CLIENT_ID":     "id",
		"DMS_CLIENT_SECRET": "secret",
		"DMS_SCOPES":        "s1 s2",
		"DMS_TIMEOUT":       "5s",
		"DMS_MAX_WORKERS":   "7",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	cfg := DefaultConfig()
	require.NoError(t, cfg.applyEnv(lookup))
	assert.Equal(t, "https://x", cfg.BaseURL)
	assert.Equal(t, "secret", cfg.Credentials.ClientSecret)
	assert.Equal(t, []string{"s1", "s2"}, cfg.Credentials.Scopes)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 7, cfg.MaxWorkers)

	env["DMS_TIMEOUT"] = "soon"
	require.Error(t, DefaultConfig().applyEnv(lookup))
}
