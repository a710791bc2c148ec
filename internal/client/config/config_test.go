package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"authbox"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, "authbox.db", cfg.DatabasePath)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("AUTHBOX_API_URL", "https://auth.example.org")
	t.Setenv("AUTHBOX_REQUEST_TIMEOUT", "30s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "https://auth.example.org", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	// Untouched variables keep their defaults.
	require.Equal(t, "authbox.db", cfg.DatabasePath)
}

func TestParseJsonOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "https://auth.example.org",
		"request_timeout": "15s"
	}`), 0o600))

	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "https://auth.example.org", cfg.APIBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "authbox.db", cfg.DatabasePath)
}

func TestParseJsonNoFile(t *testing.T) {
	withArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	require.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
}

func TestParseFlags(t *testing.T) {
	withArgs(t, "-a", "https://auth.example.org", "-t", "5", "-d", "local.db")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, "https://auth.example.org", cfg.APIBaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, "local.db", cfg.DatabasePath)
}
