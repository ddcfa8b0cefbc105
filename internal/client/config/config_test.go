package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	require.Equal(t, "coursestore.db", cfg.DatabasePath)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.False(t, cfg.Debug)
}

func TestReadConfig_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api_base_url: http://api.example.com\nrequest_timeout: 3s\n"), 0o600))

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, cleanenv.ReadConfig(path, cfg))

	require.Equal(t, "http://api.example.com", cfg.APIBaseURL)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
	// untouched fields keep their defaults
	require.Equal(t, "coursestore.db", cfg.DatabasePath)
}

func TestReadEnv_Overrides(t *testing.T) {
	t.Setenv("COURSESTORE_API_URL", "http://env.example.com")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, cleanenv.ReadEnv(cfg))

	require.Equal(t, "http://env.example.com", cfg.APIBaseURL)
}

func TestParseFlags(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	parseFlags(cfg, []string{"-a", "http://flag.example.com", "-debug", "-c", "ignored.yaml"})

	require.Equal(t, "http://flag.example.com", cfg.APIBaseURL)
	require.True(t, cfg.Debug)
}
