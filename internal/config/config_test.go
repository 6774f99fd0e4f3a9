package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults when no config file", func(t *testing.T) {
		// Ensure no config file exists for this test
		os.Remove("config.yml")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "https://www.nijiero-ch.com", cfg.Site.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Timeout())
		assert.Empty(t, cfg.HTTP.UserAgent)
	})

	t.Run("Loads from config file", func(t *testing.T) {
		configContent := `
port: 9999
site:
  base_url: "http://localhost:9000/"
http:
  timeout_seconds: 5
unknown_setting: "should be ignored"
`
		configPath := filepath.Join(t.TempDir(), "nijiero.yml")
		require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

		cfg, err := LoadFile(configPath)
		require.NoError(t, err)

		assert.Equal(t, 9999, cfg.Port)
		assert.Equal(t, "http://localhost:9000", cfg.Site.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Timeout())
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("NIJIERO_HTTP_USER_AGENT", "test-agent/1.0")
		t.Setenv("NIJIERO_PORT", "7070")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "test-agent/1.0", cfg.HTTP.UserAgent)
		assert.Equal(t, 7070, cfg.Port)
	})

	t.Run("Rejects negative timeout", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "bad.yml")
		require.NoError(t, os.WriteFile(configPath, []byte("http:\n  timeout_seconds: -1\n"), 0644))

		_, err := LoadFile(configPath)
		assert.Error(t, err)
	})
}
