package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL())
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout())
	assert.Equal(t, 100, cfg.RateLimit.Requests)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen_addr: ":9999"
cache_ttl_secs: 60
store:
  driver: memory
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, time.Minute, cfg.CacheTTL())
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout(), "unset fields keep defaults")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PHOTOFEED_ADDR", ":7777")
	t.Setenv("PHOTOFEED_DB", "/tmp/override.db")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7777", cfg.ListenAddr)
	assert.Equal(t, "/tmp/override.db", cfg.Store.Path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown driver", func(c *Config) { c.Store.Driver = "redis" }, "unknown store driver"},
		{"missing feed url", func(c *Config) { c.FeedURL = "" }, "feed_url"},
		{"zero ttl", func(c *Config) { c.CacheTTLSecs = 0 }, "cache_ttl_secs"},
		{"postgres without url", func(c *Config) { c.Store.Driver = "postgres" }, "database_url"},
		{"sqlite without path", func(c *Config) { c.Store.Path = "" }, "store.path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
