package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
environment:
  name: staging
http_server:
  port: 9000
  mode: release
  trusted_proxies: ["10.0.0.0/8", "172.16.0.1"]
database:
  in_memory: true
cors:
  allowed_origins: ["https://shop.example.com", "https://admin.example.com"]
rate_limit:
  requests_per_min: 120
  burst: 5
cache:
  size: 10
  ttl: 1m
seed:
  file: seed.yaml
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment.Name)
	assert.Equal(t, 9000, cfg.HTTPServer.Port)
	assert.Equal(t, "release", cfg.HTTPServer.Mode)
	assert.Equal(t, []string{"10.0.0.0/8", "172.16.0.1"}, cfg.HTTPServer.TrustedProxies)
	assert.True(t, cfg.Database.InMemory)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMin)
	assert.Equal(t, 5, cfg.RateLimit.Burst)
	assert.Equal(t, 10, cfg.Cache.Size)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "seed.yaml", cfg.Seed.File)

	// defaults fill the gaps
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "catalog.db", cfg.Database.Path)
	assert.Empty(t, cfg.HTTPServer.TrustedProxies)
}

func TestLoadFile_EnvOverride(t *testing.T) {
	path := writeConfig(t, "http_server:\n  port: 9000\n")
	t.Setenv("HTTP_SERVER_PORT", "9100")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.HTTPServer.Port)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"port", "http_server:\n  port: 70000\n"},
		{"database", "database:\n  path: \"\"\n"},
		{"cache", "cache:\n  size: -1\n"},
		{"environment", "environment:\n  name: qa\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(nil))
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a, b", " ", "c"}))
}
