package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, "https://maps.googleapis.com", cfg.Google.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Google.Timeout())
	assert.False(t, cfg.Google.CacheServiceResponses)
	assert.Equal(t, "file", cfg.Cache.Backend)
	assert.Equal(t, 20*24*time.Hour, cfg.Cache.MaxAge)
	assert.Equal(t, 256, cfg.Tile.Size)
	assert.Equal(t, 25, cfg.Tile.BrandingMargin)
	assert.True(t, cfg.Tile.RemoveBranding)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}

func TestLoad_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GOOGLE_CREDENTIALS", "id=gme-test;key=c2VjcmV0")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("CACHE_MAX_AGE", "3600")
	t.Setenv("TILE_REMOVE_BRANDING", "false")
	t.Setenv("API_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "id=gme-test;key=c2VjcmV0", cfg.Google.Credentials)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, time.Hour, cfg.Cache.MaxAge)
	assert.False(t, cfg.Tile.RemoveBranding)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_InvalidTileSize(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TILE_SIZE", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TILE_SIZE")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
