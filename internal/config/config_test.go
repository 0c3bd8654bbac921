package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE", StoreMemory)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5555, cfg.Port)
	assert.Equal(t, ":5555", cfg.Addr())
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 10.0, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.False(t, cfg.TrustProxy)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.JWTSecret)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://localhost/bakery")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, "postgres://localhost/bakery", cfg.DatabaseURL)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.Zero(t, cfg.RateLimitRPS)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.TrustProxy)
}

func TestLoad_ConfigFileOverriddenByEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bakery.yaml")
	content := "store: memory\nport: 7000\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7001")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, 7001, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"postgres without url", map[string]string{}, "DATABASE_URL"},
		{"unknown store", map[string]string{"STORE": "sqlite"}, "STORE"},
		{"bad port", map[string]string{"STORE": StoreMemory, "PORT": "70000"}, "PORT"},
		{"bad level", map[string]string{"STORE": StoreMemory, "LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad format", map[string]string{"STORE": StoreMemory, "LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"zero burst", map[string]string{"STORE": StoreMemory, "RATE_LIMIT_BURST": "0"}, "RATE_LIMIT_BURST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv("STORE", StoreMemory)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
