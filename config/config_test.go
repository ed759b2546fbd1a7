package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	w, err := Load("")
	require.NoError(t, err)
	cfg := w.Get()

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, ":8081", cfg.Server.Addr())
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, devSessionSecret, cfg.Session.Secret)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 5, cfg.Upload.MaxImages)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxImageBytes)
	assert.Empty(t, cfg.Redis.URL)
	assert.False(t, cfg.IsProduction())
	assert.False(t, w.EnableHotReload(zap.NewNop()), "nothing to watch without a file")
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("RATE_LIMIT_REQUESTS", "7")
	t.Setenv("REDIS_URL", "redis://cache:6379/0")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://shop.example.com,https://admin.example.com")

	w, err := Load("")
	require.NoError(t, err)
	cfg := w.Get()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 7, cfg.RateLimit.Requests)
	assert.Equal(t, "redis://cache:6379/0", cfg.Redis.URL)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.Server.AllowedOrigins)
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"SERVER_PORT": "70000"}},
		{"bad level", map[string]string{"LOG_LEVEL": "loud"}},
		{"no secret in production", map[string]string{"APP_ENV": "production"}},
		{"zero images", map[string]string{"UPLOAD_MAX_IMAGES": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestLoadFileAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	writeConfig(t, path, "server:\n  port: 9000\nlog:\n  level: info\n")

	w, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, w.Get().Server.Port)

	var got *Config
	w.Subscribe(func(cfg *Config) { got = cfg })

	writeConfig(t, path, "server:\n  port: 9001\nlog:\n  level: debug\n")
	require.NoError(t, w.viper.ReadInConfig())
	w.reload(zap.NewNop())

	require.NotNil(t, got)
	assert.Equal(t, 9001, got.Server.Port)
	assert.Equal(t, 9001, w.Get().Server.Port)
	assert.Equal(t, "debug", w.Get().Log.Level)
}

func TestReloadKeepsPreviousConfigOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.yaml")
	writeConfig(t, path, "server:\n  port: 9000\n")

	w, err := Load(path)
	require.NoError(t, err)

	called := false
	w.Subscribe(func(*Config) { called = true })

	writeConfig(t, path, "server:\n  port: -1\n")
	require.NoError(t, w.viper.ReadInConfig())
	w.reload(zap.NewNop())

	assert.False(t, called)
	assert.Equal(t, 9000, w.Get().Server.Port)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestApplyLogLevel(t *testing.T) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	apply := ApplyLogLevel(level, zap.NewNop())

	apply(&Config{Log: LogConfig{Level: "debug"}})
	assert.Equal(t, zapcore.DebugLevel, level.Level())

	apply(&Config{Log: LogConfig{Level: "nonsense"}})
	assert.Equal(t, zapcore.DebugLevel, level.Level())
}

func TestNewLogger(t *testing.T) {
	log, level, err := NewLogger(LogConfig{Level: "warn", JSON: true})
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Equal(t, zapcore.WarnLevel, level.Level())

	_, _, err = NewLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)
}
