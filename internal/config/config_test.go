package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursescheduler/internal/pkg/apperrors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "Go", cfg.Greeting.Runtime)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 1<<20, cfg.Server.MaxHeaderBytes)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.PrettyLogs())
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  mode: production
  shutdown_timeout: 30s
  max_header_bytes: 4096
logging:
  level: debug
  format: text
greeting:
  runtime: WebAssembly
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 4096, cfg.Server.MaxHeaderBytes)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.PrettyLogs())
	assert.Equal(t, "WebAssembly", cfg.Greeting.Runtime)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"9090\"\n")
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("GREETING_RUNTIME", "TinyGo")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("SERVER_MAX_HEADER_BYTES", "8192")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 8192, cfg.Server.MaxHeaderBytes)
	assert.Equal(t, "TinyGo", cfg.Greeting.Runtime)
}

func TestLoadConfig_InvalidEnvValue(t *testing.T) {
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "soon")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_SHUTDOWN_TIMEOUT")
}

func TestLoadConfig_UnreadableFile(t *testing.T) {
	// A directory exists but cannot be read as a file
	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty port", body: "server:\n  port: \"\"\n"},
		{name: "empty runtime", body: "greeting:\n  runtime: \" \"\n"},
		{name: "unknown log format", body: "logging:\n  format: xml\n"},
		{name: "zero shutdown timeout", body: "server:\n  shutdown_timeout: 0s\n"},
		{name: "negative max header bytes", body: "server:\n  max_header_bytes: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestSetFieldFromEnv(t *testing.T) {
	var target struct {
		Count   int
		Enabled bool
		Timeout time.Duration
	}
	v := reflect.ValueOf(&target).Elem()

	require.NoError(t, setFieldFromEnv(v.Field(0), "42"))
	require.NoError(t, setFieldFromEnv(v.Field(2), "1500ms"))
	assert.Equal(t, 42, target.Count)
	assert.Equal(t, 1500*time.Millisecond, target.Timeout)

	assert.Error(t, setFieldFromEnv(v.Field(0), "forty"))
	assert.Error(t, setFieldFromEnv(v.Field(2), "soon"))
	assert.Error(t, setFieldFromEnv(v.Field(1), "true"))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("COURSESCHEDULER_TEST_KEY", "set")

	assert.Equal(t, "set", GetEnv("COURSESCHEDULER_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("COURSESCHEDULER_UNSET_KEY", "fallback"))
}
