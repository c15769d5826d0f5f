package bootstrap

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursescheduler/internal/config"
)

func TestLoadConfigAndSetupLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("greeting:\n  runtime: WebAssembly\n"), 0o644))

	cfg, _, err := LoadConfigAndSetupLogger(path)
	require.NoError(t, err)
	assert.Equal(t, "WebAssembly", cfg.Greeting.Runtime)
}

func TestLoadConfigAndSetupLogger_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: xml\n"), 0o644))

	cfg, _, err := LoadConfigAndSetupLogger(path)
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestBuildDependenciesAndRouter(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	var logs bytes.Buffer
	lgr := zerolog.New(&logs)

	deps := BuildDependencies(cfg, lgr)
	require.NotNil(t, deps.CourseService)
	require.NotNil(t, deps.CourseController)
	assert.Contains(t, logs.String(), "Course scheduler module loaded successfully")

	router := SetupRouter(cfg, deps, lgr)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/greet?name=Ada", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello, Ada, from Go!")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.True(t, strings.Contains(logs.String(), `"path":"/api/v1/greet"`))
}
