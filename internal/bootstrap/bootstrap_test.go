package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unibrowser/internal/app/models"
	"github.com/yigit/unibrowser/internal/app/session"
	"github.com/yigit/unibrowser/internal/config"
	"github.com/yigit/unibrowser/internal/pkg/metrics"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.Server.Mode = "test"
	cfg.Dataset.Source = "file"
	cfg.Dataset.Path = ""
	cfg.Session.Store = "memory"
	cfg.RateLimit.RequestsPerSecond = 0
	return cfg
}

func buildRouter(t *testing.T, cfg *config.Config) *Dependencies {
	t.Helper()
	ctx := context.Background()
	lgr := zerolog.Nop()
	m := metrics.NewMetrics()

	pool, err := SetupDatabase(ctx, cfg, lgr)
	require.NoError(t, err)
	assert.Nil(t, pool)

	dataset, err := SetupDataset(ctx, cfg, pool, m, lgr)
	require.NoError(t, err)

	store, client, err := SetupSessionStore(ctx, cfg, lgr)
	require.NoError(t, err)

	return BuildDependencies(cfg, dataset, store, client, m, lgr)
}

func TestSetupRouter_ServesEveryRoute(t *testing.T) {
	cfg := testConfig(t)
	deps := buildRouter(t, cfg)
	assert.Equal(t, 13, deps.Dataset.Len(models.CategoryClassrooms))
	assert.IsType(t, &session.MemoryStore{}, deps.SessionStore)

	router, err := SetupRouter(cfg, deps, zerolog.Nop())
	require.NoError(t, err)

	for _, target := range []string{
		"/", "/ping", "/metrics",
		"/api/v1/health", "/api/v1/categories", "/api/v1/options",
		"/api/v1/search/classrooms", "/api/v1/charts/instructors",
		"/chart/departments.svg",
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, w.Code, target)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"), target)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "unibrowser_dataset_records")
}

func TestSetupRouter_CORS(t *testing.T) {
	cfg := testConfig(t)
	cfg.CORS.AllowedOrigins = "http://browser.example"
	router, err := SetupRouter(cfg, buildRouter(t, cfg), zerolog.Nop())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	req.Header.Set("Origin", "http://browser.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://browser.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSetupSessionStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.Session.Store = "redis"
	cfg.Redis.Addr = mr.Addr()

	deps := buildRouter(t, cfg)
	require.NotNil(t, deps.RedisClient)
	t.Cleanup(func() { _ = deps.RedisClient.Close() })
	assert.IsType(t, &session.RedisStore{}, deps.SessionStore)

	router, err := SetupRouter(cfg, deps, zerolog.Nop())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sessionStore":"ok"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, mr.Keys(), 1)
}

func TestSetupSessionStore_RedisDown(t *testing.T) {
	cfg := testConfig(t)
	cfg.Session.Store = "redis"
	cfg.Redis.Addr = "127.0.0.1:1"

	_, _, err := SetupSessionStore(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestSetupDataset_BadPath(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dataset.Path = filepath.Join(t.TempDir(), "missing.json")

	_, err := SetupDataset(context.Background(), cfg, nil, metrics.NewMetrics(), zerolog.Nop())
	assert.Error(t, err)
}
