package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"construction-erp/internal/cache"
	"construction-erp/internal/config"
	"construction-erp/internal/database"
	"construction-erp/internal/service"
	"construction-erp/internal/telemetry"
	"construction-erp/internal/worker"
)

func restoreGlobals() {
	loadConfig = config.Load
	setupTelemetry = telemetry.Setup
	newAuthenticator = service.NewAuthenticator
	newPgxPool = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn = database.RollbackAll
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool = worker.NewPool
	exitFunc = func(code int) {}
}

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL:   "db",
		JWTSecret:     "secret",
		RedisAddr:     "127",
		RedisPassword: "pw",
		RedisDB:       1,
		WorkerCount:   2,
		Port:          "5000",
	}
}

// stubDeps 讓 run() 不碰真正的 Postgres、Redis 與網路
func stubDeps(t *testing.T) {
	t.Helper()
	t.Cleanup(restoreGlobals)
	loadConfig = func() (*config.Config, error) { return testConfig(), nil }
	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	runMigrationsFn = func(string) error { return nil }
	rollbackAllFn = func(string) error { t.Fatal("unexpected rollback"); return nil }
	startServer = func(*echo.Echo, string) error { return nil }
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	stubDeps(t)
	called := make(map[string]bool)
	var order []string
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		order = append(order, "pgx")
		require.Equal(t, "db", url)
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		order = append(order, "redis")
		require.Equal(t, "127", addr)
		require.Equal(t, "pw", pwd)
		require.Equal(t, 1, db)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	runMigrationsFn = func(url string) error { order = append(order, "migrate"); return nil }
	newWorkerPool = func(n int) worker.Pool {
		order = append(order, "pool")
		require.Equal(t, 2, n)
		return worker.NewPool(n)
	}
	setupTelemetry = func(name, endpoint string, insecure bool) telemetry.ShutdownFunc {
		order = append(order, "telemetry")
		require.Equal(t, serviceName, name)
		return func(context.Context) error { called["telemetryShutdown"] = true; return nil }
	}
	startServer = func(e *echo.Echo, addr string) error {
		order = append(order, "start")
		require.Equal(t, ":5000", addr)
		return nil
	}

	require.NoError(t, run())
	require.Equal(t, []string{"telemetry", "pgx", "redis", "migrate", "pool", "start"}, order)
	require.True(t, called["dbClose"])
	require.True(t, called["redisClose"])
	require.True(t, called["telemetryShutdown"])
}

func TestRunRegistersRoutes(t *testing.T) {
	stubDeps(t)
	var routes []string
	startServer = func(e *echo.Echo, addr string) error {
		for _, r := range e.Routes() {
			routes = append(routes, r.Method+" "+r.Path)
		}
		return nil
	}
	require.NoError(t, run())
	require.Contains(t, routes, http.MethodPost+" /auth/login")
	require.Contains(t, routes, http.MethodGet+" /ai/project-risk/:id")
	require.Contains(t, routes, http.MethodGet+" /swagger/*")
}

func TestRunMigrateReset(t *testing.T) {
	stubDeps(t)
	var order []string
	loadConfig = func() (*config.Config, error) {
		c := testConfig()
		c.MigrateReset = true
		return c, nil
	}
	rollbackAllFn = func(string) error { order = append(order, "down"); return nil }
	runMigrationsFn = func(string) error { order = append(order, "up"); return nil }
	require.NoError(t, run())
	require.Equal(t, []string{"down", "up"}, order)

	rollbackAllFn = func(string) error { return errors.New("down") }
	require.Error(t, run())
}

func TestRunErrors(t *testing.T) {
	stubDeps(t)

	loadConfig = func() (*config.Config, error) { return nil, errors.New("config") }
	require.Error(t, run())
	loadConfig = func() (*config.Config, error) { return testConfig(), nil }

	newAuthenticator = func(string, time.Duration) (*service.Authenticator, error) { return nil, errors.New("jwt") }
	require.Error(t, run())
	newAuthenticator = service.NewAuthenticator

	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run())
	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }

	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run())
	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }

	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run())
	runMigrationsFn = func(string) error { return nil }

	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run())
}

func TestNewEchoCORS(t *testing.T) {
	e := newEcho()
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestMainFunction(t *testing.T) {
	stubDeps(t)
	exitCode := -1
	exitFunc = func(code int) { exitCode = code }
	main()
	require.Equal(t, -1, exitCode)
}

func TestMainExit(t *testing.T) {
	stubDeps(t)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("fail") }
	main()
	require.Equal(t, 1, exitCode)
}
