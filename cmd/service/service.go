// @title        Construction ERP API
// @version      1.0
// @description  營造業 ERP 後端 API：帳號、專案與預算風險評估
// @host         localhost:5000
// @BasePath     /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"construction-erp/internal/cache"
	"construction-erp/internal/config"
	"construction-erp/internal/database"
	"construction-erp/internal/router"
	"construction-erp/internal/service"
	"construction-erp/internal/telemetry"
	"construction-erp/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "construction-erp/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const serviceName = "construction-erp"

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig       = config.Load
	setupTelemetry   = telemetry.Setup
	newAuthenticator = service.NewAuthenticator
	newPgxPool       = database.NewPgxPool
	newRedisClient   = cache.NewRedisClient
	runMigrationsFn  = database.RunMigrations
	rollbackAllFn    = database.RollbackAll
	startServer      = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool    = worker.NewPool
	exitFunc         = os.Exit
)

// newEcho 建立 Echo 實例並掛上共用中介層
func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(echo.WrapMiddleware(func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, serviceName)
	}))
	return e
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	shutdownTelemetry := setupTelemetry(serviceName, cfg.OTLPEndpoint, cfg.OTLPInsecure)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(ctx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	authn, err := newAuthenticator(cfg.JWTSecret, service.AccessTokenTTL)
	if err != nil {
		return fmt.Errorf("JWT 設定失敗: %w", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	// 回滾並執行遷移，僅供開發環境重建 schema
	if cfg.MigrateReset {
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("RollbackAll 失敗: %w", err)
		}
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	e := newEcho()
	router.Setup(e, db, rdb, authn, wp)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return startServer(e, cfg.Addr())
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
