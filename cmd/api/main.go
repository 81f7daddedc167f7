// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the HerStyle HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Run database migrations (idempotent).
//  4. Connect to PostgreSQL (pgxpool) and Redis.
//  5. Build the token service and ensure the bootstrap administrator.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/herstyle/internal/api"
	"github.com/taibuivan/herstyle/internal/catalog/product"
	"github.com/taibuivan/herstyle/internal/catalog/review"
	"github.com/taibuivan/herstyle/internal/commerce/cart"
	"github.com/taibuivan/herstyle/internal/commerce/order"
	"github.com/taibuivan/herstyle/internal/platform/config"
	"github.com/taibuivan/herstyle/internal/platform/constants"
	"github.com/taibuivan/herstyle/internal/platform/migration"
	pgstore "github.com/taibuivan/herstyle/internal/platform/postgres"
	redisstore "github.com/taibuivan/herstyle/internal/platform/redis"
	"github.com/taibuivan/herstyle/internal/platform/sec"
	"github.com/taibuivan/herstyle/internal/users/account"
	"github.com/taibuivan/herstyle/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String(constants.FieldVersion, constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Misconfiguration fails within the deadline.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 4. PostgreSQL & Redis ─────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 5. Token Service & Bootstrap Admin ────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.TokenKeys())
	must(log, err, "initialize token service")
	if tokens.UsesDerivedRefreshKey() {
		log.Warn("refresh_key_derived_from_access_key",
			slog.String("setting", "REFRESH_TOKEN_SECRET"),
		)
	}

	userRepository := auth.NewUserRepository(pool)
	authService := auth.NewService(userRepository, auth.NewRevocationStore(rdb), tokens)

	if cfg.HasBootstrapAdmin() {
		created, err := authService.EnsureAdmin(startupCtx, cfg.AdminEmail, cfg.AdminPassword)
		must(log, err, "ensure bootstrap admin")
		log.Info("bootstrap_admin_checked", slog.Bool("created", created))
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		CheckCache:    func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
	}, log)

	productRepository := product.NewPostgresRepository(pool)
	reviewRepository := review.NewPostgresRepository(pool)
	orderRepository := order.NewPostgresRepository(pool)

	cookies := auth.CookiePolicy{Secure: cfg.CookieSecure}
	if !cfg.CookieSecure && !cfg.IsDevelopment() {
		log.Warn("insecure_session_cookies", slog.String("environment", cfg.Environment))
	}
	dashboard := api.NewDashboard(userRepository, productRepository, orderRepository, reviewRepository)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService, cookies),
		Account:   account.NewHandler(account.NewService(userRepository)),
		Admin:     auth.NewAdminHandler(authService, cookies, dashboard),
		Products:  product.NewHandler(product.NewService(productRepository)),
		Reviews:   review.NewHandler(review.NewService(reviewRepository)),
		Cart:      cart.NewHandler(cart.NewService(cart.NewPostgresRepository(pool))),
		Orders:    order.NewHandler(order.NewService(orderRepository)),
	}

	// ── 7. HTTP Server & Graceful Shutdown ────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokens, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("server_shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// newLogger builds the process-wide JSON logger and installs it as the default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String(constants.FieldApp, constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, errors are returned and handled.
func must(log *slog.Logger, err error, step string) {
	if err == nil {
		return
	}

	attrs := []any{slog.String("step", step), slog.Any("error", err)}
	var configErr *sec.ConfigurationError
	if errors.As(err, &configErr) {
		attrs = append(attrs, slog.String("setting", configErr.Setting))
	}

	log.Error("startup_failure", attrs...)
	os.Exit(1)
}
