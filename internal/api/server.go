// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/herstyle/internal/catalog/product"
	"github.com/taibuivan/herstyle/internal/catalog/review"
	"github.com/taibuivan/herstyle/internal/commerce/cart"
	"github.com/taibuivan/herstyle/internal/commerce/order"
	"github.com/taibuivan/herstyle/internal/platform/apperr"
	"github.com/taibuivan/herstyle/internal/platform/config"
	"github.com/taibuivan/herstyle/internal/platform/constants"
	"github.com/taibuivan/herstyle/internal/platform/middleware"
	"github.com/taibuivan/herstyle/internal/platform/respond"
	"github.com/taibuivan/herstyle/internal/users/account"
	"github.com/taibuivan/herstyle/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler.
	Readiness http.HandlerFunc

	// Auth handles shopper sessions (register, login, refresh, logout).
	Auth *auth.Handler

	// Account handles profiles and account administration.
	Account *account.Handler

	// Admin handles back-office sessions and the dashboard.
	Admin *auth.AdminHandler

	Products *product.Handler
	Reviews  *review.Handler
	Cart     *cart.Handler
	Orders   *order.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. The rate limiter's eviction loop stops with ctx.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	limiter := middleware.NewRateLimiter(ctx, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst)

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.PanicRecovery)
	r.Use(limiter.Middleware)
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(chimw.CleanPath)

	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("Route"))
	})

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Session endpoints sit outside Authenticate: a client holding an expired
	// access token must still be able to refresh, log in or log out.
	authenticate := middleware.Authenticate(verifier)

	r.Route("/api", func(api chi.Router) {
		api.Route("/user", func(user chi.Router) {
			h.Auth.Register(user)
			user.Group(func(identified chi.Router) {
				identified.Use(authenticate)
				h.Account.Register(identified)
			})
		})

		api.Route("/admin", func(admin chi.Router) {
			h.Admin.Register(admin)
			admin.Group(func(identified chi.Router) {
				identified.Use(authenticate)
				h.Admin.RegisterDashboard(identified)
			})
		})

		api.Group(func(identified chi.Router) {
			identified.Use(authenticate)
			identified.Mount("/products", h.Products.Routes())
			identified.Mount("/reviews", h.Reviews.Routes())
			identified.Mount("/cart", h.Cart.Routes())
			identified.Mount("/orders", h.Orders.Routes())
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
