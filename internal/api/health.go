// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/herstyle/internal/platform/constants"
	"github.com/taibuivan/herstyle/internal/platform/respond"
	"github.com/taibuivan/herstyle/pkg/slice"
)

// Check probes one dependency.
type Check func(ctx context.Context) error

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase Check

	// CheckCache pings the Redis client.
	CheckCache Check
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type namedCheck struct {
	name  string
	check Check
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health.
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{
		constants.FieldStatus:  "ok",
		constants.FieldApp:     constants.AppName,
		constants.FieldVersion: constants.AppVersion,
	})
}

// readiness handles GET /ready. Every dependency is pinged concurrently under
// a shared deadline; one failure marks the service degraded with a 503.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	checks := slice.Filter([]namedCheck{
		{name: "postgres", check: handler.dependencies.CheckDatabase},
		{name: "redis", check: handler.dependencies.CheckCache},
	}, func(c namedCheck) bool { return c.check != nil })

	ctx, cancel := context.WithTimeout(request.Context(), constants.ReadinessTimeout)
	defer cancel()

	results := make([]checkResult, len(checks))
	var group errgroup.Group
	for i, dependency := range checks {
		group.Go(func() error {
			results[i] = checkResult{Name: dependency.name, IsOK: true}
			if err := dependency.check(ctx); err != nil {
				results[i].IsOK = false
				results[i].Error = err.Error()
				handler.logger.ErrorContext(ctx, "readiness_check_failed",
					slog.String("dependency", dependency.name),
					slog.Any("error", err),
				)
			}
			return nil
		})
	}
	_ = group.Wait()

	status, httpStatus := "ready", http.StatusOK
	for _, result := range results {
		if !result.IsOK {
			status, httpStatus = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	respond.JSON(writer, httpStatus, respond.SuccessEnvelope{Data: map[string]any{
		constants.FieldStatus: status,
		constants.FieldChecks: results,
	}})
}
