// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"errors"
	"net/http"

	"github.com/taibuivan/herstyle/internal/platform/apperr"
	"github.com/taibuivan/herstyle/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/herstyle/internal/platform/request"
	"github.com/taibuivan/herstyle/internal/platform/respond"
	"github.com/taibuivan/herstyle/internal/platform/sec"
)

// TokenVerifier verifies access tokens for [Authenticate].
//
// [*sec.TokenService] satisfies it; tests inject stubs.
type TokenVerifier interface {
	VerifyAccess(tokenString string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the access token from the Authorization header.
//
// # Flow
//  1. No 'Authorization' header: the request proceeds as anonymous.
//  2. Header not in 'Bearer <token>' form: 401 TOKEN_INVALID.
//  3. Expired token: 401 TOKEN_EXPIRED with needsRefresh=true.
//  4. Any other verification failure: 401 TOKEN_INVALID.
//  5. Verified [*sec.AuthClaims] are injected into the request context.
//
// Authenticate never consults the database.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, present := requestutil.BearerToken(request)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if !present {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			if token == "" {
				respond.Error(writer, request, apperr.TokenInvalid("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyAccess(token)
			if err != nil {
				if errors.Is(err, sec.ErrTokenExpired) {
					respond.Error(writer, request, apperr.TokenExpired())
					return
				}
				respond.Error(writer, request, apperr.TokenInvalid("Invalid token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			recordIdentity(request.Context(), claims.UserID)
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthenticated("No token provided"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireRole blocks requests whose verified role is not exactly the target role.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It implies
// [RequireAuth] so you don't need to mount both.
//
// # Flow
//  1. No claims in context: 401 UNAUTHENTICATED.
//  2. Role does not satisfy the target: 403 FORBIDDEN.
func RequireRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetAuthUser(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthenticated("No token provided"))
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			if !claims.Role.Satisfies(role) {
				respond.Error(writer, request, apperr.Forbidden(forbiddenMessage(role)))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// RequireAdmin is [RequireRole] for the back-office role.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(sec.RoleAdmin)(next)
}

func forbiddenMessage(role sec.UserRole) string {
	if role == sec.RoleAdmin {
		return "Admin access required"
	}
	return "Insufficient permissions"
}
