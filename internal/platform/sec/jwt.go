// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. The [TokenService] is built once at startup from an explicit
// [KeyConfig] and injected into the auth service and the HTTP middleware.
//
// # Token Model
//
// Access and refresh tokens share the [AuthClaims] payload but are signed with
// different HS256 keys and carry a "typ" claim, so one can never be accepted
// where the other is expected.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/herstyle/pkg/uuid"
)

// # Defaults

const (
	// DefaultAccessTTL is the lifetime of an access token.
	DefaultAccessTTL = 24 * time.Hour

	// DefaultRefreshTTL is the lifetime of a refresh token.
	DefaultRefreshTTL = 7 * 24 * time.Hour

	// legacyRefreshSuffix reproduces the historical derivation of the refresh key.
	legacyRefreshSuffix = "_refresh"
)

// # Errors

var (
	// ErrTokenExpired is returned when a token is well-formed and correctly signed
	// but its exp claim has passed.
	ErrTokenExpired = errors.New("sec: token expired")

	// ErrTokenInvalid covers every other verification failure: bad signature,
	// malformed structure, unexpected algorithm, wrong token type, missing claims.
	ErrTokenInvalid = errors.New("sec: token invalid")
)

// ConfigurationError reports unusable signing key settings.
//
// It is a startup-time failure; the service must not boot with it.
type ConfigurationError struct {
	Setting string
	Reason  string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("sec: invalid configuration for %s: %s", e.Setting, e.Reason)
}

// # Configuration

// KeyConfig holds the signing material and lifetimes for the [TokenService].
type KeyConfig struct {
	// AccessSecret signs access tokens. Required.
	AccessSecret string

	// RefreshSecret signs refresh tokens. Required unless AllowDerivedRefresh is set.
	RefreshSecret string

	// AllowDerivedRefresh derives the refresh key from AccessSecret when RefreshSecret
	// is empty, and keeps honoring refresh tokens without a "jti". Only meant to
	// keep refresh tokens issued by older deployments valid.
	AllowDerivedRefresh bool

	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Issuer is written to and required in the "iss" claim.
	Issuer string
}

// # Service

// TokenPair is the result of a successful issuance.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshID        string
	RefreshExpiresAt time.Time
}

// TokenService issues and verifies HS256 access and refresh tokens.
type TokenService struct {
	accessKey     []byte
	refreshKey    []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	derivedSecret bool
	legacyRefresh bool
	now           func() time.Time
}

// Option customizes a [TokenService].
type Option func(*TokenService)

// WithClock replaces the time source used for issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(service *TokenService) {
		service.now = now
	}
}

// NewTokenService validates cfg and builds a [TokenService].
//
// # Returns
//   - A *ConfigurationError if no access key is configured, if the refresh key is
//     missing without the legacy derivation enabled, or if both keys are identical.
func NewTokenService(cfg KeyConfig, options ...Option) (*TokenService, error) {
	if cfg.AccessSecret == "" {
		return nil, &ConfigurationError{Setting: "JWT_SECRET_KEY", Reason: "signing key is not set"}
	}

	refreshSecret := cfg.RefreshSecret
	derived := false
	if refreshSecret == "" {
		if !cfg.AllowDerivedRefresh {
			return nil, &ConfigurationError{Setting: "REFRESH_TOKEN_SECRET", Reason: "refresh signing key is not set"}
		}
		refreshSecret = cfg.AccessSecret + legacyRefreshSuffix
		derived = true
	}

	if refreshSecret == cfg.AccessSecret {
		return nil, &ConfigurationError{Setting: "REFRESH_TOKEN_SECRET", Reason: "must differ from JWT_SECRET_KEY"}
	}

	service := &TokenService{
		accessKey:     []byte(cfg.AccessSecret),
		refreshKey:    []byte(refreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		issuer:        cfg.Issuer,
		derivedSecret: derived,
		legacyRefresh: cfg.AllowDerivedRefresh,
		now:           time.Now,
	}

	if service.accessTTL <= 0 {
		service.accessTTL = DefaultAccessTTL
	}
	if service.refreshTTL <= 0 {
		service.refreshTTL = DefaultRefreshTTL
	}

	for _, option := range options {
		option(service)
	}

	return service, nil
}

// UsesDerivedRefreshKey reports whether the refresh key was derived from the access key.
func (service *TokenService) UsesDerivedRefreshKey() bool {
	return service.derivedSecret
}

// AcceptsLegacyRefresh reports whether refresh tokens minted without a "jti"
// are still honored. Such tokens cannot be revoked by logout.
func (service *TokenService) AcceptsLegacyRefresh() bool {
	return service.legacyRefresh
}

// AccessTTL returns the configured access token lifetime.
func (service *TokenService) AccessTTL() time.Duration {
	return service.accessTTL
}

// RefreshTTL returns the configured refresh token lifetime.
func (service *TokenService) RefreshTTL() time.Duration {
	return service.refreshTTL
}

// Issue creates a signed access token and a signed refresh token for a user.
func (service *TokenService) Issue(userID string, role UserRole) (*TokenPair, error) {
	if userID == "" {
		return nil, fmt.Errorf("sec: cannot issue token: %w", errMissingSubject)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("sec: cannot issue token for role %q: %w", role, errUnknownRole)
	}

	issuedAt := service.now()

	accessToken, accessExpiresAt, _, err := service.sign(userID, role, TokenTypeAccess, issuedAt)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiresAt, refreshID, err := service.sign(userID, role, TokenTypeRefresh, issuedAt)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     refreshToken,
		RefreshID:        refreshID,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

// VerifyAccess checks the signature, type and expiry of an access token.
func (service *TokenService) VerifyAccess(tokenString string) (*AuthClaims, error) {
	return service.verify(tokenString, TokenTypeAccess)
}

// VerifyRefresh checks the signature, type and expiry of a refresh token.
func (service *TokenService) VerifyRefresh(tokenString string) (*AuthClaims, error) {
	return service.verify(tokenString, TokenTypeRefresh)
}

// sign builds and signs a single token of the given type.
func (service *TokenService) sign(userID string, role UserRole, tokenType TokenType, issuedAt time.Time) (string, time.Time, string, error) {
	key, ttl := service.keyFor(tokenType)
	expiresAt := issuedAt.Add(ttl)
	tokenID := uuid.New()

	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: userID,
		Role:   role,
		Type:   tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(key)
	if err != nil {
		return "", time.Time{}, "", fmt.Errorf("sec: failed to sign %s token: %w", tokenType, err)
	}

	return signedToken, expiresAt, tokenID, nil
}

// verify parses tokenString with the key matching expected and classifies failures.
func (service *TokenService) verify(tokenString string, expected TokenType) (*AuthClaims, error) {
	key, _ := service.keyFor(expected)

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	)

	claims := &AuthClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	// Tokens minted before typ/iss were introduced carry neither; the key already
	// pins them to one token type.
	if claims.Type != "" && claims.Type != expected {
		return nil, fmt.Errorf("%w: expected %s token, got %q", ErrTokenInvalid, expected, claims.Type)
	}
	if claims.Issuer != "" && service.issuer != "" && claims.Issuer != service.issuer {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrTokenInvalid, claims.Issuer)
	}

	return claims, nil
}

// keyFor returns the signing key and lifetime for a token type.
func (service *TokenService) keyFor(tokenType TokenType) ([]byte, time.Duration) {
	if tokenType == TokenTypeRefresh {
		return service.refreshKey, service.refreshTTL
	}
	return service.accessKey, service.accessTTL
}
