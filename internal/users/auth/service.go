// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/herstyle/internal/platform/apperr"
	"github.com/taibuivan/herstyle/internal/platform/ctxutil"
	"github.com/taibuivan/herstyle/internal/platform/sec"
	"github.com/taibuivan/herstyle/internal/platform/validate"
	"github.com/taibuivan/herstyle/pkg/uuid"
)

// # Contracts & Types

// TokenIssuer is the slice of [sec.TokenService] the session lifecycle needs.
type TokenIssuer interface {
	Issue(userID string, role sec.UserRole) (*sec.TokenPair, error)
	VerifyRefresh(tokenString string) (*sec.AuthClaims, error)
	AcceptsLegacyRefresh() bool
}

// Service implements registration, login and the refresh-token lifecycle.
type Service struct {
	users       UserRepository
	revocations RevocationStore
	tokens      TokenIssuer
	now         func() time.Time
}

// NewService constructs a new [Service] with its dependencies.
func NewService(users UserRepository, revocations RevocationStore, tokens TokenIssuer) *Service {
	return &Service{
		users:       users,
		revocations: revocations,
		tokens:      tokens,
		now:         time.Now,
	}
}

// WithClock replaces the time source used for revocation lifetimes.
func (service *Service) WithClock(now func() time.Time) *Service {
	service.now = now
	return service
}

// NormalizeEmail is the canonical form under which emails are stored and looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new shopper.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

/*
Register validates, hashes, and persists a new account with the user role.

Returns:
  - *User: Created entity
  - error: ValidationError, Conflict (email taken) or storage errors
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = NormalizeEmail(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).
		MaxLen(FieldUsername, input.Username, UsernameMaxLength).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		MinLen(FieldPassword, input.Password, PasswordMinLength).
		Custom(FieldPassword, len(input.Password) > PasswordMaxLength, fmt.Sprintf("Maximum %d bytes", PasswordMaxLength))

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.create(ctx, input, sec.RoleUser)
}

// create hashes the password and stores the account; the email must already be normalized.
func (service *Service) create(ctx context.Context, input RegisterInput, role sec.UserRole) (*User, error) {
	if _, err := service.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	} else if !apperr.HasCode(err, apperr.CodeNotFound) {
		return nil, err
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		Username:     input.Username,
	}

	if err := service.users.Create(ctx, user); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_registered",
		slog.String("user_id", user.ID),
		slog.String("role", user.Role.String()),
	)

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login validates credentials and issues an access/refresh token pair.

Description: Unknown emails and wrong passwords produce the same 401 after the
same amount of bcrypt work.

Returns:
  - *Session: Tokens and the account
  - error: Unauthenticated or internal failures
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*Session, error) {
	user, err := service.authenticate(ctx, input)
	if err != nil {
		return nil, err
	}
	return service.issue(user)
}

/*
AdminLogin is [Service.Login] restricted to accounts holding the admin role.

Non-admin accounts get the same generic 401 as a wrong password.
*/
func (service *Service) AdminLogin(ctx context.Context, input LoginInput) (*Session, error) {
	user, err := service.authenticate(ctx, input)
	if err != nil {
		return nil, err
	}

	if !user.IsAdmin() {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "admin_login_denied", slog.String("user_id", user.ID))
		return nil, apperr.Unauthenticated(msgInvalidCredentials)
	}

	return service.issue(user)
}

// authenticate resolves the account behind a credential pair.
func (service *Service) authenticate(ctx context.Context, input LoginInput) (*User, error) {
	email := NormalizeEmail(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.users.FindByEmail(ctx, email)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			sec.BurnPasswordCheck(input.Password)
			return nil, apperr.Unauthenticated(msgInvalidCredentials)
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthenticated(msgInvalidCredentials)
	}

	return user, nil
}

// # Session Management

/*
Refresh exchanges a valid refresh token for a new token pair.

Description:
  - Missing token: 401 UNAUTHENTICATED.
  - Expired token: 401 REFRESH_EXPIRED (terminal, the caller must log in again).
  - Invalid or revoked token, or a token without a jti outside the legacy
    window: 401 TOKEN_INVALID.
  - Subject no longer exists: 401 UNAUTHENTICATED.
  - requireAdmin and the current role is not admin: 403 FORBIDDEN.

The new pair always carries the role currently stored for the account, not
the role embedded in the presented token. The presented token stays valid.
*/
func (service *Service) Refresh(ctx context.Context, refreshToken string, requireAdmin bool) (*Session, error) {
	if refreshToken == "" {
		return nil, apperr.Unauthenticated(msgRefreshRequired)
	}

	claims, err := service.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		if errors.Is(err, sec.ErrTokenExpired) {
			return nil, apperr.RefreshExpired()
		}
		return nil, apperr.TokenInvalid(msgRefreshInvalid).WithCause(err)
	}

	// Without a jti the token could never be revoked; only the legacy window
	// accepts one.
	if claims.ID == "" {
		if !service.tokens.AcceptsLegacyRefresh() {
			return nil, apperr.TokenInvalid(msgRefreshInvalid)
		}
	} else {
		revoked, err := service.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, apperr.TokenInvalid(msgRefreshRevoked)
		}
	}

	// A malformed subject is indistinguishable from a deleted account.
	if !uuid.IsValid(claims.UserID) {
		return nil, apperr.Unauthenticated(msgUserNotFound)
	}

	user, err := service.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, apperr.Unauthenticated(msgUserNotFound)
		}
		return nil, err
	}

	if requireAdmin && !user.IsAdmin() {
		return nil, apperr.Forbidden(msgAdminRequired)
	}

	if user.Role != claims.Role {
		ctxutil.GetLogger(ctx).InfoContext(ctx, "refresh_role_changed",
			slog.String("user_id", user.ID),
			slog.String("token_role", claims.Role.String()),
			slog.String("current_role", user.Role.String()),
		)
	}

	return service.issue(user)
}

/*
Logout puts the presented refresh token on the deny-list until it would have expired.

Description: Tokens that no longer verify need no revocation, so logout is
idempotent and never fails on a bad token.
*/
func (service *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	claims, err := service.tokens.VerifyRefresh(refreshToken)
	if err != nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}

	remaining := claims.ExpiresAt.Sub(service.now())
	if err := service.revocations.Revoke(ctx, claims.ID, remaining); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_logged_out", slog.String("user_id", claims.UserID))
	return nil
}

// # Bootstrap

/*
EnsureAdmin creates an administrator account for email when none exists.

Description: An existing account under that email is left untouched, whatever its role.

Returns:
  - bool: whether an account was created
*/
func (service *Service) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	email = NormalizeEmail(email)

	existing, err := service.users.FindByEmail(ctx, email)
	if err == nil {
		if !existing.IsAdmin() {
			ctxutil.GetLogger(ctx).WarnContext(ctx, "bootstrap_admin_email_taken_by_user", slog.String("user_id", existing.ID))
		}
		return false, nil
	}
	if !apperr.HasCode(err, apperr.CodeNotFound) {
		return false, err
	}

	if len(password) < PasswordMinLength {
		return false, fmt.Errorf("auth_service_bootstrap_admin: password shorter than %d characters", PasswordMinLength)
	}

	if _, err := service.create(ctx, RegisterInput{
		Username: BootstrapAdminUsername,
		Email:    email,
		Password: password,
	}, sec.RoleAdmin); err != nil {
		return false, err
	}

	return true, nil
}

// issue signs a token pair for the account.
func (service *Service) issue(user *User) (*Session, error) {
	pair, err := service.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &Session{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		AccessExpiresAt:  pair.AccessExpiresAt,
		RefreshExpiresAt: pair.RefreshExpiresAt,
		User:             user,
	}, nil
}
