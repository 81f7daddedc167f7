// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/herstyle/internal/platform/apperr"
	"github.com/taibuivan/herstyle/internal/platform/ctxutil"
	"github.com/taibuivan/herstyle/internal/platform/sec"
	"github.com/taibuivan/herstyle/internal/platform/validate"
	"github.com/taibuivan/herstyle/internal/users/auth"
	"github.com/taibuivan/herstyle/pkg/pointer"
	"github.com/taibuivan/herstyle/pkg/slice"
	"github.com/taibuivan/herstyle/pkg/uuid"
)

const resourceUser = "User"

// # Service Layer

// Service orchestrates profile edits and account administration.
type Service struct {
	users auth.UserRepository
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(users auth.UserRepository) *Service {
	return &Service{users: users}
}

// # Profile Management

/*
GetProfile retrieves the private profile of a user.

Returns:
  - *auth.User: The hydrated profile
  - error: apperr.NotFound when the account was deleted since the token was issued
*/
func (service *Service) GetProfile(ctx context.Context, userID string) (*auth.User, error) {
	if !uuid.IsValid(userID) {
		return nil, apperr.NotFound(resourceUser)
	}

	user, err := service.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_profile_failed: %w", err)
	}
	return user, nil
}

/*
UpdateProfile applies a partial set of changes to the caller's own profile.

Description: The target is always the authenticated user; no identifier from
the request body is honored.
*/
func (service *Service) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*auth.User, error) {
	if input.Username != nil {
		trimmed := strings.TrimSpace(*input.Username)
		input.Username = &trimmed
	}

	validator := &validate.Validator{}
	if input.Username != nil {
		validator.Required(FieldUsername, *input.Username).MaxLen(FieldUsername, *input.Username, auth.UsernameMaxLength)
	}
	validator.MaxLen(FieldBio, pointer.Deref(input.Bio), BioMaxLength).
		MaxLen(FieldProfession, pointer.Deref(input.Profession), ProfessionMaxLength).
		MaxLen(FieldProfileImage, pointer.Deref(input.ProfileImage), ProfileImageMaxLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	changed := pointer.Apply(&user.Username, input.Username)
	changed = pointer.Apply(&user.Bio, input.Bio) || changed
	changed = pointer.Apply(&user.Profession, input.Profession) || changed
	changed = pointer.Apply(&user.ProfileImage, input.ProfileImage) || changed

	if !changed {
		return user, nil
	}

	if err := service.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_profile_updated", slog.String("user_id", userID))
	return user, nil
}

// # Administration

/*
ListUsers returns every account summary, newest first.
*/
func (service *Service) ListUsers(ctx context.Context) ([]Summary, error) {
	users, _, err := service.users.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("account_service_list_failed: %w", err)
	}
	return slice.Map(users, summarize), nil
}

/*
DeleteUser removes an account on behalf of an administrator.

Description: Administrators cannot delete their own account, which would
otherwise leave a deployment without any back-office access.
*/
func (service *Service) DeleteUser(ctx context.Context, actorID, userID string) error {
	if !uuid.IsValid(userID) {
		return apperr.NotFound(resourceUser)
	}
	if actorID == userID {
		return apperr.Forbidden("Administrators cannot delete their own account")
	}

	if err := service.users.Delete(ctx, userID); err != nil {
		return err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_deleted",
		slog.String("user_id", userID),
		slog.String("actor_id", actorID),
	)
	return nil
}

/*
UpdateRole changes an account's role.

Description: The change reaches live sessions at their next refresh, since
access tokens carry the role they were issued with.

Returns:
  - *auth.User: The updated account
  - error: ValidationError for unknown roles, NotFound for unknown accounts
*/
func (service *Service) UpdateRole(ctx context.Context, actorID, userID string, role sec.UserRole) (*auth.User, error) {
	validator := &validate.Validator{}
	validator.OneOf(FieldRole, role.String(), sec.RoleUser.String(), sec.RoleAdmin.String())
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if !uuid.IsValid(userID) {
		return nil, apperr.NotFound(resourceUser)
	}

	user, err := service.users.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(ctx).InfoContext(ctx, "user_role_updated",
		slog.String("user_id", userID),
		slog.String("actor_id", actorID),
		slog.String("role", role.String()),
	)
	return user, nil
}
