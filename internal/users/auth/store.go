// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"

	"github.com/taibuivan/herstyle/internal/platform/sec"
	"github.com/taibuivan/herstyle/pkg/pagination"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(ctx context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account registered under the (lower-cased) email.

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByEmail(ctx context.Context, email string) (*User, error)

	/*
		Create persists a brand-new account.

		Returns:
		  - error: apperr.Conflict on duplicate email, or storage failures
	*/
	Create(ctx context.Context, user *User) error

	/*
		Update persists the mutable profile fields (username, bio, profession, profileImage).
	*/
	Update(ctx context.Context, user *User) error

	/*
		UpdateRole changes the role of an account and returns the updated entity.
	*/
	UpdateRole(ctx context.Context, id string, role sec.UserRole) (*User, error)

	/*
		Delete removes an account. apperr.NotFound when no row matched.
	*/
	Delete(ctx context.Context, id string) error

	/*
		List returns accounts newest first, plus the total count. A nil page
		returns every account.
	*/
	List(ctx context.Context, page *pagination.Params) ([]*User, int, error)

	/*
		CountByRole returns the number of accounts per role.
	*/
	CountByRole(ctx context.Context) (map[sec.UserRole]int, error)
}

// # Volatile Data Access

// RevocationStore is the deny-list of refresh token IDs ended by logout.
type RevocationStore interface {

	/*
		Revoke records the token ID until ttl elapses (the token's own remaining lifetime).
	*/
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	/*
		IsRevoked reports whether the token ID is on the deny-list.
	*/
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
