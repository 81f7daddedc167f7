// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account manages the profile of the signed-in shopper and the
back-office administration of accounts.

Accounts are the [auth.User] entities persisted by [auth.UserRepository];
this package adds no storage of its own.
*/
package account

import (
	"time"

	"github.com/taibuivan/herstyle/internal/platform/sec"
	"github.com/taibuivan/herstyle/internal/users/auth"
)

// # Profile Constraints

const (
	BioMaxLength          = 500
	ProfessionMaxLength   = 100
	ProfileImageMaxLength = 2048
)

// # Field Identifiers

const (
	FieldUsername     = "username"
	FieldBio          = "bio"
	FieldProfession   = "profession"
	FieldProfileImage = "profileImage"
	FieldRole         = "role"
	FieldID           = "id"
)

// UpdateProfileInput defines the mutable subset of profile fields.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Username     *string
	Bio          *string
	Profession   *string
	ProfileImage *string
}

// Summary is the projection returned by the admin account listing.
type Summary struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	Role      sec.UserRole `json:"role"`
	Username  string       `json:"username"`
	CreatedAt time.Time    `json:"createdAt"`
}

func summarize(user *auth.User) Summary {
	return Summary{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}
