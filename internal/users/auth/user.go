// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the user identity and session management layer.

It defines the account entity, the credential store contract and the session
lifecycle: registration, login, refresh-token exchange and logout.

# Architecture

  - Service: Orchestrates credential checks and token issuance.
  - Repository: Postgres for accounts, Redis for the refresh token deny-list.
  - Security: bcrypt hashes and HS256 tokens from the sec package.
*/
package auth

import (
	"time"

	"github.com/taibuivan/herstyle/internal/platform/sec"
)

// # Domain Entities

// User represents a registered account of the HerStyle storefront.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Never serialized.
	Role         sec.UserRole `json:"role"`
	Username     string       `json:"username"`
	Bio          string       `json:"bio"`
	Profession   string       `json:"profession"`
	ProfileImage string       `json:"profileImage"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// IsAdmin reports whether the account holds the back-office role.
func (u *User) IsAdmin() bool {
	return u.Role == sec.RoleAdmin
}

// Session is the result of a successful login or refresh.
type Session struct {
	AccessToken      string    `json:"token"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"-"`
	RefreshExpiresAt time.Time `json:"-"`
	User             *User     `json:"user,omitempty"`
}

// Dashboard is the admin overview returned by GET /api/admin/dashboard.
type Dashboard struct {
	Users    int `json:"users"`
	Admins   int `json:"admins"`
	Products int `json:"products"`
	Orders   int `json:"orders"`
	Reviews  int `json:"reviews"`
}

// # Field Identifiers

const (
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldRefreshToken = "refreshToken"
	FieldMessage      = "message"
)
