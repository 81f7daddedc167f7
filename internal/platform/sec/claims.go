// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"encoding/json"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes access tokens from refresh tokens inside the payload.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

var (
	errMissingSubject = errors.New("sec: token has no subject")
	errUnknownRole    = errors.New("sec: token carries an unknown role")
)

// AuthClaims represents the payload embedded inside both access and refresh tokens.
//
// The verified claims are the authenticated identity of a request: downstream
// handlers read UserID and Role from here without touching the database.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID string    `json:"userId"`
	Role   UserRole  `json:"role"`
	Type   TokenType `json:"typ"`
}

// UnmarshalJSON decodes the payload and folds the legacy "id" field into UserID.
//
// Older clients were issued tokens keyed by "id"; those are still honored until they
// expire, but the rest of the code only ever sees UserID.
func (c *AuthClaims) UnmarshalJSON(data []byte) error {
	type plain AuthClaims

	var wire struct {
		plain
		LegacyID string `json:"id"`
	}

	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*c = AuthClaims(wire.plain)
	if c.UserID == "" {
		c.UserID = wire.LegacyID
	}

	return nil
}

// Validate implements [jwt.ClaimsValidator]. It runs after the standard time checks.
func (c AuthClaims) Validate() error {
	if c.UserID == "" {
		return errMissingSubject
	}
	if !c.Role.IsValid() {
		return errUnknownRole
	}
	return nil
}

// IsAdmin is a convenience for handlers that branch on administrative access.
func (c *AuthClaims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
