// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Credential Constraints

const (
	// PasswordMinLength is the shortest password accepted at registration.
	PasswordMinLength = 6

	// PasswordMaxLength matches bcrypt's 72-byte input ceiling.
	PasswordMaxLength = 72

	// UsernameMaxLength bounds display names.
	UsernameMaxLength = 50

	// BootstrapAdminUsername is given to the account created from ADMIN_EMAIL.
	BootstrapAdminUsername = "admin"
)

// # Client Messages

const (
	msgInvalidCredentials = "Invalid email or password"
	msgRefreshRequired    = "Refresh token is required"
	msgRefreshInvalid     = "Invalid refresh token"
	msgRefreshRevoked     = "Refresh token has been revoked"
	msgUserNotFound       = "User not found"
	msgAdminRequired      = "Admin access required"
)
