// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Back-office access: catalog management, order fulfilment, user administration.
	RoleAdmin UserRole = "admin"

	// Default role for registered shoppers
	RoleUser UserRole = "user"
)

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// Satisfies reports whether r grants access to an operation that requires the target role.
//
// Roles are not hierarchical: only an exact match is admitted.
func (r UserRole) Satisfies(target UserRole) bool {
	return r.IsValid() && r == target
}

// String implements fmt.Stringer.
func (r UserRole) String() string {
	return string(r)
}
