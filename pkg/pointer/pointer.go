// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer holds the generic helpers used by partial-update payloads,
where a nil field means "leave unchanged".
*/
package pointer

// To returns a pointer to a copy of value.
func To[T any](value T) *T {
	return &value
}

// Deref returns the pointed-to value, or the zero value for nil.
func Deref[T any](pointer *T) T {
	if pointer == nil {
		var zero T
		return zero
	}
	return *pointer
}

// Apply overwrites *target with *patch when patch is set and reports whether it did.
func Apply[T any](target *T, patch *T) bool {
	if patch == nil {
		return false
	}
	*target = *patch
	return true
}
