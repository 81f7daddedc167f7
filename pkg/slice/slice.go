// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice adds the generic transforms the standard [slices] package lacks.
*/
package slice

// Map applies transform to every element. A nil input yields an empty, non-nil
// slice so JSON responses render [] rather than null.
func Map[T, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for index, value := range input {
		result[index] = transform(value)
	}
	return result
}

// Filter keeps the elements for which keep returns true, preserving order.
func Filter[T any](input []T, keep func(T) bool) []T {
	result := make([]T, 0, len(input))
	for _, value := range input {
		if keep(value) {
			result = append(result, value)
		}
	}
	return result
}

// Unique drops repeated elements, keeping the first occurrence.
func Unique[T comparable](input []T) []T {
	seen := make(map[T]struct{}, len(input))
	result := make([]T, 0, len(input))
	for _, value := range input {
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}
