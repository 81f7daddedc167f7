// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert parses optional query-string values.

Every helper reports whether the input was usable, so callers can ignore a
malformed filter instead of failing the whole request.
*/
package convert

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat64 parses a finite decimal. Empty, malformed, NaN and infinite inputs report false.
func ToFloat64(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// ToFloat64Ptr is [ToFloat64] returning nil for unusable input.
func ToFloat64Ptr(raw string) *float64 {
	value, ok := ToFloat64(raw)
	if !ok {
		return nil
	}
	return &value
}

// ToBool accepts the forms understood by [strconv.ParseBool]; anything else is false.
func ToBool(raw string) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && value
}
