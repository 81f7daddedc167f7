// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/herstyle/pkg/convert"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		raw   string
		value float64
		ok    bool
	}{
		{"19.99", 19.99, true},
		{" 20 ", 20, true},
		{"", 0, false},
		{"cheap", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			value, ok := convert.ToFloat64(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.value, value)
		})
	}

	assert.Nil(t, convert.ToFloat64Ptr("abc"))
	assert.Equal(t, 5.0, *convert.ToFloat64Ptr("5"))
}

func TestToBool(t *testing.T) {
	assert.True(t, convert.ToBool("true"))
	assert.True(t, convert.ToBool("1"))
	assert.False(t, convert.ToBool("yes"))
	assert.False(t, convert.ToBool(""))
}
