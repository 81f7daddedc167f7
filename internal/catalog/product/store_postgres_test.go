// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeContains(t *testing.T) {
	tests := []struct {
		term    string
		pattern string
	}{
		{"dress", "%dress%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`c:\x`, `%c:\\x%`},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.pattern, likeContains(tt.term))
		})
	}
}

func TestWhereClause(t *testing.T) {
	where := &whereClause{}
	assert.Empty(t, where.String())

	where.add("lower(category) = lower($%d)", "dresses")
	where.add("price >= $%d", 10.0)

	assert.Equal(t, "WHERE lower(category) = lower($1) AND price >= $2", fmt.Sprint(where))
	assert.Equal(t, []any{"dresses", 10.0}, where.args)
}
