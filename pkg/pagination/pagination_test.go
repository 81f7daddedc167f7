// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/herstyle/pkg/pagination"
)

/*
TestFromRequest verifies query parsing and clamping.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		page   int
		limit  int
		offset int
	}{
		{"defaults", "", 1, 10, 0},
		{"explicit", "?page=3&limit=20", 3, 20, 40},
		{"garbage", "?page=abc&limit=xyz", 1, 10, 0},
		{"negative", "?page=-2&limit=-5", 1, 10, 0},
		{"capped", "?limit=1000", 1, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/products"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.limit, params.Limit)
			assert.Equal(t, tt.offset, params.Offset())
		})
	}
}

/*
TestNewMeta checks the derived page counters.
*/
func TestNewMeta(t *testing.T) {
	assert.Equal(t, 3, pagination.NewMeta(2, 10, 25).TotalPages)
	assert.Equal(t, 1, pagination.NewMeta(1, 10, 10).TotalPages)
	assert.Equal(t, 0, pagination.NewMeta(1, 10, 0).TotalPages)
	assert.Equal(t, 0, pagination.NewMeta(1, 0, 5).TotalPages)
}
