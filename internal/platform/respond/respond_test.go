// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/herstyle/internal/platform/apperr"
	"github.com/taibuivan/herstyle/internal/platform/respond"
)

/*
TestError_Envelope checks the wire shape of the error responses.
*/
func TestError_Envelope(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		status       int
		code         string
		needsRefresh bool
	}{
		{"token_expired", apperr.TokenExpired(), http.StatusUnauthorized, apperr.CodeTokenExpired, true},
		{"refresh_expired", apperr.RefreshExpired(), http.StatusUnauthorized, apperr.CodeRefreshExpired, false},
		{"forbidden", apperr.Forbidden("Admin access required"), http.StatusForbidden, apperr.CodeForbidden, false},
		{"plain_error", errors.New("connection reset"), http.StatusInternalServerError, apperr.CodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/api/orders", nil)

			respond.Error(recorder, request, tt.err)

			assert.Equal(t, tt.status, recorder.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body["code"])
			assert.NotEmpty(t, body["message"])

			flag, present := body["needsRefresh"]
			assert.Equal(t, tt.needsRefresh, present)
			if present {
				assert.Equal(t, true, flag)
			}
		})
	}
}

/*
TestError_HidesInternalCause ensures server-side causes never reach the client.
*/
func TestError_HidesInternalCause(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(recorder, request, apperr.Internal(errors.New("pq: relation does not exist")))

	assert.NotContains(t, recorder.Body.String(), "relation")
}

/*
TestOK_Envelope checks the success wrapper.
*/
func TestOK_Envelope(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, map[string]int{"users": 3})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"users":3}}`, recorder.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
}
