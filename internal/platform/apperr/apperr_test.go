// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/herstyle/internal/platform/apperr"
)

/*
TestAuthTaxonomy verifies status codes and the refresh hint of every auth error.
*/
func TestAuthTaxonomy(t *testing.T) {
	tests := []struct {
		name         string
		err          *apperr.AppError
		code         string
		status       int
		needsRefresh bool
	}{
		{"unauthenticated", apperr.Unauthenticated("no token"), apperr.CodeUnauthenticated, http.StatusUnauthorized, false},
		{"token_invalid", apperr.TokenInvalid("bad token"), apperr.CodeTokenInvalid, http.StatusUnauthorized, false},
		{"token_expired", apperr.TokenExpired(), apperr.CodeTokenExpired, http.StatusUnauthorized, true},
		{"refresh_expired", apperr.RefreshExpired(), apperr.CodeRefreshExpired, http.StatusUnauthorized, false},
		{"forbidden", apperr.Forbidden("nope"), apperr.CodeForbidden, http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.needsRefresh, tt.err.NeedsRefresh)
		})
	}
}

/*
TestAs_WrappedChain checks that AppErrors survive fmt.Errorf wrapping.
*/
func TestAs_WrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("service_failed: %w", apperr.NotFound("Product"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "Product not found", ae.Message)
	assert.True(t, apperr.IsAppError(wrapped))
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeNotFound))
	assert.False(t, apperr.HasCode(errors.New("plain"), apperr.CodeNotFound))
	assert.Nil(t, apperr.As(errors.New("plain")))
}

/*
TestWithCause keeps the original untouched.
*/
func TestWithCause(t *testing.T) {
	base := apperr.TokenInvalid("Invalid token")
	cause := errors.New("signature is invalid")

	withCause := base.WithCause(cause)

	assert.Nil(t, base.Cause)
	assert.ErrorIs(t, withCause, cause)
	assert.Equal(t, base.Code, withCause.Code)
}
