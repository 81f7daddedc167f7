// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/herstyle/internal/platform/ctxutil"
	"github.com/taibuivan/herstyle/internal/platform/sec"
	"github.com/taibuivan/herstyle/internal/users/account"
	"github.com/taibuivan/herstyle/internal/users/auth"
	"github.com/taibuivan/herstyle/pkg/uuid"
)

func serve(handler http.Handler, method, path string, body io.Reader, claims *sec.AuthClaims) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, body)
	if claims != nil {
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_Gates checks which routes need which identity.
*/
func TestHandler_Gates(t *testing.T) {
	service, _ := newService(t)
	router := account.NewHandler(service).Routes()

	jane := &sec.AuthClaims{UserID: janeID, Role: sec.RoleUser}
	boss := &sec.AuthClaims{UserID: bossID, Role: sec.RoleAdmin}

	tests := []struct {
		name   string
		method string
		path   string
		claims *sec.AuthClaims
		status int
	}{
		{"current_anonymous", http.MethodGet, "/current", nil, http.StatusUnauthorized},
		{"current_shopper", http.MethodGet, "/current", jane, http.StatusOK},
		{"users_anonymous", http.MethodGet, "/users", nil, http.StatusUnauthorized},
		{"users_shopper", http.MethodGet, "/users", jane, http.StatusForbidden},
		{"users_admin", http.MethodGet, "/users", boss, http.StatusOK},
		{"delete_shopper", http.MethodDelete, "/users/" + bossID, jane, http.StatusForbidden},
		{"delete_missing", http.MethodDelete, "/users/" + missID, boss, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(router, tt.method, tt.path, nil, tt.claims)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

/*
TestHandler_EditProfileTargetsCaller ignores any id smuggled in the body.
*/
func TestHandler_EditProfileTargetsCaller(t *testing.T) {
	service, users := newService(t)
	router := account.NewHandler(service).Routes()

	body := strings.NewReader(`{"userId":"` + bossID + `","bio":"new bio"}`)
	recorder := serve(router, http.MethodPatch, "/edit-profile", body, &sec.AuthClaims{UserID: janeID, Role: sec.RoleUser})
	require.Equal(t, http.StatusOK, recorder.Code)

	jane, err := users.FindByID(t.Context(), janeID)
	require.NoError(t, err)
	assert.Equal(t, "new bio", jane.Bio)

	boss, err := users.FindByID(t.Context(), bossID)
	require.NoError(t, err)
	assert.Empty(t, boss.Bio)
}

/*
TestHandler_ListUsers returns every account in one unpaginated list.
*/
func TestHandler_ListUsers(t *testing.T) {
	service, users := newService(t)
	for range 12 {
		id := uuid.New()
		users.Put(&auth.User{ID: id, Email: id + "@herstyle.app", Role: sec.RoleUser})
	}
	router := account.NewHandler(service).Routes()

	recorder := serve(router, http.MethodGet, "/users?page=1&limit=5", nil, &sec.AuthClaims{UserID: bossID, Role: sec.RoleAdmin})
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"data"`
		Meta json.RawMessage `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 14)
	assert.Nil(t, envelope.Meta)
}

/*
TestHandler_UpdateRole renders the updated account.
*/
func TestHandler_UpdateRole(t *testing.T) {
	service, _ := newService(t)
	router := account.NewHandler(service).Routes()
	boss := &sec.AuthClaims{UserID: bossID, Role: sec.RoleAdmin}

	recorder := serve(router, http.MethodPut, "/users/"+janeID, strings.NewReader(`{"role":"admin"}`), boss)
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, janeID, envelope.Data.ID)
	assert.Equal(t, "admin", envelope.Data.Role)

	recorder = serve(router, http.MethodPut, "/users/"+janeID, strings.NewReader(`{"role":"root"}`), boss)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
