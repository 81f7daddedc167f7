// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/herstyle/internal/catalog/product"
	"github.com/taibuivan/herstyle/internal/platform/ctxutil"
	"github.com/taibuivan/herstyle/internal/platform/sec"
)

func serve(handler http.Handler, method, target, body string, claims *sec.AuthClaims) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if claims != nil {
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_ListAdminMode only honors isAdmin=true for administrators.
*/
func TestHandler_ListAdminMode(t *testing.T) {
	repo := newRepository(linenDress())
	router := product.NewHandler(product.NewService(repo)).Routes()

	shopper := &sec.AuthClaims{UserID: "u1", Role: sec.RoleUser}
	admin := &sec.AuthClaims{UserID: adminID, Role: sec.RoleAdmin}

	recorder := serve(router, http.MethodGet, "/?isAdmin=true&minPrice=cheap&category=all", "", shopper)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotNil(t, repo.lastPage)
	assert.Nil(t, repo.lastFilter.MinPrice)
	assert.Empty(t, repo.lastFilter.Category)

	var envelope struct {
		Data []product.Product `json:"data"`
		Meta struct {
			Page       int `json:"page"`
			Limit      int `json:"limit"`
			Total      int `json:"total"`
			TotalPages int `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 1)
	assert.Equal(t, 10, envelope.Meta.Limit)

	recorder = serve(router, http.MethodGet, "/?isAdmin=true&maxPrice=80", "", admin)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, repo.lastPage)
	require.NotNil(t, repo.lastFilter.MaxPrice)
	assert.Equal(t, 80.0, *repo.lastFilter.MaxPrice)
}

/*
TestHandler_WriteGates keeps catalog edits behind the admin role.
*/
func TestHandler_WriteGates(t *testing.T) {
	router := product.NewHandler(product.NewService(newRepository(linenDress()))).Routes()

	shopper := &sec.AuthClaims{UserID: "u1", Role: sec.RoleUser}
	admin := &sec.AuthClaims{UserID: adminID, Role: sec.RoleAdmin}
	body := `{"name":"Hat","price":12,"image1":"https://cdn.herstyle.app/hat.jpg"}`

	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodPost, "/", body, nil).Code)
	assert.Equal(t, http.StatusForbidden, serve(router, http.MethodPost, "/", body, shopper).Code)
	assert.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/", body, admin).Code)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodPatch, "/"+dressID, `{"color":"Green"}`, admin).Code)
	assert.Equal(t, http.StatusForbidden, serve(router, http.MethodDelete, "/"+dressID, "", shopper).Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodDelete, "/"+dressID, "", admin).Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/"+dressID, "", nil).Code)
}

/*
TestHandler_ReadRoutes covers identifier validation and static route precedence.
*/
func TestHandler_ReadRoutes(t *testing.T) {
	router := product.NewHandler(product.NewService(newRepository(linenDress()))).Routes()

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/"+dressID, "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodGet, "/not-a-uuid", "", nil).Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/search?searchQuery=dress", "", nil).Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/related/"+dressID, "", nil).Code)

	recorder := serve(router, http.MethodGet, "/search", "", nil)
	assert.JSONEq(t, `{"data":[]}`, recorder.Body.String())
}
