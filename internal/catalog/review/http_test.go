// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/herstyle/internal/catalog/review"
	"github.com/taibuivan/herstyle/internal/platform/ctxutil"
	"github.com/taibuivan/herstyle/internal/platform/sec"
)

func serve(handler http.Handler, method, target, body string, claims *sec.AuthClaims) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if claims != nil {
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_Submit answers 201 for a new review and 200 for an edit.
*/
func TestHandler_Submit(t *testing.T) {
	router := review.NewHandler(review.NewService(newRepository(dressID))).Routes()
	shopper := &sec.AuthClaims{UserID: shopperID, Role: sec.RoleUser}
	body := `{"productId":"` + dressID + `","rating":4,"comment":"Nice"}`

	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodPost, "/", body, nil).Code)
	assert.Equal(t, http.StatusCreated, serve(router, http.MethodPost, "/", body, shopper).Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodPost, "/", body, shopper).Code)

	missing := `{"productId":"` + missingID + `","rating":4}`
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodPost, "/", missing, shopper).Code)
	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodPost, "/", `{"productId":"`+dressID+`","rating":9}`, shopper).Code)

	recorder := serve(router, http.MethodGet, "/count", "", nil)
	assert.JSONEq(t, `{"data":{"count":1}}`, recorder.Body.String())
}

/*
TestHandler_Listings covers the public product listing and guarded user history.
*/
func TestHandler_Listings(t *testing.T) {
	router := review.NewHandler(review.NewService(newRepository(dressID))).Routes()
	shopper := &sec.AuthClaims{UserID: shopperID, Role: sec.RoleUser}
	other := &sec.AuthClaims{UserID: otherID, Role: sec.RoleUser}

	serve(router, http.MethodPost, "/", `{"productId":"`+dressID+`","rating":5}`, shopper)

	recorder := serve(router, http.MethodGet, "/product/"+dressID, "", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), shopperID)

	recorder = serve(router, http.MethodGet, "/product/not-a-uuid", "", nil)
	assert.JSONEq(t, `{"data":[]}`, recorder.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodGet, "/user/"+shopperID, "", nil).Code)
	assert.Equal(t, http.StatusForbidden, serve(router, http.MethodGet, "/user/"+shopperID, "", other).Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/user/"+shopperID, "", shopper).Code)
}
