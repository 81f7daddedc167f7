// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/herstyle/internal/platform/middleware"
	requestutil "github.com/taibuivan/herstyle/internal/platform/request"
	"github.com/taibuivan/herstyle/internal/platform/respond"
)

// Handler implements the review HTTP endpoints.
type Handler struct {
	reviewService *Service
}

// NewHandler constructs a new review [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{reviewService: service}
}

// Routes returns a [chi.Router] configured with the review routes.
//
// # Endpoints
//   - POST /                     : Create or edit own review (auth).
//   - GET  /count                : Review total (public).
//   - GET  /product/{productId}  : Reviews of a product (public).
//   - GET  /user/{userId}        : Reviews by a user (self or admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/count", handler.count)
	router.Get("/product/{productId}", handler.byProduct)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.submit)
		r.Get("/user/{userId}", handler.byUser)
	})

	return router
}

type submitRequest struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

/*
POST /api/reviews.

Response:
  - 201: Review (new)
  - 200: Review (edited)
  - 400: VALIDATION_ERROR
  - 404: NOT_FOUND: Product missing
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input submitRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, created, err := handler.reviewService.Submit(request.Context(), userID, SubmitInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if created {
		respond.Created(writer, review)
		return
	}
	respond.OK(writer, review)
}

/*
GET /api/reviews/product/{productId}.
*/
func (handler *Handler) byProduct(writer http.ResponseWriter, request *http.Request) {
	reviews, err := handler.reviewService.ByProduct(request.Context(), requestutil.Param(request, FieldProductID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviews)
}

/*
GET /api/reviews/user/{userId}.

Response:
  - 200: Reviews
  - 403: FORBIDDEN: Another shopper's history
*/
func (handler *Handler) byUser(writer http.ResponseWriter, request *http.Request) {
	reviews, err := handler.reviewService.ByUser(request.Context(), requestutil.Claims(request), requestutil.Param(request, FieldUserID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviews)
}

/*
GET /api/reviews/count.
*/
func (handler *Handler) count(writer http.ResponseWriter, request *http.Request) {
	total, err := handler.reviewService.Count(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int{"count": total})
}
