// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/herstyle/internal/platform/middleware"
	requestutil "github.com/taibuivan/herstyle/internal/platform/request"
	"github.com/taibuivan/herstyle/internal/platform/respond"
	"github.com/taibuivan/herstyle/pkg/slice"
)

// Handler implements the cart HTTP endpoints.
type Handler struct {
	cartService *Service
}

// NewHandler constructs a new cart [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{cartService: service}
}

// Routes returns a [chi.Router] configured with the cart routes. Every route
// requires authentication.
//
// # Endpoints
//   - GET    / : Current cart.
//   - PUT    / : Replace the cart.
//   - DELETE / : Empty the cart.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.get)
	router.Put("/", handler.replace)
	router.Delete("/", handler.clear)

	return router
}

type lineRequest struct {
	ID       string `json:"id"`
	LegacyID string `json:"_id"`
	Quantity int    `json:"quantity"`
}

type replaceRequest struct {
	Products []lineRequest `json:"products"`
}

// toLine accepts the product id under "id" or the older "_id" key.
func (line lineRequest) toLine() Line {
	id := line.ID
	if id == "" {
		id = line.LegacyID
	}
	return Line{ProductID: id, Quantity: line.Quantity}
}

/*
GET /api/cart.
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	cart, err := handler.cartService.Get(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, cart)
}

/*
PUT /api/cart.

Response:
  - 200: Cart
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) replace(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input replaceRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	lines := slice.Map(input.Products, lineRequest.toLine)
	cart, err := handler.cartService.Replace(request.Context(), userID, lines)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, cart)
}

/*
DELETE /api/cart.
*/
func (handler *Handler) clear(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.cartService.Clear(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Cart cleared")
}
