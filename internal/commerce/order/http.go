// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/herstyle/internal/platform/middleware"
	requestutil "github.com/taibuivan/herstyle/internal/platform/request"
	"github.com/taibuivan/herstyle/internal/platform/respond"
)

// Handler implements the order HTTP endpoints.
type Handler struct {
	orderService *Service
}

// NewHandler constructs a new order [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{orderService: service}
}

// Routes returns a [chi.Router] configured with the order routes.
//
// # Endpoints
//   - GET   /      : Own orders, or all for admins (auth).
//   - POST  /      : Checkout (auth).
//   - PATCH /{id}  : Change status (admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", handler.list)
		r.Post("/", handler.create)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Patch("/{id}", handler.updateStatus)
	})

	return router
}

type createRequest struct {
	Products      []Item        `json:"products"`
	TotalAmount   float64       `json:"totalAmount"`
	DeliveryInfo  *DeliveryInfo `json:"deliveryInfo"`
	PaymentMethod string        `json:"paymentMethod"`
}

type createResponse struct {
	Message string `json:"message"`
	Order   *Order `json:"order"`
}

/*
GET /api/orders.
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	orders, err := handler.orderService.List(request.Context(), requestutil.Claims(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, orders)
}

/*
POST /api/orders.

Response:
  - 201: {message, order}
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	order, err := handler.orderService.Create(request.Context(), userID, CreateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, createResponse{Message: "Order placed successfully", Order: order})
}

/*
PATCH /api/orders/{id}.

Response:
  - 200: Order
  - 400: VALIDATION_ERROR: Unknown status
  - 404: NOT_FOUND
*/
func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Status string `json:"status"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	order, err := handler.orderService.UpdateStatus(request.Context(), requestutil.Param(request, FieldID), input.Status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, order)
}
