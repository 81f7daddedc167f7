// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/herstyle/internal/platform/middleware"
	requestutil "github.com/taibuivan/herstyle/internal/platform/request"
	"github.com/taibuivan/herstyle/internal/platform/respond"
	"github.com/taibuivan/herstyle/pkg/convert"
	"github.com/taibuivan/herstyle/pkg/pagination"
	"github.com/taibuivan/herstyle/pkg/pointer"
)

// Handler implements the catalog HTTP endpoints.
type Handler struct {
	productService *Service
}

// NewHandler constructs a new catalog [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{productService: service}
}

// Routes returns a [chi.Router] configured with the catalog routes.
//
// # Endpoints
//   - GET    /              : Filtered listing (public).
//   - GET    /search        : Name search (public).
//   - GET    /related/{id}  : Similar products (public).
//   - GET    /{id}          : Single product (public).
//   - POST   /              : Create (admin).
//   - PATCH  /{id}          : Partial update (admin).
//   - DELETE /{id}          : Remove with reviews (admin).
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/search", handler.search)
	router.Get("/related/{id}", handler.related)
	router.Get("/{id}", handler.get)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Post("/", handler.create)
		r.Patch("/{id}", handler.update)
		r.Delete("/{id}", handler.delete)
	})

	return router
}

// # Read Endpoints

/*
GET /api/products.

Query:
  - category, color: exact, case-insensitive; "all" or blank means any
  - minPrice, maxPrice: ignored when not numbers
  - page, limit: pagination (defaults 1 and 10)
  - isAdmin=true: an authenticated admin receives every match on one page
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	filter := Filter{
		Category: query.Get("category"),
		Color:    query.Get("color"),
		MinPrice: convert.ToFloat64Ptr(query.Get("minPrice")),
		MaxPrice: convert.ToFloat64Ptr(query.Get("maxPrice")),
	}

	everything := convert.ToBool(query.Get("isAdmin")) && requestutil.Claims(request).IsAdmin()

	products, meta, err := handler.productService.List(request.Context(), filter, pagination.FromRequest(request), everything)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, products, meta)
}

/*
GET /api/products/search?searchQuery=.
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	products, err := handler.productService.Search(request.Context(), request.URL.Query().Get("searchQuery"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, products)
}

/*
GET /api/products/related/{id}.
*/
func (handler *Handler) related(writer http.ResponseWriter, request *http.Request) {
	products, err := handler.productService.Related(request.Context(), requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, products)
}

/*
GET /api/products/{id}.

Response:
  - 200: Product
  - 400: VALIDATION_ERROR: Malformed id
  - 404: NOT_FOUND
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.productService.Get(request.Context(), requestutil.Param(request, FieldID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, product)
}

// # Write Endpoints

type productRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	OldPrice    *float64 `json:"oldPrice"`
	Image1      *string  `json:"image1"`
	Color       *string  `json:"color"`
}

/*
POST /api/products.

Response:
  - 201: Product
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input productRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.productService.Create(request.Context(), authorID, CreateInput{
		Name:        pointer.Deref(input.Name),
		Category:    pointer.Deref(input.Category),
		Description: pointer.Deref(input.Description),
		Price:       pointer.Deref(input.Price),
		OldPrice:    input.OldPrice,
		Image1:      pointer.Deref(input.Image1),
		Color:       pointer.Deref(input.Color),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, product)
}

/*
PATCH /api/products/{id}.

Response:
  - 200: Product
  - 400: VALIDATION_ERROR
  - 404: NOT_FOUND
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input productRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.productService.Update(request.Context(), requestutil.Param(request, FieldID), UpdateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, product)
}

/*
DELETE /api/products/{id}.
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.productService.Delete(request.Context(), requestutil.Param(request, FieldID)); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Product deleted successfully")
}
