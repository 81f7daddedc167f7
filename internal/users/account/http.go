// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/herstyle/internal/platform/middleware"
	requestutil "github.com/taibuivan/herstyle/internal/platform/request"
	"github.com/taibuivan/herstyle/internal/platform/respond"
	"github.com/taibuivan/herstyle/internal/platform/sec"
)

// Handler implements the HTTP layer for account management.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with the account endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.Register(router)
	return router
}

// Register mounts the account routes on an existing router.
//
// # Endpoints
//   - GET    /current       : Caller's profile (auth).
//   - PATCH  /edit-profile  : Partial profile update (auth).
//   - GET    /users         : Account listing (admin).
//   - DELETE /users/{id}    : Account removal (admin).
//   - PUT    /users/{id}    : Role change (admin).
func (handler *Handler) Register(router chi.Router) {
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/current", handler.getCurrent)
		r.Patch("/edit-profile", handler.editProfile)
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/users", handler.listUsers)
		r.Delete("/users/{id}", handler.deleteUser)
		r.Put("/users/{id}", handler.updateRole)
	})
}

// # Profile Endpoints

/*
GET /api/user/current.

Response:
  - 200: User: The caller's profile
  - 401: UNAUTHENTICATED
  - 404: NOT_FOUND: Account deleted after the token was issued
*/
func (handler *Handler) getCurrent(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// editProfileRequest defines the partial JSON payload for profile updates.
type editProfileRequest struct {
	Username     *string `json:"username"`
	Bio          *string `json:"bio"`
	Profession   *string `json:"profession"`
	ProfileImage *string `json:"profileImage"`
}

/*
PATCH /api/user/edit-profile.

Response:
  - 200: User: The updated profile
  - 400: VALIDATION_ERROR
*/
func (handler *Handler) editProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input editProfileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.UpdateProfile(request.Context(), userID, UpdateProfileInput{
		Username:     input.Username,
		Bio:          input.Bio,
		Profession:   input.Profession,
		ProfileImage: input.ProfileImage,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// # Administration Endpoints

/*
GET /api/user/users.

Response:
  - 200: []Summary, every account newest first
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.accountService.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, users)
}

/*
DELETE /api/user/users/{id}.

Response:
  - 200: Message
  - 403: FORBIDDEN: Attempt to delete oneself
  - 404: NOT_FOUND
*/
func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.DeleteUser(request.Context(), actorID, requestutil.Param(request, FieldID)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "User deleted successfully")
}

type updateRoleRequest struct {
	Role sec.UserRole `json:"role"`
}

/*
PUT /api/user/users/{id}.

Response:
  - 200: User: The account with its new role
  - 400: VALIDATION_ERROR: Unknown role
  - 404: NOT_FOUND
*/
func (handler *Handler) updateRole(writer http.ResponseWriter, request *http.Request) {
	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateRoleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.UpdateRole(request.Context(), actorID, requestutil.Param(request, FieldID), input.Role)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}
