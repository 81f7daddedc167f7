// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/herstyle/internal/platform/constants"
	"github.com/taibuivan/herstyle/internal/platform/middleware"
	requestutil "github.com/taibuivan/herstyle/internal/platform/request"
	"github.com/taibuivan/herstyle/internal/platform/respond"
)

// # Definitions & Constructors

// CookiePolicy controls the attributes of the session cookies.
type CookiePolicy struct {
	// Secure marks cookies as HTTPS-only and cross-site (SameSite=None).
	// When false (local development) cookies fall back to SameSite=Lax.
	Secure bool
}

// Handler implements the shopper-facing session endpoints under /api/user.
type Handler struct {
	authService *Service
	cookies     CookiePolicy
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service, cookies CookiePolicy) *Handler {
	return &Handler{authService: service, cookies: cookies}
}

// Routes returns a [chi.Router] configured with the session routes.
//
// # Endpoints
//   - POST /register      : Creates a new account.
//   - POST /login         : Authenticates and returns a token pair.
//   - POST /refresh-token : Exchanges a refresh token for a new pair.
//   - POST /logout        : Clears cookies and revokes the refresh token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.Register(router)
	return router
}

// Register mounts the session routes on an existing router so they can share
// the /api/user prefix with the account routes. They never read the caller's
// access token, so a stale one cannot block a refresh, login or logout.
func (handler *Handler) Register(router chi.Router) {
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/refresh-token", handler.refresh)
	router.Post("/logout", handler.logout)
}

// # Request Payloads

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// loginResponse is the body of a successful login.
type loginResponse struct {
	Message      string `json:"message"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// refreshResponse is the body of a successful refresh.
type refreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

/*
Register handles the creation of a new user account.

POST /api/user/register

Response:
  - 201: User: Created profile
  - 400: VALIDATION_ERROR
  - 409: CONFLICT: Email already registered
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

/*
Login authenticates a shopper and establishes a session.

POST /api/user/login

Description: Tokens are returned in the body and also set as httpOnly cookies.

Response:
  - 200: loginResponse
  - 401: UNAUTHENTICATED: Unknown email or wrong password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	handler.loginWith(writer, request, handler.authService.Login, "Login successful")
}

/*
Refresh issues a new token pair.

POST /api/user/refresh-token

Description: The refresh token is read from the JSON body, then from the cookie.

Response:
  - 200: refreshResponse
  - 401: UNAUTHENTICATED, TOKEN_INVALID or REFRESH_EXPIRED
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	handler.refreshWith(writer, request, false)
}

/*
Logout terminates the session.

POST /api/user/logout

Description: Always clears both cookies. A verifiable refresh token is revoked.

Response:
  - 200: Message
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	token, err := refreshTokenFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.Logout(request.Context(), token); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.clearSessionCookies(writer)
	respond.Message(writer, "Logged out successfully")
}

// # Shared Flows

type loginFunc func(ctx context.Context, input LoginInput) (*Session, error)

func (handler *Handler) loginWith(writer http.ResponseWriter, request *http.Request, login loginFunc, message string) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := login(request.Context(), LoginInput{Email: input.Email, Password: input.Password})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setSessionCookies(writer, session)
	respond.OK(writer, loginResponse{
		Message:      message,
		Token:        session.AccessToken,
		RefreshToken: session.RefreshToken,
		User:         session.User,
	})
}

func (handler *Handler) refreshWith(writer http.ResponseWriter, request *http.Request, requireAdmin bool) {
	token, err := refreshTokenFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Refresh(request.Context(), token, requireAdmin)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.setSessionCookies(writer, session)
	respond.OK(writer, refreshResponse{
		Token:        session.AccessToken,
		RefreshToken: session.RefreshToken,
	})
}

// refreshTokenFrom prefers the body field over the cookie.
func refreshTokenFrom(request *http.Request) (string, error) {
	var input refreshRequest
	if err := requestutil.DecodeOptionalJSON(request, &input); err != nil {
		return "", err
	}

	if input.RefreshToken != "" {
		return input.RefreshToken, nil
	}
	return requestutil.CookieValue(request, constants.RefreshTokenCookieName), nil
}

// # Cookies

func (handler *Handler) setSessionCookies(writer http.ResponseWriter, session *Session) {
	http.SetCookie(writer, handler.cookie(constants.AccessTokenCookieName, session.AccessToken, session.AccessExpiresAt))
	http.SetCookie(writer, handler.cookie(constants.RefreshTokenCookieName, session.RefreshToken, session.RefreshExpiresAt))
}

func (handler *Handler) clearSessionCookies(writer http.ResponseWriter) {
	for _, name := range []string{constants.AccessTokenCookieName, constants.RefreshTokenCookieName} {
		cookie := handler.cookie(name, "", time.Time{})
		cookie.MaxAge = -1
		http.SetCookie(writer, cookie)
	}
}

func (handler *Handler) cookie(name, value string, expires time.Time) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if handler.cookies.Secure {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		Secure:   handler.cookies.Secure,
		HttpOnly: true,
		SameSite: sameSite,
	}
}

// # Back Office

// DashboardReader produces the admin overview.
type DashboardReader interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
}

// AdminHandler implements the back-office session endpoints under /api/admin.
type AdminHandler struct {
	session   *Handler
	dashboard DashboardReader
}

// NewAdminHandler constructs a new [AdminHandler].
func NewAdminHandler(service *Service, cookies CookiePolicy, dashboard DashboardReader) *AdminHandler {
	return &AdminHandler{
		session:   NewHandler(service, cookies),
		dashboard: dashboard,
	}
}

// Routes returns a [chi.Router] configured with the admin routes.
//
// # Endpoints
//   - POST /login         : Admin-only login.
//   - POST /refresh-token : Refresh that also requires the current role to be admin.
//   - GET  /dashboard     : Aggregate counts (admin).
func (handler *AdminHandler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.Register(router)
	handler.RegisterDashboard(router)
	return router
}

// Register mounts the admin session routes. They never read the caller's
// access token, so a stale one cannot block a refresh.
func (handler *AdminHandler) Register(router chi.Router) {
	router.Post("/login", handler.login)
	router.Post("/refresh-token", handler.refresh)
}

// RegisterDashboard mounts the admin-gated routes. The router must run
// [middleware.Authenticate].
func (handler *AdminHandler) RegisterDashboard(router chi.Router) {
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/dashboard", handler.getDashboard)
	})
}

/*
login authenticates a back-office user.

POST /api/admin/login

Response:
  - 200: loginResponse
  - 401: UNAUTHENTICATED: Bad credentials or not an admin
*/
func (handler *AdminHandler) login(writer http.ResponseWriter, request *http.Request) {
	handler.session.loginWith(writer, request, handler.session.authService.AdminLogin, "Admin login successful")
}

/*
refresh issues a new pair for an account that is still an admin.

POST /api/admin/refresh-token

Response:
  - 200: refreshResponse
  - 401: as the shopper refresh
  - 403: FORBIDDEN: Account is no longer an admin
*/
func (handler *AdminHandler) refresh(writer http.ResponseWriter, request *http.Request) {
	handler.session.refreshWith(writer, request, true)
}

/*
getDashboard returns the aggregate counts.

GET /api/admin/dashboard
*/
func (handler *AdminHandler) getDashboard(writer http.ResponseWriter, request *http.Request) {
	dashboard, err := handler.dashboard.Dashboard(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, dashboard)
}
