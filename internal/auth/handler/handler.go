// Package handler exposes the auth endpoints over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"atlas/internal/auth/models"
	"atlas/internal/platform/middleware"
	dErrors "atlas/pkg/domain-errors"
	"atlas/pkg/platform/httputil"
)

type Service interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.TokenPair, error)
	Signin(ctx context.Context, req *models.SigninRequest) (*models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
	Signout(ctx context.Context, userID string) error
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the public auth endpoints.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/signup", h.HandleSignup)
	r.Post("/auth/signin", h.HandleSignin)
	r.Post("/auth/refresh", h.HandleRefresh)
}

// RegisterProtected mounts the endpoints that require a valid access token.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Post("/auth/signout", h.HandleSignout)
}

// HandleSignup implements POST /auth/signup.
//
// Input: { "email": "user@example.com", "password": "..." }
// Output: { "accessToken": "...", "refreshToken": "..." }
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)
	req, ok := httputil.DecodeAndPrepare[models.SignupRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	pair, err := h.service.Signup(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "signup failed",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, pair)
}

// HandleSignin implements POST /auth/signin.
func (h *Handler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)
	req, ok := httputil.DecodeAndPrepare[models.SigninRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	pair, err := h.service.Signin(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "signin failed",
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, pair)
}

// HandleRefresh implements POST /auth/refresh.
//
// Input: { "refreshToken": "..." }
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)
	req, ok := httputil.DecodeAndPrepare[models.RefreshRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	pair, err := h.service.Refresh(ctx, req.RefreshToken)
	if err != nil {
		h.logger.WarnContext(ctx, "token refresh failed",
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, pair)
}

// HandleSignout implements POST /auth/signout. The user comes from the access
// token; no body is required.
func (h *Handler) HandleSignout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := middleware.GetUserID(ctx)
	if userID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing authenticated user"))
		return
	}

	if err := h.service.Signout(ctx, userID); err != nil {
		h.logger.WarnContext(ctx, "signout failed",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
