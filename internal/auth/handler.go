// Package auth exposes group registration and the cookie session endpoints.
package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fkhayef/giftbox/internal/group"
	"github.com/fkhayef/giftbox/internal/i18n"
	"github.com/fkhayef/giftbox/internal/tenant"
	"github.com/fkhayef/giftbox/pkg/response"
	"github.com/fkhayef/giftbox/pkg/session"
)

// Handler handles HTTP requests for authentication
type Handler struct {
	groups   *group.Service
	codec    *session.Codec
	resolver *tenant.Resolver
	secure   bool
	logger   *zap.Logger
}

// NewHandler creates a new auth handler. secure marks cookies HTTPS-only.
func NewHandler(groups *group.Service, codec *session.Codec, resolver *tenant.Resolver, secure bool, logger *zap.Logger) *Handler {
	return &Handler{
		groups:   groups,
		codec:    codec,
		resolver: resolver,
		secure:   secure,
		logger:   logger,
	}
}

// Routes returns the router for auth endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/verify", h.Verify)

	return r
}

// Register handles POST /auth/register
// @Summary      Register a group
// @Description  Create a new group with a shared password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body group.RegisterRequest true "Group credentials"
// @Success      201 {object} RegisterResponse
// @Failure      400 {object} response.ErrorBody
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req group.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	g, err := h.groups.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, group.ErrNameRequired):
			response.BadRequest(w, "Group name and password are required")
		case errors.Is(err, group.ErrNameTooLong):
			response.BadRequest(w, "Group name must be at most 100 characters")
		case errors.Is(err, group.ErrPasswordTooShort):
			response.BadRequest(w, "Password must be at least 6 characters")
		case errors.Is(err, group.ErrGroupNameTaken):
			response.BadRequest(w, "Group name already taken")
		default:
			h.logger.Error("register group failed", zap.Error(err))
			response.InternalError(w, "Failed to register group", err)
		}
		return
	}

	h.logger.Info("group registered", zap.String("group_id", g.ID), zap.String("group_name", g.Name))
	response.JSON(w, http.StatusCreated, RegisterResponse{Success: true, Group: g.ToResponse()})
}

// Login handles POST /auth/login
// @Summary      Sign in
// @Description  Check group credentials and set the session and locale cookies
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Group credentials"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} response.ErrorBody
// @Failure      401 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || req.Password == "" {
		response.BadRequest(w, "Group name and password are required")
		return
	}

	g, err := h.groups.Authenticate(r.Context(), req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, group.ErrGroupNotFound):
			response.NotFound(w, "Group not found")
		case errors.Is(err, group.ErrInvalidPassword):
			response.Unauthorized(w, "Invalid password")
		default:
			h.logger.Error("login failed", zap.Error(err))
			response.InternalError(w, "Failed to sign in", err)
		}
		return
	}

	token, err := h.codec.Issue(g.Name)
	if err != nil {
		h.logger.Error("issue session token failed", zap.String("group_id", g.ID), zap.Error(err))
		response.InternalError(w, "Failed to sign in", err)
		return
	}

	session.SetCookie(w, token, h.secure)
	i18n.SetCookie(w, i18n.Resolve(r))

	h.logger.Info("group signed in", zap.String("group_id", g.ID))
	response.JSON(w, http.StatusOK, LoginResponse{Token: token, Success: true})
}

// Logout handles POST /auth/logout
// @Summary      Sign out
// @Description  Clear the session cookie
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.SuccessBody
// @Router       /auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session.ClearCookie(w, h.secure)
	response.OK(w)
}

// Verify handles GET /auth/verify
// @Summary      Check session
// @Description  Report the signed-in group. With X-Auth-Silent set, failures answer 200 {"success":false}.
// @Tags         auth
// @Produce      json
// @Param        X-Auth-Silent header string false "Silent probe (true or 1)"
// @Success      200 {object} VerifyResponse
// @Failure      401 {object} response.ErrorBody
// @Router       /auth/verify [get]
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	t, err := h.resolver.Resolve(r)
	if err != nil {
		if errors.Is(err, tenant.ErrUnauthenticated) {
			tenant.Unauthenticated(w, r)
			return
		}
		h.logger.Error("verify session failed", zap.Error(err))
		response.InternalError(w, "Failed to verify session", err)
		return
	}

	response.JSON(w, http.StatusOK, VerifyResponse{Success: true, GroupName: t.GroupName})
}
