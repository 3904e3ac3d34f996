package member

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fkhayef/giftbox/internal/tenant"
	"github.com/fkhayef/giftbox/pkg/response"
)

// Handler handles HTTP requests for member operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new member handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Routes returns the router for member endpoints.
// Mount it behind tenant.Require.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)

	return r
}

// List handles GET /members
// @Summary      List members
// @Description  List the caller's group roster, newest first
// @Tags         members
// @Produce      json
// @Success      200 {object} ListResponse
// @Failure      401 {object} response.ErrorBody
// @Router       /members [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	t, _ := tenant.FromContext(r.Context())

	members, err := h.service.List(r.Context(), t.GroupID)
	if err != nil {
		h.logger.Error("list members failed", zap.String("group_id", t.GroupID), zap.Error(err))
		response.InternalError(w, "Failed to list members", err)
		return
	}

	resp := ListResponse{Members: make([]*MemberResponse, len(members))}
	for i, m := range members {
		resp.Members[i] = m.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// Create handles POST /members
// @Summary      Add a member
// @Description  Add a person to the group by name, reusing an existing user of that name
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body CreateMemberRequest true "Member name"
// @Success      200 {object} CreateResponse
// @Failure      400 {object} response.ErrorBody
// @Failure      401 {object} response.ErrorBody
// @Router       /members [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	t, _ := tenant.FromContext(r.Context())

	var req CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	m, err := h.service.Create(r.Context(), t.GroupID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNameRequired):
			response.BadRequest(w, "Name is required")
		case errors.Is(err, ErrInvalidName):
			response.BadRequest(w, "Name must be at most 50 characters of letters, digits, spaces, dots or hyphens")
		case errors.Is(err, ErrMemberAlreadyExists):
			response.BadRequest(w, "User is already a member of this group")
		default:
			h.logger.Error("add member failed", zap.String("group_id", t.GroupID), zap.Error(err))
			response.InternalError(w, "Failed to add member", err)
		}
		return
	}

	h.logger.Info("member added",
		zap.String("group_id", t.GroupID),
		zap.String("member_id", m.ID),
		zap.String("user_id", m.UserID))
	response.JSON(w, http.StatusOK, CreateResponse{Success: true, Member: m.ToResponse()})
}

// Delete handles DELETE /members/{id}
// @Summary      Remove a member
// @Description  Remove a member together with their gifts; the user goes too once no group references it
// @Tags         members
// @Produce      json
// @Param        id path string true "Member ID (24 hex characters)"
// @Success      200 {object} response.SuccessBody
// @Failure      404 {object} response.ErrorBody
// @Router       /members/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	t, _ := tenant.FromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), t.GroupID, id); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			response.NotFound(w, "Member not found")
			return
		}
		h.logger.Error("remove member failed",
			zap.String("group_id", t.GroupID),
			zap.String("member_id", id),
			zap.Error(err))
		response.InternalError(w, "Failed to remove member", err)
		return
	}

	h.logger.Info("member removed", zap.String("group_id", t.GroupID), zap.String("member_id", id))
	response.OK(w)
}
