package gift

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fkhayef/giftbox/internal/tenant"
	"github.com/fkhayef/giftbox/pkg/objectid"
	"github.com/fkhayef/giftbox/pkg/response"
)

// Handler handles HTTP requests for gift operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new gift handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Routes returns the router for gift endpoints.
// Mount it behind tenant.Require.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)

	r.Group(func(r chi.Router) {
		r.Use(requireGiftID)
		r.Get("/{id}", h.GetByID)
		r.Post("/{id}", h.Update)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Put("/{id}/toggle", h.TogglePurchased)
	})

	return r
}

// requireGiftID rejects malformed ids before any store access
func requireGiftID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !objectid.Valid(chi.URLParam(r, "id")) {
			response.BadRequest(w, "Invalid gift ID format")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// List handles GET /gifts
// @Summary      List gifts
// @Description  List the group's gifts newest first, optionally for one member
// @Tags         gifts
// @Produce      json
// @Param        memberId query string false "Member ID filter"
// @Success      200 {object} ListResponse
// @Failure      401 {object} response.ErrorBody
// @Failure      500 {object} response.ErrorBody
// @Router       /gifts [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	t, _ := tenant.FromContext(r.Context())

	gifts, err := h.service.List(r.Context(), t.GroupID, r.URL.Query().Get("memberId"))
	if err != nil {
		h.logger.Error("list gifts failed", zap.String("group_id", t.GroupID), zap.Error(err))
		response.InternalError(w, "Failed to list gifts", err)
		return
	}

	resp := ListResponse{Gifts: make([]*GiftResponse, len(gifts))}
	for i, g := range gifts {
		resp.Gifts[i] = g.ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// Create handles POST /gifts
// @Summary      Create a gift
// @Description  Create a gift in the caller's group. Any groupId in the body is ignored.
// @Tags         gifts
// @Accept       json
// @Produce      json
// @Param        request body CreateGiftRequest true "Gift creation request"
// @Success      200 {object} MutationResponse
// @Failure      400 {object} response.ErrorBody
// @Failure      401 {object} response.ErrorBody
// @Router       /gifts [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	t, _ := tenant.FromContext(r.Context())

	var req CreateGiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	gift, err := h.service.Create(r.Context(), t.GroupID, &req)
	if err != nil {
		h.writeError(w, "Failed to create gift", t, err)
		return
	}

	h.logger.Info("gift created", zap.String("group_id", t.GroupID), zap.String("gift_id", gift.ID))
	response.JSON(w, http.StatusOK, MutationResponse{Success: true, Gift: gift.ToResponse()})
}

// GetByID handles GET /gifts/{id}
// @Summary      Get gift by ID
// @Tags         gifts
// @Produce      json
// @Param        id path string true "Gift ID (24 hex characters)"
// @Success      200 {object} GiftResponse
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody
// @Router       /gifts/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	t, _ := tenant.FromContext(r.Context())

	gift, err := h.service.Get(r.Context(), t.GroupID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "Failed to get gift", t, err)
		return
	}

	response.JSON(w, http.StatusOK, gift.ToResponse())
}

// Update handles PUT and POST /gifts/{id}
// @Summary      Update a gift
// @Tags         gifts
// @Accept       json
// @Produce      json
// @Param        id path string true "Gift ID (24 hex characters)"
// @Param        request body UpdateGiftRequest true "Fields to change"
// @Success      200 {object} MutationResponse
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody
// @Router       /gifts/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	t, _ := tenant.FromContext(r.Context())

	var req UpdateGiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	gift, err := h.service.Update(r.Context(), t.GroupID, chi.URLParam(r, "id"), &req)
	if err != nil {
		h.writeError(w, "Failed to update gift", t, err)
		return
	}

	response.JSON(w, http.StatusOK, MutationResponse{Success: true, Gift: gift.ToResponse()})
}

// Delete handles DELETE /gifts/{id}
// @Summary      Delete a gift
// @Tags         gifts
// @Produce      json
// @Param        id path string true "Gift ID (24 hex characters)"
// @Success      200 {object} response.SuccessBody
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody
// @Router       /gifts/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	t, _ := tenant.FromContext(r.Context())

	if err := h.service.Delete(r.Context(), t.GroupID, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, "Failed to delete gift", t, err)
		return
	}

	response.OK(w)
}

// TogglePurchased handles PUT /gifts/{id}/toggle
// @Summary      Toggle purchased
// @Description  Flip the purchased flag of a gift
// @Tags         gifts
// @Produce      json
// @Param        id path string true "Gift ID (24 hex characters)"
// @Success      200 {object} MutationResponse
// @Failure      404 {object} response.ErrorBody
// @Router       /gifts/{id}/toggle [put]
func (h *Handler) TogglePurchased(w http.ResponseWriter, r *http.Request) {
	t, _ := tenant.FromContext(r.Context())

	gift, err := h.service.TogglePurchased(r.Context(), t.GroupID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "Failed to toggle gift", t, err)
		return
	}

	response.JSON(w, http.StatusOK, MutationResponse{Success: true, Gift: gift.ToResponse()})
}

// writeError maps service errors onto HTTP responses
func (h *Handler) writeError(w http.ResponseWriter, message string, t *tenant.Tenant, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		response.BadRequest(w, "Invalid gift ID format")
	case errors.Is(err, ErrTitleRequired):
		response.BadRequest(w, "Gift title is required")
	case errors.Is(err, ErrTitleTooLong):
		response.BadRequest(w, "Gift title must be at most 200 characters")
	case errors.Is(err, ErrInvalidMember):
		response.BadRequest(w, "Member not found in this group")
	case errors.Is(err, ErrGiftNotFound):
		response.NotFound(w, "Gift not found")
	default:
		h.logger.Error(message, zap.String("group_id", t.GroupID), zap.Error(err))
		response.InternalError(w, message, err)
	}
}
