package i18n

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fkhayef/giftbox/pkg/response"
)

// Handler serves translation dictionaries to the client
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new dictionary handler
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// Routes returns the router for dictionary endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{locale}", h.Get)
	return r
}

// Get handles GET /i18n/{locale}
// @Summary      Get translations
// @Description  Return the message dictionary of a supported locale
// @Tags         i18n
// @Produce      json
// @Param        locale path string true "Locale code" Enums(en, ru, de)
// @Success      200 {object} map[string]string
// @Failure      404 {object} response.ErrorBody
// @Router       /i18n/{locale} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "locale")

	dict, err := Load(code)
	if err != nil {
		if errors.Is(err, ErrUnsupportedLocale) {
			response.NotFound(w, "Locale not supported")
			return
		}
		h.logger.Error("load dictionary failed", zap.String("locale", code), zap.Error(err))
		response.InternalError(w, "Failed to load translations", err)
		return
	}

	response.JSON(w, http.StatusOK, dict)
}
