// Package page renders the localized HTML shell around the JSON API.
package page

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fkhayef/giftbox/internal/i18n"
	"github.com/fkhayef/giftbox/internal/tenant"
	"github.com/fkhayef/giftbox/pkg/response"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// view is the data every page template receives
type view struct {
	Locale    string
	Locales   []string
	Path      string
	BaseURL   string
	GroupName string
	dict      i18n.Dictionary
}

// T translates key in the page locale
func (v view) T(key string) string {
	return v.dict.T(key)
}

// Handler renders the sign-in and dashboard pages
type Handler struct {
	resolver *tenant.Resolver
	baseURL  string
	logger   *zap.Logger
}

// NewHandler creates a new page handler
func NewHandler(resolver *tenant.Resolver, baseURL string, logger *zap.Logger) *Handler {
	return &Handler{resolver: resolver, baseURL: baseURL, logger: logger}
}

// Routes returns the router for pages under /{locale}
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.SignIn)
	r.Get("/dashboard", h.Dashboard)
	return r
}

// SignIn handles GET /{locale}
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	v, ok := h.newView(w, r, "/")
	if !ok {
		return
	}
	h.render(w, "signin.html", v)
}

// Dashboard handles GET /{locale}/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	t, err := h.resolver.Resolve(r)
	if err != nil {
		if errors.Is(err, tenant.ErrUnauthenticated) {
			http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
			return
		}
		h.logger.Error("resolve dashboard tenant failed", zap.Error(err))
		response.InternalError(w, "Failed to load dashboard", err)
		return
	}

	v, ok := h.newView(w, r, "/dashboard")
	if !ok {
		return
	}
	v.GroupName = t.GroupName
	h.render(w, "dashboard.html", v)
}

func (h *Handler) newView(w http.ResponseWriter, r *http.Request, path string) (view, bool) {
	locale := chi.URLParam(r, "locale")
	dict, err := i18n.Load(locale)
	if err != nil {
		if errors.Is(err, i18n.ErrUnsupportedLocale) {
			http.NotFound(w, r)
			return view{}, false
		}
		h.logger.Error("load dictionary failed", zap.String("locale", locale), zap.Error(err))
		response.InternalError(w, "Failed to load page", err)
		return view{}, false
	}

	return view{
		Locale:  locale,
		Locales: i18n.Supported,
		Path:    path,
		BaseURL: h.baseURL,
		dict:    dict,
	}, true
}

// render executes into a buffer so a template error never leaves a half-written page
func (h *Handler) render(w http.ResponseWriter, name string, v view) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, v); err != nil {
		h.logger.Error("render page failed", zap.String("template", name), zap.Error(err))
		response.InternalError(w, "Failed to render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
