// Package server wires the features into one HTTP handler.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/fkhayef/giftbox/docs"
	"github.com/fkhayef/giftbox/internal/auth"
	"github.com/fkhayef/giftbox/internal/config"
	"github.com/fkhayef/giftbox/internal/database"
	"github.com/fkhayef/giftbox/internal/gift"
	"github.com/fkhayef/giftbox/internal/group"
	"github.com/fkhayef/giftbox/internal/i18n"
	"github.com/fkhayef/giftbox/internal/member"
	"github.com/fkhayef/giftbox/internal/page"
	"github.com/fkhayef/giftbox/internal/tenant"
	"github.com/fkhayef/giftbox/internal/user"
	mw "github.com/fkhayef/giftbox/pkg/middleware"
	"github.com/fkhayef/giftbox/pkg/password"
	"github.com/fkhayef/giftbox/pkg/response"
	"github.com/fkhayef/giftbox/pkg/session"
)

// Models lists every table the application owns, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&group.Group{},
		&user.User{},
		&member.Membership{},
		&gift.Gift{},
	}
}

// Deps are the collaborators the router needs
type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Codec    *session.Codec
	Hasher   password.Hasher
	Logger   *zap.Logger
	Registry *prometheus.Registry
}

// NewRouter builds the application handler
func NewRouter(d Deps) http.Handler {
	secure := d.Config.IsProduction()
	logger := d.Logger

	// Group feature
	groupRepo := group.NewRepository(d.DB)
	groupService := group.NewService(groupRepo, d.Hasher)

	// User feature
	userRepo := user.NewRepository(d.DB)
	userService := user.NewService(userRepo, d.Hasher)

	// Member and gift features share the transaction manager for the delete cascade
	txManager := database.NewTxManager(d.DB)
	memberRepo := member.NewRepository(d.DB)
	giftRepo := gift.NewRepository(d.DB)
	giftService := gift.NewService(giftRepo, memberRepo)
	memberService := member.NewService(memberRepo, userService, giftRepo, txManager)

	resolver := tenant.NewResolver(d.Codec, groupRepo)

	authHandler := auth.NewHandler(groupService, d.Codec, resolver, secure, logger.Named("auth"))
	memberHandler := member.NewHandler(memberService, logger.Named("member"))
	giftHandler := gift.NewHandler(giftService, logger.Named("gift"))
	i18nHandler := i18n.NewHandler(logger.Named("i18n"))
	pageHandler := page.NewHandler(resolver, d.Config.BaseURL, logger.Named("page"))

	metrics := mw.NewMetrics(d.Registry)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger(logger.Named("http")))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Handler)
	if len(d.Config.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   d.Config.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", tenant.SilentHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	r.Use(mw.Locale(d.Codec, secure, logger.Named("locale")))

	r.Get("/health", health(d.DB, logger))
	r.Handle("/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes())
		r.Mount("/i18n", i18nHandler.Routes())

		r.Group(func(r chi.Router) {
			r.Use(tenant.Require(resolver, logger.Named("tenant")))
			r.Mount("/members", memberHandler.Routes())
			r.Mount("/gifts", giftHandler.Routes())
		})
	})

	// Localized pages
	r.Mount("/{locale}", pageHandler.Routes())

	return r
}

func health(db *gorm.DB, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			logger.Error("health check failed", zap.Error(err))
			response.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}

		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
