package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/fkhayef/giftbox/internal/config"
	"github.com/fkhayef/giftbox/internal/database"
	"github.com/fkhayef/giftbox/internal/server"
	"github.com/fkhayef/giftbox/pkg/logging"
	"github.com/fkhayef/giftbox/pkg/password"
	"github.com/fkhayef/giftbox/pkg/response"
	"github.com/fkhayef/giftbox/pkg/session"
)

// @title        Giftbox API
// @version      1.0
// @description  Group gift tracking: cookie sessions, members and gifts scoped to the signed-in group.
// @BasePath     /api
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	response.ExposeErrorDetails(!cfg.IsProduction())

	codec, err := session.NewCodec(cfg.JWTSecret)
	if err != nil {
		logger.Fatal("JWT_SECRET must be set", zap.Error(err))
	}

	// Initialize database connection
	db, sqlDB, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.Migrate(db, server.Models()...); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.Info("connected to database")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(sqlDB, "giftbox"),
	)

	handler := server.NewRouter(server.Deps{
		Config:   cfg,
		DB:       db,
		Codec:    codec,
		Hasher:   password.NewBcryptHasher(password.DefaultCost),
		Logger:   logger,
		Registry: registry,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for a stop signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
