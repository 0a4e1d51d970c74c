// Package main is the entry point for the TravelMate API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/pressly/goose/v3"

	"github.com/hsolberg/travelmate/internal/amadeus"
	"github.com/hsolberg/travelmate/internal/config"
	"github.com/hsolberg/travelmate/internal/handler"
	"github.com/hsolberg/travelmate/internal/middleware"
	"github.com/hsolberg/travelmate/internal/repo"
	"github.com/hsolberg/travelmate/internal/service"
	"github.com/hsolberg/travelmate/internal/store"
	"github.com/hsolberg/travelmate/migrations"
	"github.com/hsolberg/travelmate/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger; the JSON handler writes
	// machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Store ------------------------------------------------------------
	// A single SQLite file holds every collection. Migrations run at every
	// start; goose makes re-applying them a no-op.
	kv, err := store.Open(cfg.DataPath)
	if err != nil {
		slog.Error("failed to open data file", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	provider, err := goose.NewProvider(goose.DialectSQLite3, kv.DB(), migrations.FS)
	if err != nil {
		slog.Error("failed to create migration provider", "error", err)
		os.Exit(1)
	}
	if _, err := provider.Up(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("data file ready", "path", cfg.DataPath)

	// --- Services ---------------------------------------------------------
	trips := repo.NewTripRepo(kv)
	users := repo.NewUserRepo(kv)
	sessions := repo.NewSessionRepo(kv)

	seeder := service.NewSeeder(trips)
	tripService := service.NewTripService(trips)
	authService := service.NewAuthService(users, sessions, seeder)
	exportService := service.NewExportService(trips)

	lookup := amadeus.New(cfg.AmadeusBaseURL, cfg.AmadeusClientID, cfg.AmadeusClientSecret)
	if !lookup.Configured() {
		slog.Warn("amadeus credentials not set; search endpoints will serve empty results")
	}

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger →
	// Recoverer → CORS → body cap → session auth.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(1 << 20)) // 1 MiB is plenty for a trip draft
	r.Use(middleware.NewSessionAuth(authService))

	server := handler.NewServer(tripService, authService, exportService, lookup, spec.OpenAPI)
	r.Mount("/", server.Routes(middleware.NewRateLimiter(cfg.SearchRPS, cfg.SearchBurst)))

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for an OS signal, then give in-flight
	// requests up to 15 seconds to complete before closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
