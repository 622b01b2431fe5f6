// Package main is the entry point for the planner API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/travelglobal/planner/internal/catalog"
	"github.com/travelglobal/planner/internal/config"
	"github.com/travelglobal/planner/internal/handler"
	"github.com/travelglobal/planner/internal/middleware"
	"github.com/travelglobal/planner/internal/service"
	"github.com/travelglobal/planner/internal/session"
	"github.com/travelglobal/planner/migrations"
	"github.com/travelglobal/planner/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	if err := config.LoadEnvFile(".env"); err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before the configured one exists.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Catalog ----------------------------------------------------------
	// Postgres is optional. Without DATABASE_URL the built-in table is served.
	locations := catalog.NewDefaultRepo()
	if cfg.DatabaseURL != "" {
		pool, err := openDatabase(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database setup failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		locations = catalog.NewPostgresRepo(pool)
		slog.Info("catalog served from database")
	} else {
		slog.Info("catalog served from built-in table")
	}

	// --- Sessions ---------------------------------------------------------
	sessions := session.NewRegistry(cfg.SessionTTL, session.WithLogger(logger))
	go sessions.Run(ctx, time.Minute)

	planner := service.NewPlannerService(locations, sessions, service.Options{
		SiteURL: cfg.ShareURL,
		Logger:  logger,
	})

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit → rate limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Handler)

	handler.NewServer(planner, handler.Options{
		MapsAPIKey:     cfg.MapsAPIKey,
		OpenAPI:        spec.OpenAPI,
		AllowedOrigins: cfg.CORSOrigins,
		Logger:         logger,
	}).Routes(r)

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped", "live_sessions", sessions.Len())
}

// openDatabase connects to Postgres, verifies it is reachable, and applies
// pending catalog migrations.
func openDatabase(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	applied, err := migrations.Up(ctx, db)
	if err != nil {
		pool.Close()
		return nil, err
	}
	slog.Info("database ready", "migrations_applied", applied)
	return pool, nil
}
