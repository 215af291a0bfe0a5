package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/meetgrid/affinity/internal/config"
	"github.com/meetgrid/affinity/internal/db"
	dbRedis "github.com/meetgrid/affinity/internal/db/redis"
	logpkg "github.com/meetgrid/affinity/internal/logger"
	"github.com/meetgrid/affinity/internal/metrics"
	blocklistrepo "github.com/meetgrid/affinity/internal/repository/blocklist"
	candidaterepo "github.com/meetgrid/affinity/internal/repository/candidate"
	connectionrepo "github.com/meetgrid/affinity/internal/repository/connection"
	"github.com/meetgrid/affinity/internal/repository/matchcache"
	taxonomyrepo "github.com/meetgrid/affinity/internal/repository/taxonomy"
	chiTransport "github.com/meetgrid/affinity/internal/transport/chi"
	healthuc "github.com/meetgrid/affinity/internal/usecase/health"
	matchuc "github.com/meetgrid/affinity/internal/usecase/match"
	"github.com/meetgrid/affinity/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting affinity API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("cache_driver", cfg.Cache.Driver),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register matching metrics explicitly (no init())
	metrics.RegisterMatchMetrics()

	if err := ensureProfileIndex(ctx, store); err != nil {
		logger.Fatal("Failed to ensure profile search index", zap.Error(err))
	}

	// Response cache — composition root selects the backend
	cacheTTL := time.Duration(cfg.Cache.TTLSec) * time.Second
	var cache matchuc.ResponseCache
	switch cfg.Cache.Driver {
	case "memory":
		cache = matchcache.NewMemory(cfg.Cache.Capacity, cacheTTL, metrics.MatchCacheTotal)
	default:
		cache = matchcache.NewRedis(store, cacheTTL, metrics.MatchCacheTotal, logger)
	}

	// Repositories (domain-native, no adapters)
	catalogProvider := taxonomyrepo.NewProvider(taxonomyrepo.New(store))
	blockRepo := blocklistrepo.New(store)
	connRepo := connectionrepo.New(store)
	candRepo := candidaterepo.New(store, cfg.Match.OverfetchFactor)

	// Use case services
	matchSvc := matchuc.New(
		candRepo,
		catalogProvider,
		blockRepo,
		connRepo,
		cache,
		matchuc.NewScorer(matchuc.DefaultWeights()),
		cfg.Match.ScoreConcurrency,
	)
	healthSvc := healthuc.New(store, catalogProvider)

	// Warm the taxonomy catalog; failure is non-fatal, the provider
	// retries lazily on first use.
	if _, err := catalogProvider.Catalog(ctx); err != nil {
		logger.Warn("Taxonomy catalog not loaded yet", zap.Error(err))
	}

	server := chiTransport.NewServer(matchSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// ensureProfileIndex creates the profile FT index if it does not exist yet.
func ensureProfileIndex(ctx context.Context, store db.Store) error {
	exists, err := store.IndexExists(ctx, candidaterepo.IndexName)
	if err != nil {
		return fmt.Errorf("probe index: %w", err)
	}
	if exists {
		return nil
	}

	def, err := candidaterepo.ProfileIndex()
	if err != nil {
		return fmt.Errorf("build index definition: %w", err)
	}
	if err := store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
