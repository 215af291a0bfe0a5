// Package chi exposes the matching engine over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/meetgrid/affinity/internal/domain"
	dommatch "github.com/meetgrid/affinity/internal/domain/match"
	healthuc "github.com/meetgrid/affinity/internal/usecase/health"
)

// MatchService is the consumer interface over the match engine.
type MatchService interface {
	MatchPeople(ctx context.Context, req dommatch.Request) (dommatch.Page, error)
	MatchJobs(ctx context.Context, req dommatch.Request) (dommatch.Page, error)
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the match API.
type Server struct {
	matches       MatchService
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(matches MatchService, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		matches: matches,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrProfileNotFound, http.StatusNotFound, codeProfileNotFound),
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrCatalogUnavailable, http.StatusServiceUnavailable, codeCatalogUnavailable),
	}
	return s
}

// Register mounts the API routes on a router.
func (s *Server) Register(r chi.Router) {
	r.Post("/v1/matches/people", s.MatchPeople)
	r.Post("/v1/matches/jobs", s.MatchJobs)
	r.Get("/v1/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// MatchPeople handles POST /v1/matches/people.
func (s *Server) MatchPeople(w http.ResponseWriter, r *http.Request) {
	s.handleMatch(w, r, s.matches.MatchPeople)
}

// MatchJobs handles POST /v1/matches/jobs.
func (s *Server) MatchJobs(w http.ResponseWriter, r *http.Request) {
	s.handleMatch(w, r, s.matches.MatchJobs)
}

func (s *Server) handleMatch(
	w http.ResponseWriter,
	r *http.Request,
	run func(ctx context.Context, req dommatch.Request) (dommatch.Page, error),
) {
	var body matchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req, err := body.toDomain()
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	page, err := run(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// HealthCheck handles GET /v1/health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrProfileNotFound,
		domain.ErrInvalidRequest,
		domain.ErrCatalogUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
