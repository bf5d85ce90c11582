// Package server provides the HTTP REST API for the CV builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mlefevre/cv-builder/internal/cache"
	"github.com/mlefevre/cv-builder/internal/config"
	"github.com/mlefevre/cv-builder/internal/cv"
	"github.com/mlefevre/cv-builder/internal/db"
	"github.com/mlefevre/cv-builder/internal/server/middleware"
	"github.com/mlefevre/cv-builder/internal/server/ratelimit"
)

// CVDatabase is the subset of database operations the CV handlers depend on.
// Tests substitute a fake; production passes *db.DB.
type CVDatabase interface {
	CreateCV(ctx context.Context, ownerID uuid.UUID, input db.CVInput) (*db.CV, error)
	ListCVs(ctx context.Context, ownerID uuid.UUID) ([]db.CV, error)
	GetCV(ctx context.Context, id, ownerID uuid.UUID) (*db.CV, error)
	UpdateCV(ctx context.Context, id, ownerID uuid.UUID, input db.CVInput) (*db.CV, error)
	DeleteCV(ctx context.Context, id, ownerID uuid.UUID) error
	IssueShareID(ctx context.Context, id, ownerID uuid.UUID) (string, error)
	RevokeShare(ctx context.Context, id, ownerID uuid.UUID) error
	GetCVByShareID(ctx context.Context, shareID string) (*db.SharedCV, error)
	Close()
}

// DraftCache is the draft-mirror and share-page cache surface the handlers
// depend on. Tests substitute a fake; production passes *cache.Cache.
type DraftCache interface {
	LoadDraft(ctx context.Context, ownerID, docID string) (*cv.Document, error)
	DropDraft(ctx context.Context, ownerID, docID string)
	DraftObserver(ctx context.Context) cv.Observer
	GetSharedPage(ctx context.Context, shareID string) string
	PutSharedPage(ctx context.Context, shareID, page string)
	DropSharedPage(ctx context.Context, shareID string)
	Close() error
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          CVDatabase
	drafts      DraftCache
	baseURL     string
	log         zerolog.Logger
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// New creates a new server instance
func New(cfg *config.Config, logger zerolog.Logger) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Connect to the draft cache
	drafts, err := cache.Connect(context.Background(), cfg.RedisURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	s := &Server{
		db:      database,
		drafts:  drafts,
		baseURL: cfg.BaseURL,
		log:     logger,
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Initialize authentication services
	s.userService = NewUserService(database, &cfg.Password)
	s.jwtService = NewJWTService(&cfg.JWT)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	// Setup router
	mux := http.NewServeMux()
	authed := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	// Authentication endpoints
	mux.HandleFunc("POST /api/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", s.authHandler.Login)
	mux.Handle("PUT /api/auth/password", authed(http.HandlerFunc(s.handleUpdatePassword)))
	mux.Handle("DELETE /api/auth/account", authed(http.HandlerFunc(s.handleDeleteAccount)))

	// CV endpoints (owner-scoped, JWT required)
	mux.Handle("GET /api/cvs", authed(http.HandlerFunc(s.handleListCVs)))
	mux.Handle("POST /api/cvs", authed(http.HandlerFunc(s.handleCreateCV)))
	mux.Handle("GET /api/cvs/{id}", authed(http.HandlerFunc(s.handleGetCV)))
	mux.Handle("PUT /api/cvs/{id}", authed(http.HandlerFunc(s.handleUpdateCV)))
	mux.Handle("DELETE /api/cvs/{id}", authed(http.HandlerFunc(s.handleDeleteCV)))

	// Sharing endpoints
	mux.Handle("POST /api/cvs/{id}/share", authed(http.HandlerFunc(s.handleCreateShare)))
	mux.Handle("DELETE /api/cvs/{id}/share", authed(http.HandlerFunc(s.handleDeleteShare)))
	mux.HandleFunc("GET /share/{shareId}", s.handleSharedPage)

	// Rendering and export endpoints
	mux.Handle("GET /api/cvs/{id}/preview", authed(http.HandlerFunc(s.handlePreview)))
	mux.Handle("GET /api/cvs/{id}/export", authed(http.HandlerFunc(s.handleExportPDF)))
	mux.Handle("GET /api/cvs/{id}/export.txt", authed(http.HandlerFunc(s.handleExportText)))

	// Template and theme catalog
	mux.HandleFunc("GET /api/templates", s.handleListTemplates)

	mux.HandleFunc("GET /health", s.handleHealth)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF export holds the connection while Chrome prints
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Run serves requests until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if cerr := s.drafts.Close(); cerr != nil {
		s.log.Warn().Err(cerr).Msg("closing redis client")
	}
	s.db.Close()
	s.log.Info().Msg("server stopped")
	return err
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extract client identifier (IP address)
		clientID := s.extractClientID(r)

		// Check rate limit
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpdatePassword handles password update requests.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.UpdatePasswordWithUserID(w, r, userID)
}

// handleDeleteAccount handles account deletion requests.
func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.DeleteAccountWithUserID(w, r, userID)
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("encoding JSON response")
	}
}

// writeError writes an error JSON response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeAPIError maps a handler error onto the error envelope through
// HTTPStatus. Errors with no specific mapping are logged and reported as a
// generic 500 so internals never leak into responses.
func (s *Server) writeAPIError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error().Err(err).Msg("request failed")
		writeError(w, status, "Internal server error")
		return
	}
	writeError(w, status, err.Error())
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.log.Warn().
		Int("limit", info.Limit).
		Int("remaining", info.Remaining).
		Time("reset", info.ResetTime).
		Msg("rate limit exceeded")

	writeJSON(w, http.StatusTooManyRequests, response)
}
