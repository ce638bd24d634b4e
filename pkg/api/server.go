// Package api exposes the HTTP and WebSocket surface of the review
// pipeline: submitting calls for review, reading records, and streaming
// status events.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voiceops/callaudit/pkg/database"
	"github.com/voiceops/callaudit/pkg/events"
	"github.com/voiceops/callaudit/pkg/queue"
	"github.com/voiceops/callaudit/pkg/review"
	"github.com/voiceops/callaudit/pkg/services"
)

// Server wires the HTTP handlers to the service layer.
type Server struct {
	db            *database.Client
	reviewService *services.ReviewService
	orchestrator  *review.Orchestrator
	pool          *queue.WorkerPool
	connManager   *events.ConnectionManager
	logger        *slog.Logger

	allowedWSOrigins []string
	httpServer       *http.Server
}

// NewServer creates the API server. pool and connManager may be nil in
// reduced deployments (API-only pods).
func NewServer(db *database.Client, reviewService *services.ReviewService, orchestrator *review.Orchestrator, pool *queue.WorkerPool, connManager *events.ConnectionManager, allowedWSOrigins []string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		db:               db,
		reviewService:    reviewService,
		orchestrator:     orchestrator,
		pool:             pool,
		connManager:      connManager,
		logger:           logger,
		allowedWSOrigins: allowedWSOrigins,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.logger))

	router.GET("/health", s.healthHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/reviews", s.submitReviewHandler)
		v1.GET("/reviews", s.listReviewsHandler)
		v1.GET("/reviews/:id", s.getReviewHandler)
		v1.POST("/reviews/:id/cancel", s.cancelReviewHandler)
	}

	router.GET("/ws", s.wsHandler)

	return router
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("API server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// requestLogger logs one line per request in slog format.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
