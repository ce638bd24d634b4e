package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// wsHandler handles GET /ws. Upgrades the connection and hands it to the
// connection manager, which owns subscriptions and event delivery.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming not available on this pod"})
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkWSOrigin,
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		s.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), conn)
}

// checkWSOrigin allows same-origin requests, localhost, and any origin in
// the configured allow list.
func (s *Server) checkWSOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if strings.Contains(origin, "://localhost") || strings.Contains(origin, "://127.0.0.1") {
		return true
	}
	for _, allowed := range s.allowedWSOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}
