package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voiceops/callaudit/pkg/database"
	"github.com/voiceops/callaudit/pkg/queue"
	"github.com/voiceops/callaudit/pkg/version"
)

// healthResponse aggregates database and worker pool health.
type healthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database,omitempty"`
	Pool     *queue.PoolHealth      `json:"worker_pool,omitempty"`
}

// healthHandler handles GET /health. Returns 503 when the database is
// unreachable or the worker pool reports itself unhealthy.
func (s *Server) healthHandler(c *gin.Context) {
	resp := healthResponse{Status: "healthy", Version: version.Full()}
	code := http.StatusOK

	dbHealth, err := database.Health(c.Request.Context(), s.db.DB())
	resp.Database = dbHealth
	if err != nil {
		resp.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		resp.Pool = poolHealth
		if !poolHealth.IsHealthy {
			resp.Status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, resp)
}
