package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/voiceops/callaudit/pkg/models"
	"github.com/voiceops/callaudit/pkg/services"
)

// submitReviewHandler handles POST /api/v1/reviews. It queues the call
// for review and returns 202; workers pick the record up asynchronously.
func (s *Server) submitReviewHandler(c *gin.Context) {
	var req models.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.CallLogID == "" && req.Session != nil {
		req.CallLogID = req.Session.CallID
	}
	if req.CallLogID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "call_log_id is required"})
		return
	}

	agentID := req.AgentID
	if agentID == "" && req.Session != nil {
		agentID = req.Session.AgentID
	}

	if err := s.orchestrator.QueueReview(c.Request.Context(), req.CallLogID, agentID); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"call_log_id": req.CallLogID,
		"status":      string(models.ReviewStatusPending),
	})
}

// getReviewHandler handles GET /api/v1/reviews/:id.
func (s *Server) getReviewHandler(c *gin.Context) {
	callLogID := c.Param("id")

	record, err := s.reviewService.GetReview(c.Request.Context(), callLogID)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReviewResponse(record))
}

// listReviewsHandler handles GET /api/v1/reviews with optional filters:
// status, agent_id, with_errors, limit, offset.
func (s *Server) listReviewsHandler(c *gin.Context) {
	filters := models.ReviewFilters{
		Status:  c.Query("status"),
		AgentID: c.Query("agent_id"),
	}
	filters.OnlyWithErrors = c.Query("with_errors") == "true"
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.Offset = n
		}
	}

	result, err := s.reviewService.ListReviews(c.Request.Context(), filters)
	if err != nil {
		s.respondError(c, err)
		return
	}

	resp := ReviewListResponse{
		Reviews: make([]ReviewResponse, 0, len(result.Records)),
		Total:   result.Total,
		Limit:   result.Limit,
		Offset:  result.Offset,
	}
	for _, record := range result.Records {
		resp.Reviews = append(resp.Reviews, toReviewResponse(record))
	}

	c.JSON(http.StatusOK, resp)
}

// cancelReviewHandler handles POST /api/v1/reviews/:id/cancel. It only
// cancels reviews being processed on this pod.
func (s *Server) cancelReviewHandler(c *gin.Context) {
	callLogID := c.Param("id")

	if s.pool == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no worker pool on this pod"})
		return
	}
	if !s.pool.CancelReview(callLogID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not processing on this pod"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "cancelling"})
}

// respondError maps service errors to HTTP responses.
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
	case services.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.Error("Request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
