package api

import (
	"time"

	"github.com/voiceops/callaudit/ent"
)

// ReviewResponse is the JSON shape of one review record.
type ReviewResponse struct {
	CallLogID       string         `json:"call_log_id"`
	AgentID         string         `json:"agent_id,omitempty"`
	Status          string         `json:"status"`
	ReviewResult    map[string]any `json:"review_result,omitempty"`
	ErrorCount      int            `json:"error_count"`
	HasApiFailures  bool           `json:"has_api_failures"`
	HasWrongActions bool           `json:"has_wrong_actions"`
	HasWrongOutputs bool           `json:"has_wrong_outputs"`
	ErrorMessage    string         `json:"error_message,omitempty"`
	ReviewedAt      *time.Time     `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// ReviewListResponse is the paginated list shape.
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// toReviewResponse converts an ent record into the API shape.
func toReviewResponse(record *ent.ReviewRecord) ReviewResponse {
	resp := ReviewResponse{
		CallLogID:       record.ID,
		AgentID:         record.AgentID,
		Status:          string(record.Status),
		ReviewResult:    record.ReviewResult,
		ErrorCount:      record.ErrorCount,
		HasApiFailures:  record.HasAPIFailures,
		HasWrongActions: record.HasWrongActions,
		HasWrongOutputs: record.HasWrongOutputs,
		ReviewedAt:      record.ReviewedAt,
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
	}
	if record.ErrorMessage != nil {
		resp.ErrorMessage = *record.ErrorMessage
	}
	return resp
}
