package models

import "github.com/voiceops/callaudit/ent"

// SubmitReviewRequest is the API request to queue a call for review.
// The call session may be inlined; when absent, workers fetch it from
// the call store by ID.
type SubmitReviewRequest struct {
	CallLogID string       `json:"call_log_id"`
	AgentID   string       `json:"agent_id,omitempty"`
	Session   *CallSession `json:"session,omitempty"`
}

// ReviewFilters are the supported list query parameters.
type ReviewFilters struct {
	Status         string
	AgentID        string
	OnlyWithErrors bool
	Limit          int
	Offset         int
}

// ReviewListResult contains a paginated review record list.
type ReviewListResult struct {
	Records []*ent.ReviewRecord
	Total   int
	Limit   int
	Offset  int
}
