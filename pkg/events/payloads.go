package events

import "github.com/voiceops/callaudit/pkg/models"

// ReviewStatusPayload is the WebSocket payload for review.status events.
// The summary fields are pointers: they are present only on completed
// events, absent on pending/processing/failed ones.
type ReviewStatusPayload struct {
	Type            string              `json:"type"` // EventTypeReviewStatus
	CallLogID       string              `json:"call_log_id"`
	Status          models.ReviewStatus `json:"status"`
	ErrorCount      *int                `json:"error_count,omitempty"`
	HasApiFailures  *bool               `json:"has_api_failures,omitempty"`
	HasWrongActions *bool               `json:"has_wrong_actions,omitempty"`
	HasWrongOutputs *bool               `json:"has_wrong_outputs,omitempty"`
	ErrorMessage    string              `json:"error_message,omitempty"`
	Timestamp       string              `json:"timestamp"` // RFC 3339
}
