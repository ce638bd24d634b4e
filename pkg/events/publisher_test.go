package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceops/callaudit/pkg/models"
)

func intPtr(n int) *int { return &n }
func bPtr(b bool) *bool { return &b }

func TestReviewStatusPayload_CompletedShape(t *testing.T) {
	payload := ReviewStatusPayload{
		Type:            EventTypeReviewStatus,
		CallLogID:       "call-1",
		Status:          models.ReviewStatusCompleted,
		ErrorCount:      intPtr(2),
		HasApiFailures:  bPtr(true),
		HasWrongActions: bPtr(false),
		HasWrongOutputs: bPtr(false),
		Timestamp:       "2026-08-01T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Equal(t, "review.status", m["type"])
	assert.Equal(t, "call-1", m["call_log_id"])
	assert.Equal(t, "completed", m["status"])
	assert.Equal(t, float64(2), m["error_count"])
	assert.Equal(t, true, m["has_api_failures"])
	assert.Equal(t, false, m["has_wrong_actions"])
	assert.NotContains(t, m, "error_message")
}

func TestReviewStatusPayload_NonTerminalOmitsSummary(t *testing.T) {
	payload := ReviewStatusPayload{
		Type:      EventTypeReviewStatus,
		CallLogID: "call-1",
		Status:    models.ReviewStatusProcessing,
		Timestamp: "2026-08-01T12:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	assert.NotContains(t, m, "error_count")
	assert.NotContains(t, m, "has_api_failures")
	assert.NotContains(t, m, "has_wrong_actions")
	assert.NotContains(t, m, "has_wrong_outputs")
}

func TestInjectDBEventID(t *testing.T) {
	payload := []byte(`{"type":"review.status","call_log_id":"call-1","status":"pending"}`)

	enriched, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(enriched), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, "call-1", m["call_log_id"])
}

func TestTruncateIfNeeded_SmallPayloadUnchanged(t *testing.T) {
	payload := `{"type":"review.status","call_log_id":"call-1","status":"pending"}`
	got, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestTruncateIfNeeded_OversizedPayloadEnveloped(t *testing.T) {
	big := map[string]any{
		"type":          "review.status",
		"call_log_id":   "call-1",
		"status":        "failed",
		"error_message": strings.Repeat("x", 9000),
	}
	bigJSON, err := json.Marshal(big)
	require.NoError(t, err)
	require.Greater(t, len(bigJSON), 7900)

	got, err := truncateIfNeeded(string(bigJSON))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), 7900)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, "review.status", m["type"])
	assert.Equal(t, "call-1", m["call_log_id"])
	assert.Equal(t, "failed", m["status"])
	assert.NotContains(t, m, "error_message")
}

func TestTruncatedEnvelopeKeepsDBEventID(t *testing.T) {
	big := map[string]any{
		"type":          "review.status",
		"call_log_id":   "call-1",
		"status":        "failed",
		"error_message": strings.Repeat("x", 9000),
	}
	bigJSON, err := json.Marshal(big)
	require.NoError(t, err)

	got, err := injectDBEventIDAndTruncate(bigJSON, 7)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(got), &m))
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, float64(7), m["db_event_id"])
}

func TestReviewChannel(t *testing.T) {
	assert.Equal(t, "review:call-1", ReviewChannel("call-1"))
	assert.Equal(t, "reviews", GlobalReviewsChannel)
}
