package review

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceops/callaudit/pkg/models"
)

func TestAssemblePayload_FillsIdentityFields(t *testing.T) {
	session := &models.CallSession{
		CallID:          "call-1",
		StartedAt:       "2026-08-01T12:00:00Z",
		DurationSeconds: 182,
		CallEndedReason: "customer-ended-call",
	}
	skeleton := models.ReviewPayload{
		Transcript: []models.NormalizedTranscriptTurn{{TurnID: "t1", UserText: "hi"}},
		ApiCalls:   []models.NormalizedApiCall{},
	}

	payload := AssemblePayload(session, skeleton)

	assert.Equal(t, "call-1", payload.CallID)
	assert.Equal(t, "2026-08-01T12:00:00Z", payload.CallTimestamp)
	assert.Equal(t, 182, payload.DurationSeconds)
	assert.Equal(t, "customer-ended-call", payload.CallStatus)
	assert.Len(t, payload.Transcript, 1)
}

func TestAssembleDocument_Structure(t *testing.T) {
	payload := models.ReviewPayload{
		CallID:     "call-2",
		Transcript: []models.NormalizedTranscriptTurn{},
		ApiCalls:   []models.NormalizedApiCall{},
	}

	doc, err := AssembleDocument(payload)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, judgeInstructions))
	assert.Contains(t, doc, analysisLabel)

	// Everything after the label line is the payload JSON.
	idx := strings.Index(doc, analysisLabel)
	body := strings.TrimSpace(doc[idx+len(analysisLabel):])
	var decoded models.ReviewPayload
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))
	assert.Equal(t, "call-2", decoded.CallID)
}

func TestAssembleDocument_Deterministic(t *testing.T) {
	instructions := "Book appointments politely."
	payload := models.ReviewPayload{
		CallID:            "call-3",
		CallTimestamp:     "2026-08-01T12:00:00Z",
		AgentInstructions: &instructions,
		Transcript: []models.NormalizedTranscriptTurn{
			{TurnID: "t1", UserText: "hello", AgentText: "hi there"},
		},
		ApiCalls: []models.NormalizedApiCall{
			{Name: "book", Status: "success", HTTPStatus: 200},
		},
	}

	first, err := AssembleDocument(payload)
	require.NoError(t, err)
	second, err := AssembleDocument(payload)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAssembleDocument_NullInstructionsSerialized(t *testing.T) {
	payload := models.ReviewPayload{
		CallID:     "call-4",
		Transcript: []models.NormalizedTranscriptTurn{},
		ApiCalls:   []models.NormalizedApiCall{},
	}

	doc, err := AssembleDocument(payload)
	require.NoError(t, err)

	// agent_instructions is always present, null when not extracted.
	assert.Contains(t, doc, `"agent_instructions":null`)
	assert.Contains(t, doc, `"transcript":[]`)
	assert.Contains(t, doc, `"api_calls":[]`)
}
