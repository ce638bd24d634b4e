package extract

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceops/callaudit/pkg/models"
)

func boolPtr(b bool) *bool { return &b }

func TestExtractTranscript_LiveTranscriptPreferred(t *testing.T) {
	extractor := NewExtractor(nil)

	session := &models.CallSession{
		CallID: "call-1",
		TranscriptJSON: []models.TranscriptTurn{
			{TurnID: "t1", Role: "user", UserText: "hi", Timestamp: "2026-01-01T00:00:00Z"},
			{TurnID: "t2", Role: "agent", AgentText: "hello"},
		},
		// Telemetry present but must NOT be used when live transcript exists
		TelemetryData: &models.TelemetryData{
			SessionTraces: []models.TelemetryTurn{
				{TurnID: "x1", UserText: "from telemetry"},
			},
		},
	}

	payload := extractor.Extract(session)

	require.Len(t, payload.Transcript, 2)
	assert.Equal(t, "t1", payload.Transcript[0].TurnID)
	assert.Equal(t, "hi", payload.Transcript[0].UserText)
	assert.Equal(t, "hello", payload.Transcript[1].AgentText)
}

func TestExtractTranscript_SynthesizedFromTelemetry(t *testing.T) {
	extractor := NewExtractor(nil)

	session := &models.CallSession{
		CallID: "call-2",
		TelemetryData: &models.TelemetryData{
			SessionTraces: []models.TelemetryTurn{
				{TurnID: "x1", UserText: "first"},
				{TurnID: "x2"}, // no text, skipped
				{TurnID: "x3", AgentText: "second"},
			},
		},
	}

	payload := extractor.Extract(session)

	require.Len(t, payload.Transcript, 2)
	assert.Equal(t, "x1", payload.Transcript[0].TurnID)
	assert.Equal(t, "first", payload.Transcript[0].UserText)
	assert.Equal(t, "x3", payload.Transcript[1].TurnID)
	assert.Equal(t, "second", payload.Transcript[1].AgentText)
}

func TestExtractTranscript_EmptyWhenNothingAvailable(t *testing.T) {
	extractor := NewExtractor(nil)

	payload := extractor.Extract(&models.CallSession{CallID: "call-3"})

	assert.NotNil(t, payload.Transcript)
	assert.Empty(t, payload.Transcript)
	assert.NotNil(t, payload.ApiCalls)
	assert.Empty(t, payload.ApiCalls)
	assert.Nil(t, payload.AgentInstructions)
}

func TestExtractTranscript_TurnTextTruncated(t *testing.T) {
	extractor := NewExtractor(nil)
	long := strings.Repeat("a", MaxTurnTextChars+500)

	session := &models.CallSession{
		CallID: "call-4",
		TranscriptJSON: []models.TranscriptTurn{
			{TurnID: "t1", UserText: long, AgentText: long},
		},
	}

	payload := extractor.Extract(session)

	require.Len(t, payload.Transcript, 1)
	assert.True(t, strings.HasSuffix(payload.Transcript[0].UserText, TruncationMarker))
	assert.True(t, strings.HasSuffix(payload.Transcript[0].AgentText, TruncationMarker))
	assert.Len(t, payload.Transcript[0].UserText, MaxTurnTextChars+len(TruncationMarker))
}

func TestExtractInstructions_ProbePrecedence(t *testing.T) {
	extractor := NewExtractor(nil)

	tests := []struct {
		name string
		cfg  map[string]any
		want string
	}{
		{
			name: "top-level instructions wins",
			cfg: map[string]any{
				"instructions":  "primary",
				"system_prompt": "secondary",
			},
			want: "primary",
		},
		{
			name: "system_prompt before prompt",
			cfg: map[string]any{
				"system_prompt": "from system_prompt",
				"prompt":        "from prompt",
			},
			want: "from system_prompt",
		},
		{
			name: "nested agent.instructions",
			cfg: map[string]any{
				"agent": map[string]any{"instructions": "nested"},
			},
			want: "nested",
		},
		{
			name: "model messages fallback",
			cfg: map[string]any{
				"model": map[string]any{
					"messages": []any{
						map[string]any{"role": "system", "content": "from messages"},
					},
				},
			},
			want: "from messages",
		},
		{
			name: "empty string does not match, falls through",
			cfg: map[string]any{
				"instructions": "",
				"prompt":       "fallback",
			},
			want: "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &models.CallSession{
				CallID:                "call-5",
				CompleteConfiguration: tt.cfg,
			}
			payload := extractor.Extract(session)
			require.NotNil(t, payload.AgentInstructions)
			assert.Equal(t, tt.want, *payload.AgentInstructions)
		})
	}
}

func TestExtractInstructions_FromMetadata(t *testing.T) {
	extractor := NewExtractor(nil)

	session := &models.CallSession{
		CallID: "call-6",
		Metadata: &models.CallMetadata{
			CompleteConfiguration: map[string]any{"instructions": "via metadata"},
		},
	}

	payload := extractor.Extract(session)

	require.NotNil(t, payload.AgentInstructions)
	assert.Equal(t, "via metadata", *payload.AgentInstructions)
}

func TestExtractInstructions_NilWhenNoProbeMatches(t *testing.T) {
	extractor := NewExtractor(nil)

	session := &models.CallSession{
		CallID:                "call-7",
		CompleteConfiguration: map[string]any{"voice": "en-US"},
	}

	payload := extractor.Extract(session)
	assert.Nil(t, payload.AgentInstructions)
}

func TestExtractInstructions_Truncated(t *testing.T) {
	extractor := NewExtractor(nil)
	long := strings.Repeat("i", MaxInstructionChars+100)

	session := &models.CallSession{
		CallID:                "call-8",
		CompleteConfiguration: map[string]any{"instructions": long},
	}

	payload := extractor.Extract(session)

	require.NotNil(t, payload.AgentInstructions)
	assert.Len(t, *payload.AgentInstructions, MaxInstructionChars+len(TruncationMarker))
	assert.True(t, strings.HasSuffix(*payload.AgentInstructions, TruncationMarker))
}

func TestExtractApiCalls_ToolCallsAndSpans(t *testing.T) {
	extractor := NewExtractor(nil)

	session := &models.CallSession{
		CallID: "call-9",
		TelemetryData: &models.TelemetryData{
			SessionTraces: []models.TelemetryTurn{
				{
					TurnID: "x1",
					ToolCalls: []models.RawToolCall{
						{
							Name:       "book_appointment",
							Method:     "POST",
							URL:        "https://api.example.com/book",
							HTTPStatus: 200,
							Request:    json.RawMessage(`{"slot":"10am"}`),
							Response:   json.RawMessage(`{"ok":true}`),
						},
					},
					OtelSpans: []models.OtelSpan{
						{Name: "http.request availability", Kind: "client", HTTPStatus: 503, HTTPMethod: "GET", HTTPURL: "https://api.example.com/slots"},
						{Name: "audio.encode", Kind: "internal"}, // not API-like, skipped
					},
				},
			},
		},
	}

	payload := extractor.Extract(session)

	require.Len(t, payload.ApiCalls, 2)

	tool := payload.ApiCalls[0]
	assert.Equal(t, "book_appointment", tool.Name)
	assert.Equal(t, "success", tool.Status)
	require.NotNil(t, tool.Request)
	assert.Equal(t, "POST", tool.Request.Method)
	require.NotNil(t, tool.Response)
	assert.Equal(t, 200, tool.Response.Status)

	span := payload.ApiCalls[1]
	assert.Equal(t, "http.request availability", span.Name)
	assert.Equal(t, "error", span.Status)
	assert.Equal(t, 503, span.HTTPStatus)
}

func TestToolCallStatus(t *testing.T) {
	tests := []struct {
		name string
		tc   models.RawToolCall
		want string
	}{
		{name: "clean call", tc: models.RawToolCall{HTTPStatus: 200}, want: "success"},
		{name: "explicit error", tc: models.RawToolCall{Error: "timeout"}, want: "error"},
		{name: "success flag false", tc: models.RawToolCall{Success: boolPtr(false)}, want: "error"},
		{name: "success flag true", tc: models.RawToolCall{Success: boolPtr(true)}, want: "success"},
		{name: "http 4xx", tc: models.RawToolCall{HTTPStatus: 404}, want: "error"},
		{name: "http 5xx", tc: models.RawToolCall{HTTPStatus: 502}, want: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toolCallStatus(tt.tc))
		})
	}
}

func TestIsApiSpan(t *testing.T) {
	assert.True(t, isApiSpan(models.OtelSpan{Name: "HTTP GET /slots"}))
	assert.True(t, isApiSpan(models.OtelSpan{Name: "crm.lookup", Kind: "api"}))
	assert.True(t, isApiSpan(models.OtelSpan{Name: "outbound Request"}))
	assert.False(t, isApiSpan(models.OtelSpan{Name: "audio.encode", Kind: "internal"}))
}

func TestRawBody_UnquotesJSONStrings(t *testing.T) {
	assert.Equal(t, "plain text", rawBody(json.RawMessage(`"plain text"`)))
	assert.Equal(t, `{"k":"v"}`, rawBody(json.RawMessage(`{"k":"v"}`)))
	assert.Equal(t, "", rawBody(nil))
}
