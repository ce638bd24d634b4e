// Package extract normalizes heterogeneous call-session records into the
// flat, size-bounded form the judge model consumes. Extraction is
// best-effort: missing transcript, configuration, or telemetry never
// raises, it only yields empty values.
package extract

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/voiceops/callaudit/pkg/models"
)

// apiSpanHints are the case-insensitive substrings that promote a generic
// OTel span to a normalized API call.
var apiSpanHints = []string{"api", "http", "request"}

// instructionProbe is one candidate location for the agent instruction
// text inside the configuration object.
type instructionProbe struct {
	// Path documents the probe for precedence tests and logs.
	Path string
	Get  func(cfg map[string]any) string
}

// instructionProbes is the fixed, ordered candidate list for instruction
// extraction. The first probe returning non-empty text wins; order is part
// of the contract.
var instructionProbes = []instructionProbe{
	{Path: "instructions", Get: topLevelString("instructions")},
	{Path: "system_prompt", Get: topLevelString("system_prompt")},
	{Path: "prompt", Get: topLevelString("prompt")},
	{Path: "agent.instructions", Get: nestedString("agent", "instructions")},
	{Path: "model.messages[0].content", Get: firstModelMessageContent},
}

// Extractor pulls transcript, instruction, and API-call fields out of a
// call session and bounds every free-text field.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates an Extractor. logger may be nil.
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract builds the ReviewPayload skeleton from whatever the session
// carries. Identity and status fields are filled in by the assembler.
func (e *Extractor) Extract(session *models.CallSession) models.ReviewPayload {
	payload := models.ReviewPayload{
		Transcript: e.extractTranscript(session),
		ApiCalls:   e.extractApiCalls(session),
	}
	payload.AgentInstructions = e.extractInstructions(session)
	return payload
}

// extractTranscript normalizes the live transcript, or synthesizes one
// from telemetry turns when the live transcript is empty. The pipeline
// never emits an empty transcript when derivable data exists.
func (e *Extractor) extractTranscript(session *models.CallSession) []models.NormalizedTranscriptTurn {
	if len(session.TranscriptJSON) > 0 {
		turns := make([]models.NormalizedTranscriptTurn, 0, len(session.TranscriptJSON))
		for _, t := range session.TranscriptJSON {
			turns = append(turns, models.NormalizedTranscriptTurn{
				TurnID:    t.TurnID,
				Role:      t.Role,
				UserText:  Truncate(t.UserText, MaxTurnTextChars),
				AgentText: Truncate(t.AgentText, MaxTurnTextChars),
				Timestamp: t.Timestamp,
				ToolCalls: normalizeToolCalls(t.ToolCalls),
			})
		}
		return turns
	}

	if session.TelemetryData == nil {
		return []models.NormalizedTranscriptTurn{}
	}

	// Transcript synthesis: one turn per telemetry record that carries
	// user or agent text, in trace order.
	turns := make([]models.NormalizedTranscriptTurn, 0, len(session.TelemetryData.SessionTraces))
	for _, trace := range session.TelemetryData.SessionTraces {
		if trace.UserText == "" && trace.AgentText == "" {
			continue
		}
		turns = append(turns, models.NormalizedTranscriptTurn{
			TurnID:    trace.TurnID,
			UserText:  Truncate(trace.UserText, MaxTurnTextChars),
			AgentText: Truncate(trace.AgentText, MaxTurnTextChars),
			Timestamp: trace.Timestamp,
			ToolCalls: normalizeToolCalls(trace.ToolCalls),
		})
	}
	if len(turns) > 0 {
		e.logger.Info("transcript synthesized from telemetry",
			"call_id", session.CallID, "turns", len(turns))
	}
	return turns
}

// extractInstructions probes the configuration object for the agent
// instruction text, returning nil when no probe matches.
func (e *Extractor) extractInstructions(session *models.CallSession) *string {
	cfg := session.CompleteConfiguration
	if cfg == nil && session.Metadata != nil {
		cfg = session.Metadata.CompleteConfiguration
	}
	if cfg == nil {
		e.logger.Debug("no agent configuration present", "call_id", session.CallID)
		return nil
	}

	for _, probe := range instructionProbes {
		if text := probe.Get(cfg); text != "" {
			bounded := Truncate(text, MaxInstructionChars)
			e.logger.Debug("agent instructions extracted",
				"call_id", session.CallID, "probe", probe.Path, "chars", len(bounded))
			return &bounded
		}
	}
	return nil
}

// extractApiCalls scans telemetry records for explicit tool calls and for
// API-like spans, normalizing both into the same shape.
func (e *Extractor) extractApiCalls(session *models.CallSession) []models.NormalizedApiCall {
	calls := []models.NormalizedApiCall{}
	if session.TelemetryData == nil {
		return calls
	}

	for _, trace := range session.TelemetryData.SessionTraces {
		calls = append(calls, normalizeToolCalls(trace.ToolCalls)...)
		for _, span := range trace.OtelSpans {
			if !isApiSpan(span) {
				continue
			}
			calls = append(calls, normalizeSpan(span))
		}
	}
	return calls
}

// normalizeToolCalls converts explicit tool-call records, bounding both
// body fields.
func normalizeToolCalls(raw []models.RawToolCall) []models.NormalizedApiCall {
	if len(raw) == 0 {
		return nil
	}
	calls := make([]models.NormalizedApiCall, 0, len(raw))
	for _, tc := range raw {
		call := models.NormalizedApiCall{
			Name:       tc.Name,
			Kind:       tc.Kind,
			Status:     toolCallStatus(tc),
			HTTPStatus: tc.HTTPStatus,
			Error:      tc.Error,
			Timestamp:  tc.Timestamp,
		}
		if tc.Method != "" || tc.URL != "" || len(tc.Request) > 0 {
			call.Request = &models.ApiCallRequest{
				Method: tc.Method,
				URL:    tc.URL,
				Body:   Truncate(rawBody(tc.Request), MaxBodyChars),
			}
		}
		if tc.HTTPStatus != 0 || len(tc.Response) > 0 {
			call.Response = &models.ApiCallReply{
				Status: tc.HTTPStatus,
				Body:   Truncate(rawBody(tc.Response), MaxBodyChars),
			}
		}
		calls = append(calls, call)
	}
	return calls
}

// normalizeSpan converts an API-like span into the common call shape.
func normalizeSpan(span models.OtelSpan) models.NormalizedApiCall {
	call := models.NormalizedApiCall{
		Name:       span.Name,
		Kind:       span.Kind,
		Status:     spanStatus(span),
		HTTPStatus: span.HTTPStatus,
		Error:      span.Error,
		Timestamp:  span.Timestamp,
	}
	if span.HTTPMethod != "" || span.HTTPURL != "" || len(span.Attributes) > 0 {
		call.Request = &models.ApiCallRequest{
			Method: span.HTTPMethod,
			URL:    span.HTTPURL,
			Body:   Truncate(rawBody(span.Attributes), MaxBodyChars),
		}
	}
	if span.HTTPStatus != 0 {
		call.Response = &models.ApiCallReply{Status: span.HTTPStatus}
	}
	return call
}

// toolCallStatus decides success/error for an explicit tool call: an
// explicit error indicator, a false success flag, or an HTTP status >= 400
// all mean error.
func toolCallStatus(tc models.RawToolCall) string {
	if tc.Error != "" || (tc.Success != nil && !*tc.Success) || tc.HTTPStatus >= 400 {
		return "error"
	}
	return "success"
}

func spanStatus(span models.OtelSpan) string {
	if span.Error != "" || strings.EqualFold(span.Status, "error") || span.HTTPStatus >= 400 {
		return "error"
	}
	return "success"
}

// isApiSpan applies the case-insensitive substring heuristic to the span
// name and kind.
func isApiSpan(span models.OtelSpan) bool {
	name := strings.ToLower(span.Name + " " + span.Kind)
	for _, hint := range apiSpanHints {
		if strings.Contains(name, hint) {
			return true
		}
	}
	return false
}

// rawBody renders a raw JSON body as a string for bounding. Quoted JSON
// strings are unquoted so the budget applies to the text itself.
func rawBody(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// --- instruction probe helpers ---

func topLevelString(key string) func(map[string]any) string {
	return func(cfg map[string]any) string {
		s, _ := cfg[key].(string)
		return s
	}
}

func nestedString(outer, inner string) func(map[string]any) string {
	return func(cfg map[string]any) string {
		nested, _ := cfg[outer].(map[string]any)
		if nested == nil {
			return ""
		}
		s, _ := nested[inner].(string)
		return s
	}
}

// firstModelMessageContent probes model.messages[0].content, the shape
// used by configurations that store the system prompt as a message list.
func firstModelMessageContent(cfg map[string]any) string {
	model, _ := cfg["model"].(map[string]any)
	if model == nil {
		return ""
	}
	messages, _ := model["messages"].([]any)
	if len(messages) == 0 {
		return ""
	}
	first, _ := messages[0].(map[string]any)
	if first == nil {
		return ""
	}
	s, _ := first["content"].(string)
	return s
}
