// Package models contains the domain types shared across the review
// pipeline: the raw call-session input shape, the normalized payload sent
// to the judge model, and the judge's verdict types.
package models

import "encoding/json"

// CallSession is the raw call record as stored by the voice platform.
// Every nested field is optional — recordings from older agent versions
// or interrupted calls may miss the transcript, the configuration, or the
// telemetry entirely. The pipeline reads this structure, it never writes it.
type CallSession struct {
	CallID          string `json:"call_id"`
	AgentID         string `json:"agent_id,omitempty"`
	StartedAt       string `json:"started_at,omitempty"`
	EndedAt         string `json:"ended_at,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	CallEndedReason string `json:"call_ended_reason,omitempty"`

	// TranscriptJSON is the ordered turn sequence captured live during the
	// call. May be empty — see extract.Extractor for telemetry synthesis.
	TranscriptJSON []TranscriptTurn `json:"transcript_json,omitempty"`

	// CompleteConfiguration is the agent configuration snapshot, either
	// supplied explicitly or nested under metadata. Opaque: the instruction
	// text is probed out of it by the extractor.
	CompleteConfiguration map[string]any `json:"complete_configuration,omitempty"`
	Metadata              *CallMetadata  `json:"metadata,omitempty"`

	TelemetryData *TelemetryData `json:"telemetry_data,omitempty"`
}

// CallMetadata carries auxiliary fields attached to a call session.
type CallMetadata struct {
	CompleteConfiguration map[string]any `json:"complete_configuration,omitempty"`
}

// TranscriptTurn is one turn of the live transcript. User and agent text
// are independent: a single turn may carry either or both.
type TranscriptTurn struct {
	TurnID    string         `json:"turn_id,omitempty"`
	Role      string         `json:"role,omitempty"`
	UserText  string         `json:"user_text,omitempty"`
	AgentText string         `json:"agent_text,omitempty"`
	Timestamp string         `json:"timestamp,omitempty"`
	ToolCalls []RawToolCall  `json:"tool_calls,omitempty"`
	Extra     map[string]any `json:"-"`
}

// TelemetryData wraps the per-turn instrumentation captured by the voice
// runtime alongside the call.
type TelemetryData struct {
	SessionTraces []TelemetryTurn `json:"session_traces,omitempty"`
}

// TelemetryTurn is one per-turn telemetry record. Tool calls and OTel
// spans are two independent sources of API activity; either may be absent.
type TelemetryTurn struct {
	TurnID    string        `json:"turn_id,omitempty"`
	Timestamp string        `json:"timestamp,omitempty"`
	UserText  string        `json:"user_text,omitempty"`
	AgentText string        `json:"agent_text,omitempty"`
	ToolCalls []RawToolCall `json:"tool_calls,omitempty"`
	OtelSpans []OtelSpan    `json:"otel_spans,omitempty"`
}

// RawToolCall is an explicit tool/API invocation as recorded by the agent
// runtime. Request and Response are kept as raw JSON so oversized bodies
// can be bounded before serialization rather than at decode time.
type RawToolCall struct {
	Name       string          `json:"name,omitempty"`
	Kind       string          `json:"kind,omitempty"`
	Success    *bool           `json:"success,omitempty"`
	Error      string          `json:"error,omitempty"`
	HTTPStatus int             `json:"http_status,omitempty"`
	Method     string          `json:"method,omitempty"`
	URL        string          `json:"url,omitempty"`
	Request    json.RawMessage `json:"request,omitempty"`
	Response   json.RawMessage `json:"response,omitempty"`
	Timestamp  string          `json:"timestamp,omitempty"`
}

// OtelSpan is a generic instrumentation span. Only spans whose name or
// kind matches the API-call heuristic are promoted to NormalizedApiCall.
type OtelSpan struct {
	Name       string          `json:"name,omitempty"`
	Kind       string          `json:"kind,omitempty"`
	Status     string          `json:"status,omitempty"`
	HTTPStatus int             `json:"http_status,omitempty"`
	HTTPMethod string          `json:"http_method,omitempty"`
	HTTPURL    string          `json:"http_url,omitempty"`
	Error      string          `json:"error,omitempty"`
	Attributes json.RawMessage `json:"attributes,omitempty"`
	Timestamp  string          `json:"timestamp,omitempty"`
}
