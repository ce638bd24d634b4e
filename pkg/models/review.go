package models

// FindingType classifies a single defect detected by the judge model.
type FindingType string

// The three-member finding taxonomy. Any other value in a judge response
// is a schema violation and rejected outright.
const (
	FindingAPIFailure  FindingType = "API_FAILURE"
	FindingWrongAction FindingType = "WRONG_ACTION"
	FindingWrongOutput FindingType = "WRONG_OUTPUT"
)

// ValidFindingType reports whether t is one of the three known finding types.
func ValidFindingType(t FindingType) bool {
	switch t {
	case FindingAPIFailure, FindingWrongAction, FindingWrongOutput:
		return true
	}
	return false
}

// NormalizedTranscriptTurn is a transcript turn after extraction and
// truncation, as serialized into the judge payload.
type NormalizedTranscriptTurn struct {
	TurnID    string              `json:"turn_id,omitempty"`
	Role      string              `json:"role,omitempty"`
	UserText  string              `json:"user_text,omitempty"`
	AgentText string              `json:"agent_text,omitempty"`
	Timestamp string              `json:"timestamp,omitempty"`
	ToolCalls []NormalizedApiCall `json:"tool_calls,omitempty"`
}

// NormalizedApiCall is one external API invocation in the flat form the
// judge sees, merged from explicit tool-call entries and API-like spans.
// Request and response bodies are always truncated to the body budget
// before this struct is built.
type NormalizedApiCall struct {
	Name       string          `json:"name"`
	Kind       string          `json:"kind,omitempty"`
	Status     string          `json:"status"` // "success" or "error"
	HTTPStatus int             `json:"http_status,omitempty"`
	Request    *ApiCallRequest `json:"request,omitempty"`
	Response   *ApiCallReply   `json:"response,omitempty"`
	Error      string          `json:"error,omitempty"`
	Timestamp  string          `json:"timestamp,omitempty"`
}

// ApiCallRequest is the bounded request half of a normalized API call.
type ApiCallRequest struct {
	Method string `json:"method,omitempty"`
	URL    string `json:"url,omitempty"`
	Body   string `json:"body,omitempty"`
}

// ApiCallReply is the bounded response half of a normalized API call.
type ApiCallReply struct {
	Status int    `json:"status,omitempty"`
	Body   string `json:"body,omitempty"`
}

// ReviewPayload is the exact structure serialized into the judge request.
// It is built atomically: either every field is populated from whatever
// the session carries, or the pipeline fails before the judge is invoked.
type ReviewPayload struct {
	CallID            string                     `json:"call_id"`
	CallTimestamp     string                     `json:"call_timestamp,omitempty"`
	DurationSeconds   int                        `json:"duration_seconds,omitempty"`
	CallStatus        string                     `json:"call_status,omitempty"`
	Transcript        []NormalizedTranscriptTurn `json:"transcript"`
	AgentInstructions *string                    `json:"agent_instructions"`
	ApiCalls          []NormalizedApiCall        `json:"api_calls"`
}

// FindingEvidence ties a finding to the concrete transcript and API data
// that supports it.
type FindingEvidence struct {
	TranscriptExcerpt string  `json:"transcript_excerpt"`
	ApiRequest        *string `json:"api_request"`
	ApiResponse       *string `json:"api_response"`
	Expected          string  `json:"expected"`
	Actual            string  `json:"actual"`
}

// Finding is one defect reported by the judge model.
type Finding struct {
	Type        FindingType     `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Evidence    FindingEvidence `json:"evidence"`
	Timestamp   string          `json:"timestamp"`
	Impact      string          `json:"impact"`
}

// ReviewResult is the judge's full verdict for one call. An empty Errors
// slice means the call was clean.
type ReviewResult struct {
	CallTimestamp string    `json:"call_timestamp"`
	AnalysisDate  string    `json:"analysis_date"`
	Errors        []Finding `json:"errors"`
}

// Counts derives the persisted summary fields from the verdict.
func (r *ReviewResult) Counts() (errorCount int, apiFailures, wrongActions, wrongOutputs bool) {
	errorCount = len(r.Errors)
	for _, f := range r.Errors {
		switch f.Type {
		case FindingAPIFailure:
			apiFailures = true
		case FindingWrongAction:
			wrongActions = true
		case FindingWrongOutput:
			wrongOutputs = true
		}
	}
	return errorCount, apiFailures, wrongActions, wrongOutputs
}
