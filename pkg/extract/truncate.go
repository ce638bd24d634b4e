package extract

// Per-field character budgets for the judge payload. The combined payload
// must stay inside the judge model's context window, so every free-text
// field is bounded before assembly.
const (
	// MaxTurnTextChars bounds user/agent text per transcript turn.
	MaxTurnTextChars = 1000
	// MaxInstructionChars bounds the agent instruction document.
	MaxInstructionChars = 3000
	// MaxBodyChars bounds each API request/response body.
	MaxBodyChars = 15000
)

// TruncationMarker is appended to any field cut at its budget so the judge
// can tell truncation from natural termination.
const TruncationMarker = "... [truncated]"

// Truncate bounds s to limit characters, appending TruncationMarker when
// the input exceeds the budget. Pure and total: it never fails, only
// shortens.
func Truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return s[:limit] + TruncationMarker
}
