// Package review contains the call-review pipeline: payload assembly,
// verdict validation, and the orchestrator that drives one review from
// queued record to terminal state.
package review

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/voiceops/callaudit/pkg/models"
)

// AssemblePayload combines the extracted skeleton with the call's
// identity and status fields into the final ReviewPayload.
func AssemblePayload(session *models.CallSession, skeleton models.ReviewPayload) models.ReviewPayload {
	payload := skeleton
	payload.CallID = session.CallID
	payload.CallTimestamp = session.StartedAt
	payload.DurationSeconds = session.DurationSeconds
	payload.CallStatus = session.CallEndedReason
	return payload
}

// AssembleDocument serializes the payload into the exact judge request
// document: instruction document, analysis label, then the payload JSON.
// Assembly is deterministic — identical inputs produce byte-identical
// output, which the assembler tests rely on.
func AssembleDocument(payload models.ReviewPayload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("serializing review payload: %w", err)
	}

	var doc strings.Builder
	doc.Grow(len(judgeInstructions) + len(analysisLabel) + len(body) + 2)
	doc.WriteString(judgeInstructions)
	doc.WriteString(analysisLabel)
	doc.WriteString("\n")
	doc.Write(body)
	return doc.String(), nil
}
