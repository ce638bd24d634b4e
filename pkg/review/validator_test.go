package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceops/callaudit/pkg/models"
)

const validFinding = `{
	"type": "API_FAILURE",
	"title": "Booking API returned 503",
	"description": "The booking endpoint failed while the agent promised confirmation.",
	"evidence": {
		"transcript_excerpt": "Your appointment is confirmed.",
		"api_request": "POST /book",
		"api_response": "503 Service Unavailable",
		"expected": "Successful booking before confirming",
		"actual": "Booking failed, agent confirmed anyway"
	},
	"timestamp": "2026-08-01T12:01:30Z",
	"impact": "Customer believes an appointment exists that was never created."
}`

func TestParseVerdict_CleanCall(t *testing.T) {
	result, err := ParseVerdict(`{"call_timestamp": "2026-08-01T12:00:00Z", "analysis_date": "2026-08-02", "errors": []}`)
	require.NoError(t, err)

	assert.NotNil(t, result.Errors)
	assert.Empty(t, result.Errors)
	assert.Equal(t, "2026-08-01T12:00:00Z", result.CallTimestamp)

	count, api, action, output := result.Counts()
	assert.Zero(t, count)
	assert.False(t, api)
	assert.False(t, action)
	assert.False(t, output)
}

func TestParseVerdict_WithFindings(t *testing.T) {
	result, err := ParseVerdict(`{"errors": [` + validFinding + `]}`)
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, models.FindingAPIFailure, result.Errors[0].Type)
	assert.Equal(t, "Booking API returned 503", result.Errors[0].Title)

	count, api, action, output := result.Counts()
	assert.Equal(t, 1, count)
	assert.True(t, api)
	assert.False(t, action)
	assert.False(t, output)
}

func TestParseVerdict_StripsMarkdownFences(t *testing.T) {
	fenced := "```json\n{\"errors\": []}\n```"
	result, err := ParseVerdict(fenced)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)

	// Bare fence without language tag
	bare := "```\n{\"errors\": []}\n```"
	result, err = ParseVerdict(bare)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
}

func TestParseVerdict_InvalidJSON(t *testing.T) {
	_, err := ParseVerdict("the call looked fine to me")
	require.Error(t, err)

	var mv *MalformedVerdictError
	require.ErrorAs(t, err, &mv)
	assert.Contains(t, mv.Reason, "invalid JSON")
	assert.Equal(t, "the call looked fine to me", mv.Raw)
}

func TestParseVerdict_MissingErrorsKey(t *testing.T) {
	_, err := ParseVerdict(`{"call_timestamp": "2026-08-01T12:00:00Z"}`)
	require.Error(t, err)

	var mv *MalformedVerdictError
	require.ErrorAs(t, err, &mv)
}

func TestParseVerdict_UnknownFindingType(t *testing.T) {
	raw := `{"errors": [{
		"type": "HALLUCINATION",
		"title": "t", "description": "d",
		"evidence": {"transcript_excerpt": "e", "expected": "x", "actual": "a"},
		"timestamp": "ts", "impact": "i"
	}]}`

	_, err := ParseVerdict(raw)
	require.Error(t, err)

	var mv *MalformedVerdictError
	require.ErrorAs(t, err, &mv)
}

func TestParseVerdict_MissingEvidenceFields(t *testing.T) {
	raw := `{"errors": [{
		"type": "WRONG_ACTION",
		"title": "t", "description": "d",
		"evidence": {"transcript_excerpt": "e"},
		"timestamp": "ts", "impact": "i"
	}]}`

	_, err := ParseVerdict(raw)
	require.Error(t, err)
}

func TestParseVerdict_NullApiEvidenceAllowed(t *testing.T) {
	raw := `{"errors": [{
		"type": "WRONG_OUTPUT",
		"title": "t", "description": "d",
		"evidence": {"transcript_excerpt": "e", "api_request": null, "api_response": null, "expected": "x", "actual": "a"},
		"timestamp": "ts", "impact": "i"
	}]}`

	result, err := ParseVerdict(raw)
	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Nil(t, result.Errors[0].Evidence.ApiRequest)
}

func TestParseVerdict_ErrorsNotArray(t *testing.T) {
	_, err := ParseVerdict(`{"errors": "none"}`)
	require.Error(t, err)
}

func TestCounts_AllThreeTypes(t *testing.T) {
	result := &models.ReviewResult{
		Errors: []models.Finding{
			{Type: models.FindingAPIFailure},
			{Type: models.FindingWrongAction},
			{Type: models.FindingWrongOutput},
			{Type: models.FindingAPIFailure},
		},
	}

	count, api, action, output := result.Counts()
	assert.Equal(t, 4, count)
	assert.True(t, api)
	assert.True(t, action)
	assert.True(t, output)
}
