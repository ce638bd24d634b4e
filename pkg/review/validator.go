package review

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/voiceops/callaudit/pkg/models"
)

// verdictSchema is the JSON Schema every judge response must satisfy.
// Unknown finding types are rejected by the enum; a missing errors key by
// the required list. There is no best-effort acceptance of partial shapes.
const verdictSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["errors"],
  "properties": {
    "call_timestamp": {"type": "string"},
    "analysis_date": {"type": "string"},
    "errors": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type", "title", "description", "evidence", "timestamp", "impact"],
        "properties": {
          "type": {"enum": ["API_FAILURE", "WRONG_ACTION", "WRONG_OUTPUT"]},
          "title": {"type": "string"},
          "description": {"type": "string"},
          "evidence": {
            "type": "object",
            "required": ["transcript_excerpt", "expected", "actual"],
            "properties": {
              "transcript_excerpt": {"type": "string"},
              "api_request": {"type": ["string", "null"]},
              "api_response": {"type": ["string", "null"]},
              "expected": {"type": "string"},
              "actual": {"type": "string"}
            }
          },
          "timestamp": {"type": "string"},
          "impact": {"type": "string"}
        }
      }
    }
  }
}`

var verdictPrinter = message.NewPrinter(language.English)

var compiledVerdictSchema = mustCompileSchema(verdictSchema, "verdict.schema.json")

func mustCompileSchema(raw, name string) *jsonschema.Schema {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		panic(fmt.Sprintf("parsing embedded %s: %v", name, err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("adding %s resource: %v", name, err))
	}
	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("compiling %s: %v", name, err))
	}
	return sch
}

// MalformedVerdictError reports that the judge's output failed schema
// validation. The raw text is kept for logging only — it is never
// persisted as a verdict.
type MalformedVerdictError struct {
	Reason string
	Raw    string
}

func (e *MalformedVerdictError) Error() string {
	return "malformed judge verdict: " + e.Reason
}

// fencePattern strips a single markdown code fence wrapping the whole
// response. Judges constrained to JSON output still occasionally wrap it.
var fencePattern = regexp.MustCompile("(?s)^\\s*```(?:json|JSON)?\\s*\n?(.*?)\n?\\s*```\\s*$")

func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if m := fencePattern.FindStringSubmatch(s); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return s
}

// ParseVerdict validates the judge's raw text against the verdict schema
// and decodes it into a typed ReviewResult. Any violation — invalid
// syntax, missing errors key, unknown finding type — yields a
// MalformedVerdictError and is terminal for the call.
func ParseVerdict(raw string) (*models.ReviewResult, error) {
	cleaned := stripMarkdownFences(raw)

	var instance any
	if err := json.Unmarshal([]byte(cleaned), &instance); err != nil {
		return nil, &MalformedVerdictError{Reason: "invalid JSON: " + err.Error(), Raw: raw}
	}

	if err := compiledVerdictSchema.Validate(instance); err != nil {
		return nil, &MalformedVerdictError{Reason: schemaErrorSummary(err), Raw: raw}
	}

	var result models.ReviewResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, &MalformedVerdictError{Reason: "decoding verdict: " + err.Error(), Raw: raw}
	}
	if result.Errors == nil {
		result.Errors = []models.Finding{}
	}
	return &result, nil
}

// schemaErrorSummary flattens a validation error tree into the first few
// leaf messages with their instance locations.
func schemaErrorSummary(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	var leaves []string
	collectSchemaErrors(ve, &leaves)
	const limit = 3
	if len(leaves) > limit {
		leaves = append(leaves[:limit], fmt.Sprintf("(+%d more)", len(leaves)-limit))
	}
	return strings.Join(leaves, "; ")
}

func collectSchemaErrors(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*out = append(*out, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(verdictPrinter)))
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(cause, out)
	}
}
