// Package judge invokes the external LLM that audits call logs. The
// client is transport-only: it submits the assembled review document and
// returns the raw verdict text. Parsing and validation belong to the
// review package, retry policy to the orchestrator.
package judge

import (
	"context"
	"errors"
	"fmt"
)

// Fixed decoding parameters for verdict generation. Low temperature keeps
// the judge conservative; the response is constrained to JSON text.
const (
	Temperature     float32 = 0.1
	TopP            float32 = 0.95
	TopK            float32 = 40
	MaxOutputTokens int32   = 8192
	ResponseMIME            = "application/json"
)

// Client submits a review document to the judge model and returns the raw
// response text. Implementations perform no retries.
type Client interface {
	Review(ctx context.Context, document string) (string, error)
}

// ErrEmptyVerdict reports that the judge call succeeded but the model
// declined or returned no usable content.
var ErrEmptyVerdict = errors.New("judge returned no usable content")

// UnavailableError reports a credential, transport, or non-2xx failure
// reaching the judge model. It is distinct from a judge-level failure:
// the model was never (successfully) consulted.
type UnavailableError struct {
	Op         string // "token", "request", "response"
	StatusCode int    // upstream HTTP status, 0 if the call never completed
	Message    string
	Err        error
}

func (e *UnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("judge unavailable (%s, HTTP %d): %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("judge unavailable (%s): %s", e.Op, e.Message)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// IsUnavailable reports whether err is a transport/authentication failure.
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}
