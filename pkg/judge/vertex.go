package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// VertexClient calls a Vertex-style generateContent REST endpoint with a
// bearer token from an injected TokenProvider. The concrete secret
// delivery mechanism (key file, env, secret manager) is the provider's
// concern, not this client's.
type VertexClient struct {
	endpoint   string
	tokens     TokenProvider
	httpClient *http.Client
}

// VertexEndpoint builds the generateContent URL for a project, location,
// and model on the public Vertex API host.
func VertexEndpoint(project, location, model string) string {
	return fmt.Sprintf(
		"https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/publishers/google/models/%s:generateContent",
		location, project, location, model,
	)
}

// NewVertexClient creates a REST judge client. endpoint is the full
// generateContent URL (see VertexEndpoint); timeout bounds the model call
// so a slow judge cannot block a worker indefinitely.
func NewVertexClient(endpoint string, tokens TokenProvider, timeout time.Duration) *VertexClient {
	return &VertexClient{
		endpoint:   endpoint,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// generateRequest is the generateContent request body.
type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateContent struct {
	Role  string         `json:"role"`
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float32 `json:"temperature"`
	TopP             float32 `json:"topP"`
	TopK             float32 `json:"topK"`
	MaxOutputTokens  int32   `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"responseMimeType"`
}

// generateResponse is the subset of the generateContent response we read.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// Review submits the document and returns the model's raw text response.
func (c *VertexClient) Review(ctx context.Context, document string) (string, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", &UnavailableError{Op: "token", Message: "credential acquisition failed", Err: err}
	}

	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{{
			Role:  "user",
			Parts: []generatePart{{Text: document}},
		}},
		GenerationConfig: generationConfig{
			Temperature:      Temperature,
			TopP:             TopP,
			TopK:             TopK,
			MaxOutputTokens:  MaxOutputTokens,
			ResponseMimeType: ResponseMIME,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling judge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating judge request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UnavailableError{Op: "request", Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UnavailableError{Op: "response", Message: "reading response body", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UnavailableError{
			Op:         "response",
			StatusCode: resp.StatusCode,
			Message:    summarize(respBody),
		}
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &UnavailableError{Op: "response", Message: "unparseable response body", Err: err}
	}

	text := candidateText(parsed)
	if text == "" {
		return "", ErrEmptyVerdict
	}
	return text, nil
}

// candidateText concatenates the text parts of the first candidate.
func candidateText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var buf bytes.Buffer
	for _, part := range resp.Candidates[0].Content.Parts {
		buf.WriteString(part.Text)
	}
	return buf.String()
}

// summarize bounds an upstream error body for inclusion in an error
// message.
func summarize(body []byte) string {
	const limit = 512
	s := string(body)
	if len(s) > limit {
		s = s[:limit] + "..."
	}
	return s
}
