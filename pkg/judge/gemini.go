package judge

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// GeminiClient calls the Gemini API through the genai SDK using an API
// key. It is the default backend for deployments without a GCP project.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a Gemini judge client.
func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing genai client: %w", err)
	}
	return &GeminiClient{client: client, model: model, timeout: timeout}, nil
}

// Review submits the document and returns the model's raw text response.
func (c *GeminiClient) Review(ctx context.Context, document string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(Temperature),
		TopP:             genai.Ptr(TopP),
		TopK:             genai.Ptr(TopK),
		MaxOutputTokens:  MaxOutputTokens,
		ResponseMIMEType: ResponseMIME,
	}

	resp, err := c.client.Models.GenerateContent(callCtx, c.model, []*genai.Content{
		{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{genai.NewPartFromText(document)},
		},
	}, config)
	if err != nil {
		return "", &UnavailableError{Op: "request", Message: err.Error(), Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyVerdict
	}
	return text, nil
}
