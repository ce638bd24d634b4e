// Package callstore provides HTTP access to the voice platform's storage
// API: call sessions, agent configuration snapshots, and telemetry.
package callstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/voiceops/callaudit/pkg/config"
	"github.com/voiceops/callaudit/pkg/models"
)

// ErrNotFound is returned when the store has no row for the requested call.
var ErrNotFound = fmt.Errorf("call store: not found")

// Client talks to the storage REST API. The API key is sent as both the
// apikey header and a bearer token, which is what the storage gateway
// expects.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a call store client from configuration.
func NewClient(cfg *config.CallStoreConfig, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// GetCallSession fetches the full call session row for a call log ID.
func (c *Client) GetCallSession(ctx context.Context, callLogID string) (*models.CallSession, error) {
	var rows []models.CallSession
	query := url.Values{
		"call_id": []string{"eq." + callLogID},
		"limit":   []string{"1"},
	}
	if err := c.get(ctx, "/call_logs", query, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("call session %s: %w", callLogID, ErrNotFound)
	}

	session := rows[0]
	if session.CallID == "" {
		session.CallID = callLogID
	}
	return &session, nil
}

// AgentConfiguration fetches the agent configuration snapshot attached to
// a call. Implements review.CallSource.
func (c *Client) AgentConfiguration(ctx context.Context, callLogID string) (map[string]any, error) {
	var rows []struct {
		CompleteConfiguration map[string]any `json:"complete_configuration"`
	}
	query := url.Values{
		"call_id": []string{"eq." + callLogID},
		"select":  []string{"complete_configuration"},
		"limit":   []string{"1"},
	}
	if err := c.get(ctx, "/call_configurations", query, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 || rows[0].CompleteConfiguration == nil {
		return nil, fmt.Errorf("agent configuration for %s: %w", callLogID, ErrNotFound)
	}
	return rows[0].CompleteConfiguration, nil
}

// Telemetry fetches the per-turn telemetry records for a call, ordered
// by turn. Implements review.CallSource.
func (c *Client) Telemetry(ctx context.Context, callLogID string) (*models.TelemetryData, error) {
	var rows []models.TelemetryTurn
	query := url.Values{
		"call_id": []string{"eq." + callLogID},
		"order":   []string{"timestamp.asc"},
	}
	if err := c.get(ctx, "/call_telemetry", query, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("telemetry for %s: %w", callLogID, ErrNotFound)
	}
	return &models.TelemetryData{SessionTraces: rows}, nil
}

// get performs an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call store request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("call store returned HTTP %d for %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode call store response: %w", err)
	}
	return nil
}
