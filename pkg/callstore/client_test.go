package callstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceops/callaudit/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	cfg := &config.CallStoreConfig{BaseURL: server.URL, Timeout: 5 * time.Second}
	return NewClient(cfg, "test-key", nil)
}

func TestGetCallSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/call_logs", r.URL.Path)
		assert.Equal(t, "eq.call-1", r.URL.Query().Get("call_id"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`[{"call_id": "call-1", "agent_id": "agent-1", "duration_seconds": 120}]`))
	})

	session, err := client.GetCallSession(context.Background(), "call-1")
	require.NoError(t, err)
	assert.Equal(t, "call-1", session.CallID)
	assert.Equal(t, "agent-1", session.AgentID)
	assert.Equal(t, 120, session.DurationSeconds)
}

func TestGetCallSession_BackfillsCallID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"agent_id": "agent-1"}]`))
	})

	session, err := client.GetCallSession(context.Background(), "call-2")
	require.NoError(t, err)
	assert.Equal(t, "call-2", session.CallID)
}

func TestGetCallSession_EmptyResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.GetCallSession(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetCallSession_HTTP404(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetCallSession(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetCallSession_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream timeout"))
	})

	_, err := client.GetCallSession(context.Background(), "call-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
	assert.Contains(t, err.Error(), "upstream timeout")
}

func TestAgentConfiguration(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/call_configurations", r.URL.Path)
		assert.Equal(t, "complete_configuration", r.URL.Query().Get("select"))
		_, _ = w.Write([]byte(`[{"complete_configuration": {"instructions": "be helpful"}}]`))
	})

	cfg, err := client.AgentConfiguration(context.Background(), "call-1")
	require.NoError(t, err)
	assert.Equal(t, "be helpful", cfg["instructions"])
}

func TestAgentConfiguration_NullConfig(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"complete_configuration": null}]`))
	})

	_, err := client.AgentConfiguration(context.Background(), "call-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTelemetry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/call_telemetry", r.URL.Path)
		assert.Equal(t, "timestamp.asc", r.URL.Query().Get("order"))
		_, _ = w.Write([]byte(`[
			{"turn_id": "x1", "user_text": "hi"},
			{"turn_id": "x2", "agent_text": "hello"}
		]`))
	})

	telemetry, err := client.Telemetry(context.Background(), "call-1")
	require.NoError(t, err)
	require.Len(t, telemetry.SessionTraces, 2)
	assert.Equal(t, "x1", telemetry.SessionTraces[0].TurnID)
	assert.Equal(t, "hello", telemetry.SessionTraces[1].AgentText)
}

func TestTelemetry_Empty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.Telemetry(context.Background(), "call-1")
	require.ErrorIs(t, err, ErrNotFound)
}
