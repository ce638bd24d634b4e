package judge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingTokenProvider always fails, to verify the judge is never called
// without credentials.
type failingTokenProvider struct{}

func (failingTokenProvider) Token(context.Context) (string, error) {
	return "", errors.New("key file missing")
}

func candidateResponse(text string) string {
	resp := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestVertexClient_Review(t *testing.T) {
	var gotAuth string
	var gotBody generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(candidateResponse(`{"errors": []}`)))
	}))
	defer server.Close()

	client := NewVertexClient(server.URL, StaticTokenProvider("tok-123"), 5*time.Second)

	text, err := client.Review(context.Background(), "review this call")
	require.NoError(t, err)
	assert.Equal(t, `{"errors": []}`, text)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "user", gotBody.Contents[0].Role)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "review this call", gotBody.Contents[0].Parts[0].Text)

	cfg := gotBody.GenerationConfig
	assert.Equal(t, Temperature, cfg.Temperature)
	assert.Equal(t, TopP, cfg.TopP)
	assert.Equal(t, TopK, cfg.TopK)
	assert.Equal(t, MaxOutputTokens, cfg.MaxOutputTokens)
	assert.Equal(t, ResponseMIME, cfg.ResponseMimeType)
}

func TestVertexClient_ConcatenatesCandidateParts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"parts": []any{
							map[string]any{"text": `{"errors":`},
							map[string]any{"text": ` []}`},
						},
					},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewVertexClient(server.URL, StaticTokenProvider("tok"), 5*time.Second)

	text, err := client.Review(context.Background(), "doc")
	require.NoError(t, err)
	assert.Equal(t, `{"errors": []}`, text)
}

func TestVertexClient_TokenFailure(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		_, _ = w.Write([]byte(candidateResponse("{}")))
	}))
	defer server.Close()

	client := NewVertexClient(server.URL, failingTokenProvider{}, 5*time.Second)

	_, err := client.Review(context.Background(), "doc")
	require.Error(t, err)

	var ue *UnavailableError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "token", ue.Op)
	assert.False(t, called, "judge must not be called without credentials")
}

func TestVertexClient_Non2xxResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": "quota exceeded"}`))
	}))
	defer server.Close()

	client := NewVertexClient(server.URL, StaticTokenProvider("tok"), 5*time.Second)

	_, err := client.Review(context.Background(), "doc")
	require.Error(t, err)

	var ue *UnavailableError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusTooManyRequests, ue.StatusCode)
	assert.Contains(t, ue.Message, "quota exceeded")
	assert.True(t, IsUnavailable(err))
}

func TestVertexClient_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewVertexClient(server.URL, StaticTokenProvider("tok"), 5*time.Second)

	_, err := client.Review(context.Background(), "doc")
	require.ErrorIs(t, err, ErrEmptyVerdict)
}

func TestVertexClient_EmptyCandidateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(candidateResponse("")))
	}))
	defer server.Close()

	client := NewVertexClient(server.URL, StaticTokenProvider("tok"), 5*time.Second)

	_, err := client.Review(context.Background(), "doc")
	require.ErrorIs(t, err, ErrEmptyVerdict)
}

func TestVertexClient_UnparseableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	client := NewVertexClient(server.URL, StaticTokenProvider("tok"), 5*time.Second)

	_, err := client.Review(context.Background(), "doc")
	require.Error(t, err)

	var ue *UnavailableError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "response", ue.Op)
}

func TestVertexEndpoint(t *testing.T) {
	got := VertexEndpoint("my-project", "us-central1", "gemini-2.5-flash")
	assert.Equal(t,
		"https://us-central1-aiplatform.googleapis.com/v1/projects/my-project/locations/us-central1/publishers/google/models/gemini-2.5-flash:generateContent",
		got)
}

func TestStaticTokenProvider(t *testing.T) {
	tok, err := StaticTokenProvider("abc").Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	_, err = StaticTokenProvider("").Token(context.Background())
	assert.Error(t, err)
}
