package ai

import (
	"context"
	"encoding/json"
	"github.com/myrjola/gutengraph/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newStubCompletion serves an OpenAI-compatible chat-completion endpoint that
// always answers with the given message content.
func newStubCompletion(t *testing.T, content string) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req struct {
			Model       string  `json:"model"`
			Temperature float64 `json:"temperature"`
			Messages    []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.InDelta(t, 0.2, req.Temperature, 0.001)

		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1,
			"model":   req.Model,
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(response))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
}

func TestClient_Analyze(t *testing.T) {
	client := newStubCompletion(t, `{
		"characters": [{"name": "Alice", "aliases": [], "description": "A curious child.", "importance": "main"}],
		"interactions": []
	}`)

	analysis, err := client.Analyze(context.Background(), "Alice was beginning to get very tired.", "Alice's Adventures in Wonderland")
	require.NoError(t, err)
	require.Len(t, analysis.Characters, 1)
	assert.Equal(t, "Alice", analysis.Characters[0].Name)
	assert.Empty(t, analysis.Interactions)
}

func TestClient_Analyze_emptyCompletion(t *testing.T) {
	client := newStubCompletion(t, "")

	_, err := client.Analyze(context.Background(), "some text", "Some Book")
	require.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestClient_Analyze_malformedCompletion(t *testing.T) {
	client := newStubCompletion(t, "```json\n{\"characters\":[],\"interactions\":[]}\n```")

	_, err := client.Analyze(context.Background(), "some text", "Some Book")
	require.ErrorIs(t, err, ErrMalformedAnalysis)
	assert.NotErrorIs(t, err, ErrEmptyCompletion)
}

func TestClient_Analyze_upstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": {"message": "model overloaded"}}`, http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)
	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.Analyze(context.Background(), "some text", "Some Book")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrEmptyCompletion))
	assert.False(t, errors.Is(err, ErrMalformedAnalysis))
}
