package main

import (
	"context"
	"encoding/json"
	"github.com/myrjola/gutengraph/internal/e2etest"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

const alicePage = `<html>
<head><title>Alice's Adventures in Wonderland</title></head>
<body>
<h1>Alice's Adventures in Wonderland by Lewis Carroll</h1>
<div class="summary-text-container">
<!-- Always visible content -->
A curious girl falls down a rabbit hole.
<!-- Hidden checkbox -->
<span class="toggle-content">
Chaos ensues.
</span>
<!-- Clickable label to show less -->
</div>
</body>
</html>`

const aliceText = "Alice was beginning to get very tired of sitting by her sister on the bank."

const aliceAnalysis = `{
	"characters": [{"name": "Alice", "aliases": [], "description": "A curious child.", "importance": "main"}],
	"interactions": []
}`

// newStubGutenberg serves the book-detail page and plain text for book 11.
// Every other book id, and every text URL scheme for other ids, returns 404.
func newStubGutenberg(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ebooks/11", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(alicePage))
	})
	// The primary URL scheme misses so that the fallback gets exercised end to end.
	mux.HandleFunc("/cache/epub/11/pg11.txt", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(aliceText))
	})
	// Book 66 has a detail page but no plain-text format at either scheme.
	mux.HandleFunc("/ebooks/66", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(alicePage))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// newStubLLM serves an OpenAI-compatible chat-completion endpoint answering
// with the given message content.
func newStubLLM(t *testing.T, content string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1,
			"model":   "test-model",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]any{"role": "assistant", "content": content},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(server.Close)
	return server
}

// startTestServer boots the whole application on port 0 against stub upstreams
// and returns a client for driving the JSON API.
func startTestServer(t *testing.T, llmContent string) *e2etest.Client {
	t.Helper()

	gutenbergStub := newStubGutenberg(t)
	llmStub := newStubLLM(t, llmContent)

	env := map[string]string{
		"GUTENGRAPH_ADDR":        "localhost:0",
		"GUTENGRAPH_PPROF_PORT":  ":0",
		"GUTENBERG_BASE_URL":     gutenbergStub.URL,
		"GUTENBERG_INSECURE_TLS": "false",
		"GROQ_API_KEY":           "test-key",
		"GROQ_BASE_URL":          llmStub.URL,
	}
	lookupEnv := func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server, err := e2etest.StartServer(ctx, io.Discard, lookupEnv, run)
	require.NoError(t, err)
	return server.Client()
}
