package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sseBody(lines ...string) string {
	body := ""
	for _, l := range lines {
		body += "data: " + l + "\n\n"
	}
	return body
}

func chunkJSON(content, finishReason string) string {
	return fmt.Sprintf(`{"choices":[{"delta":{"content":%q},"finish_reason":%q}]}`, content, finishReason)
}

func TestLlamaEngineStreamsFragments(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "text/event-stream")
		io.WriteString(w, sseBody(
			chunkJSON("Hello", ""),
			chunkJSON(" 🔥", ""),
			"[DONE]",
		))
	}))
	defer srv.Close()

	engine := NewLlamaEngine(srv.URL, "tinyllama.gguf")
	stream, err := engine.Generate(context.Background(), "pick an emoji", Options{
		Temperature: 0.2,
		ContextSize: 2048,
		MaxTokens:   20,
	})
	require.NoError(t, err)
	defer stream.Close()

	frag, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, "Hello", frag)

	frag, err = stream.Next()
	require.NoError(t, err)
	assert.Equal(t, " 🔥", frag)

	_, err = stream.Next()
	assert.Equal(t, io.EOF, err)
	// EOF is sticky.
	_, err = stream.Next()
	assert.Equal(t, io.EOF, err)

	assert.Equal(t, "tinyllama.gguf", gotReq.Model)
	assert.True(t, gotReq.Stream)
	require.NotNil(t, gotReq.Options)
	assert.Equal(t, 20, gotReq.Options.MaxTokens)
	assert.Equal(t, 2048, gotReq.Options.NumCtx)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "pick an emoji", gotReq.Messages[0].Content)
}

func TestLlamaEngineFinishReasonEndsStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, sseBody(
			chunkJSON("🔥", ""),
			chunkJSON("", "stop"),
		))
	}))
	defer srv.Close()

	engine := NewLlamaEngine(srv.URL, "m")
	stream, err := engine.Generate(context.Background(), "p", Options{})
	require.NoError(t, err)
	defer stream.Close()

	frag, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, "🔥", frag)

	_, err = stream.Next()
	assert.Equal(t, io.EOF, err)
}

func TestLlamaEngineTruncatedStreamEnds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, sseBody(chunkJSON("partial", "")))
	}))
	defer srv.Close()

	engine := NewLlamaEngine(srv.URL, "m")
	stream, err := engine.Generate(context.Background(), "p", Options{})
	require.NoError(t, err)
	defer stream.Close()

	frag, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, "partial", frag)

	_, err = stream.Next()
	assert.Equal(t, io.EOF, err)
}

func TestLlamaEngineServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	engine := NewLlamaEngine(srv.URL, "m")
	_, err := engine.Generate(context.Background(), "p", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestNewLlamaEngineBaseURLFallback(t *testing.T) {
	t.Setenv("EMO_INFERENCE_HOST", "")
	assert.Equal(t, DefaultBaseURL, NewLlamaEngine("", "m").baseURL)

	t.Setenv("EMO_INFERENCE_HOST", "http://gpubox:8080")
	assert.Equal(t, "http://gpubox:8080", NewLlamaEngine("", "m").baseURL)
	assert.Equal(t, "http://explicit:1234", NewLlamaEngine("http://explicit:1234", "m").baseURL)
}
