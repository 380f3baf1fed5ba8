package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redaphid/emo/errors"
	"github.com/redaphid/emo/internal/logger"
)

// DefaultBaseURL is the usual address of a local inference server
// (llama.cpp server, Ollama, LocalAI). EMO_INFERENCE_HOST overrides it.
const DefaultBaseURL = "http://localhost:11434"

// LlamaEngine streams completions from an OpenAI-compatible local inference
// server over its /v1/chat/completions endpoint with server-sent events.
// SSE frames are decoded lazily, one per pull, so abandoning the stream
// cancels the request without draining the generation.
type LlamaEngine struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewLlamaEngine creates an engine for the given model artifact identifier.
// An empty baseURL falls back to EMO_INFERENCE_HOST, then DefaultBaseURL.
func NewLlamaEngine(baseURL, model string) *LlamaEngine {
	if baseURL == "" {
		baseURL = os.Getenv("EMO_INFERENCE_HOST")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &LlamaEngine{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

type chatRequest struct {
	Model    string          `json:"model"`
	Messages []chatMessage   `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  *completionOpts `json:"options,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionOpts struct {
	Temperature float64 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"num_predict,omitempty"`
	NumCtx      int     `json:"num_ctx,omitempty"`
}

// Generate posts the prompt with streaming enabled and returns a pull-based
// view over the response body.
func (e *LlamaEngine) Generate(ctx context.Context, prompt string, opts Options) (Stream, error) {
	body, err := json.Marshal(chatRequest{
		Model:    e.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
		Stream:   true,
		Options: &completionOpts{
			Temperature: opts.Temperature,
			MaxTokens:   opts.MaxTokens,
			NumCtx:      opts.ContextSize,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal request")
	}

	ctx, cancel := context.WithCancel(ctx)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Logger.Debugw("starting generation", "model", e.model, "url", e.baseURL)

	resp, err := e.client.Do(req)
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "inference request")
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		cancel()
		return nil, errors.Newf("inference server returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return &sseStream{
		body:    resp.Body,
		scanner: bufio.NewScanner(resp.Body),
		cancel:  cancel,
	}, nil
}

// sseStream decodes one SSE data frame per Next call.
type sseStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	cancel  context.CancelFunc
	done    bool
}

type sseChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (s *sseStream) Next() (string, error) {
	if s.done {
		return "", io.EOF
	}
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		payload := strings.TrimPrefix(line, "data: ")
		if payload == "[DONE]" {
			s.done = true
			return "", io.EOF
		}

		var chunk sseChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			return "", errors.Wrap(err, "decode stream chunk")
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if chunk.Choices[0].FinishReason != "" {
			s.done = true
			if content := chunk.Choices[0].Delta.Content; content != "" {
				return content, nil
			}
			return "", io.EOF
		}
		return chunk.Choices[0].Delta.Content, nil
	}

	s.done = true
	if err := s.scanner.Err(); err != nil {
		return "", errors.Wrap(err, "read stream")
	}
	return "", io.EOF
}

func (s *sseStream) Close() error {
	s.cancel()
	return s.body.Close()
}
