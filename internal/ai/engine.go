// Package ai selects emojis with a local language model.
//
// Generation is consumed as a pull-based stream of decoded text fragments:
// the selector inspects each fragment as it arrives and abandons the stream
// the moment it has what it needs, so the engine must tolerate being closed
// mid-generation.
package ai

import (
	"context"
)

// Options configures a single generation call.
type Options struct {
	// Temperature controls sampling; the selector uses a near-deterministic
	// value.
	Temperature float64
	// ContextSize bounds the model context window. Zero means the server
	// default.
	ContextSize int
	// MaxTokens caps how many tokens the server may produce.
	MaxTokens int
}

// Stream yields generated text one fragment at a time. A fragment holds
// zero or more characters. Next returns io.EOF when the generation ends
// naturally; Close abandons the generation and is safe to call at any point,
// including after EOF.
type Stream interface {
	Next() (string, error)
	Close() error
}

// Engine starts generations. Implementations must honor ctx cancellation
// between pulls.
type Engine interface {
	Generate(ctx context.Context, prompt string, opts Options) (Stream, error)
}
