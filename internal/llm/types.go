package llm

import (
	"context"
	"errors"
)

// ErrUpstream classifies failures of the remote completion call: transport
// errors, non-2xx responses and empty choice lists. Callers turn these into
// error-flagged responses instead of handler faults.
var ErrUpstream = errors.New("upstream completion failed")

type Provider interface {
	// Complete submits a prompt and returns the first completion choice
	Complete(ctx context.Context, prompt string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
}

type Response struct {
	Content string
	Usage   Usage
}
