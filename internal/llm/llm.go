package llm

import (
	"context"
	"errors"
)

// Client abstracts language-model providers that return a single JSON object.
type Client interface {
	CompleteJSON(ctx context.Context, req Request) (string, error)
}

// Request is one system+user prompt pair.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("language model not configured")

// PlaceholderClient is used when no provider is configured; every call fails
// so callers take their deterministic fallback path.
type PlaceholderClient struct{}

// CompleteJSON returns ErrNotConfigured.
func (PlaceholderClient) CompleteJSON(ctx context.Context, req Request) (string, error) {
	return "", ErrNotConfigured
}
