package llm

import (
	"context"
	"errors"
	"strings"
)

// Client completes a single text prompt.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned when no provider is available.
var ErrNotConfigured = errors.New("LLM provider not configured")

// ErrEmptyResponse is returned when a provider answers without any text.
var ErrEmptyResponse = errors.New("LLM returned an empty response")

// PlaceholderClient is used when LLM_PROVIDER is "none" or credentials are missing.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

// Provider names accepted by LLM_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

// DefaultModel returns the model used for a provider when LLM_MODEL is unset.
func DefaultModel(provider, model string) string {
	if m := strings.TrimSpace(model); m != "" {
		return m
	}
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderGemini:
		return "gemini-1.5-flash"
	default:
		return ""
	}
}
