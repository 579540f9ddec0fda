// Package model abstracts the third-party language-model providers the
// service can forward prompts to.
package model

import (
	"context"
	"fmt"
	"time"

	"github.com/kashyap-bhatt15/eval-demo/config"
)

// defaultTimeout bounds every provider call.
const defaultTimeout = 30 * time.Second

// Model is a language-model provider. Implementations make exactly one
// attempt per call; there is no retry policy in the request path.
type Model interface {
	// Name returns the provider's model name, used in responses.
	Name() string

	// Generate produces the model's text output for the prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the provider selected by cfg.Provider. The config must have
// been validated; New does not re-check credentials.
func New(ctx context.Context, cfg *config.Config) (Model, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIModel(cfg.APIKey, cfg.Model), nil
	case "anthropic":
		return NewAnthropicModel(cfg.APIKey, cfg.Model), nil
	case "gemini":
		return NewGeminiModel(ctx, cfg.APIKey, cfg.Model)
	case "ollama":
		return NewOllamaModel(cfg.OllamaURL, cfg.Model)
	case "mock":
		return &MockModel{}, nil
	default:
		return nil, fmt.Errorf("model: unknown provider %q", cfg.Provider)
	}
}
