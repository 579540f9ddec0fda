package model

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const defaultOllamaModel = "llama3"

// OllamaModel forwards prompts to a local Ollama server.
type OllamaModel struct {
	llm   *ollama.LLM
	model string
}

// NewOllamaModel creates an Ollama-backed model pointed at serverURL.
// An empty modelName selects the default.
func NewOllamaModel(serverURL, modelName string) (*OllamaModel, error) {
	if modelName == "" {
		modelName = defaultOllamaModel
	}

	llm, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}

	return &OllamaModel{
		llm:   llm,
		model: modelName,
	}, nil
}

// Name returns the configured model name.
func (m *OllamaModel) Name() string {
	return m.model
}

// Generate runs the prompt as a single completion.
func (m *OllamaModel) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	out, err := llms.GenerateFromSinglePrompt(ctx, m.llm, prompt)
	if err != nil {
		return "", fmt.Errorf("ollama: %w", err)
	}
	return out, nil
}
