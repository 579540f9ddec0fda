package model

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIModel forwards prompts to the OpenAI Chat Completions API.
type OpenAIModel struct {
	client openai.Client
	model  string
}

// NewOpenAIModel creates an OpenAI-backed model. An empty modelName selects
// the default.
func NewOpenAIModel(apiKey, modelName string) *OpenAIModel {
	if modelName == "" {
		modelName = defaultOpenAIModel
	}
	return &OpenAIModel{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  modelName,
	}
}

// Name returns the configured model name.
func (m *OpenAIModel) Name() string {
	return m.model
}

// Generate sends the prompt as a single user message.
func (m *OpenAIModel) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	resp, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(m.model),
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: no response content")
	}
	return resp.Choices[0].Message.Content, nil
}
