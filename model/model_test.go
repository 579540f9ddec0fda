package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashyap-bhatt15/eval-demo/config"
)

func TestMockModel_Echo(t *testing.T) {
	t.Parallel()

	m := &MockModel{}
	assert.Equal(t, "mock", m.Name())

	out, err := m.Generate(context.Background(), "Hi")
	require.NoError(t, err)
	assert.Equal(t, `mock response to "Hi"`, out)

	// deterministic across calls
	again, err := m.Generate(context.Background(), "Hi")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestMockModel_CannedResponse(t *testing.T) {
	t.Parallel()

	m := &MockModel{Response: "always this"}
	out, err := m.Generate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "always this", out)
}

func TestMockModel_Err(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("simulated outage")
	m := &MockModel{Err: wantErr}
	_, err := m.Generate(context.Background(), "p")
	require.ErrorIs(t, err, wantErr)
}

func TestNew_MockProvider(t *testing.T) {
	t.Parallel()

	m, err := New(context.Background(), &config.Config{Provider: "mock"})
	require.NoError(t, err)
	assert.Equal(t, "mock", m.Name())
}

func TestNew_UnknownProvider(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), &config.Config{Provider: "palm"})
	require.ErrorContains(t, err, `unknown provider "palm"`)
}

func TestNew_ProviderModelNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		provider string
		model    string
		want     string
	}{
		{"openai", "", "gpt-4o-mini"},
		{"openai", "gpt-4o", "gpt-4o"},
		{"anthropic", "", "claude-3-5-haiku-latest"},
		{"anthropic", "claude-sonnet-4-0", "claude-sonnet-4-0"},
	}

	for _, tt := range tests {
		m, err := New(context.Background(), &config.Config{
			Provider: tt.provider,
			Model:    tt.model,
			APIKey:   "sk-test",
		})
		require.NoError(t, err)
		assert.Equal(t, tt.want, m.Name())
	}
}
