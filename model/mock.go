package model

import (
	"context"
	"fmt"
)

// MockModel is a deterministic model for tests and local development.
// It never makes network calls.
type MockModel struct {
	// Response, when set, is returned for every prompt.
	Response string

	// Err, when set, is returned for every prompt.
	Err error
}

// Name identifies the mock provider.
func (m *MockModel) Name() string {
	return "mock"
}

// Generate returns the canned response, or an echo of the prompt when no
// response is configured.
func (m *MockModel) Generate(_ context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return fmt.Sprintf("mock response to %q", prompt), nil
}
