package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashyap-bhatt15/eval-demo/config"
	"github.com/kashyap-bhatt15/eval-demo/eval"
	intlogger "github.com/kashyap-bhatt15/eval-demo/internal/logger"
	"github.com/kashyap-bhatt15/eval-demo/logger"
	"github.com/kashyap-bhatt15/eval-demo/model"
)

// newTestServer builds a server around m. llmURL is where /evaluate sends its
// per-case calls; tests that never hit /evaluate can leave the default.
func newTestServer(t *testing.T, m model.Model, llmURL string) *Server {
	t.Helper()

	if llmURL == "" {
		llmURL = "http://localhost:8000"
	}
	cfg := &config.Config{
		Provider: "mock",
		Host:     "localhost",
		Port:     8000,
		LLMURL:   llmURL,
		Logger:   logger.Discard(),
	}

	s, err := New(cfg, m)
	require.NoError(t, err)
	return s
}

func doRequest(t *testing.T, s *Server, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleRoot(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &model.MockModel{}, "")

	rec := doRequest(t, s, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeJSON[map[string]string](t, rec)
	assert.Equal(t, "Hello, World!", body["message"])
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "1.0", body["api_version"])
}

func TestHandleRoot_UnknownPath(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &model.MockModel{}, "")
	rec := doRequest(t, s, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleRoot_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &model.MockModel{}, "")
	rec := doRequest(t, s, http.MethodPost, "/", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// TestHappyPathsLogNoErrors runs the read-only endpoints with a logger that
// fails the test on any warning or error.
func TestHappyPathsLogNoErrors(t *testing.T) {
	cfg := &config.Config{
		Provider: "mock",
		Host:     "localhost",
		Port:     8000,
		LLMURL:   "http://localhost:8000",
		Logger:   intlogger.NewFailTestLogger(t),
	}
	s, err := New(cfg, &model.MockModel{Response: "ok"})
	require.NoError(t, err)

	for _, target := range []string{"/", "/health", "/llm?prompt=hi"} {
		rec := doRequest(t, s, http.MethodGet, target, "")
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
}

func TestHandleHealth(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &model.MockModel{}, "")
	rec := doRequest(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON[map[string]string](t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "eval-demo-api", body["service"])
}

func TestHandleLLM(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &model.MockModel{Response: "Hello back!"}, "")

	prompt := url.QueryEscape("Hi there")
	rec := doRequest(t, s, http.MethodGet, "/llm?prompt="+prompt, "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON[map[string]string](t, rec)
	assert.Equal(t, "Hello back!", body["response"])
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "mock", body["model"])
}

func TestHandleLLM_POSTAllowed(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &model.MockModel{Response: "ok"}, "")
	rec := doRequest(t, s, http.MethodPost, "/llm?prompt=hi", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleLLM_MissingPrompt(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &model.MockModel{}, "")
	rec := doRequest(t, s, http.MethodGet, "/llm", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeJSON[map[string]string](t, rec)
	assert.Contains(t, body["error"], "prompt")
}

func TestHandleLLM_ModelError(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &model.MockModel{Err: errors.New("provider quota exceeded")}, "")
	rec := doRequest(t, s, http.MethodGet, "/llm?prompt=hi", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)

	body := decodeJSON[map[string]string](t, rec)
	assert.Contains(t, body["error"], "provider quota exceeded")
}

func TestHandleEvaluate(t *testing.T) {
	t.Parallel()

	// stub upstream that echoes canned answers per prompt
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		answers := map[string]string{
			"Hi":     "Hello! How can I help you today?",
			"Say OK": "OK",
		}
		if out, ok := answers[req.URL.Query().Get("prompt")]; ok {
			fmt.Fprintf(w, `{"response": %q}`, out)
			return
		}
		http.Error(w, "unknown prompt", http.StatusInternalServerError)
	}))
	t.Cleanup(upstream.Close)

	s := newTestServer(t, &model.MockModel{}, upstream.URL)

	body := `{"test_cases": [
		{"test_name": "greeting", "prompt": "Hi", "expected_output": "Hello! How can I help you today?"},
		{"test_name": "broken", "prompt": "unknown", "expected_output": "x"},
		{"prompt": "Say OK", "expected_output": "OK"}
	]}`
	rec := doRequest(t, s, http.MethodPost, "/evaluate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	type resp struct {
		TotalTests int           `json:"total_tests"`
		Results    []eval.Result `json:"results"`
	}
	out := decodeJSON[resp](t, rec)
	require.Equal(t, 3, out.TotalTests)
	require.Len(t, out.Results, 3)

	assert.Equal(t, "greeting", out.Results[0].TestName)
	assert.Empty(t, out.Results[0].Error)
	require.NotNil(t, out.Results[0].Scores)
	assert.True(t, out.Results[0].Scores.ExactMatch)

	// middle case fails without aborting the batch
	assert.Equal(t, "broken", out.Results[1].TestName)
	assert.Contains(t, out.Results[1].Error, "500")
	assert.Nil(t, out.Results[1].Scores)

	assert.Equal(t, eval.PlaceholderName, out.Results[2].TestName)
	require.NotNil(t, out.Results[2].Scores)
	assert.True(t, out.Results[2].Scores.ExactMatch)
}

func TestHandleEvaluate_Validation(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &model.MockModel{}, "")

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"malformed body", `{not json`, "invalid request body"},
		{"no cases", `{"test_cases": []}`, "test_cases is required"},
		{"missing key entirely", `{}`, "test_cases is required"},
		{"missing prompt", `{"test_cases": [{"expected_output": "x"}]}`, "test_cases[0]: prompt is required"},
		{"missing expected", `{"test_cases": [{"prompt": "p", "expected_output": "x"}, {"prompt": "p2"}]}`, "test_cases[1]: expected_output is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodPost, "/evaluate", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeJSON[map[string]string](t, rec)
			assert.Contains(t, body["error"], tt.wantErr)
		})
	}
}

func TestHandleEvaluate_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &model.MockModel{}, "")
	rec := doRequest(t, s, http.MethodGet, "/evaluate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSHeaders(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &model.MockModel{}, "")

	rec := doRequest(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = doRequest(t, s, http.MethodOptions, "/evaluate", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}
