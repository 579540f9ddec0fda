package server

import "github.com/kashyap-bhatt15/eval-demo/eval"

const apiVersion = "1.0"

// rootResponse is the body for GET /.
type rootResponse struct {
	Message    string `json:"message"`
	Status     string `json:"status"`
	APIVersion string `json:"api_version"`
}

// healthResponse is the body for GET /health.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// llmResponse is the body for a successful /llm call. The evaluation harness
// only requires the response field; status and model are informational.
type llmResponse struct {
	Response string `json:"response"`
	Status   string `json:"status"`
	Model    string `json:"model"`
}

// evaluateRequest is the body for POST /evaluate.
type evaluateRequest struct {
	TestCases []eval.Case `json:"test_cases"`
}

// evaluateResponse is the body for a successful POST /evaluate.
type evaluateResponse struct {
	TotalTests int           `json:"total_tests"`
	Results    []eval.Result `json:"results"`
}

// errorResponse is the body for request-level failures.
type errorResponse struct {
	Error string `json:"error"`
}
