package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kashyap-bhatt15/eval-demo/eval"
)

// handleRoot handles GET / - basic hello world endpoint.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, rootResponse{
		Message:    "Hello, World!",
		Status:     "success",
		APIVersion: apiVersion,
	})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "healthy",
		Service: "eval-demo-api",
	})
}

// handleLLM handles GET|POST /llm?prompt=... - forwards the prompt to the
// configured provider.
func (s *Server) handleLLM(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	prompt := r.URL.Query().Get("prompt")
	if prompt == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "prompt query parameter is required"})
		return
	}

	out, err := s.model.Generate(r.Context(), prompt)
	if err != nil {
		s.logger.Error("model call failed", "model", s.model.Name(), "error", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: fmt.Sprintf("model call failed: %v", err)})
		return
	}

	writeJSON(w, http.StatusOK, llmResponse{
		Response: out,
		Status:   "success",
		Model:    s.model.Name(),
	})
}

// handleEvaluate handles POST /evaluate - runs the evaluation harness over
// the submitted cases. Malformed input is the only batch-level failure;
// per-case faults are reported inside the result list.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if len(req.TestCases) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "test_cases is required"})
		return
	}
	for i, c := range req.TestCases {
		if c.Prompt == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("test_cases[%d]: prompt is required", i)})
			return
		}
		if c.Expected == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("test_cases[%d]: expected_output is required", i)})
			return
		}
	}

	results, err := s.runner.Run(r.Context(), eval.NewCases(req.TestCases))
	if err != nil {
		s.logger.Error("evaluation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: fmt.Sprintf("evaluation failed: %v", err)})
		return
	}

	writeJSON(w, http.StatusOK, evaluateResponse{
		TotalTests: len(results),
		Results:    results,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
