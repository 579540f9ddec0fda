// Package server provides the demonstration web service: a thin passthrough
// to a language-model provider plus an endpoint hosting the evaluation
// harness.
package server

import (
	"fmt"
	"net/http"

	"github.com/kashyap-bhatt15/eval-demo/config"
	"github.com/kashyap-bhatt15/eval-demo/eval"
	"github.com/kashyap-bhatt15/eval-demo/llm"
	"github.com/kashyap-bhatt15/eval-demo/logger"
	"github.com/kashyap-bhatt15/eval-demo/model"
)

// Server handles the service's HTTP surface.
type Server struct {
	config *config.Config
	mux    *http.ServeMux
	model  model.Model
	runner *eval.Runner
	logger logger.Logger
}

// New creates a server forwarding prompts to m. The evaluation endpoint
// drives the harness against cfg.LLMURL, which defaults to this server's
// own address.
func New(cfg *config.Config, m model.Model) (*Server, error) {
	log := cfg.Logger
	if log == nil {
		log = logger.NewDefaultLogger()
	}

	client, err := llm.NewClient(cfg.LLMURL, llm.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	runner, err := eval.NewRunner(eval.Opts{Client: client})
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
		model:  m,
		runner: runner,
		logger: log,
	}

	// Register handlers
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/llm", s.handleLLM)
	s.mux.HandleFunc("/evaluate", s.handleEvaluate)

	return s, nil
}

// Handler returns the server's full handler chain, for embedding or tests.
func (s *Server) Handler() http.Handler {
	handler := s.corsMiddleware(s.mux)
	handler = s.loggingMiddleware(handler)
	return handler
}

// Start starts the HTTP server and blocks until the server exits.
func (s *Server) Start() error {
	addr := s.config.Addr()
	s.logger.Info("starting eval-demo server", "addr", "http://"+addr)
	return http.ListenAndServe(addr, s.Handler())
}
