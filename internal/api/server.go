package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/scriptlens/scriptlens/internal/config"
	"github.com/scriptlens/scriptlens/internal/logger"
	"github.com/scriptlens/scriptlens/internal/parser"
)

// Server represents the API server
type Server struct {
	router *mux.Router
	cfg    *config.Config
}

// ParseRequest is the body of a parse call
type ParseRequest struct {
	Output     string `json:"output"`
	Mode       string `json:"mode"`
	ModuleType string `json:"moduleType,omitempty"`
	ScriptType string `json:"scriptType,omitempty"`
}

// ParseResponse wraps the parse result; Result is null for freeform mode
type ParseResponse struct {
	Result any `json:"result"`
}

// errorResponse is the body of a failed call
type errorResponse struct {
	Error string `json:"error"`
}

// NewServer creates a new API server instance
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		router: mux.NewRouter(),
		cfg:    cfg,
	}
	s.routes()
	return s
}

// routes sets up the API routes
func (s *Server) routes() {
	s.router.HandleFunc("/api/v1/health", s.healthCheck).Methods("GET")
	s.router.HandleFunc("/api/v1/parse", s.parse).Methods("POST")
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the API server
func (s *Server) Start(addr string) error {
	logger.Info().Str("addr", addr).Msg("starting API server")
	server := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.Timeout,
		WriteTimeout: s.cfg.Server.Timeout,
		IdleTimeout:  2 * time.Minute,
	}
	return server.ListenAndServe()
}

// healthCheck handles the health check endpoint
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// parse handles the parse endpoint. Missing modes fall back to the configured
// parser defaults before being rejected.
func (s *Server) parse(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Parser.MaxOutputBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Parser.MaxOutputBytes)
	}

	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	if req.Mode == "" {
		req.Mode = s.cfg.Parser.DefaultMode
	}
	if req.ModuleType == "" {
		req.ModuleType = s.cfg.Parser.DefaultModuleType
	}

	result, err := parser.Parse(req.Output, parser.Options{
		Mode:       parser.Mode(req.Mode),
		ModuleType: parser.ModuleType(req.ModuleType),
		ScriptType: parser.ScriptType(req.ScriptType),
	})
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, parser.ErrMissingMode) {
			logger.Warn().Err(err).Str("mode", req.Mode).Msg("parse request rejected")
		}
		s.writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	logger.Debug().
		Str("mode", req.Mode).
		Int("output_bytes", len(req.Output)).
		Msg("parsed script output")

	if result == nil {
		s.writeJSON(w, http.StatusOK, ParseResponse{Result: nil})
		return
	}
	s.writeJSON(w, http.StatusOK, ParseResponse{Result: result})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}
