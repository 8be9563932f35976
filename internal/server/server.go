// Package server exposes the chat endpoint, the jobs API and the document
// library over HTTP.
package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/lockdesk/lockdesk/internal/assistant"
	"github.com/lockdesk/lockdesk/internal/export"
	"github.com/lockdesk/lockdesk/internal/library"
	"github.com/lockdesk/lockdesk/internal/repository"
)

type Server struct {
	jobs      repository.JobLogRepository
	assistant assistant.Assistant
	library   *library.Library
	exporter  *export.Service
	logger    *zap.Logger
	mux       *http.ServeMux
}

func New(
	jobs repository.JobLogRepository,
	asst assistant.Assistant,
	lib *library.Library,
	exporter *export.Service,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		jobs:      jobs,
		assistant: asst,
		library:   lib,
		exporter:  exporter,
		logger:    logger,
		mux:       http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("OPTIONS /api/chat", s.handlePreflight)
	s.mux.HandleFunc("POST /api/chat", s.handleChat)

	s.mux.HandleFunc("GET /api/jobs", s.handleListJobs)
	s.mux.HandleFunc("POST /api/jobs", s.handleCreateJob)
	s.mux.HandleFunc("GET /api/jobs/export", s.handleExportJobs)

	s.mux.HandleFunc("GET /api/library/documents", s.handleLibrarySearch)
}

// Handler returns the routed handler; the caller owns the http.Server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Helper used by handlers to allow browser clients to call the API.
func writeCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func (s *Server) handlePreflight(w http.ResponseWriter, _ *http.Request) {
	writeCORSHeaders(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
