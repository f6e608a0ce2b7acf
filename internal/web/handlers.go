package web

import (
	"encoding/json"
	"net/http"

	"netprobe/internal/models"
)

// handleHealth handles /healthz requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// handleTargets handles /api/targets requests
func (s *Server) handleTargets(w http.ResponseWriter, r *http.Request) {
	tasks := s.tasks.Tasks()
	if tasks == nil {
		tasks = []models.Task{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tasks)
}
