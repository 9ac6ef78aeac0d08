package server

import (
	"net/http"

	"github.com/pombredanne/anitya/pkg/checker"
	"github.com/pombredanne/anitya/pkg/serializer"
)

// SetReport publishes the result of the latest check run. The daemon
// calls this after every run; handlers only ever read it.
func (s *Server) SetReport(report *checker.RunReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = report
}

// handleReport handles GET /v1/report, returning the latest run
// report as JSON.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed,
			"Method not allowed", false, nil)
		return
	}

	s.mu.RLock()
	report := s.report
	s.mu.RUnlock()

	if report == nil {
		s.writeError(w, r, http.StatusNotFound, ErrCodeReportNotAvailable,
			"No check run has completed yet", true, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, report)
}
