package httpapi

import (
	"net/http"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/metrics"
)

type MetricsResponse struct {
	Current metrics.Sample   `json:"current"`
	History []metrics.Sample `json:"history"`
}

func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	resp := MetricsResponse{Current: metrics.Capture(s.Config.StateDir)}
	if s.Recorder != nil {
		resp.History = s.Recorder.History()
	}
	WriteJSON(w, http.StatusOK, resp)
}
