package httpapi

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/models"
)

// SummaryResponse carries the dashboard counters. A counter the backend could
// not answer is reported as -1 so one slow collection does not blank the rest.
type SummaryResponse struct {
	TotalUsers     int `json:"totalUsers"`
	TotalPosts     int `json:"totalPosts"`
	TotalEvents    int `json:"totalEvents"`
	TotalTags      int `json:"totalTags"`
	TotalReports   int `json:"totalReports"`
	PendingReports int `json:"pendingReports"`
}

func (s *Server) Summary(w http.ResponseWriter, r *http.Request) {
	resp := SummaryResponse{}
	g, ctx := errgroup.WithContext(r.Context())

	count := func(path string, dst *int) func() error {
		return func() error {
			n, err := s.Client.Count(ctx, path)
			if err != nil {
				*dst = -1
				return nil
			}
			*dst = n
			return nil
		}
	}

	g.Go(count("/users", &resp.TotalUsers))
	g.Go(count("/post/", &resp.TotalPosts))
	g.Go(count("/event", &resp.TotalEvents))
	g.Go(count("/tags/", &resp.TotalTags))
	g.Go(func() error {
		reports, err := s.Client.ListReports(ctx)
		if err != nil {
			resp.TotalReports = -1
			resp.PendingReports = -1
			return nil
		}
		resp.TotalReports = len(reports)
		pending := 0
		for _, rep := range reports {
			if rep.Status == models.ReportStatusPending {
				pending++
			}
		}
		resp.PendingReports = pending
		return nil
	})

	g.Wait()
	WriteJSON(w, http.StatusOK, resp)
}
