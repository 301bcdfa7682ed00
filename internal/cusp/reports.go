package cusp

import (
	"context"
	"net/http"
	"strconv"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/models"
)

func (c *Client) ListReports(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	if err := c.getList(ctx, "/reports", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// UpdateReport records a resolution on a report. The status transition is
// one-directional; callers guard on the pending status before invoking this.
func (c *Client) UpdateReport(ctx context.Context, id int64, status, action string) error {
	payload := map[string]string{"r_status": status, "action": action}
	return c.sendJSON(ctx, http.MethodPatch, "/reports/"+strconv.FormatInt(id, 10), payload, nil)
}
