package controller

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/cusp"
	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/models"
)

var (
	ErrReportNotPending = errors.New("report is not pending")
	ErrUnknownAction    = errors.New("unknown report action")
	ErrUnknownReport    = errors.New("report not present in the loaded list")
)

// ReportRow is a report joined with its referenced author and post. A nil
// User or Post means that lookup failed; the row still renders.
type ReportRow struct {
	Report models.Report
	User   *models.User
	Post   *models.Post
}

// ReportBoard is the moderation page: it materializes display rows through
// fan-out lookups and applies one-directional resolutions.
type ReportBoard struct {
	client *cusp.Client
	notify Notifier

	mu    sync.Mutex
	state ListState
	rows  []ReportRow
}

func NewReportBoard(client *cusp.Client, notify Notifier) *ReportBoard {
	if notify == nil {
		notify = LogNotifier{}
	}
	return &ReportBoard{client: client, notify: notify}
}

// Load lists reports, then resolves every distinct referenced user and post
// in parallel. A failed lookup becomes a nil placeholder and never aborts the
// batch.
func (b *ReportBoard) Load(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load(ctx)
}

func (b *ReportBoard) load(ctx context.Context) error {
	b.state = ListLoading
	reports, err := b.client.ListReports(ctx)
	if err != nil {
		b.rows = nil
		b.state = ListError
		b.notify.Error("Failed to load report list")
		return err
	}

	users := map[int64]*models.User{}
	posts := map[int64]*models.Post{}
	for _, report := range reports {
		users[report.UserID] = nil
		posts[report.PostID] = nil
	}

	var lookupMu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	for userID := range users {
		group.Go(func() error {
			user, err := b.client.GetUser(groupCtx, userID)
			if err != nil {
				return nil
			}
			lookupMu.Lock()
			users[userID] = user
			lookupMu.Unlock()
			return nil
		})
	}
	for postID := range posts {
		group.Go(func() error {
			post, err := b.client.GetPost(groupCtx, postID)
			if err != nil {
				return nil
			}
			lookupMu.Lock()
			posts[postID] = post
			lookupMu.Unlock()
			return nil
		})
	}
	_ = group.Wait()

	rows := make([]ReportRow, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, ReportRow{
			Report: report,
			User:   users[report.UserID],
			Post:   posts[report.PostID],
		})
	}
	b.rows = rows
	b.state = ListLoaded
	return nil
}

func (b *ReportBoard) State() ListState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *ReportBoard) Rows() []ReportRow {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]ReportRow(nil), b.rows...)
}

// Visible filters rows by reporter name or post title.
func (b *ReportBoard) Visible(term string) []ReportRow {
	b.mu.Lock()
	defer b.mu.Unlock()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]ReportRow(nil), b.rows...)
	}
	matched := make([]ReportRow, 0, len(b.rows))
	for _, row := range b.rows {
		reporter := ""
		if row.User != nil {
			reporter = row.User.Username
		}
		postTitle := ""
		if row.Post != nil {
			postTitle = row.Post.Title
		}
		if strings.Contains(strings.ToLower(reporter), term) || strings.Contains(strings.ToLower(postTitle), term) {
			matched = append(matched, row)
		}
	}
	return matched
}

// Detail re-fetches the referenced user and post fresh, bypassing the lookup
// maps built at load time.
func (b *ReportBoard) Detail(ctx context.Context, id int64) (*ReportRow, error) {
	b.mu.Lock()
	report, err := b.find(id)
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	user, err := b.client.GetUser(ctx, report.UserID)
	if err != nil {
		b.notify.Error("Failed to load report detail")
		return nil, err
	}
	post, err := b.client.GetPost(ctx, report.PostID)
	if err != nil {
		b.notify.Error("Failed to load report detail")
		return nil, err
	}
	return &ReportRow{Report: report, User: user, Post: post}, nil
}

// Resolve applies a binary resolution to a pending report. The pending check
// is case-sensitive against the stored status. Action "Deleted" follows the
// status update with deletion of the referenced post; the two calls are
// sequential and the second has no compensating action.
func (b *ReportBoard) Resolve(ctx context.Context, id int64, action string) error {
	if action != models.ReportActionDeleted && action != models.ReportActionIgnored {
		return ErrUnknownAction
	}
	b.mu.Lock()
	report, err := b.find(id)
	b.mu.Unlock()
	if err != nil {
		return err
	}
	if report.Status != models.ReportStatusPending {
		return ErrReportNotPending
	}
	if err := b.client.UpdateReport(ctx, id, models.ReportStatusResolved, action); err != nil {
		b.notify.Error("Failed to update report")
		return err
	}
	if action == models.ReportActionDeleted {
		if err := b.client.DeletePost(ctx, report.PostID); err != nil {
			// Report already resolved; the orphaned post surfaces as a toast only.
			b.notify.Error("Report updated but post deletion failed")
			b.mu.Lock()
			_ = b.load(ctx)
			b.mu.Unlock()
			return err
		}
	}
	b.notify.Success("Report resolved: " + action)
	b.mu.Lock()
	_ = b.load(ctx)
	b.mu.Unlock()
	return nil
}

func (b *ReportBoard) find(id int64) (models.Report, error) {
	for _, row := range b.rows {
		if row.Report.ID == id {
			return row.Report, nil
		}
	}
	return models.Report{}, ErrUnknownReport
}
