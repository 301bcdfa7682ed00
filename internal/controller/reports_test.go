package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/cusp"
	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/models"
)

// fakeCUSP is a minimal moderation backend: two reports referencing one post
// each, one of them pending. It records every mutation in order.
type fakeCUSP struct {
	mu       sync.Mutex
	reports  []models.Report
	calls    []string
	patches  []map[string]string
	failUser bool
}

func newFakeCUSP() *fakeCUSP {
	action := models.ReportActionIgnored
	return &fakeCUSP{
		reports: []models.Report{
			{ID: 1, UserID: 10, PostID: 100, Reason: "spam", Status: models.ReportStatusPending},
			{ID: 2, UserID: 11, PostID: 101, Reason: "abuse", Status: models.ReportStatusResolved, Action: &action},
		},
	}
}

func (f *fakeCUSP) record(r *http.Request) {
	f.mu.Lock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
	f.mu.Unlock()
}

func (f *fakeCUSP) server(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/reports":
			json.NewEncoder(w).Encode(f.reports)
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/users/"):
			if f.failUser {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"msg": "user lookup failed"})
				return
			}
			json.NewEncoder(w).Encode(models.User{ID: 10, Username: "reporter"})
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/post/"):
			json.NewEncoder(w).Encode(models.Post{ID: 100, Title: "Reported post"})
		case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/reports/"):
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			f.mu.Lock()
			f.patches = append(f.patches, body)
			for i := range f.reports {
				f.reports[i].Status = body["r_status"]
			}
			f.mu.Unlock()
			json.NewEncoder(w).Encode(map[string]string{"msg": "updated"})
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/post/"):
			json.NewEncoder(w).Encode(map[string]string{"msg": "deleted"})
		default:
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestReportBoardLoadJoinsRows(t *testing.T) {
	fake := newFakeCUSP()
	server := fake.server(t)
	defer server.Close()

	board := NewReportBoard(cusp.New(server.URL, "", cusp.StaticToken("t")), &CaptureNotifier{})
	if err := board.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	rows := board.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0].User == nil || rows[0].User.Username != "reporter" {
		t.Errorf("row user = %+v", rows[0].User)
	}
	if rows[0].Post == nil || rows[0].Post.Title != "Reported post" {
		t.Errorf("row post = %+v", rows[0].Post)
	}
}

func TestReportBoardToleratesFailedLookup(t *testing.T) {
	fake := newFakeCUSP()
	fake.failUser = true
	server := fake.server(t)
	defer server.Close()

	board := NewReportBoard(cusp.New(server.URL, "", cusp.StaticToken("t")), &CaptureNotifier{})
	if err := board.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	rows := board.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d", len(rows))
	}
	for _, row := range rows {
		if row.User != nil {
			t.Errorf("expected nil user placeholder, got %+v", row.User)
		}
		if row.Post == nil {
			t.Error("post lookup should still succeed")
		}
	}
}

func TestResolveDeletedSequencesCalls(t *testing.T) {
	fake := newFakeCUSP()
	server := fake.server(t)
	defer server.Close()

	board := NewReportBoard(cusp.New(server.URL, "", cusp.StaticToken("t")), &CaptureNotifier{})
	if err := board.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := board.Resolve(context.Background(), 1, models.ReportActionDeleted); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if len(fake.patches) != 1 {
		t.Fatalf("patches = %d", len(fake.patches))
	}
	patch := fake.patches[0]
	if patch["r_status"] != models.ReportStatusResolved || patch["action"] != models.ReportActionDeleted {
		t.Errorf("patch body = %v", patch)
	}

	patchAt, deleteAt := -1, -1
	for i, call := range fake.calls {
		if call == "PATCH /reports/1" {
			patchAt = i
		}
		if call == "DELETE /post/100" {
			deleteAt = i
		}
	}
	if patchAt == -1 || deleteAt == -1 {
		t.Fatalf("calls = %v", fake.calls)
	}
	if deleteAt < patchAt {
		t.Error("post deletion ran before the status update")
	}
}

func TestResolveIgnoredKeepsPost(t *testing.T) {
	fake := newFakeCUSP()
	server := fake.server(t)
	defer server.Close()

	board := NewReportBoard(cusp.New(server.URL, "", cusp.StaticToken("t")), &CaptureNotifier{})
	board.Load(context.Background())
	if err := board.Resolve(context.Background(), 1, models.ReportActionIgnored); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	for _, call := range fake.calls {
		if strings.HasPrefix(call, "DELETE ") {
			t.Errorf("unexpected deletion: %s", call)
		}
	}
}

func TestResolveRejectsNonPending(t *testing.T) {
	fake := newFakeCUSP()
	server := fake.server(t)
	defer server.Close()

	board := NewReportBoard(cusp.New(server.URL, "", cusp.StaticToken("t")), &CaptureNotifier{})
	board.Load(context.Background())
	err := board.Resolve(context.Background(), 2, models.ReportActionIgnored)
	if !errors.Is(err, ErrReportNotPending) {
		t.Errorf("err = %v", err)
	}
	if len(fake.patches) != 0 {
		t.Error("a resolved report was patched again")
	}
}

func TestResolveRejectsUnknownAction(t *testing.T) {
	fake := newFakeCUSP()
	server := fake.server(t)
	defer server.Close()

	board := NewReportBoard(cusp.New(server.URL, "", cusp.StaticToken("t")), &CaptureNotifier{})
	board.Load(context.Background())
	if err := board.Resolve(context.Background(), 1, "deleted"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("lowercase action err = %v", err)
	}
	if err := board.Resolve(context.Background(), 1, "Banned"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("unknown action err = %v", err)
	}
}

func TestReportVisibleFilters(t *testing.T) {
	fake := newFakeCUSP()
	server := fake.server(t)
	defer server.Close()

	board := NewReportBoard(cusp.New(server.URL, "", cusp.StaticToken("t")), &CaptureNotifier{})
	board.Load(context.Background())

	if got := board.Visible("REPORTER"); len(got) != 2 {
		t.Errorf("username filter matched %d rows", len(got))
	}
	if got := board.Visible("reported post"); len(got) != 2 {
		t.Errorf("post title filter matched %d rows", len(got))
	}
	if got := board.Visible("nothing"); len(got) != 0 {
		t.Errorf("bogus filter matched %d rows", len(got))
	}
}
