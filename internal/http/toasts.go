package httpapi

import (
	"log"
	"net/http"
	"sync"
	"time"
)

type Toast struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

const toastBacklog = 100

// toastLog implements controller.Notifier; the panel drains it to show the
// notifications controllers emitted since the last poll.
type toastLog struct {
	mu      sync.Mutex
	entries []Toast
}

func (t *toastLog) Success(msg string) { t.add("success", msg) }
func (t *toastLog) Error(msg string)   { t.add("error", msg) }

func (t *toastLog) add(level, msg string) {
	t.mu.Lock()
	t.entries = append(t.entries, Toast{Level: level, Message: msg, At: time.Now().UTC()})
	if len(t.entries) > toastBacklog {
		t.entries = t.entries[len(t.entries)-toastBacklog:]
	}
	t.mu.Unlock()
	log.Printf("toast [%s] %s", level, msg)
}

func (t *toastLog) Drain() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	drained := t.entries
	t.entries = nil
	return drained
}

type ToastsResponse struct {
	Items []Toast `json:"items"`
}

func (s *Server) Toasts(w http.ResponseWriter, r *http.Request) {
	items := s.toasts.Drain()
	if items == nil {
		items = []Toast{}
	}
	WriteJSON(w, http.StatusOK, ToastsResponse{Items: items})
}
