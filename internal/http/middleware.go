package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		recorder := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(recorder, r)
		if recorder.status == 0 {
			recorder.status = http.StatusOK
		}
		log.Printf("%s %s %s %d %dB %s", requestID[:8], r.Method, r.URL.Path, recorder.status, recorder.bytes, time.Since(start))
	})
}

// RequireSession gates authenticated routes behind the guard. While the first
// verification is still pending nothing resolves (503); once it has settled,
// an unauthenticated session answers 401 and the caller is expected to send
// the user back to sign-in.
func (s *Server) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot := s.Guard.Snapshot()
		if snapshot.Checking {
			w.Header().Set("Retry-After", "1")
			WriteError(w, http.StatusServiceUnavailable, "Session check in progress")
			return
		}
		if !snapshot.Authenticated {
			WriteError(w, http.StatusUnauthorized, "Authentication failed")
			return
		}
		next.ServeHTTP(w, r)
	})
}
