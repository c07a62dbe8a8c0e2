package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"getaroom/pkg/logger"
)

// deadlineWriter suppresses handler writes once the request deadline has
// expired, so the timeout response is the only thing the client sees.
type deadlineWriter struct {
	http.ResponseWriter
	mu      sync.Mutex
	expired bool
	written bool
}

func (dw *deadlineWriter) WriteHeader(code int) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.expired || dw.written {
		return
	}

	dw.written = true
	dw.ResponseWriter.WriteHeader(code)
}

func (dw *deadlineWriter) Write(b []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.expired {
		return 0, http.ErrHandlerTimeout
	}

	dw.written = true
	return dw.ResponseWriter.Write(b)
}

// expire marks the deadline as passed and reports whether the handler had
// already written a response.
func (dw *deadlineWriter) expire() bool {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	dw.expired = true
	return dw.written
}

// RequestTimeout bounds handler execution. When the deadline passes before
// the handler responds, the client gets 503 in the service error shape and
// any late handler writes are discarded.
func RequestTimeout(timeout time.Duration, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			dw := &deadlineWriter{ResponseWriter: w}

			done := make(chan struct{})
			go func() {
				next.ServeHTTP(dw, r)
				close(done)
			}()

			select {
			case <-done:
				return
			case <-ctx.Done():
				if dw.expire() {
					return
				}

				log.Warn("Request deadline exceeded",
					"request_id", requestIDFrom(r),
					"path", r.URL.Path,
					"method", r.Method,
					"timeout", timeout,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"error":"Request Timeout","message":"The request took too long to process."}`))
			}
		})
	}
}

func requestIDFrom(r *http.Request) string {
	if rid, ok := r.Context().Value(RequestIDKey).(string); ok {
		return rid
	}
	return ""
}
