package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRequestTimeout_FastHandlerPassesThrough(t *testing.T) {
	handler := RequestTimeout(time.Second, testLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"ok":true}`))
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if rec.Body.String() != `{"ok":true}` {
		t.Errorf("body = %s, want handler body", rec.Body.String())
	}
}

func TestRequestTimeout_SlowHandlerGetsServiceError(t *testing.T) {
	release := make(chan struct{})
	handler := RequestTimeout(10*time.Millisecond, testLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
			_, _ = w.Write([]byte("too late"))
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))
	close(release)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %s, want application/json", ct)
	}

	var resp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Request Timeout" {
		t.Errorf("error = %s, want Request Timeout", resp.Error)
	}
	if resp.Message == "" {
		t.Error("expected a non-empty message")
	}
}

func TestRequestTimeout_LateWritesDiscarded(t *testing.T) {
	release := make(chan struct{})
	wrote := make(chan error, 1)
	handler := RequestTimeout(10*time.Millisecond, testLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
			_, err := w.Write([]byte("late body"))
			wrote <- err
		}),
	)

	rec := httptest.NewRecorder()
	// ServeHTTP returns once the timeout response has been written, so the
	// handler's write below is unambiguously late.
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings", nil))
	close(release)

	if err := <-wrote; err != http.ErrHandlerTimeout {
		t.Errorf("late write error = %v, want http.ErrHandlerTimeout", err)
	}
	if body := rec.Body.String(); body == "late body" {
		t.Error("late handler write reached the client")
	}
}
