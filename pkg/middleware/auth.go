package middleware

import (
	"crypto/subtle"
	"net/http"

	"getaroom/pkg/logger"
)

const APIKeyHeader = "X-API-Key"

// APIKeyAuth authenticates every request against the configured API key.
// Missing key is 401, a server without a configured key is 500, and a
// mismatch is 403.
func APIKeyAuth(apiKey string, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(APIKeyHeader)

			if provided == "" {
				rejectAuth(w, http.StatusUnauthorized,
					`{"error":"Unauthorized","message":"API key is required. Please provide X-API-Key header."}`)
				return
			}

			if apiKey == "" {
				log.Error("API key not configured on server",
					"path", r.URL.Path,
					"method", r.Method,
				)
				rejectAuth(w, http.StatusInternalServerError,
					`{"error":"Server Configuration Error","message":"API key not configured on server."}`)
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				logAuthFailure(log, r)
				rejectAuth(w, http.StatusForbidden,
					`{"error":"Forbidden","message":"Invalid API key."}`)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rejectAuth(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func logAuthFailure(log *logger.Logger, r *http.Request) {
	log.Warn("Invalid API key",
		"request_id", requestIDFrom(r),
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
	)
}
