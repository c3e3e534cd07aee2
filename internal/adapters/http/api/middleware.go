package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/volmatch/volmatch/pkg/logger"
	"github.com/volmatch/volmatch/pkg/metrics"
)

// Requests slower than this get a debug log entry alongside the metrics.
const slowRequestThreshold = 500 * time.Millisecond

// MetricsMiddleware wraps a handler to record per-endpoint Prometheus
// metrics: request counts, latency, and error classification by status.
func MetricsMiddleware(next http.HandlerFunc, endpoint string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		elapsed := time.Since(start)
		durationMs := float64(elapsed.Milliseconds())
		statusStr := strconv.Itoa(wrapped.status)

		metrics.RecordHTTPRequest(endpoint, r.Method, statusStr)
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, statusStr, durationMs)

		if wrapped.status >= http.StatusBadRequest {
			errorType := classifyStatus(wrapped.status)
			metrics.RecordErrorByEndpoint(endpoint, r.Method, errorType)
			metrics.RecordErrorByType(errorType, severityForStatus(wrapped.status))
			metrics.RecordErrorLatency("http", errorType, durationMs)
		}

		if elapsed >= slowRequestThreshold {
			logger.Get().Debug(r.Context(), "slow request",
				logger.String("endpoint", endpoint),
				logger.String("method", r.Method),
				logger.Int("status", wrapped.status),
				logger.Duration("elapsed", elapsed))
		}
	}
}

// classifyStatus maps a status code to an error type label. Unknown
// volunteers and events surface as not_found; validation failures and
// bad limits as client_error.
func classifyStatus(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "server_error"
	case status == http.StatusNotFound:
		return "not_found"
	case status >= http.StatusBadRequest:
		return "client_error"
	default:
		return "unknown"
	}
}

// severityForStatus maps a status code to an error severity label.
func severityForStatus(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "high"
	case status >= http.StatusBadRequest:
		return "medium"
	default:
		return "low"
	}
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(b)
	if err != nil {
		return n, fmt.Errorf("failed to write response: %w", err)
	}
	return n, nil
}
