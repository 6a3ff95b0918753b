package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/eyoab/tarikoch/internal/app"
	"github.com/eyoab/tarikoch/internal/metrics"
)

// Logger wraps an http.Handler with request/response logging and the
// request counter metric.
func Logger(next http.Handler) http.Handler {
	logger := app.Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create a response wrapper to capture the status code
		lrw := &loggingResponseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK, // Default to 200 OK
		}

		next.ServeHTTP(lrw, r)

		duration := time.Since(start)

		metrics.HTTPRequests.WithLabelValues(r.URL.Path, strconv.Itoa(lrw.statusCode)).Inc()

		logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"remote_addr", r.RemoteAddr,
			"status", lrw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"bytes", lrw.bytesWritten,
		)
	})
}

// loggingResponseWriter is a wrapper for http.ResponseWriter that captures status code and response size
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int64
}

// WriteHeader captures the status code
func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// Write captures the response size
func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := lrw.ResponseWriter.Write(b)
	lrw.bytesWritten += int64(n)
	return n, err
}

// Unwrap returns the original ResponseWriter
func (lrw *loggingResponseWriter) Unwrap() http.ResponseWriter {
	return lrw.ResponseWriter
}
