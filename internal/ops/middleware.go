package ops

import (
	"log/slog"
	"net/http"
	"time"

	"leaguehub/internal/logging"
	"leaguehub/internal/metrics"
)

// LoggingMiddleware wraps the handler with request logging, request ID
// propagation, and HTTP metrics.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = generateRequestID()
		}
		w.Header().Set("X-Request-ID", reqID)

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
		)

		ctx := logging.WithLogger(r.Context(), logger)
		ctx = withRequestID(ctx, reqID)
		r = r.WithContext(ctx)
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, r.URL.Path, ww.status, duration)
		logger.Info("request complete",
			slog.Int(logging.FieldStatusCode, ww.status),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
