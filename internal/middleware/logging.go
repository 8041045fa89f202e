// Package middleware contains HTTP middleware functions.
//
// WHAT IS MIDDLEWARE?
// Middleware is a function that wraps an HTTP handler to add cross-cutting behaviour
// (logging, auth, CORS, etc.) without touching the handler itself.
//
// The shape is always the same:
//
//	func MyMiddleware(next http.Handler) http.Handler {
//	    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	        // Do something BEFORE the handler runs
//	        next.ServeHTTP(w, r)  // Call the actual handler
//	        // Do something AFTER the handler runs
//	    })
//	}
//
// This is the "decorator pattern" — the real handler gets wrapped with extra behaviour.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// statusRecorder wraps http.ResponseWriter to capture the status code and the
// number of response bytes. Go's http.ResponseWriter doesn't expose the status
// after WriteHeader is called, so we track it ourselves — a very common Go pattern.
type statusRecorder struct {
	http.ResponseWriter       // Embedding: this struct "inherits" all methods
	status              int   // Our addition: the status code the handler set
	bytes               int64 // Response body size
}

// WriteHeader captures the status code before delegating to the embedded ResponseWriter.
// Defining this method "overrides" the embedded ResponseWriter's WriteHeader.
func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// Write counts bytes and delegates to the embedded ResponseWriter.
func (sr *statusRecorder) Write(b []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// RequestLogger returns an HTTP middleware that logs each request with slog.
//
// slog (structured logging) landed in Go 1.21. It emits key=value (or JSON)
// output that log tooling can parse, unlike fmt.Println.
//
// Each line carries: request id, method, path, status, duration, and bytes.
// The request id comes from chi's RequestID middleware, so mount this after it.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap the ResponseWriter so we can see what the handler wrote
			rec := &statusRecorder{
				ResponseWriter: w,
				status:         http.StatusOK, // Default if WriteHeader is never called
			}

			next.ServeHTTP(rec, r)

			logger.Info("request completed",
				slog.String("request_id", chimiddleware.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Duration("duration", time.Since(start)),
				slog.Int64("bytes", rec.bytes),
			)
		})
	}
}
