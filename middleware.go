package aria

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Middleware wraps an http.Handler with additional behavior. Application
// middlewares (Use) run outermost; route middlewares (With) run in entry
// order around the route's handler.
type Middleware func(http.Handler) http.Handler

type requestIDKey struct{}

// RequestIDHeader is the header used to propagate request IDs.
const RequestIDHeader = "X-Request-ID"

// RequestIDFromContext returns the request ID stored by the RequestID
// middleware, or the empty string if none is present.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestID returns a middleware that assigns each request a UUID v4,
// propagated on both the request and response via RequestIDHeader. An
// incoming ID is reused.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			r.Header.Set(RequestIDHeader, id)
			w.Header().Set(RequestIDHeader, id)
			r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))
			next.ServeHTTP(w, r)
		})
	}
}

// AccessLog returns a middleware that logs method, path, status, and
// duration for every request. A nil logger uses the default logger.
func AccessLog(logger *log.Logger) Middleware {
	logf := log.Printf
	if logger != nil {
		logf = logger.Printf
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
		})
	}
}

// statusRecorder captures the response status for access logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
