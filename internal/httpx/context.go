package httpx

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const requestIDKey contextKey = "requestID"

// ContextWithRequestID returns a new context carrying the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// Logger returns the global logger annotated with the request ID.
func Logger(r *http.Request) zerolog.Logger {
	l := log.With().Str("method", r.Method).Str("path", r.URL.Path)
	if id := RequestIDFrom(r); id != "" {
		l = l.Str("request_id", id)
	}
	return l.Logger()
}
