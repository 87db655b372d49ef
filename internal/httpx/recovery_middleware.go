package httpx

import (
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware turns a panicking handler into a plain 500 response.
// It must sit inside AccessLogMiddleware so the written status is observed.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger := Logger(r)
				logger.Error().
					Interface("panic", err).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				var wroteHeader bool
				if rw, ok := w.(*responseWriter); ok {
					wroteHeader = rw.wroteHeader()
				}

				if !wroteHeader {
					PlainInternalError(w)
				}
			}
		}()
		next.ServeHTTP(w, r)
	})
}
