package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"
)

// RecoveryMiddleware turns a panic into a 500 response. It must run inside
// AccessLogMiddleware so it can tell whether a response was already started.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", RequestIDFrom(r)).
					Interface("panic", err).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				if rw, ok := w.(*responseWriter); ok && rw.headerWritten {
					return
				}
				JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
