package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/registration-flow/internal/adapters/http/dto"
)

// errInternalServer is what clients see for a recovered panic. The panic
// value and stack trace only reach the log.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns a panic in a downstream handler into
// an RFC 9457 500 response and an ERROR log entry with the stack, the matched
// route and the request ID echoed by RequestID. Nothing is written when the
// handler already sent headers. http.ErrAbortHandler is re-raised so net/http
// can abort the connection quietly.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				attrs := []any{
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("route", routePattern(r)),
				}
				if id := rw.Header().Get(headerRequestID); id != "" {
					attrs = append(attrs, slog.String("request_id", id))
				}
				if id := registrationID(r); id != "" {
					attrs = append(attrs, slog.String("registration_id", id))
				}
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
