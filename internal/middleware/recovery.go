package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// PanicHandler writes the error response after a panic has been recovered.
// The surface that mounts the middleware decides the response shape.
type PanicHandler func(w http.ResponseWriter, r *http.Request, v any)

// Recovery converts handler panics into an error response instead of a torn
// connection, logging the panic value with its stack.
func Recovery(logger *slog.Logger, writeError PanicHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				logger.Error("recovered from panic",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("panic", v),
					slog.String("stack", string(debug.Stack())),
				)
				writeError(w, r, v)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
