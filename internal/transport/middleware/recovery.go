package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/hifz-backend/pkg/ctxutil"
)

// Recovery returns middleware that converts a handler panic into a 500 JSON
// error response. The panic is logged with the stack trace and, when the
// request carries them, the request and learner identifiers, so a crash can
// be tied back to the learner action that triggered it.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					attrs := []any{
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					}
					if reqID := ctxutil.RequestIDFromCtx(r.Context()); reqID != "" {
						attrs = append(attrs, slog.String("request_id", reqID))
					}
					if learnerID, ok := ctxutil.LearnerIDFromCtx(r.Context()); ok {
						attrs = append(attrs, slog.String("learner_id", learnerID.String()))
					}
					logger.ErrorContext(r.Context(), "panic recovered", attrs...)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"internal server error"}`)) //nolint:errcheck
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
