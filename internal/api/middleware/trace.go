package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/customer-api/internal/api/shared"
	"github.com/phrazzld/customer-api/internal/platform/logger"
)

// TraceID attaches a random trace identifier to every request context and
// derives a request-scoped logger carrying it. Downstream code retrieves
// the logger with logger.FromContext and the raw ID with shared.GetTraceID;
// error responses echo the ID so clients can quote it in reports.
func TraceID(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())

			requestLogger := base.With(
				slog.String("trace_id", shared.GetTraceID(ctx)),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			ctx = logger.WithLogger(ctx, requestLogger)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
