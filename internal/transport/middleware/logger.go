package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyhabit-backend/pkg/ctxutil"
)

type logMetaKey struct{}

// logMeta collects values resolved by inner middleware (Auth) so that the
// outer request log line can include them.
type logMeta struct {
	userID uuid.UUID
}

func setLoggedUser(ctx context.Context, id uuid.UUID) {
	if m, ok := ctx.Value(logMetaKey{}).(*logMeta); ok {
		m.userID = id
	}
}

// Logger writes one "http.request" line per request. Server errors are
// logged at Error, client errors at Warn.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)
			meta := &logMeta{}

			inner := r.WithContext(context.WithValue(r.Context(), logMetaKey{}, meta))

			next.ServeHTTP(sw, inner)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routeLabel(inner)),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if meta.userID != uuid.Nil {
				attrs = append(attrs, slog.String("user_id", meta.userID.String()))
			}

			level := slog.LevelInfo
			switch {
			case sw.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case sw.status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}
