package rest

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/common"
	"github.com/dmitrijs2005/gophdocs/internal/logging"
	"github.com/dmitrijs2005/gophdocs/internal/server/auth"
	"github.com/google/uuid"
)

type ctxKey string

const usernameKey ctxKey = "username"

// RequestIDHeader carries the id the logger assigns to every request.
const RequestIDHeader = "X-Request-Id"

// UsernameFrom returns the user authenticated by Auth, or "".
func UsernameFrom(ctx context.Context) string {
	u, _ := ctx.Value(usernameKey).(string)
	return u
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Logger writes one line per request with a fresh request id.
func Logger(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			id := uuid.NewString()
			w.Header().Set(RequestIDHeader, id)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)

			logger.Info(r.Context(), "request",
				"request_id", id,
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start).Round(time.Millisecond).String(),
			)
		})
	}
}

// Recovery turns a handler panic into a 500 envelope.
func Recovery(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error(r.Context(), "panic in handler", "panic", rec, "stack", string(debug.Stack()))
					writeError(w, http.StatusInternalServerError, api.ErrorCodeBadRequest, textInternal)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Auth admits requests carrying a valid token in the x-auth header and
// stores the user name in the request context.
func Auth(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(common.AuthHeaderName)
			if token == "" {
				writeError(w, http.StatusUnauthorized, api.ErrorCodeAccessDenied, textAccessDenied)
				return
			}

			username, err := auth.GetUsernameFromToken(token, secret)
			if err != nil {
				writeError(w, http.StatusUnauthorized, api.ErrorCodeAccessDenied, textAccessDenied)
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
