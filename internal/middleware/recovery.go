package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/bhajian/gigbusters-profile/pkg/api"

	"go.uber.org/zap"
)

// Recovery turns panics into a 500 response and logs the stack.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("panic recovered",
						zap.String("request_id", GetRequestID(r.Context())),
						zap.Any("panic", rec),
						zap.ByteString("stack", debug.Stack()))

					// Headers already sent means the body is partially written.
					if w.Header().Get("Content-Type") == "" {
						api.Error(w, http.StatusInternalServerError, "Internal server error")
					}
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
