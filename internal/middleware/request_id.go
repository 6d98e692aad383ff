package middleware

import (
	"context"
	"net/http"

	"github.com/awslabs/aws-lambda-go-api-proxy/core"
	"github.com/google/uuid"
)

type contextKey string

const (
	RequestIDKey contextKey = "requestID"
	UserIDKey    contextKey = "userID"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags the request with an id, echoed in the response header. Order of
// preference: the client's X-Request-ID, the API Gateway request id, a fresh uuid.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			if gw, ok := core.GetAPIGatewayContextFromContext(r.Context()); ok {
				id = gw.RequestID
			}
		}
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), RequestIDKey, id)))
	})
}

// GetRequestID returns the id set by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
