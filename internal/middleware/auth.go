// Package middleware holds the HTTP middleware shared by the Lambda and local servers.
package middleware

import (
	"context"
	"net/http"

	"github.com/bhajian/gigbusters-profile/pkg/api"
	"github.com/bhajian/gigbusters-profile/pkg/auth"

	"github.com/awslabs/aws-lambda-go-api-proxy/core"
	"go.uber.org/zap"
)

// UserIDFromContext returns the authenticated caller set by one of the auth middlewares.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}

// WithUserID stores the caller on ctx.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// CognitoAuth reads the caller from the claims API Gateway's Cognito authorizer already
// verified. It requires the request to arrive through the Lambda proxy adapter.
func CognitoAuth(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			proxyCtx, ok := core.GetAPIGatewayContextFromContext(r.Context())
			if !ok {
				logger.Error("proxy request context missing")
				api.Error(w, http.StatusInternalServerError, "Authentication context not available")
				return
			}

			claims, _ := proxyCtx.Authorizer["claims"].(map[string]interface{})
			userID, _ := claims["sub"].(string)
			if userID == "" {
				logger.Warn("missing sub claim", zap.String("request_id", GetRequestID(r.Context())))
				api.Error(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// JWTAuth validates a bearer token locally; used by the development server.
func JWTAuth(validator *auth.JWTValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := validator.ValidateToken(r.Header.Get("Authorization"))
			if err != nil {
				logger.Debug("token rejected", zap.Error(err))
				api.Error(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}
