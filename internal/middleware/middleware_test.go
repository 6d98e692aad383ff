package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bhajian/gigbusters-profile/pkg/auth"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func echoUser(w http.ResponseWriter, r *http.Request) {
	id, _ := UserIDFromContext(r.Context())
	w.Write([]byte(id))
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "given")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "given", seen)

	var accessor core.RequestAccessor
	req, err := accessor.EventToRequestWithContext(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodGet,
		Path:           "/",
		RequestContext: events.APIGatewayProxyRequestContext{RequestID: "gw-1"},
	})
	require.NoError(t, err)
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "gw-1", seen)
}

func TestRecovery(t *testing.T) {
	h := Recovery(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func proxyRequest(t *testing.T, authorizer map[string]interface{}) *http.Request {
	t.Helper()
	var accessor core.RequestAccessor
	req, err := accessor.EventToRequestWithContext(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodGet,
		Path:           "/",
		RequestContext: events.APIGatewayProxyRequestContext{Authorizer: authorizer},
	})
	require.NoError(t, err)
	return req
}

func TestCognitoAuth(t *testing.T) {
	h := CognitoAuth(zap.NewNop())(http.HandlerFunc(echoUser))

	t.Run("claims present", func(t *testing.T) {
		req := proxyRequest(t, map[string]interface{}{
			"claims": map[string]interface{}{"sub": "user-123"},
		})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-123", rec.Body.String())
	})

	t.Run("no claims", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, proxyRequest(t, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not behind the proxy", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestJWTAuth(t *testing.T) {
	v, err := auth.NewJWTValidator(auth.JWTConfig{SecretKey: "secret", Issuer: "local"})
	require.NoError(t, err)
	h := JWTAuth(v, zap.NewNop())(http.HandlerFunc(echoUser))

	token, err := auth.GenerateDevToken("secret", "local", "user-9", "u@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "user-9", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAccessLog(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	h := RequestID(AccessLog(zap.New(obs))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("ok"))
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	assert.Equal(t, int64(2), entries[0].ContextMap()["bytes"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
}
