package resilience

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCall_TripsAndReportsUnavailable(t *testing.T) {
	cfg := DefaultBreakerConfig("review")
	cfg.MinRequests = 2
	cfg.FailureRatio = 0.5
	cb := NewBreaker(cfg, nil)

	boom := errors.New("connection refused")
	for i := 0; i < 2; i++ {
		_, err := Call(cb, func() (string, error) { return "", boom })
		assert.ErrorIs(t, err, boom)
	}

	_, err := Call(cb, func() (string, error) { return "never", nil })
	assert.True(t, appErrors.IsUnavailable(err))
}

func TestCall_ClientErrorsDoNotTrip(t *testing.T) {
	cfg := DefaultBreakerConfig("shortcode")
	cfg.MinRequests = 1
	cb := NewBreaker(cfg, nil)

	for i := 0; i < 5; i++ {
		_, err := Call(cb, func() (int, error) { return 0, &StatusError{StatusCode: http.StatusBadRequest} })
		require.Error(t, err)
		assert.False(t, appErrors.IsUnavailable(err))
	}
	v, err := Call(cb, func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestDoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream"))
			return
		}
		w.Write([]byte(`{"id":"r-1"}`))
	}))
	defer srv.Close()
	client := NewHTTPClient(time.Second)

	var out struct {
		ID string `json:"id"`
	}
	require.NoError(t, DoJSON(context.Background(), client, "review", http.MethodPost, srv.URL, map[string]string{"a": "b"}, &out))
	assert.Equal(t, "r-1", out.ID)

	err := DoJSON(context.Background(), client, "review", http.MethodPost, srv.URL+"/fail", nil, nil)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
	assert.Equal(t, "upstream", se.Body)
}
