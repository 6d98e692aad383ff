// Package resilience wraps outbound calls in circuit breakers and a bounded HTTP client.
package resilience

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerConfig holds configuration for a circuit breaker
type BreakerConfig struct {
	Name         string
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
	MinRequests  uint32
}

// DefaultBreakerConfig trips after 60% failures over at least 5 calls and probes again after 30s.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:         name,
		MaxRequests:  3,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.6,
		MinRequests:  5,
	}
}

// StatusError is a non-2xx response from a dependency.
type StatusError struct {
	Dependency string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.Dependency, e.StatusCode, e.Body)
}

// NewBreaker builds a breaker that ignores 4xx answers when counting failures: the
// dependency is up, the request was wrong.
func NewBreaker(cfg BreakerConfig, logger *zap.Logger) *gobreaker.CircuitBreaker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
		IsSuccessful: func(err error) bool {
			var se *StatusError
			if errors.As(err, &se) {
				return se.StatusCode < http.StatusInternalServerError
			}
			return err == nil
		},
	})
}

// Call runs fn through cb. An open or saturated breaker becomes an UNAVAILABLE AppError.
func Call[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var zero T
	out, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return zero, appErrors.NewUnavailable(cb.Name()+" is unavailable", err)
	}
	if err != nil {
		return zero, err
	}
	return out.(T), nil
}

// NewHTTPClient returns a client with a hard per-request timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// DoJSON sends body as JSON and decodes a 2xx response into out.
func DoJSON(ctx context.Context, client *http.Client, dependency, method, url string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return appErrors.NewInternal("failed to encode request", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return appErrors.NewInternal("failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", dependency, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%s response read failed: %w", dependency, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Dependency: dependency, StatusCode: resp.StatusCode, Body: string(data)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s response decode failed: %w", dependency, err)
	}
	return nil
}
