// Package token exchanges OAuth authorization codes at the identity provider.
package token

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bhajian/gigbusters-profile/internal/infrastructure/resilience"
	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Config names the provider endpoint and the fixed client parameters.
type Config struct {
	Endpoint    string
	ClientID    string
	GrantType   string
	RedirectURL string
}

// Service forwards codes to the token endpoint and returns its raw JSON.
type Service interface {
	Exchange(ctx context.Context, code string) ([]byte, error)
}

// Metrics receives the timing of every provider call.
type Metrics interface {
	RecordDependencyCall(dependency string, d time.Duration, err error)
}

type service struct {
	cfg     Config
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	metrics Metrics
	logger  *zap.Logger
}

func NewService(cfg Config, client *http.Client, breaker *gobreaker.CircuitBreaker, metrics Metrics, logger *zap.Logger) Service {
	if cfg.GrantType == "" {
		cfg.GrantType = "authorization_code"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{cfg: cfg, http: client, breaker: breaker, metrics: metrics, logger: logger}
}

func (s *service) Exchange(ctx context.Context, code string) ([]byte, error) {
	if strings.TrimSpace(code) == "" {
		return nil, appErrors.NewValidation("code is required")
	}
	if s.cfg.Endpoint == "" {
		return nil, appErrors.NewInternal("token endpoint is not configured", nil)
	}

	form := url.Values{}
	form.Set("client_id", s.cfg.ClientID)
	form.Set("code", code)
	form.Set("grant_type", s.cfg.GrantType)
	form.Set("redirect_uri", s.cfg.RedirectURL)

	start := time.Now()
	body, err := resilience.Call(s.breaker, func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := s.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &resilience.StatusError{Dependency: "token", StatusCode: resp.StatusCode, Body: string(data)}
		}
		return data, nil
	})
	if s.metrics != nil {
		s.metrics.RecordDependencyCall("token", time.Since(start), err)
	}
	if err != nil {
		s.logger.Warn("token exchange failed", zap.Error(err))
		return nil, classify(err)
	}
	return body, nil
}

// classify keeps a provider rejection (4xx) intact for relaying and turns every other
// failure, such as a 5xx, a timeout or a refused connection, into UNAVAILABLE.
func classify(err error) error {
	var se *resilience.StatusError
	if errors.As(err, &se) && se.StatusCode < http.StatusInternalServerError {
		return err
	}
	if appErrors.IsUnavailable(err) {
		return err
	}
	return appErrors.NewUnavailable("token provider is unavailable", err)
}
