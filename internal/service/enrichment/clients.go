package enrichment

import (
	"context"
	"net/http"
	"time"

	"github.com/bhajian/gigbusters-profile/internal/infrastructure/resilience"
	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/sony/gobreaker"
)

// DependencyMetrics records outbound call latency and outcome.
type DependencyMetrics interface {
	RecordDependencyCall(dependency string, d time.Duration, err error)
}

// ShortcodeClient asks the shortcode service for a display code per profile.
type ShortcodeClient struct {
	url     string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	metrics DependencyMetrics
}

func NewShortcodeClient(url string, client *http.Client, breaker *gobreaker.CircuitBreaker, metrics DependencyMetrics) *ShortcodeClient {
	return &ShortcodeClient{url: url, http: client, breaker: breaker, metrics: metrics}
}

type shortcodeRequest struct {
	URI  string `json:"uri"`
	Type string `json:"type"`
}

type shortcodeResponse struct {
	Shortcode string `json:"shortcode"`
}

// Shortcode registers profile/<userId> and returns the generated code.
func (c *ShortcodeClient) Shortcode(ctx context.Context, userID string) (string, error) {
	if c.url == "" {
		return "", appErrors.NewInternal("shortcode service url is not configured", nil)
	}
	start := time.Now()
	code, err := resilience.Call(c.breaker, func() (string, error) {
		var out shortcodeResponse
		err := resilience.DoJSON(ctx, c.http, "shortcode", http.MethodPut, c.url,
			shortcodeRequest{URI: "profile/" + userID, Type: "profile"}, &out)
		if err == nil && out.Shortcode == "" {
			err = appErrors.NewInternal("shortcode service returned no shortcode", nil)
		}
		return out.Shortcode, err
	})
	if c.metrics != nil {
		c.metrics.RecordDependencyCall("shortcode", time.Since(start), err)
	}
	return code, err
}

// ReviewClient registers reviewable entities with the review service.
type ReviewClient struct {
	url     string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	metrics DependencyMetrics
}

func NewReviewClient(url string, client *http.Client, breaker *gobreaker.CircuitBreaker, metrics DependencyMetrics) *ReviewClient {
	return &ReviewClient{url: url, http: client, breaker: breaker, metrics: metrics}
}

type reviewableRequest struct {
	URI              string `json:"uri"`
	Type             string `json:"type"`
	CumulativeRating int    `json:"cumulativeRating"`
	NumberOfReviews  int    `json:"numberOfReviews"`
	ReviewableStatus string `json:"reviewableStatus"`
	UserID           string `json:"userId"`
}

type reviewableResponse struct {
	ID string `json:"id"`
}

// CreateReviewable creates an active, unrated reviewable for the account code.
func (c *ReviewClient) CreateReviewable(ctx context.Context, accountCode, userID string) (string, error) {
	if c.url == "" {
		return "", appErrors.NewInternal("review service url is not configured", nil)
	}
	start := time.Now()
	id, err := resilience.Call(c.breaker, func() (string, error) {
		var out reviewableResponse
		err := resilience.DoJSON(ctx, c.http, "review", http.MethodPost, c.url, reviewableRequest{
			URI:              accountCode,
			Type:             "gigbusters",
			ReviewableStatus: "active",
			UserID:           userID,
		}, &out)
		if err == nil && out.ID == "" {
			err = appErrors.NewInternal("review service returned no id", nil)
		}
		return out.ID, err
	})
	if c.metrics != nil {
		c.metrics.RecordDependencyCall("review", time.Since(start), err)
	}
	return id, err
}
