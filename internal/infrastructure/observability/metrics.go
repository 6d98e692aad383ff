// Package observability carries Prometheus metrics, CloudWatch metrics and tracing setup.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for operation counters.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Collector holds all Prometheus metrics for the service. Each collector owns its
// registry so tests can build as many as they like.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	Operations        *prometheus.CounterVec
	ProfilesCreated   prometheus.Counter
	ProfilesDeleted   prometheus.Counter
	CodesIssued       *prometheus.CounterVec
	DependencyCalls   *prometheus.CounterVec
	DependencyLatency *prometheus.HistogramVec
}

// NewCollector creates a collector with the given namespace.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_operations_total",
			Help:      "Profile operations by name and outcome",
		}, []string{"operation", "outcome"}),
		ProfilesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profiles_created_total",
			Help:      "Total number of profiles created",
		}),
		ProfilesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profiles_deleted_total",
			Help:      "Total number of profiles deleted",
		}),
		CodesIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verification_codes_issued_total",
			Help:      "Verification codes issued per channel",
		}, []string{"channel"}),
		DependencyCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dependency_calls_total",
			Help:      "Outbound calls to other services",
		}, []string{"dependency", "outcome"}),
		DependencyLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dependency_call_duration_seconds",
			Help:      "Outbound call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"dependency"}),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.Operations,
		c.ProfilesCreated,
		c.ProfilesDeleted,
		c.CodesIssued,
		c.DependencyCalls,
		c.DependencyLatency,
	)
	return c
}

// Registry exposes the underlying registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordOperation counts a service operation; err decides the outcome label.
func (c *Collector) RecordOperation(operation string, err error) {
	c.Operations.WithLabelValues(operation, outcome(err)).Inc()
	if err != nil {
		return
	}
	switch operation {
	case "CreateProfile":
		c.ProfilesCreated.Inc()
	case "DeleteProfile":
		c.ProfilesDeleted.Inc()
	}
}

func (c *Collector) RecordCodeIssued(channel string) {
	c.CodesIssued.WithLabelValues(channel).Inc()
}

func (c *Collector) RecordDependencyCall(dependency string, d time.Duration, err error) {
	c.DependencyCalls.WithLabelValues(dependency, outcome(err)).Inc()
	c.DependencyLatency.WithLabelValues(dependency).Observe(d.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeSuccess
}
