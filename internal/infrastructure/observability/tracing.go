package observability

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds tracing configuration
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	Version     string
	Environment string
	Endpoint    string
	SampleRate  float64
}

// TracerProvider wraps the SDK provider so callers can flush on shutdown.
// A disabled provider is valid and does nothing.
type TracerProvider struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// InitTracing installs a global OTLP/gRPC tracer provider. When tracing is disabled
// only the propagators are installed so incoming context still flows through.
func InitTracing(ctx context.Context, cfg TracingConfig) (*TracerProvider, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	if !cfg.Enabled {
		return &TracerProvider{tracer: otel.Tracer(cfg.ServiceName)}, nil
	}

	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Endpoint == "localhost:4317" || cfg.Endpoint == "127.0.0.1:4317" {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(opts...))
	if err != nil {
		return nil, fmt.Errorf("failed to create exporter: %w", err)
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(semconv.SchemaURL, resourceAttributes(cfg)...))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRate))),
	)
	otel.SetTracerProvider(tp)

	return &TracerProvider{provider: tp, tracer: tp.Tracer(cfg.ServiceName)}, nil
}

func resourceAttributes(cfg TracingConfig) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.Version),
		attribute.String("deployment.environment", cfg.Environment),
		attribute.String("cloud.provider", "aws"),
	}
	if fn := os.Getenv("AWS_LAMBDA_FUNCTION_NAME"); fn != "" {
		attrs = append(attrs,
			attribute.String("faas.name", fn),
			attribute.String("faas.version", os.Getenv("AWS_LAMBDA_FUNCTION_VERSION")),
			attribute.String("cloud.region", os.Getenv("AWS_REGION")),
		)
	}
	return attrs
}

func (tp *TracerProvider) Tracer() trace.Tracer {
	return tp.tracer
}

// ForceFlush exports pending spans; Lambda handlers call it before returning.
func (tp *TracerProvider) ForceFlush(ctx context.Context) error {
	if tp == nil || tp.provider == nil {
		return nil
	}
	return tp.provider.ForceFlush(ctx)
}

func (tp *TracerProvider) Shutdown(ctx context.Context) error {
	if tp == nil || tp.provider == nil {
		return nil
	}
	return tp.provider.Shutdown(ctx)
}
