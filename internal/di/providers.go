// Package di wires the profile service with Google Wire. Providers live here; the
// injectors are declared in wire.go and generated into wire_gen.go.
package di

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/bhajian/gigbusters-profile/internal/config"
	"github.com/bhajian/gigbusters-profile/internal/infrastructure/messaging"
	"github.com/bhajian/gigbusters-profile/internal/infrastructure/notify"
	"github.com/bhajian/gigbusters-profile/internal/infrastructure/observability"
	"github.com/bhajian/gigbusters-profile/internal/infrastructure/resilience"
	"github.com/bhajian/gigbusters-profile/internal/infrastructure/storage"
	"github.com/bhajian/gigbusters-profile/internal/repository"
	"github.com/bhajian/gigbusters-profile/internal/repository/ddb"
	"github.com/bhajian/gigbusters-profile/internal/service/enrichment"
	"github.com/bhajian/gigbusters-profile/internal/service/profile"
	"github.com/bhajian/gigbusters-profile/internal/service/token"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"
)

// ProvideLogLevel parses the configured level into an adjustable zap level.
func ProvideLogLevel(cfg *config.Config) zap.AtomicLevel {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return level
}

// ProvideLogger builds a production logger in production and a development one elsewhere.
func ProvideLogger(cfg *config.Config, level zap.AtomicLevel) (*zap.Logger, func(), error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	}
	zc.Level = level

	logger, err := zc.Build(zap.Fields(
		zap.String("service", cfg.ServiceName),
		zap.String("version", cfg.Version),
	))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}

// ProvideTracerProvider installs tracing and flushes it on cleanup.
func ProvideTracerProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*observability.TracerProvider, func(), error) {
	tp, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: string(cfg.Environment),
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRate:  cfg.Tracing.SampleRate,
	})
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Warn("tracer shutdown failed", zap.Error(err))
		}
	}
	return tp, cleanup, nil
}

// ProvideAWSConfig loads the default AWS configuration for the configured region.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Database.Region))
}

func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

func ProvideS3Client(awsCfg aws.Config) *awss3.Client {
	return awss3.NewFromConfig(awsCfg)
}

func ProvideSNSClient(awsCfg aws.Config) *awssns.Client {
	return awssns.NewFromConfig(awsCfg)
}

func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideRepository creates the DynamoDB profile repository.
func ProvideRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) (*ddb.Repository, error) {
	dc := ddb.Config{
		TableName:  cfg.Database.TableName,
		OwnerIndex: cfg.Database.OwnerIndex,
	}
	if err := dc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid repository config: %w", err)
	}
	return ddb.NewRepository(client, dc, logger), nil
}

func ProvideIdempotencyStore(client *awsdynamodb.Client, cfg *config.Config) *ddb.IdempotencyStore {
	return ddb.NewIdempotencyStore(client, cfg.Database.TableName, cfg.Idempotency.TTL, cfg.Idempotency.Lease)
}

func ProvidePhotoStore(client *awss3.Client, cfg *config.Config, logger *zap.Logger) *storage.PhotoStore {
	return storage.NewPhotoStoreFromClient(client, cfg.Storage.Bucket, cfg.Storage.UploadURLTTL, logger)
}

func ProvideSMSSender(client *awssns.Client, logger *zap.Logger) *notify.SMSSender {
	return notify.NewSMSSender(client, logger)
}

func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) *messaging.EventBridgePublisher {
	return messaging.NewEventBridgePublisher(client, cfg.Events.EventBusName, cfg.Events.Source, logger)
}

func ProvideMetrics(cfg *config.Config) *observability.Collector {
	return observability.NewCollector(cfg.Metrics.Namespace)
}

// ProvideCloudWatchMetrics publishes per-batch stream totals under the Lambda function name.
func ProvideCloudWatchMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.CloudWatchMetrics {
	function := os.Getenv("AWS_LAMBDA_FUNCTION_NAME")
	if function == "" {
		function = cfg.ServiceName
	}
	return observability.NewCloudWatchMetrics(client, cfg.Metrics.CloudWatchNamespace, function, logger)
}

func ProvideHTTPClient(cfg *config.Config) *http.Client {
	return resilience.NewHTTPClient(cfg.Services.HTTPTimeout)
}

func breakerConfig(cfg *config.Config, name string) resilience.BreakerConfig {
	return resilience.BreakerConfig{
		Name:         name,
		MaxRequests:  cfg.CircuitBreaker.MaxRequests,
		Interval:     cfg.CircuitBreaker.Interval,
		Timeout:      cfg.CircuitBreaker.Timeout,
		FailureRatio: cfg.CircuitBreaker.FailureRatio,
		MinRequests:  cfg.CircuitBreaker.MinRequests,
	}
}

func ProvideProfileService(
	repo repository.Repository,
	photos *storage.PhotoStore,
	sms *notify.SMSSender,
	publisher *messaging.EventBridgePublisher,
	metrics *observability.Collector,
	cfg *config.Config,
	logger *zap.Logger,
) profile.Service {
	return profile.NewService(repo, photos, sms, publisher, metrics, profile.Config{
		CodeTTL:    cfg.Verification.CodeTTL,
		CodeDigits: cfg.Verification.CodeDigits,
	}, logger)
}

func ProvideTokenService(cfg *config.Config, client *http.Client, metrics *observability.Collector, logger *zap.Logger) token.Service {
	return token.NewService(token.Config{
		Endpoint:    cfg.Auth.TokenEndpoint,
		ClientID:    cfg.Auth.ClientID,
		GrantType:   cfg.Auth.GrantType,
		RedirectURL: cfg.Auth.RedirectURL,
	}, client, resilience.NewBreaker(breakerConfig(cfg, "token"), logger), metrics, logger)
}

func ProvideShortcodeClient(cfg *config.Config, client *http.Client, metrics *observability.CloudWatchMetrics, logger *zap.Logger) *enrichment.ShortcodeClient {
	return enrichment.NewShortcodeClient(cfg.Services.ShortcodeURL, client,
		resilience.NewBreaker(breakerConfig(cfg, "shortcode"), logger), metrics)
}

func ProvideReviewClient(cfg *config.Config, client *http.Client, metrics *observability.CloudWatchMetrics, logger *zap.Logger) *enrichment.ReviewClient {
	return enrichment.NewReviewClient(cfg.Services.ReviewURL, client,
		resilience.NewBreaker(breakerConfig(cfg, "review"), logger), metrics)
}

func ProvideProcessor(
	repo repository.Repository,
	store repository.IdempotencyStore,
	shortcodes *enrichment.ShortcodeClient,
	reviews *enrichment.ReviewClient,
	publisher *messaging.EventBridgePublisher,
	batches *observability.CloudWatchMetrics,
	logger *zap.Logger,
) *enrichment.Processor {
	return enrichment.NewProcessor(repo, store, shortcodes, reviews, publisher, batches, logger)
}
