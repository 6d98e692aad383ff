//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/bhajian/gigbusters-profile/internal/config"
	"github.com/bhajian/gigbusters-profile/internal/repository"
	"github.com/bhajian/gigbusters-profile/internal/repository/ddb"

	"github.com/google/wire"
)

// CoreSet is shared by both entry points.
var CoreSet = wire.NewSet(
	ProvideLogLevel,
	ProvideLogger,
	ProvideTracerProvider,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideRepository,
	wire.Bind(new(repository.Repository), new(*ddb.Repository)),
	ProvideEventPublisher,
	ProvideHTTPClient,
)

// APISet adds photo storage, SMS, Prometheus metrics and the HTTP-facing services.
var APISet = wire.NewSet(
	CoreSet,
	ProvideMetrics,
	ProvideS3Client,
	ProvideSNSClient,
	ProvidePhotoStore,
	ProvideSMSSender,
	ProvideProfileService,
	ProvideTokenService,
	wire.Struct(new(APIContainer), "*"),
)

// StreamSet adds the enrichment clients and the stream processor. Its metrics go to
// CloudWatch since nothing scrapes the stream function.
var StreamSet = wire.NewSet(
	CoreSet,
	ProvideCloudWatchClient,
	ProvideCloudWatchMetrics,
	ProvideIdempotencyStore,
	wire.Bind(new(repository.IdempotencyStore), new(*ddb.IdempotencyStore)),
	ProvideShortcodeClient,
	ProvideReviewClient,
	ProvideProcessor,
	wire.Struct(new(StreamContainer), "Config", "Logger", "Tracer", "Processor"),
)

// InitializeAPI wires the HTTP entry points.
func InitializeAPI(ctx context.Context, cfg *config.Config) (*APIContainer, func(), error) {
	wire.Build(APISet)
	return nil, nil, nil
}

// InitializeStream wires the DynamoDB stream consumer.
func InitializeStream(ctx context.Context, cfg *config.Config) (*StreamContainer, func(), error) {
	wire.Build(StreamSet)
	return nil, nil, nil
}
