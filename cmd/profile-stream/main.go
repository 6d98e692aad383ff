// Command profile-stream consumes the profile table's DynamoDB stream and enriches new
// profiles with an account code and a reviewable record.
package main

import (
	"context"
	"log"

	"github.com/bhajian/gigbusters-profile/internal/config"
	"github.com/bhajian/gigbusters-profile/internal/di"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

var container *di.StreamContainer

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	container, _, err = di.InitializeStream(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
}

// Handler reports per-record failures so Lambda only retries those records.
func Handler(ctx context.Context, ev events.DynamoDBEvent) (events.DynamoDBEventResponse, error) {
	resp, err := container.Processor.Handle(ctx, ev)
	if flushErr := container.Tracer.ForceFlush(ctx); flushErr != nil {
		container.Logger.Warn("trace flush failed", zap.Error(flushErr))
	}
	return resp, err
}

func main() {
	lambda.Start(Handler)
}
