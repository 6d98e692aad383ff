// Command lambda serves the profile REST API behind API Gateway with a Cognito authorizer.
//
// @title                      Gigbusters Profile API
// @version                    1.0.8
// @description                Profile management for gigbusters users.
// @BasePath                   /
// @securityDefinitions.apikey CognitoAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"log"
	"time"

	_ "github.com/bhajian/gigbusters-profile/docs"
	"github.com/bhajian/gigbusters-profile/internal/config"
	"github.com/bhajian/gigbusters-profile/internal/di"
	"github.com/bhajian/gigbusters-profile/internal/middleware"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"go.uber.org/zap"
)

var (
	chiLambda *chiadapter.ChiLambda
	container *di.APIContainer
)

// init builds the container once per cold start.
func init() {
	start := time.Now()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The cleanup is dropped: the runtime freezes the process instead of stopping it.
	container, _, err = di.InitializeAPI(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	router := container.Router(middleware.CognitoAuth(container.Logger))
	chiLambda = chiadapter.New(router)

	container.Logger.Info("Lambda cold start completed",
		zap.Duration("duration", time.Since(start)),
		zap.String("version", cfg.Version),
	)
}

// Handler proxies API Gateway requests through the chi router.
func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp, err := chiLambda.ProxyWithContext(ctx, req)
	if flushErr := container.Tracer.ForceFlush(ctx); flushErr != nil {
		container.Logger.Warn("trace flush failed", zap.Error(flushErr))
	}
	return resp, err
}

func main() {
	lambda.Start(Handler)
}
