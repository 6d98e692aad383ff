// Package ddb implements the profile repository on a single DynamoDB table.
//
// Layout (PK / SK):
//
//	ACCOUNT#<accountId> / PROFILE                        profile record, GSI1 = USER#<userId> / ACCOUNT#<accountId>
//	ACCOUNT#<accountId> / PHOTO#<photoId>                one record per photo
//	ACCOUNT#<accountId> / SOCIAL#<snName>#<socialUserId> one record per social link
//	IDEMPOTENCY#<op>#<id> / IDEMPOTENCY                  stream de-duplication, expires via TTL
package ddb

import (
	"context"
	"fmt"

	"github.com/bhajian/gigbusters-profile/internal/repository"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// DynamoDBAPI is the subset of the DynamoDB client the repository calls.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// Config names the table and the owner index.
type Config struct {
	TableName  string
	OwnerIndex string
}

// Validate checks if the configuration has all required fields.
func (c Config) Validate() error {
	if c.TableName == "" {
		return fmt.Errorf("TableName is required")
	}
	if c.OwnerIndex == "" {
		return fmt.Errorf("OwnerIndex is required")
	}
	return nil
}

// Repository is the DynamoDB implementation of repository.Repository.
type Repository struct {
	client DynamoDBAPI
	config Config
	logger *zap.Logger
}

var _ repository.Repository = (*Repository)(nil)

// NewRepository creates a new DynamoDB-backed profile repository.
func NewRepository(client DynamoDBAPI, config Config, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{client: client, config: config, logger: logger}
}
