package ddb

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/bhajian/gigbusters-profile/internal/repository"
	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	idempotencySK      = "IDEMPOTENCY"
	statusInProgress   = "IN_PROGRESS"
	statusCompleted    = "COMPLETED"
	defaultIdempotency = 24 * time.Hour
	defaultLease       = 5 * time.Minute
)

type idempotencyItem struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	Status     string `dynamodbav:"Status"`
	Result     string `dynamodbav:"Result,omitempty"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
	LeaseUntil int64  `dynamodbav:"LeaseUntil"`
	TTL        int64  `dynamodbav:"TTL"`
}

// IdempotencyStore implements repository.IdempotencyStore on the profile table. Records
// expire through the table's TTL attribute.
type IdempotencyStore struct {
	client    DynamoDBAPI
	tableName string
	ttl       time.Duration
	lease     time.Duration
	now       func() time.Time
}

var _ repository.IdempotencyStore = (*IdempotencyStore)(nil)

// NewIdempotencyStore creates a new DynamoDB-based idempotency store. lease bounds how long
// an unfinished claim blocks the key and should cover the consumer's function timeout.
func NewIdempotencyStore(client DynamoDBAPI, tableName string, ttl, lease time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotency
	}
	if lease <= 0 {
		lease = defaultLease
	}
	return &IdempotencyStore{client: client, tableName: tableName, ttl: ttl, lease: lease, now: time.Now}
}

func idempotencyPK(key repository.IdempotencyKey) string {
	return "IDEMPOTENCY#" + key.String()
}

// Claim writes an in-progress marker unless the key is completed or held by a live lease.
func (s *IdempotencyStore) Claim(ctx context.Context, key repository.IdempotencyKey) (repository.ClaimState, error) {
	now := s.now()
	item, err := attributevalue.MarshalMap(idempotencyItem{
		PK:         idempotencyPK(key),
		SK:         idempotencySK,
		Status:     statusInProgress,
		CreatedAt:  now.UTC().Format(time.RFC3339),
		LeaseUntil: now.Add(s.lease).Unix(),
		TTL:        now.Add(s.ttl).Unix(),
	})
	if err != nil {
		return repository.ClaimInProgress, appErrors.Wrap(err, "failed to marshal idempotency item")
	}

	stale := expression.Name("Status").Equal(expression.Value(statusInProgress)).
		And(expression.Name("LeaseUntil").LessThan(expression.Value(now.Unix())))
	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name("PK")).Or(stale)).
		Build()
	if err != nil {
		return repository.ClaimInProgress, appErrors.Wrap(err, "failed to build condition")
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                           aws.String(s.tableName),
		Item:                                item,
		ConditionExpression:                 expr.Condition(),
		ExpressionAttributeNames:            expr.Names(),
		ExpressionAttributeValues:           expr.Values(),
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err == nil {
		return repository.ClaimAcquired, nil
	}

	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		if status, ok := ccf.Item["Status"].(*types.AttributeValueMemberS); ok && status.Value == statusCompleted {
			return repository.ClaimCompleted, nil
		}
		return repository.ClaimInProgress, nil
	}
	return repository.ClaimInProgress, mapError(err, "failed to claim idempotency key")
}

// Complete stores the serialized result and marks the key done.
func (s *IdempotencyStore) Complete(ctx context.Context, key repository.IdempotencyKey, result interface{}) error {
	data, err := json.Marshal(result)
	if err != nil {
		return appErrors.Wrap(err, "failed to serialize idempotency result")
	}

	update := expression.Set(expression.Name("Status"), expression.Value(statusCompleted)).
		Set(expression.Name("Result"), expression.Value(string(data)))
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return appErrors.Wrap(err, "failed to build update")
	}

	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       itemKey(idempotencyPK(key), idempotencySK),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	return mapError(err, "failed to complete idempotency key")
}

// Release deletes an in-progress claim. Completed keys are kept.
func (s *IdempotencyStore) Release(ctx context.Context, key repository.IdempotencyKey) error {
	expr, err := expression.NewBuilder().
		WithCondition(expression.Name("Status").Equal(expression.Value(statusInProgress))).
		Build()
	if err != nil {
		return appErrors.Wrap(err, "failed to build condition")
	}

	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       itemKey(idempotencyPK(key), idempotencySK),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	mapped := mapError(err, "failed to release idempotency key")
	if repository.IsConditionFailed(mapped) {
		return nil
	}
	return mapped
}
