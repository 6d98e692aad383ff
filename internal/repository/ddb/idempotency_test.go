package ddb

import (
	"context"
	"testing"
	"time"

	"github.com/bhajian/gigbusters-profile/internal/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func numberValues(m map[string]types.AttributeValue) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		if n, ok := v.(*types.AttributeValueMemberN); ok {
			out = append(out, n.Value)
		}
	}
	return out
}

func TestIdempotencyStore(t *testing.T) {
	ctx := context.Background()
	key := repository.IdempotencyKey{Operation: "enrich", ID: "acc-1"}

	t.Run("FirstClaimWins", func(t *testing.T) {
		client := &mockDynamoDB{}
		store := NewIdempotencyStore(client, "profiles", time.Hour, time.Minute)
		store.now = func() time.Time { return time.Unix(1000, 0) }

		client.On("PutItem", ctx, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
			ttl, ok := in.Item["TTL"].(*types.AttributeValueMemberN)
			lease, leaseOK := in.Item["LeaseUntil"].(*types.AttributeValueMemberN)
			return ok && ttl.Value == "4600" &&
				leaseOK && lease.Value == "1060" &&
				stringAttr(in.Item, "PK") == "IDEMPOTENCY#enrich#acc-1" &&
				in.ReturnValuesOnConditionCheckFailure == types.ReturnValuesOnConditionCheckFailureAllOld
		})).Return(&dynamodb.PutItemOutput{}, nil)

		state, err := store.Claim(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, repository.ClaimAcquired, state)
	})

	t.Run("ExpiredLeaseCanBeTakenOver", func(t *testing.T) {
		client := &mockDynamoDB{}
		store := NewIdempotencyStore(client, "profiles", time.Hour, time.Minute)
		store.now = func() time.Time { return time.Unix(1000, 0) }

		client.On("PutItem", ctx, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
			cond := aws.ToString(in.ConditionExpression)
			return assert.Contains(t, cond, "attribute_not_exists") &&
				assert.Contains(t, cond, " OR ") &&
				assert.Contains(t, names(in.ExpressionAttributeNames), "LeaseUntil") &&
				assert.Contains(t, names(in.ExpressionAttributeNames), "Status") &&
				assert.Contains(t, stringValues(in.ExpressionAttributeValues), statusInProgress) &&
				assert.Contains(t, numberValues(in.ExpressionAttributeValues), "1000")
		})).Return(&dynamodb.PutItemOutput{}, nil)

		state, err := store.Claim(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, repository.ClaimAcquired, state)
	})

	t.Run("LiveClaimIsInProgress", func(t *testing.T) {
		client := &mockDynamoDB{}
		store := NewIdempotencyStore(client, "profiles", 0, 0)
		client.On("PutItem", ctx, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{
			Item: map[string]types.AttributeValue{"Status": &types.AttributeValueMemberS{Value: statusInProgress}},
		})

		state, err := store.Claim(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, repository.ClaimInProgress, state)
	})

	t.Run("CompletedKeyIsDuplicate", func(t *testing.T) {
		client := &mockDynamoDB{}
		store := NewIdempotencyStore(client, "profiles", 0, 0)
		client.On("PutItem", ctx, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{
			Item: map[string]types.AttributeValue{"Status": &types.AttributeValueMemberS{Value: statusCompleted}},
		})

		state, err := store.Claim(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, repository.ClaimCompleted, state)
	})

	t.Run("ClaimErrorPropagates", func(t *testing.T) {
		client := &mockDynamoDB{}
		store := NewIdempotencyStore(client, "profiles", 0, 0)
		client.On("PutItem", ctx, mock.Anything).Return(nil, &types.InternalServerError{Message: aws.String("boom")})

		_, err := store.Claim(ctx, key)
		assert.Error(t, err)
	})

	t.Run("ReleaseIgnoresCompleted", func(t *testing.T) {
		client := &mockDynamoDB{}
		store := NewIdempotencyStore(client, "profiles", 0, 0)
		client.On("DeleteItem", ctx, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		assert.NoError(t, store.Release(ctx, key))
	})

	t.Run("CompleteStoresResult", func(t *testing.T) {
		client := &mockDynamoDB{}
		store := NewIdempotencyStore(client, "profiles", 0, 0)
		client.On("UpdateItem", ctx, mock.MatchedBy(func(in *dynamodb.UpdateItemInput) bool {
			return assert.Contains(t, stringValues(in.ExpressionAttributeValues), `{"reviewableId":"r1"}`)
		})).Return(&dynamodb.UpdateItemOutput{}, nil)

		assert.NoError(t, store.Complete(ctx, key, map[string]string{"reviewableId": "r1"}))
	})
}
