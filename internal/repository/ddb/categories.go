package ddb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AddCategories unions categories into the profile's string set.
func (r *Repository) AddCategories(ctx context.Context, userID, accountID string, categories []string) error {
	return r.mutateCategories(ctx, "ADD", userID, accountID, categories, "failed to add categories")
}

// RemoveCategories subtracts categories from the profile's string set. Removing the last
// member deletes the attribute.
func (r *Repository) RemoveCategories(ctx context.Context, userID, accountID string, categories []string) error {
	return r.mutateCategories(ctx, "DELETE", userID, accountID, categories, "failed to remove categories")
}

// The expression builder has no string-set literal, so these expressions are written out.
func (r *Repository) mutateCategories(ctx context.Context, action, userID, accountID string, categories []string, op string) error {
	if len(categories) == 0 {
		return nil
	}
	_, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.config.TableName),
		Key:                 profileKey(accountID),
		UpdateExpression:    aws.String(action + " #ic :ic SET #updated = :updated"),
		ConditionExpression: aws.String("#owner = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#ic":      "Categories",
			"#updated": "UpdatedAt",
			"#owner":   "UserID",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ic":      &types.AttributeValueMemberSS{Value: categories},
			":updated": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
			":owner":   &types.AttributeValueMemberS{Value: userID},
		},
	})
	return mapError(err, op)
}
