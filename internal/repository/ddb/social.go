package ddb

import (
	"context"
	"time"

	"github.com/bhajian/gigbusters-profile/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PutSocial writes the link under its (snName, socialUserId) key, replacing any existing one.
func (r *Repository) PutSocial(ctx context.Context, userID, accountID string, social domain.SocialEntry) error {
	item, err := attributevalue.MarshalMap(newSocialRecord(accountID, social, time.Now()))
	if err != nil {
		return mapError(err, "failed to marshal social account")
	}
	check, err := r.ownerCheck(userID, accountID)
	if err != nil {
		return err
	}
	put := types.TransactWriteItem{
		Put: &types.Put{TableName: aws.String(r.config.TableName), Item: item},
	}
	return r.transact(ctx, "failed to put social account", check, put)
}

// DeleteSocial removes one link; a missing link rejects the transaction.
func (r *Repository) DeleteSocial(ctx context.Context, userID, accountID, snName, socialUserID string) error {
	check, err := r.ownerCheck(userID, accountID)
	if err != nil {
		return err
	}
	expr, err := expression.NewBuilder().WithCondition(expression.AttributeExists(expression.Name("PK"))).Build()
	if err != nil {
		return mapError(err, "failed to build condition")
	}
	del := types.TransactWriteItem{
		Delete: &types.Delete{
			TableName:                aws.String(r.config.TableName),
			Key:                      itemKey(accountPK(accountID), socialSK(snName, socialUserID)),
			ConditionExpression:      expr.Condition(),
			ExpressionAttributeNames: expr.Names(),
		},
	}
	return r.transact(ctx, "failed to delete social account", check, del)
}
