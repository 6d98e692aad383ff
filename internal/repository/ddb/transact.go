package ddb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ownerCheck asserts inside a transaction that userID owns the profile.
func (r *Repository) ownerCheck(userID, accountID string) (types.TransactWriteItem, error) {
	return r.profileCheck(accountID, ownerCondition(userID))
}

// profileCheck asserts cond against the profile record inside a transaction.
func (r *Repository) profileCheck(accountID string, cond expression.ConditionBuilder) (types.TransactWriteItem, error) {
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return types.TransactWriteItem{}, mapError(err, "failed to build condition")
	}
	return types.TransactWriteItem{
		ConditionCheck: &types.ConditionCheck{
			TableName:                 aws.String(r.config.TableName),
			Key:                       profileKey(accountID),
			ConditionExpression:       expr.Condition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
		},
	}, nil
}

// profileUpdate is a conditional update of the profile record inside a transaction.
func (r *Repository) profileUpdate(accountID string, update expression.UpdateBuilder, cond expression.ConditionBuilder) (types.TransactWriteItem, error) {
	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return types.TransactWriteItem{}, mapError(err, "failed to build update")
	}
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName:                 aws.String(r.config.TableName),
			Key:                       profileKey(accountID),
			UpdateExpression:          expr.Update(),
			ConditionExpression:       expr.Condition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
		},
	}, nil
}

// existsCheck asserts inside a transaction that the item at pk/sk exists.
func (r *Repository) existsCheck(pk, sk string) (types.TransactWriteItem, error) {
	expr, err := expression.NewBuilder().WithCondition(expression.AttributeExists(expression.Name("PK"))).Build()
	if err != nil {
		return types.TransactWriteItem{}, mapError(err, "failed to build condition")
	}
	return types.TransactWriteItem{
		ConditionCheck: &types.ConditionCheck{
			TableName:                aws.String(r.config.TableName),
			Key:                      itemKey(pk, sk),
			ConditionExpression:      expr.Condition(),
			ExpressionAttributeNames: expr.Names(),
		},
	}, nil
}

func (r *Repository) transact(ctx context.Context, op string, items ...types.TransactWriteItem) error {
	_, err := r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return mapError(err, op)
}
