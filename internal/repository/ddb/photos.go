package ddb

import (
	"context"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	"github.com/bhajian/gigbusters-profile/internal/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// AddPhoto stores a photo record. With main set, the profile's MainPhotoID is moved to
// the new photo in the same transaction, which is what keeps a single main photo.
func (r *Repository) AddPhoto(ctx context.Context, userID, accountID string, photo domain.PhotoEntry, main bool) error {
	item, err := attributevalue.MarshalMap(newPhotoRecord(accountID, photo))
	if err != nil {
		return mapError(err, "failed to marshal photo")
	}
	putExpr, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name("PK"))).
		Build()
	if err != nil {
		return mapError(err, "failed to build condition")
	}
	put := types.TransactWriteItem{
		Put: &types.Put{
			TableName:                aws.String(r.config.TableName),
			Item:                     item,
			ConditionExpression:      putExpr.Condition(),
			ExpressionAttributeNames: putExpr.Names(),
		},
	}

	var guard types.TransactWriteItem
	if main {
		guard, err = r.profileUpdate(accountID,
			expression.Set(expression.Name("MainPhotoID"), expression.Value(photo.PhotoID)),
			ownerCondition(userID))
	} else {
		guard, err = r.ownerCheck(userID, accountID)
	}
	if err != nil {
		return err
	}

	if err := r.transact(ctx, "failed to add photo", guard, put); err != nil {
		return err
	}
	r.logger.Debug("photo added",
		zap.String("accountID", accountID),
		zap.String("photoID", photo.PhotoID),
		zap.Bool("main", main),
	)
	return nil
}

// SetMainPhoto points MainPhotoID at an existing photo.
func (r *Repository) SetMainPhoto(ctx context.Context, userID, accountID, photoID string) error {
	update, err := r.profileUpdate(accountID,
		expression.Set(expression.Name("MainPhotoID"), expression.Value(photoID)),
		ownerCondition(userID))
	if err != nil {
		return err
	}
	exists, err := r.existsCheck(accountPK(accountID), photoSK(photoID))
	if err != nil {
		return err
	}
	return r.transact(ctx, "failed to set main photo", update, exists)
}

// DeletePhoto removes a photo record. If the photo is the main one the pointer is
// removed in the same transaction, conditioned on it still pointing there.
func (r *Repository) DeletePhoto(ctx context.Context, userID, accountID, photoID string) (*domain.PhotoEntry, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.config.TableName),
		Key:            itemKey(accountPK(accountID), photoSK(photoID)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, mapError(err, "failed to get photo")
	}
	if out.Item == nil {
		return nil, repository.ErrConditionFailed
	}
	var rec photoRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, mapError(err, "failed to unmarshal photo")
	}

	profile, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:            aws.String(r.config.TableName),
		Key:                  profileKey(accountID),
		ProjectionExpression: aws.String("MainPhotoID"),
		ConsistentRead:       aws.Bool(true),
	})
	if err != nil {
		return nil, mapError(err, "failed to get profile")
	}
	isMain := stringAttr(profile.Item, "MainPhotoID") == photoID

	mainIs := expression.Name("MainPhotoID").Equal(expression.Value(photoID))
	var guard types.TransactWriteItem
	if isMain {
		guard, err = r.profileUpdate(accountID,
			expression.Remove(expression.Name("MainPhotoID")),
			ownerCondition(userID).And(mainIs))
	} else {
		guard, err = r.profileCheck(accountID,
			ownerCondition(userID).And(expression.Or(
				expression.AttributeNotExists(expression.Name("MainPhotoID")),
				expression.Not(mainIs),
			)))
	}
	if err != nil {
		return nil, err
	}

	delExpr, err := expression.NewBuilder().WithCondition(expression.AttributeExists(expression.Name("PK"))).Build()
	if err != nil {
		return nil, mapError(err, "failed to build condition")
	}
	del := types.TransactWriteItem{
		Delete: &types.Delete{
			TableName:                aws.String(r.config.TableName),
			Key:                      itemKey(accountPK(accountID), photoSK(photoID)),
			ConditionExpression:      delExpr.Condition(),
			ExpressionAttributeNames: delExpr.Names(),
		},
	}

	if err := r.transact(ctx, "failed to delete photo", guard, del); err != nil {
		return nil, err
	}
	photo := rec.toDomain()
	photo.Main = isMain
	return &photo, nil
}
