package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	"github.com/bhajian/gigbusters-profile/internal/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

func ownerCondition(userID string) expression.ConditionBuilder {
	return expression.Name("UserID").Equal(expression.Value(userID))
}

// CreateProfile writes the profile record and its social links atomically.
func (r *Repository) CreateProfile(ctx context.Context, p *domain.Profile) error {
	item, err := attributevalue.MarshalMap(newProfileRecord(p))
	if err != nil {
		return mapError(err, "failed to marshal profile")
	}

	notExists, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name("PK"))).
		Build()
	if err != nil {
		return mapError(err, "failed to build condition")
	}

	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:                aws.String(r.config.TableName),
			Item:                     item,
			ConditionExpression:      notExists.Condition(),
			ExpressionAttributeNames: notExists.Names(),
		},
	}}

	for _, s := range p.SocialAccounts {
		socialItem, err := attributevalue.MarshalMap(newSocialRecord(p.AccountID, s, p.CreatedDateTime))
		if err != nil {
			return mapError(err, "failed to marshal social account")
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.config.TableName), Item: socialItem},
		})
	}
	if len(items) > maxTransactItems {
		return repository.NewInvalidQuery("socialAccounts", "too many entries")
	}

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return mapError(err, "failed to create profile")
	}

	r.logger.Debug("profile created",
		zap.String("accountID", p.AccountID),
		zap.Int("socialAccounts", len(p.SocialAccounts)),
	)
	return nil
}

// GetProfile reads every record under the profile's partition and assembles the aggregate.
func (r *Repository) GetProfile(ctx context.Context, accountID string) (*domain.Profile, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(accountPK(accountID)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, mapError(err, "failed to build query")
	}

	paginator := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(r.config.TableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ConsistentRead:            aws.Bool(true),
	})

	var (
		profile *profileRecord
		photos  []photoRecord
		socials []socialRecord
	)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, mapError(err, "failed to query profile")
		}
		for _, item := range page.Items {
			switch stringAttr(item, "EntityType") {
			case entityProfile:
				var rec profileRecord
				if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
					return nil, mapError(err, "failed to unmarshal profile")
				}
				profile = &rec
			case entityPhoto:
				var rec photoRecord
				if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
					return nil, mapError(err, "failed to unmarshal photo")
				}
				photos = append(photos, rec)
			case entitySocial:
				var rec socialRecord
				if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
					return nil, mapError(err, "failed to unmarshal social account")
				}
				socials = append(socials, rec)
			}
		}
	}

	if profile == nil {
		return nil, nil
	}
	return profile.toDomain(photos, socials), nil
}

// ListProfilesByOwner queries the owner index.
func (r *Repository) ListProfilesByOwner(ctx context.Context, userID string) ([]*domain.Profile, error) {
	keyCond := expression.Key("GSI1PK").Equal(expression.Value(ownerPK(userID)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, mapError(err, "failed to build query")
	}

	paginator := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(r.config.TableName),
		IndexName:                 aws.String(r.config.OwnerIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	profiles := make([]*domain.Profile, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, mapError(err, "failed to query owner index")
		}
		var records []profileRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &records); err != nil {
			return nil, mapError(err, "failed to unmarshal profiles")
		}
		for _, rec := range records {
			profiles = append(profiles, rec.toDomain(nil, nil))
		}
	}
	return profiles, nil
}

// UpdateProfile replaces the editable fields. Nil optional sub-objects are left unchanged.
func (r *Repository) UpdateProfile(ctx context.Context, userID string, u repository.ProfileUpdate) error {
	update := expression.Set(expression.Name("AccountType"), expression.Value(u.AccountType)).
		Set(expression.Name("Subscription"), expression.Value(u.Subscription)).
		Set(expression.Name("Name"), expression.Value(u.Name)).
		Set(expression.Name("Bio"), expression.Value(u.Bio)).
		Set(expression.Name("UpdatedAt"), expression.Value(formatTime(u.UpdatedAt)))

	if u.Phone != nil {
		update = update.Set(expression.Name("Phone"), expression.Value(toContact(u.Phone.Phone, u.Phone.Verified)))
	}
	if u.Email != nil {
		update = update.Set(expression.Name("Email"), expression.Value(toContact(u.Email.Email, u.Email.Verified)))
	}
	if u.Address != nil {
		update = update.Set(expression.Name("Address"), expression.Value(u.Address))
	}
	if u.Location != nil {
		update = update.Set(expression.Name("Location"), expression.Value(u.Location))
	}
	if u.Settings != nil {
		update = update.Set(expression.Name("Settings"), expression.Value(u.Settings))
	}
	if u.ClearPhoneCode {
		update = update.Remove(expression.Name("PhoneCode")).Remove(expression.Name("PhoneCodeExpiresAt"))
	}
	if u.ClearEmailCode {
		update = update.Remove(expression.Name("EmailCode")).Remove(expression.Name("EmailCodeExpiresAt"))
	}

	return r.updateOwned(ctx, userID, u.AccountID, update, "failed to update profile")
}

// SetActive flips the profile's active flag.
func (r *Repository) SetActive(ctx context.Context, userID, accountID string, active bool) error {
	update := expression.Set(expression.Name("Active"), expression.Value(active)).
		Set(expression.Name("UpdatedAt"), expression.Value(formatTime(time.Now())))
	return r.updateOwned(ctx, userID, accountID, update, "failed to update active flag")
}

// SetLocation replaces the location sub-object in place.
func (r *Repository) SetLocation(ctx context.Context, userID, accountID string, location domain.LocationEntry) error {
	update := expression.Set(expression.Name("Location"), expression.Value(location)).
		Set(expression.Name("UpdatedAt"), expression.Value(formatTime(time.Now())))
	return r.updateOwned(ctx, userID, accountID, update, "failed to set location")
}

// SetSettings replaces the settings sub-object in place.
func (r *Repository) SetSettings(ctx context.Context, userID, accountID string, settings domain.SettingEntry) error {
	update := expression.Set(expression.Name("Settings"), expression.Value(settings)).
		Set(expression.Name("UpdatedAt"), expression.Value(formatTime(time.Now())))
	return r.updateOwned(ctx, userID, accountID, update, "failed to set settings")
}

// updateOwned applies update to the profile record if userID owns it.
func (r *Repository) updateOwned(ctx context.Context, userID, accountID string, update expression.UpdateBuilder, op string) error {
	return r.updateProfileIf(ctx, accountID, update, ownerCondition(userID), op)
}

func (r *Repository) updateProfileIf(ctx context.Context, accountID string, update expression.UpdateBuilder, cond expression.ConditionBuilder, op string) error {
	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return mapError(err, "failed to build update")
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.config.TableName),
		Key:                       profileKey(accountID),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		mapped := mapError(err, op)
		if repository.IsConditionFailed(mapped) {
			r.logger.Debug("conditional update rejected", zap.String("accountID", accountID), zap.String("op", op))
		}
		return mapped
	}
	return nil
}

// DeleteProfile removes the profile record and every sub-record. The profile record is
// deleted in the same transaction as the first sub-records under the owner condition, so
// a foreign caller removes nothing. Sub-records written between the initial query and the
// transaction are swept afterwards; once the profile is gone no new ones can pass the
// owner check.
func (r *Repository) DeleteProfile(ctx context.Context, userID, accountID string) ([]domain.PhotoEntry, error) {
	children, photos, found, err := r.partitionChildren(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrConditionFailed
	}

	ownerExpr, err := expression.NewBuilder().WithCondition(ownerCondition(userID)).Build()
	if err != nil {
		return nil, mapError(err, "failed to build condition")
	}

	items := []types.TransactWriteItem{{
		Delete: &types.Delete{
			TableName:                 aws.String(r.config.TableName),
			Key:                       profileKey(accountID),
			ConditionExpression:       ownerExpr.Condition(),
			ExpressionAttributeNames:  ownerExpr.Names(),
			ExpressionAttributeValues: ownerExpr.Values(),
		},
	}}
	inTx := min(len(children), maxTransactItems-1)
	for _, key := range children[:inTx] {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{TableName: aws.String(r.config.TableName), Key: key},
		})
	}

	if _, err := r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return nil, mapError(err, "failed to delete profile")
	}

	// The profile is gone from here on; leftover sub-records are unreachable and only cost storage.
	if err := r.batchDelete(ctx, children[inTx:]); err != nil {
		r.logger.Warn("failed to delete remaining profile records",
			zap.String("accountID", accountID),
			zap.Int("remaining", len(children)-inTx),
			zap.Error(err),
		)
	}

	late, latePhotos, _, err := r.partitionChildren(ctx, accountID)
	if err == nil && len(late) > 0 {
		r.logger.Info("sweeping records written during profile delete",
			zap.String("accountID", accountID),
			zap.Int("records", len(late)),
		)
		photos = append(photos, latePhotos...)
		err = r.batchDelete(ctx, late)
	}
	if err != nil {
		r.logger.Warn("failed to sweep profile records", zap.String("accountID", accountID), zap.Error(err))
	}

	r.logger.Debug("profile deleted", zap.String("accountID", accountID), zap.Int("records", len(children)+len(late)+1))
	return photos, nil
}

// partitionChildren reads every record under the account partition and returns the keys of
// the sub-records, the photos among them and whether the profile record itself exists.
func (r *Repository) partitionChildren(ctx context.Context, accountID string) ([]map[string]types.AttributeValue, []domain.PhotoEntry, bool, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(accountPK(accountID)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, nil, false, mapError(err, "failed to build query")
	}

	paginator := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(r.config.TableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ConsistentRead:            aws.Bool(true),
	})

	var (
		children []map[string]types.AttributeValue
		photos   []domain.PhotoEntry
		found    bool
	)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, nil, false, mapError(err, "failed to query profile")
		}
		for _, item := range page.Items {
			entity := stringAttr(item, "EntityType")
			if entity == entityProfile {
				found = true
				continue
			}
			if entity == entityPhoto {
				var rec photoRecord
				if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
					return nil, nil, false, mapError(err, "failed to unmarshal photo")
				}
				photos = append(photos, rec.toDomain())
			}
			children = append(children, itemKey(stringAttr(item, "PK"), stringAttr(item, "SK")))
		}
	}
	return children, photos, found, nil
}

func (r *Repository) batchDelete(ctx context.Context, keys []map[string]types.AttributeValue) error {
	for start := 0; start < len(keys); start += maxBatchWrite {
		end := min(start+maxBatchWrite, len(keys))
		requests := make([]types.WriteRequest, 0, end-start)
		for _, key := range keys[start:end] {
			requests = append(requests, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: key}})
		}

		pending := map[string][]types.WriteRequest{r.config.TableName: requests}
		for attempt := 0; len(pending) > 0 && attempt < 3; attempt++ {
			out, err := r.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return mapError(err, "failed to batch delete")
			}
			pending = out.UnprocessedItems
		}
		if len(pending) > 0 {
			return fmt.Errorf("%d delete requests left unprocessed", len(pending[r.config.TableName]))
		}
	}
	return nil
}
