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
)

const (
	discoverScanPageSize = 100
	discoverMaxScanPages = 10
)

type summaryRecord struct {
	PK           string                `dynamodbav:"PK"`
	SK           string                `dynamodbav:"SK"`
	AccountID    string                `dynamodbav:"AccountID"`
	AccountType  string                `dynamodbav:"AccountType"`
	Name         string                `dynamodbav:"Name"`
	AccountCode  string                `dynamodbav:"AccountCode"`
	Bio          string                `dynamodbav:"Bio"`
	Location     *domain.LocationEntry `dynamodbav:"Location"`
	ReviewableID string                `dynamodbav:"ReviewableID"`
}

// Discover scans for active profiles not owned by excludeUserID. A request reads at most
// discoverMaxScanPages scan pages, so a page can come back short with a cursor set.
func (r *Repository) Discover(ctx context.Context, excludeUserID string, page repository.Pagination) ([]domain.ProfileSummary, string, error) {
	if err := page.Validate(); err != nil {
		return nil, "", err
	}
	limit := page.GetEffectiveLimit()

	start, err := repository.DecodeCursor(page.Cursor)
	if err != nil {
		return nil, "", err
	}

	filter := expression.Name("EntityType").Equal(expression.Value(entityProfile)).
		And(expression.Name("UserID").NotEqual(expression.Value(excludeUserID))).
		And(expression.Name("Active").Equal(expression.Value(true)))
	projection := expression.NamesList(
		expression.Name("PK"), expression.Name("SK"), expression.Name("AccountID"),
		expression.Name("AccountType"), expression.Name("Name"), expression.Name("AccountCode"),
		expression.Name("Bio"), expression.Name("Location"), expression.Name("ReviewableID"),
	)
	expr, err := expression.NewBuilder().WithFilter(filter).WithProjection(projection).Build()
	if err != nil {
		return nil, "", mapError(err, "failed to build scan")
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.config.TableName),
		FilterExpression:          expr.Filter(),
		ProjectionExpression:      expr.Projection(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(discoverScanPageSize),
	}
	if start != nil {
		input.ExclusiveStartKey = itemKey(start.PK, start.SK)
	}

	items := make([]domain.ProfileSummary, 0, limit)
	for pages := 0; pages < discoverMaxScanPages; pages++ {
		out, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, "", mapError(err, "failed to scan profiles")
		}

		var records []summaryRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
			return nil, "", mapError(err, "failed to unmarshal profiles")
		}
		for i, rec := range records {
			items = append(items, rec.toDomain())
			if len(items) == limit {
				more := i < len(records)-1 || len(out.LastEvaluatedKey) > 0
				if !more {
					return items, "", nil
				}
				return items, repository.EncodeCursor(&repository.CursorKey{PK: rec.PK, SK: rec.SK}), nil
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return items, "", nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	return items, cursorFromKey(input.ExclusiveStartKey), nil
}

func cursorFromKey(key map[string]types.AttributeValue) string {
	return repository.EncodeCursor(&repository.CursorKey{
		PK: stringAttr(key, "PK"),
		SK: stringAttr(key, "SK"),
	})
}

func (r summaryRecord) toDomain() domain.ProfileSummary {
	return domain.ProfileSummary{
		AccountID:    r.AccountID,
		AccountType:  r.AccountType,
		Name:         r.Name,
		AccountCode:  r.AccountCode,
		Bio:          r.Bio,
		Location:     r.Location,
		ReviewableID: r.ReviewableID,
	}
}
