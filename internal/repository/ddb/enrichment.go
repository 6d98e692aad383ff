package ddb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
)

// ApplyEnrichment records the generated account code and reviewable id exactly once.
func (r *Repository) ApplyEnrichment(ctx context.Context, accountID, accountCode, reviewableID string) error {
	update := expression.Set(expression.Name("AccountCode"), expression.Value(accountCode)).
		Set(expression.Name("ReviewableID"), expression.Value(reviewableID)).
		Set(expression.Name("UpdatedAt"), expression.Value(formatTime(time.Now())))
	cond := expression.AttributeExists(expression.Name("PK")).
		And(expression.AttributeNotExists(expression.Name("ReviewableID")))
	return r.updateProfileIf(ctx, accountID, update, cond, "failed to apply enrichment")
}
