package ddb

import (
	"errors"

	"github.com/bhajian/gigbusters-profile/internal/repository"
	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// mapError translates DynamoDB failures into repository and application errors.
func mapError(err error, op string) error {
	if err == nil {
		return nil
	}

	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return repository.ErrConditionFailed
	}

	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			switch aws.ToString(reason.Code) {
			case "ConditionalCheckFailed":
				return repository.ErrConditionFailed
			case "TransactionConflict":
				return appErrors.NewConflict("the profile is being modified concurrently, retry the request")
			}
		}
		return appErrors.Wrap(err, op)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ProvisionedThroughputExceededException", "ThrottlingException", "RequestLimitExceeded":
			return appErrors.NewUnavailable("the profile store is busy, retry the request", err)
		}
	}

	return appErrors.Wrap(err, op)
}
