package ddb

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	entityProfile = "PROFILE"
	entityPhoto   = "PHOTO"
	entitySocial  = "SOCIAL"

	profileSK = "PROFILE"

	// TransactWriteItems accepts at most 100 actions.
	maxTransactItems = 100
	// BatchWriteItem accepts at most 25 requests.
	maxBatchWrite = 25
)

func accountPK(accountID string) string { return "ACCOUNT#" + accountID }

func ownerPK(userID string) string { return "USER#" + userID }

func ownerSK(accountID string) string { return "ACCOUNT#" + accountID }

func photoSK(photoID string) string { return "PHOTO#" + photoID }

func socialSK(snName, socialUserID string) string {
	return "SOCIAL#" + snName + "#" + socialUserID
}

func itemKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}

func profileKey(accountID string) map[string]types.AttributeValue {
	return itemKey(accountPK(accountID), profileSK)
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}
