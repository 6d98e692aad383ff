package ddb

import (
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFromStreamImage(t *testing.T) {
	t.Run("ProfileRecord", func(t *testing.T) {
		image := map[string]events.DynamoDBAttributeValue{
			"PK":         events.NewStringAttribute("ACCOUNT#acc-1"),
			"SK":         events.NewStringAttribute("PROFILE"),
			"EntityType": events.NewStringAttribute("PROFILE"),
			"AccountID":  events.NewStringAttribute("acc-1"),
			"UserID":     events.NewStringAttribute("user-1"),
			"Active":     events.NewBooleanAttribute(true),
			"Name":       events.NewStringAttribute("Ada"),
			"Categories": events.NewStringSetAttribute([]string{"a", "b"}),
			"Email": events.NewMapAttribute(map[string]events.DynamoDBAttributeValue{
				"Value":    events.NewStringAttribute("ada@example.com"),
				"Verified": events.NewBooleanAttribute(false),
			}),
			"Location": events.NewMapAttribute(map[string]events.DynamoDBAttributeValue{
				"Latitude":  events.NewNumberAttribute("43.7"),
				"Longitude": events.NewNumberAttribute("-79.4"),
			}),
			"CreatedAt": events.NewStringAttribute("2024-01-02T03:04:05Z"),
		}

		p, ok, err := ProfileFromStreamImage(image)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "acc-1", p.AccountID)
		assert.Equal(t, "user-1", p.UserID)
		assert.ElementsMatch(t, []string{"a", "b"}, p.InterestedCategories)
		assert.Equal(t, "ada@example.com", p.Email.Email)
		require.NotNil(t, p.Location)
		assert.InDelta(t, 43.7, *p.Location.Latitude, 1e-9)
	})

	t.Run("PhotoRecordIsSkipped", func(t *testing.T) {
		image := map[string]events.DynamoDBAttributeValue{
			"EntityType": events.NewStringAttribute("PHOTO"),
		}
		p, ok, err := ProfileFromStreamImage(image)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, p)
	})
}

func TestFromStreamImageNested(t *testing.T) {
	item, err := FromStreamImage(map[string]events.DynamoDBAttributeValue{
		"List": events.NewListAttribute([]events.DynamoDBAttributeValue{
			events.NewNumberAttribute("1"),
			events.NewNullAttribute(),
		}),
	})
	require.NoError(t, err)

	list, ok := item["List"].(*types.AttributeValueMemberL)
	require.True(t, ok)
	require.Len(t, list.Value, 2)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "1"}, list.Value[0])
	assert.IsType(t, &types.AttributeValueMemberNULL{}, list.Value[1])
}
