package ddb

import (
	"fmt"

	"github.com/bhajian/gigbusters-profile/internal/domain"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ProfileFromStreamImage decodes a stream record image. The boolean is false for images
// of records other than the profile record itself.
func ProfileFromStreamImage(image map[string]events.DynamoDBAttributeValue) (*domain.Profile, bool, error) {
	item, err := FromStreamImage(image)
	if err != nil {
		return nil, false, err
	}
	if stringAttr(item, "EntityType") != entityProfile {
		return nil, false, nil
	}
	var rec profileRecord
	if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal stream image: %w", err)
	}
	return rec.toDomain(nil, nil), true, nil
}

// FromStreamImage converts Lambda stream attribute values to SDK attribute values.
func FromStreamImage(image map[string]events.DynamoDBAttributeValue) (map[string]types.AttributeValue, error) {
	out := make(map[string]types.AttributeValue, len(image))
	for name, v := range image {
		av, err := fromStreamValue(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}
		out[name] = av
	}
	return out, nil
}

func fromStreamValue(v events.DynamoDBAttributeValue) (types.AttributeValue, error) {
	switch v.DataType() {
	case events.DataTypeString:
		return &types.AttributeValueMemberS{Value: v.String()}, nil
	case events.DataTypeNumber:
		return &types.AttributeValueMemberN{Value: v.Number()}, nil
	case events.DataTypeBoolean:
		return &types.AttributeValueMemberBOOL{Value: v.Boolean()}, nil
	case events.DataTypeBinary:
		return &types.AttributeValueMemberB{Value: v.Binary()}, nil
	case events.DataTypeNull:
		return &types.AttributeValueMemberNULL{Value: true}, nil
	case events.DataTypeStringSet:
		return &types.AttributeValueMemberSS{Value: v.StringSet()}, nil
	case events.DataTypeNumberSet:
		return &types.AttributeValueMemberNS{Value: v.NumberSet()}, nil
	case events.DataTypeBinarySet:
		return &types.AttributeValueMemberBS{Value: v.BinarySet()}, nil
	case events.DataTypeList:
		list := v.List()
		out := make([]types.AttributeValue, 0, len(list))
		for _, item := range list {
			av, err := fromStreamValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, av)
		}
		return &types.AttributeValueMemberL{Value: out}, nil
	case events.DataTypeMap:
		m, err := FromStreamImage(v.Map())
		if err != nil {
			return nil, err
		}
		return &types.AttributeValueMemberM{Value: m}, nil
	}
	return nil, fmt.Errorf("unsupported stream data type %v", v.DataType())
}
