// Package notify delivers verification codes over SMS.
package notify

import (
	"context"

	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"go.uber.org/zap"
)

// Publisher is the subset of *sns.Client used here.
type Publisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SMSSender sends transactional text messages through SNS.
type SMSSender struct {
	client Publisher
	logger *zap.Logger
}

func NewSMSSender(client Publisher, logger *zap.Logger) *SMSSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMSSender{client: client, logger: logger}
}

// SendSMS publishes message directly to phone (E.164).
func (s *SMSSender) SendSMS(ctx context.Context, phone, message string) error {
	out, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phone),
		Message:     aws.String(message),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {
				DataType:    aws.String("String"),
				StringValue: aws.String("Transactional"),
			},
		},
	})
	if err != nil {
		return appErrors.NewUnavailable("failed to send SMS", err)
	}
	s.logger.Debug("sms sent", zap.String("message_id", aws.ToString(out.MessageId)))
	return nil
}
