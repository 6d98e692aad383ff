package notify

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNS struct {
	in  *sns.PublishInput
	err error
}

func (f *fakeSNS) Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("m-1")}, nil
}

func TestSendSMS(t *testing.T) {
	client := &fakeSNS{}
	sender := NewSMSSender(client, nil)

	require.NoError(t, sender.SendSMS(context.Background(), "+15555550100", "Your Verification Code is: 123456"))
	assert.Equal(t, "+15555550100", aws.ToString(client.in.PhoneNumber))
	assert.Equal(t, "Your Verification Code is: 123456", aws.ToString(client.in.Message))
	assert.Equal(t, "Transactional", aws.ToString(client.in.MessageAttributes["AWS.SNS.SMS.SMSType"].StringValue))
}

func TestSendSMS_Error(t *testing.T) {
	sender := NewSMSSender(&fakeSNS{err: errors.New("throttled")}, nil)

	err := sender.SendSMS(context.Background(), "+15555550100", "hi")
	assert.True(t, appErrors.IsUnavailable(err))
}
