package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBus struct {
	calls  [][]types.PutEventsRequestEntry
	failed int32
	err    error
}

func (f *fakeBus) PutEvents(ctx context.Context, in *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error) {
	f.calls = append(f.calls, in.Entries)
	if f.err != nil {
		return nil, f.err
	}
	out := &eventbridge.PutEventsOutput{FailedEntryCount: f.failed}
	for range in.Entries {
		out.Entries = append(out.Entries, types.PutEventsResultEntry{})
	}
	if f.failed > 0 {
		out.Entries[0].ErrorCode = aws.String("InternalFailure")
	}
	return out, nil
}

func TestPublish_Batches(t *testing.T) {
	bus := &fakeBus{}
	pub := NewEventBridgePublisher(bus, "profile-bus", "", nil)

	events := make([]domain.Event, 0, 23)
	for i := 0; i < 23; i++ {
		events = append(events, domain.NewEvent(domain.EventProfileCreated, fmt.Sprintf("acc-%d", i), "user-1", nil))
	}
	require.NoError(t, pub.Publish(context.Background(), events...))

	require.Len(t, bus.calls, 3)
	assert.Len(t, bus.calls[0], 10)
	assert.Len(t, bus.calls[2], 3)

	first := bus.calls[0][0]
	assert.Equal(t, "gigbusters.profile", aws.ToString(first.Source))
	assert.Equal(t, "profile-bus", aws.ToString(first.EventBusName))
	assert.Equal(t, domain.EventProfileCreated, aws.ToString(first.DetailType))

	var detail map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(first.Detail)), &detail))
	assert.Equal(t, "acc-0", detail["accountId"])
	assert.Equal(t, "user-1", detail["userId"])
	assert.NotEmpty(t, detail["eventId"])
}

func TestPublish_Failures(t *testing.T) {
	ev := domain.NewEvent(domain.EventProfileDeleted, "acc-1", "user-1", map[string]interface{}{"photos": 2})

	err := NewEventBridgePublisher(&fakeBus{err: errors.New("boom")}, "", "", nil).Publish(context.Background(), ev)
	assert.True(t, appErrors.IsUnavailable(err))

	err = NewEventBridgePublisher(&fakeBus{failed: 1}, "", "", nil).Publish(context.Background(), ev)
	assert.True(t, appErrors.IsInternal(err))
}

func TestPublish_Empty(t *testing.T) {
	bus := &fakeBus{}
	require.NoError(t, NewEventBridgePublisher(bus, "", "", nil).Publish(context.Background()))
	assert.Empty(t, bus.calls)
}
