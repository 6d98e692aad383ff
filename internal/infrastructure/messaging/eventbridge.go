// Package messaging publishes profile domain events to EventBridge.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PutEvents accepts at most 10 entries per call.
const maxBatch = 10

// EventBridgeAPI is the subset of *eventbridge.Client used here.
type EventBridgeAPI interface {
	PutEvents(ctx context.Context, params *eventbridge.PutEventsInput, optFns ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error)
}

// EventBridgePublisher sends domain events to a bus with a fixed source.
type EventBridgePublisher struct {
	client   EventBridgeAPI
	eventBus string
	source   string
	logger   *zap.Logger
}

func NewEventBridgePublisher(client EventBridgeAPI, eventBus, source string, logger *zap.Logger) *EventBridgePublisher {
	if eventBus == "" {
		eventBus = "default"
	}
	if source == "" {
		source = "gigbusters.profile"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventBridgePublisher{client: client, eventBus: eventBus, source: source, logger: logger}
}

// Publish sends events in batches and fails if any entry was rejected.
func (p *EventBridgePublisher) Publish(ctx context.Context, events ...domain.Event) error {
	for start := 0; start < len(events); start += maxBatch {
		end := start + maxBatch
		if end > len(events) {
			end = len(events)
		}
		if err := p.publishBatch(ctx, events[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (p *EventBridgePublisher) publishBatch(ctx context.Context, events []domain.Event) error {
	entries := make([]types.PutEventsRequestEntry, 0, len(events))
	for _, ev := range events {
		entry, err := p.entry(ev)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	out, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{Entries: entries})
	if err != nil {
		return appErrors.NewUnavailable("failed to publish events", err)
	}
	if out.FailedEntryCount > 0 {
		for i, e := range out.Entries {
			if e.ErrorCode != nil {
				p.logger.Error("event rejected",
					zap.String("detail_type", events[i].Type),
					zap.String("code", aws.ToString(e.ErrorCode)),
					zap.String("message", aws.ToString(e.ErrorMessage)))
			}
		}
		return appErrors.NewInternal(fmt.Sprintf("%d events failed to publish", out.FailedEntryCount), nil)
	}
	p.logger.Debug("events published", zap.Int("count", len(entries)), zap.String("bus", p.eventBus))
	return nil
}

func (p *EventBridgePublisher) entry(ev domain.Event) (types.PutEventsRequestEntry, error) {
	detail := make(map[string]interface{}, len(ev.Detail)+4)
	for k, v := range ev.Detail {
		detail[k] = v
	}
	detail["eventId"] = uuid.New().String()
	detail["accountId"] = ev.AccountID
	detail["userId"] = ev.UserID
	detail["occurredAt"] = ev.OccurredAt.Format(time.RFC3339)

	body, err := json.Marshal(detail)
	if err != nil {
		return types.PutEventsRequestEntry{}, appErrors.NewInternal("failed to marshal event detail", err)
	}
	return types.PutEventsRequestEntry{
		Source:       aws.String(p.source),
		DetailType:   aws.String(ev.Type),
		Detail:       aws.String(string(body)),
		EventBusName: aws.String(p.eventBus),
		Time:         aws.Time(ev.OccurredAt),
	}, nil
}
