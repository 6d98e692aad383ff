// Package enrichment reacts to newly inserted profiles on the table stream: it obtains an
// account code and a reviewable id from sibling services and writes them back.
package enrichment

import (
	"context"
	"fmt"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	"github.com/bhajian/gigbusters-profile/internal/repository"
	"github.com/bhajian/gigbusters-profile/internal/repository/ddb"

	"github.com/aws/aws-lambda-go/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const operation = "enrich"

// Outcomes counted per record.
const (
	OutcomeEnriched  = "Enriched"
	OutcomeSkipped   = "Skipped"
	OutcomeDuplicate = "Duplicate"
	OutcomeFailed    = "Failed"
)

type Shortcoder interface {
	Shortcode(ctx context.Context, userID string) (string, error)
}

type Reviewer interface {
	CreateReviewable(ctx context.Context, accountCode, userID string) (string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}

// BatchMetrics receives the per-batch totals.
type BatchMetrics interface {
	PutCounts(ctx context.Context, counts map[string]int)
}

// Processor handles DynamoDB stream batches.
type Processor struct {
	repo       repository.EnrichmentRepository
	store      repository.IdempotencyStore
	shortcodes Shortcoder
	reviews    Reviewer
	events     EventPublisher
	batches    BatchMetrics
	logger     *zap.Logger
}

func NewProcessor(repo repository.EnrichmentRepository, store repository.IdempotencyStore, shortcodes Shortcoder, reviews Reviewer,
	events EventPublisher, batches BatchMetrics, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		repo:       repo,
		store:      store,
		shortcodes: shortcodes,
		reviews:    reviews,
		events:     events,
		batches:    batches,
		logger:     logger,
	}
}

// Handle processes every record and reports the failed ones so only they are retried.
func (p *Processor) Handle(ctx context.Context, ev events.DynamoDBEvent) (events.DynamoDBEventResponse, error) {
	ctx, span := otel.Tracer("profile-stream").Start(ctx, "Processor.Handle")
	defer span.End()
	span.SetAttributes(attribute.Int("stream.records", len(ev.Records)))

	var resp events.DynamoDBEventResponse
	counts := map[string]int{}
	for _, rec := range ev.Records {
		outcome, err := p.processRecord(ctx, rec)
		counts[outcome]++
		if err != nil {
			p.logger.Error("stream record failed",
				zap.String("eventID", rec.EventID),
				zap.String("sequence", rec.Change.SequenceNumber),
				zap.Error(err))
			resp.BatchItemFailures = append(resp.BatchItemFailures, events.DynamoDBBatchItemFailure{
				ItemIdentifier: rec.Change.SequenceNumber,
			})
		}
	}

	if n := len(resp.BatchItemFailures); n > 0 {
		span.SetStatus(codes.Error, "partial batch failure")
		span.SetAttributes(attribute.Int("stream.failures", n))
	}
	if p.batches != nil {
		p.batches.PutCounts(ctx, counts)
	}
	p.logger.Info("stream batch processed",
		zap.Int("records", len(ev.Records)),
		zap.Int("enriched", counts[OutcomeEnriched]),
		zap.Int("failed", counts[OutcomeFailed]))
	return resp, nil
}

func (p *Processor) processRecord(ctx context.Context, rec events.DynamoDBEventRecord) (string, error) {
	if rec.EventName != string(events.DynamoDBOperationTypeInsert) {
		return OutcomeSkipped, nil
	}
	profile, ok, err := ddb.ProfileFromStreamImage(rec.Change.NewImage)
	if err != nil {
		return OutcomeFailed, err
	}
	if !ok || profile.ReviewableID != "" {
		return OutcomeSkipped, nil
	}

	key := repository.IdempotencyKey{Operation: operation, ID: profile.AccountID}
	state, err := p.store.Claim(ctx, key)
	if err != nil {
		return OutcomeFailed, err
	}
	switch state {
	case repository.ClaimCompleted:
		return OutcomeDuplicate, nil
	case repository.ClaimInProgress:
		// The holder may still fail; retry once its lease runs out.
		return OutcomeFailed, fmt.Errorf("enrichment of %s is claimed by another invocation", profile.AccountID)
	}

	accountCode, reviewableID, err := p.enrich(ctx, profile)
	if err != nil {
		if relErr := p.store.Release(ctx, key); relErr != nil {
			p.logger.Warn("idempotency release failed", zap.String("key", key.String()), zap.Error(relErr))
		}
		return OutcomeFailed, err
	}

	if err := p.store.Complete(ctx, key, map[string]string{
		"accountCode":  accountCode,
		"reviewableId": reviewableID,
	}); err != nil {
		p.logger.Warn("idempotency complete failed", zap.String("key", key.String()), zap.Error(err))
	}
	if p.events != nil {
		ev := domain.NewEvent(domain.EventProfileEnriched, profile.AccountID, profile.UserID, map[string]interface{}{
			"accountCode":  accountCode,
			"reviewableId": reviewableID,
		})
		if err := p.events.Publish(ctx, ev); err != nil {
			p.logger.Warn("event publish failed", zap.String("accountID", profile.AccountID), zap.Error(err))
		}
	}
	return OutcomeEnriched, nil
}

// enrich calls both services and writes the result back. A rejected write means the
// profile was deleted or already enriched, which needs no retry.
func (p *Processor) enrich(ctx context.Context, profile *domain.Profile) (string, string, error) {
	accountCode := profile.AccountCode
	if accountCode == "" {
		code, err := p.shortcodes.Shortcode(ctx, profile.UserID)
		if err != nil {
			return "", "", err
		}
		accountCode = code
	}

	reviewableID, err := p.reviews.CreateReviewable(ctx, accountCode, profile.UserID)
	if err != nil {
		return "", "", err
	}

	err = p.repo.ApplyEnrichment(ctx, profile.AccountID, accountCode, reviewableID)
	if repository.IsConditionFailed(err) {
		p.logger.Info("enrichment write skipped", zap.String("accountID", profile.AccountID))
		return accountCode, reviewableID, nil
	}
	return accountCode, reviewableID, err
}
