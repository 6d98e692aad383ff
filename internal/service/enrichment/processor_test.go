package enrichment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	"github.com/bhajian/gigbusters-profile/internal/infrastructure/resilience"
	"github.com/bhajian/gigbusters-profile/internal/repository"
	"github.com/bhajian/gigbusters-profile/internal/repository/mocks"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstreams struct {
	shortcode  *httptest.Server
	review     *httptest.Server
	reviewHits int32
	failReview atomic.Bool
	lastReview map[string]interface{}
}

func newUpstreams(t *testing.T) *upstreams {
	t.Helper()
	u := &upstreams{}
	u.shortcode = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "profile", body["type"])
		json.NewEncoder(w).Encode(map[string]string{"shortcode": "SC-" + body["uri"]})
	}))
	u.review = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&u.reviewHits, 1)
		if u.failReview.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		u.lastReview = body
		json.NewEncoder(w).Encode(map[string]string{"id": "rev-1"})
	}))
	t.Cleanup(func() {
		u.shortcode.Close()
		u.review.Close()
	})
	return u
}

type countSink struct {
	counts map[string]int
}

func (c *countSink) PutCounts(ctx context.Context, counts map[string]int) {
	c.counts = counts
}

type recordingEvents struct {
	events []domain.Event
}

func (r *recordingEvents) Publish(ctx context.Context, evs ...domain.Event) error {
	r.events = append(r.events, evs...)
	return nil
}

type fixture struct {
	proc   *Processor
	repo   *mocks.MockRepository
	store  *mocks.IdempotencyStore
	ups    *upstreams
	sink   *countSink
	events *recordingEvents
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:   mocks.NewMockRepository(),
		store:  mocks.NewIdempotencyStore(),
		ups:    newUpstreams(t),
		sink:   &countSink{},
		events: &recordingEvents{},
	}
	client := resilience.NewHTTPClient(time.Second)
	sc := NewShortcodeClient(f.ups.shortcode.URL, client, resilience.NewBreaker(resilience.DefaultBreakerConfig("shortcode"), nil), nil)
	rv := NewReviewClient(f.ups.review.URL, client, resilience.NewBreaker(resilience.DefaultBreakerConfig("review"), nil), nil)
	f.proc = NewProcessor(f.repo, f.store, sc, rv, f.events, f.sink, nil)
	return f
}

func (f *fixture) seed(t *testing.T, accountID, userID string) {
	t.Helper()
	require.NoError(t, f.repo.CreateProfile(context.Background(), &domain.Profile{
		AccountID: accountID,
		UserID:    userID,
		Active:    true,
		Name:      "Ada",
	}))
}

func insertRecord(seq, accountID, userID string) events.DynamoDBEventRecord {
	return events.DynamoDBEventRecord{
		EventID:   "ev-" + seq,
		EventName: "INSERT",
		Change: events.DynamoDBStreamRecord{
			SequenceNumber: seq,
			NewImage: map[string]events.DynamoDBAttributeValue{
				"PK":         events.NewStringAttribute("ACCOUNT#" + accountID),
				"SK":         events.NewStringAttribute("PROFILE"),
				"EntityType": events.NewStringAttribute("PROFILE"),
				"AccountID":  events.NewStringAttribute(accountID),
				"UserID":     events.NewStringAttribute(userID),
				"Active":     events.NewBooleanAttribute(true),
			},
		},
	}
}

func TestHandle_EnrichesInsertedProfile(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "acc-1", "user-1")

	resp, err := f.proc.Handle(context.Background(), events.DynamoDBEvent{
		Records: []events.DynamoDBEventRecord{insertRecord("1", "acc-1", "user-1")},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.BatchItemFailures)

	p, err := f.repo.GetProfile(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "SC-profile/user-1", p.AccountCode)
	assert.Equal(t, "rev-1", p.ReviewableID)

	assert.Equal(t, "SC-profile/user-1", f.ups.lastReview["uri"])
	assert.Equal(t, "gigbusters", f.ups.lastReview["type"])
	assert.Equal(t, "active", f.ups.lastReview["reviewableStatus"])
	assert.Equal(t, 0.0, f.ups.lastReview["cumulativeRating"])
	assert.Equal(t, 0.0, f.ups.lastReview["numberOfReviews"])
	assert.Equal(t, "user-1", f.ups.lastReview["userId"])

	assert.Equal(t, "COMPLETED", f.store.Status(repository.IdempotencyKey{Operation: "enrich", ID: "acc-1"}))
	assert.Equal(t, 1, f.sink.counts[OutcomeEnriched])
	require.Len(t, f.events.events, 1)
	assert.Equal(t, domain.EventProfileEnriched, f.events.events[0].Type)
}

func TestHandle_DuplicateDeliveryCallsOnce(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "acc-1", "user-1")
	rec := insertRecord("1", "acc-1", "user-1")

	_, err := f.proc.Handle(context.Background(), events.DynamoDBEvent{Records: []events.DynamoDBEventRecord{rec, rec}})
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&f.ups.reviewHits))
	assert.Equal(t, 1, f.sink.counts[OutcomeDuplicate])
}

func TestHandle_LiveClaimIsRetried(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "acc-1", "user-1")
	key := repository.IdempotencyKey{Operation: "enrich", ID: "acc-1"}
	state, err := f.store.Claim(context.Background(), key)
	require.NoError(t, err)
	require.Equal(t, repository.ClaimAcquired, state)

	resp, err := f.proc.Handle(context.Background(), events.DynamoDBEvent{
		Records: []events.DynamoDBEventRecord{insertRecord("5", "acc-1", "user-1")},
	})
	require.NoError(t, err)
	require.Len(t, resp.BatchItemFailures, 1)
	assert.Equal(t, "5", resp.BatchItemFailures[0].ItemIdentifier)
	assert.Equal(t, 1, f.sink.counts[OutcomeFailed])
	assert.Zero(t, f.sink.counts[OutcomeDuplicate])
	assert.Zero(t, atomic.LoadInt32(&f.ups.reviewHits))
	assert.Equal(t, "IN_PROGRESS", f.store.Status(key), "the other holder keeps its claim")
}

func TestHandle_ExpiredClaimIsTakenOver(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "acc-1", "user-1")
	key := repository.IdempotencyKey{Operation: "enrich", ID: "acc-1"}
	_, err := f.store.Claim(context.Background(), key)
	require.NoError(t, err)
	f.store.Expire(key)

	resp, err := f.proc.Handle(context.Background(), events.DynamoDBEvent{
		Records: []events.DynamoDBEventRecord{insertRecord("5", "acc-1", "user-1")},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.BatchItemFailures)

	p, err := f.repo.GetProfile(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "rev-1", p.ReviewableID)
	assert.Equal(t, "SC-profile/user-1", p.AccountCode)
	assert.Equal(t, "COMPLETED", f.store.Status(key))
}

func TestHandle_SkipsNonInsertAndOtherEntities(t *testing.T) {
	f := newFixture(t)

	modify := insertRecord("1", "acc-1", "user-1")
	modify.EventName = "MODIFY"
	photo := insertRecord("2", "acc-1", "user-1")
	photo.Change.NewImage["EntityType"] = events.NewStringAttribute("PHOTO")
	enriched := insertRecord("3", "acc-2", "user-2")
	enriched.Change.NewImage["ReviewableID"] = events.NewStringAttribute("rev-0")

	resp, err := f.proc.Handle(context.Background(), events.DynamoDBEvent{
		Records: []events.DynamoDBEventRecord{modify, photo, enriched},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.BatchItemFailures)
	assert.Equal(t, 3, f.sink.counts[OutcomeSkipped])
	assert.Zero(t, atomic.LoadInt32(&f.ups.reviewHits))
}

func TestHandle_FailureIsReportedAndRetryable(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "acc-1", "user-1")
	f.seed(t, "acc-2", "user-2")
	f.ups.failReview.Store(true)

	resp, err := f.proc.Handle(context.Background(), events.DynamoDBEvent{
		Records: []events.DynamoDBEventRecord{insertRecord("10", "acc-1", "user-1")},
	})
	require.NoError(t, err)
	require.Len(t, resp.BatchItemFailures, 1)
	assert.Equal(t, "10", resp.BatchItemFailures[0].ItemIdentifier)
	assert.Empty(t, f.store.Status(repository.IdempotencyKey{Operation: "enrich", ID: "acc-1"}), "claim released for retry")

	f.ups.failReview.Store(false)
	resp, err = f.proc.Handle(context.Background(), events.DynamoDBEvent{
		Records: []events.DynamoDBEventRecord{insertRecord("10", "acc-1", "user-1")},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.BatchItemFailures)
	p, _ := f.repo.GetProfile(context.Background(), "acc-1")
	assert.Equal(t, "rev-1", p.ReviewableID)
}

func TestHandle_DeletedProfileIsNotRetried(t *testing.T) {
	f := newFixture(t)

	resp, err := f.proc.Handle(context.Background(), events.DynamoDBEvent{
		Records: []events.DynamoDBEventRecord{insertRecord("1", "gone", "user-1")},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.BatchItemFailures)
}

func TestHandle_IdempotencyStoreError(t *testing.T) {
	f := newFixture(t)
	f.proc.store = failingStore{}

	resp, err := f.proc.Handle(context.Background(), events.DynamoDBEvent{
		Records: []events.DynamoDBEventRecord{insertRecord("7", "acc-1", "user-1")},
	})
	require.NoError(t, err)
	require.Len(t, resp.BatchItemFailures, 1)
	assert.Equal(t, 1, f.sink.counts[OutcomeFailed])
}

type failingStore struct{}

func (failingStore) Claim(context.Context, repository.IdempotencyKey) (repository.ClaimState, error) {
	return repository.ClaimInProgress, errors.New("table unavailable")
}

func (failingStore) Complete(context.Context, repository.IdempotencyKey, interface{}) error {
	return nil
}

func (failingStore) Release(context.Context, repository.IdempotencyKey) error {
	return nil
}

func TestShortcodeClient_MissingURL(t *testing.T) {
	c := NewShortcodeClient("", http.DefaultClient, resilience.NewBreaker(resilience.DefaultBreakerConfig("shortcode"), nil), nil)
	_, err := c.Shortcode(context.Background(), "user-1")
	assert.Error(t, err)
}
