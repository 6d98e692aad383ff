// Package profile provides the business logic for profile management: ownership rules,
// sub-resource mutation, contact verification and discovery.
package profile

import (
	"context"
	"time"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	"github.com/bhajian/gigbusters-profile/internal/repository"
	"github.com/bhajian/gigbusters-profile/internal/validation"
	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Client-facing messages. Ownership failures and missing records share one text.
const (
	MsgNotFoundOrNotOwner = "The profile was not found for this accountId or the user did not match the profile owner."
	MsgProfileMissing     = "Profile does not exist."
	MsgNotVerified        = "The profile was not verified!"
)

var tracer = otel.Tracer("profile-service")

// Service defines the profile operations exposed over HTTP.
type Service interface {
	List(ctx context.Context, userID string) ([]*domain.Profile, error)
	// Get returns an empty profile when the record is missing or owned by someone else.
	Get(ctx context.Context, userID, accountID string) (*domain.Profile, error)
	Create(ctx context.Context, userID string, in domain.ProfileInput) (*domain.Profile, error)
	Edit(ctx context.Context, userID string, in domain.EditProfileInput) (*domain.Profile, error)
	Delete(ctx context.Context, userID, accountID string) error
	Deactivate(ctx context.Context, userID, accountID string) error

	AddPhoto(ctx context.Context, userID, accountID string, in domain.PhotoInput) (*domain.PhotoUpload, error)
	DeletePhoto(ctx context.Context, userID, accountID, photoID string) error
	SetMainPhoto(ctx context.Context, userID, accountID, photoID string) error
	GetPhoto(ctx context.Context, userID, accountID, photoID string) (domain.PhotoEntry, error)
	ListPhotos(ctx context.Context, userID, accountID string) ([]domain.PhotoEntry, error)

	SetLocation(ctx context.Context, userID, accountID string, in domain.LocationEntry) error
	GetLocation(ctx context.Context, userID, accountID string) (domain.LocationEntry, error)
	SetSetting(ctx context.Context, userID, accountID string, in domain.SettingEntry) error
	GetSetting(ctx context.Context, userID, accountID string) (domain.SettingEntry, error)

	AddSocial(ctx context.Context, userID, accountID string, in domain.SocialEntry) error
	DeleteSocial(ctx context.Context, userID, accountID, snName, socialUserID string) error
	ListSocial(ctx context.Context, userID, accountID string) ([]domain.SocialEntry, error)

	AddCategory(ctx context.Context, userID, accountID, category string) error
	DeleteCategory(ctx context.Context, userID, accountID, category string) error
	ListCategory(ctx context.Context, userID, accountID string) ([]string, error)

	RequestValidation(ctx context.Context, userID, accountID string, kind domain.VerificationKind) error
	Validate(ctx context.Context, userID, accountID string, kind domain.VerificationKind, code string) error

	Discover(ctx context.Context, userID string, page repository.Pagination) (*domain.DiscoverPage, error)
}

// PhotoStorage holds photo objects; uploads go straight from the client via a presigned URL.
type PhotoStorage interface {
	Bucket() string
	PresignUpload(ctx context.Context, key, contentType string) (string, time.Duration, error)
	Delete(ctx context.Context, key string) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, phone, message string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}

// Metrics is the slice of the Prometheus collector the service reports to.
type Metrics interface {
	RecordOperation(operation string, err error)
	RecordCodeIssued(channel string)
}

// Config tunes verification codes.
type Config struct {
	CodeTTL    time.Duration
	CodeDigits int
}

type service struct {
	repo      repository.Repository
	storage   PhotoStorage
	sms       SMSSender
	events    EventPublisher
	metrics   Metrics
	validator *validation.Validator
	logger    *zap.Logger
	cfg       Config

	now     func() time.Time
	newCode func(digits int) (string, error)
}

// NewService creates a profile service. metrics and logger may be nil.
func NewService(repo repository.Repository, storage PhotoStorage, sms SMSSender, events EventPublisher, metrics Metrics, cfg Config, logger *zap.Logger) Service {
	if cfg.CodeTTL <= 0 {
		cfg.CodeTTL = 15 * time.Minute
	}
	if cfg.CodeDigits <= 0 {
		cfg.CodeDigits = 6
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &service{
		repo:      repo,
		storage:   storage,
		sms:       sms,
		events:    events,
		metrics:   metrics,
		validator: validation.GetValidator(),
		logger:    logger,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
		newCode:   generateCode,
	}
}

type nopMetrics struct{}

func (nopMetrics) RecordOperation(string, error) {}
func (nopMetrics) RecordCodeIssued(string)       {}

// start opens a span for op; the returned func ends it and records the outcome.
func (s *service) start(ctx context.Context, op, userID, accountID string) (context.Context, func(error)) {
	ctx, span := tracer.Start(ctx, "ProfileService."+op, trace.WithAttributes(
		attribute.String("user.id", userID),
		attribute.String("profile.account_id", accountID),
	))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		s.metrics.RecordOperation(op, err)
	}
}

// ownedProfile loads the aggregate and hides it unless userID owns it.
func (s *service) ownedProfile(ctx context.Context, userID, accountID string) (*domain.Profile, error) {
	if accountID == "" {
		return nil, appErrors.NewValidation("accountId is required")
	}
	p, err := s.repo.GetProfile(ctx, accountID)
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to load profile")
	}
	if p.IsZero() || !p.OwnedBy(userID) {
		return nil, nil
	}
	return p, nil
}

// mutationError maps a rejected conditional write to the static not-found text.
func mutationError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if repository.IsConditionFailed(err) {
		return appErrors.NewNotFound(MsgNotFoundOrNotOwner)
	}
	return appErrors.Wrap(err, msg)
}

// publish sends events best-effort; delivery failures never fail the request.
func (s *service) publish(ctx context.Context, events ...domain.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, events...); err != nil {
		s.logger.Warn("event publish failed", zap.Int("count", len(events)), zap.Error(err))
	}
}
