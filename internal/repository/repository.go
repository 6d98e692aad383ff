// Package repository defines the persistence contracts for profiles.
package repository

import (
	"context"
	"time"

	"github.com/bhajian/gigbusters-profile/internal/domain"
)

// Every mutating method takes the caller's user id and must reject the write with
// ErrConditionFailed when the stored owner differs or the profile does not exist.

// ProfileRepository stores the profile record itself.
type ProfileRepository interface {
	// CreateProfile writes the profile, its social links and categories in one transaction.
	CreateProfile(ctx context.Context, profile *domain.Profile) error
	// GetProfile loads the full aggregate. It returns nil, nil when the profile does not exist.
	GetProfile(ctx context.Context, accountID string) (*domain.Profile, error)
	// ListProfilesByOwner returns the caller's profiles without photos or social links.
	ListProfilesByOwner(ctx context.Context, userID string) ([]*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) error
	// DeleteProfile removes the profile and all its sub-records, returning the photos that were removed.
	DeleteProfile(ctx context.Context, userID, accountID string) ([]domain.PhotoEntry, error)
	SetActive(ctx context.Context, userID, accountID string, active bool) error
	SetLocation(ctx context.Context, userID, accountID string, location domain.LocationEntry) error
	SetSettings(ctx context.Context, userID, accountID string, settings domain.SettingEntry) error
}

// PhotoRepository stores photos as one record each under the profile.
type PhotoRepository interface {
	// AddPhoto stores the photo and, when main is true, makes it the profile's main photo.
	AddPhoto(ctx context.Context, userID, accountID string, photo domain.PhotoEntry, main bool) error
	SetMainPhoto(ctx context.Context, userID, accountID, photoID string) error
	// DeletePhoto removes the photo record and clears the main flag if it pointed at it.
	DeletePhoto(ctx context.Context, userID, accountID, photoID string) (*domain.PhotoEntry, error)
}

// SocialRepository stores social links keyed by (snName, socialUserId).
type SocialRepository interface {
	// PutSocial inserts or replaces the link with the same key.
	PutSocial(ctx context.Context, userID, accountID string, social domain.SocialEntry) error
	DeleteSocial(ctx context.Context, userID, accountID, snName, socialUserID string) error
}

// CategoryRepository mutates the interest category set atomically.
type CategoryRepository interface {
	AddCategories(ctx context.Context, userID, accountID string, categories []string) error
	RemoveCategories(ctx context.Context, userID, accountID string, categories []string) error
}

// VerificationRepository holds one-time codes for phone and email confirmation.
type VerificationRepository interface {
	// SetVerificationCode stores code, clears the verified flag and records the expiry.
	SetVerificationCode(ctx context.Context, userID, accountID string, kind domain.VerificationKind, code string, expiresAt time.Time) error
	// ConfirmVerification marks the channel verified if code matches and has not expired at now.
	ConfirmVerification(ctx context.Context, userID, accountID string, kind domain.VerificationKind, code string, now time.Time) error
}

// DiscoveryRepository pages through other users' active profiles.
type DiscoveryRepository interface {
	Discover(ctx context.Context, excludeUserID string, page Pagination) ([]domain.ProfileSummary, string, error)
}

// EnrichmentRepository writes the identifiers produced by the change stream.
type EnrichmentRepository interface {
	// ApplyEnrichment sets accountCode and reviewableId once. It returns ErrConditionFailed
	// when the profile is gone or was already enriched.
	ApplyEnrichment(ctx context.Context, accountID, accountCode, reviewableID string) error
}

// Repository is everything the profile service needs from storage.
type Repository interface {
	ProfileRepository
	PhotoRepository
	SocialRepository
	CategoryRepository
	VerificationRepository
	DiscoveryRepository
	EnrichmentRepository
}

// ProfileUpdate carries the editable fields of a profile. ClearPhoneCode and
// ClearEmailCode drop pending codes when the contact value changed.
type ProfileUpdate struct {
	AccountID      string
	AccountType    string
	Subscription   string
	Name           string
	Bio            string
	Phone          *domain.PhoneEntry
	Email          *domain.EmailEntry
	Address        *domain.AddressEntry
	Location       *domain.LocationEntry
	Settings       *domain.SettingEntry
	ClearPhoneCode bool
	ClearEmailCode bool
	UpdatedAt      time.Time
}
