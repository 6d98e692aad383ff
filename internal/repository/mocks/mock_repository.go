// Package mocks provides in-memory implementations of the repository interfaces for tests.
package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	"github.com/bhajian/gigbusters-profile/internal/repository"
)

type storedCode struct {
	code      string
	expiresAt time.Time
}

type storedProfile struct {
	profile     domain.Profile
	photos      map[string]domain.PhotoEntry
	socials     map[string]domain.SocialEntry
	categories  map[string]struct{}
	mainPhotoID string
	codes       map[domain.VerificationKind]storedCode
}

// MockRepository is an in-memory repository.Repository honouring the same ownership
// conditions as the DynamoDB implementation.
type MockRepository struct {
	mu           sync.RWMutex
	profiles     map[string]*storedProfile
	shouldFailOn map[string]error
}

var _ repository.Repository = (*MockRepository)(nil)

// NewMockRepository creates a new mock repository instance.
func NewMockRepository() *MockRepository {
	return &MockRepository{
		profiles:     make(map[string]*storedProfile),
		shouldFailOn: make(map[string]error),
	}
}

// SetError configures the mock to return an error for a specific method.
func (m *MockRepository) SetError(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFailOn[method] = err
}

// ClearErrors removes all configured errors.
func (m *MockRepository) ClearErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFailOn = make(map[string]error)
}

func (m *MockRepository) checkError(method string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.shouldFailOn[method]
}

// owned returns the stored profile when userID owns it. Callers hold the lock.
func (m *MockRepository) owned(userID, accountID string) (*storedProfile, error) {
	sp, ok := m.profiles[accountID]
	if !ok || sp.profile.UserID != userID {
		return nil, repository.ErrConditionFailed
	}
	return sp, nil
}

// VerificationCode exposes the pending code for a channel, for assertions.
func (m *MockRepository) VerificationCode(accountID string, kind domain.VerificationKind) (string, time.Time, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sp, ok := m.profiles[accountID]
	if !ok {
		return "", time.Time{}, false
	}
	c, ok := sp.codes[kind]
	return c.code, c.expiresAt, ok
}

func (m *MockRepository) CreateProfile(ctx context.Context, p *domain.Profile) error {
	if err := m.checkError("CreateProfile"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.profiles[p.AccountID]; exists {
		return repository.ErrConditionFailed
	}
	sp := &storedProfile{
		profile:    *p,
		photos:     make(map[string]domain.PhotoEntry),
		socials:    make(map[string]domain.SocialEntry),
		categories: make(map[string]struct{}),
		codes:      make(map[domain.VerificationKind]storedCode),
	}
	for _, s := range p.SocialAccounts {
		sp.socials[s.Key()] = s
	}
	for _, c := range p.InterestedCategories {
		sp.categories[c] = struct{}{}
	}
	if p.Phone != nil {
		phone := *p.Phone
		sp.profile.Phone = &phone
	}
	if p.Email != nil {
		email := *p.Email
		sp.profile.Email = &email
	}
	m.profiles[p.AccountID] = sp
	return nil
}

func (m *MockRepository) GetProfile(ctx context.Context, accountID string) (*domain.Profile, error) {
	if err := m.checkError("GetProfile"); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	sp, ok := m.profiles[accountID]
	if !ok {
		return nil, nil
	}
	return sp.snapshot(true), nil
}

func (m *MockRepository) ListProfilesByOwner(ctx context.Context, userID string) ([]*domain.Profile, error) {
	if err := m.checkError("ListProfilesByOwner"); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Profile, 0)
	for _, sp := range m.profiles {
		if sp.profile.UserID == userID {
			out = append(out, sp.snapshot(false))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out, nil
}

func (m *MockRepository) UpdateProfile(ctx context.Context, userID string, u repository.ProfileUpdate) error {
	if err := m.checkError("UpdateProfile"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	sp, err := m.owned(userID, u.AccountID)
	if err != nil {
		return err
	}
	p := &sp.profile
	p.AccountType, p.Subscription, p.Name, p.Bio = u.AccountType, u.Subscription, u.Name, u.Bio
	if u.Phone != nil {
		phone := *u.Phone
		p.Phone = &phone
	}
	if u.Email != nil {
		email := *u.Email
		p.Email = &email
	}
	if u.Address != nil {
		p.Address = u.Address
	}
	if u.Location != nil {
		p.Location = u.Location
	}
	if u.Settings != nil {
		p.Settings = u.Settings
	}
	if u.ClearPhoneCode {
		delete(sp.codes, domain.VerifyPhone)
	}
	if u.ClearEmailCode {
		delete(sp.codes, domain.VerifyEmail)
	}
	return nil
}

func (m *MockRepository) DeleteProfile(ctx context.Context, userID, accountID string) ([]domain.PhotoEntry, error) {
	if err := m.checkError("DeleteProfile"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	sp, err := m.owned(userID, accountID)
	if err != nil {
		return nil, err
	}
	photos := sp.snapshot(true).Photos
	delete(m.profiles, accountID)
	return photos, nil
}

func (m *MockRepository) SetActive(ctx context.Context, userID, accountID string, active bool) error {
	return m.mutate("SetActive", userID, accountID, func(sp *storedProfile) error {
		sp.profile.Active = active
		return nil
	})
}

func (m *MockRepository) SetLocation(ctx context.Context, userID, accountID string, location domain.LocationEntry) error {
	return m.mutate("SetLocation", userID, accountID, func(sp *storedProfile) error {
		sp.profile.Location = &location
		return nil
	})
}

func (m *MockRepository) SetSettings(ctx context.Context, userID, accountID string, settings domain.SettingEntry) error {
	return m.mutate("SetSettings", userID, accountID, func(sp *storedProfile) error {
		sp.profile.Settings = &settings
		return nil
	})
}

func (m *MockRepository) AddPhoto(ctx context.Context, userID, accountID string, photo domain.PhotoEntry, main bool) error {
	return m.mutate("AddPhoto", userID, accountID, func(sp *storedProfile) error {
		if _, exists := sp.photos[photo.PhotoID]; exists {
			return repository.ErrConditionFailed
		}
		photo.Main = false
		sp.photos[photo.PhotoID] = photo
		if main {
			sp.mainPhotoID = photo.PhotoID
		}
		return nil
	})
}

func (m *MockRepository) SetMainPhoto(ctx context.Context, userID, accountID, photoID string) error {
	return m.mutate("SetMainPhoto", userID, accountID, func(sp *storedProfile) error {
		if _, ok := sp.photos[photoID]; !ok {
			return repository.ErrConditionFailed
		}
		sp.mainPhotoID = photoID
		return nil
	})
}

func (m *MockRepository) DeletePhoto(ctx context.Context, userID, accountID, photoID string) (*domain.PhotoEntry, error) {
	var removed *domain.PhotoEntry
	err := m.mutate("DeletePhoto", userID, accountID, func(sp *storedProfile) error {
		photo, ok := sp.photos[photoID]
		if !ok {
			return repository.ErrConditionFailed
		}
		photo.Main = sp.mainPhotoID == photoID
		if photo.Main {
			sp.mainPhotoID = ""
		}
		delete(sp.photos, photoID)
		removed = &photo
		return nil
	})
	return removed, err
}

func (m *MockRepository) PutSocial(ctx context.Context, userID, accountID string, social domain.SocialEntry) error {
	return m.mutate("PutSocial", userID, accountID, func(sp *storedProfile) error {
		sp.socials[social.Key()] = social
		return nil
	})
}

func (m *MockRepository) DeleteSocial(ctx context.Context, userID, accountID, snName, socialUserID string) error {
	return m.mutate("DeleteSocial", userID, accountID, func(sp *storedProfile) error {
		key := domain.SocialEntry{SnName: snName, SocialUserID: socialUserID}.Key()
		if _, ok := sp.socials[key]; !ok {
			return repository.ErrConditionFailed
		}
		delete(sp.socials, key)
		return nil
	})
}

func (m *MockRepository) AddCategories(ctx context.Context, userID, accountID string, categories []string) error {
	return m.mutate("AddCategories", userID, accountID, func(sp *storedProfile) error {
		for _, c := range categories {
			sp.categories[c] = struct{}{}
		}
		return nil
	})
}

func (m *MockRepository) RemoveCategories(ctx context.Context, userID, accountID string, categories []string) error {
	return m.mutate("RemoveCategories", userID, accountID, func(sp *storedProfile) error {
		for _, c := range categories {
			delete(sp.categories, c)
		}
		return nil
	})
}

func (m *MockRepository) SetVerificationCode(ctx context.Context, userID, accountID string, kind domain.VerificationKind, code string, expiresAt time.Time) error {
	return m.mutate("SetVerificationCode", userID, accountID, func(sp *storedProfile) error {
		switch {
		case kind == domain.VerifyPhone && sp.profile.Phone != nil:
			sp.profile.Phone.Verified = false
		case kind == domain.VerifyEmail && sp.profile.Email != nil:
			sp.profile.Email.Verified = false
		default:
			return repository.ErrConditionFailed
		}
		sp.codes[kind] = storedCode{code: code, expiresAt: expiresAt}
		return nil
	})
}

func (m *MockRepository) ConfirmVerification(ctx context.Context, userID, accountID string, kind domain.VerificationKind, code string, now time.Time) error {
	return m.mutate("ConfirmVerification", userID, accountID, func(sp *storedProfile) error {
		stored, ok := sp.codes[kind]
		if !ok || stored.code != code || !stored.expiresAt.After(now) {
			return repository.ErrConditionFailed
		}
		if kind == domain.VerifyPhone {
			sp.profile.Phone.Verified = true
		} else {
			sp.profile.Email.Verified = true
		}
		delete(sp.codes, kind)
		return nil
	})
}

func (m *MockRepository) Discover(ctx context.Context, excludeUserID string, page repository.Pagination) ([]domain.ProfileSummary, string, error) {
	if err := m.checkError("Discover"); err != nil {
		return nil, "", err
	}
	if err := page.Validate(); err != nil {
		return nil, "", err
	}
	start, err := repository.DecodeCursor(page.Cursor)
	if err != nil {
		return nil, "", err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.profiles))
	for id, sp := range m.profiles {
		if sp.profile.UserID != excludeUserID && sp.profile.Active {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	limit := page.GetEffectiveLimit()
	items := make([]domain.ProfileSummary, 0, limit)
	for _, id := range ids {
		if start != nil && strings.Compare("ACCOUNT#"+id, start.PK) <= 0 {
			continue
		}
		if len(items) == limit {
			last := items[len(items)-1].AccountID
			return items, repository.EncodeCursor(&repository.CursorKey{PK: "ACCOUNT#" + last, SK: "PROFILE"}), nil
		}
		p := m.profiles[id].profile
		items = append(items, domain.ProfileSummary{
			AccountID:    p.AccountID,
			AccountType:  p.AccountType,
			Name:         p.Name,
			AccountCode:  p.AccountCode,
			Bio:          p.Bio,
			Location:     p.Location,
			ReviewableID: p.ReviewableID,
		})
	}
	return items, "", nil
}

func (m *MockRepository) ApplyEnrichment(ctx context.Context, accountID, accountCode, reviewableID string) error {
	if err := m.checkError("ApplyEnrichment"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	sp, ok := m.profiles[accountID]
	if !ok || sp.profile.ReviewableID != "" {
		return repository.ErrConditionFailed
	}
	sp.profile.AccountCode = accountCode
	sp.profile.ReviewableID = reviewableID
	return nil
}

func (m *MockRepository) mutate(method, userID, accountID string, fn func(*storedProfile) error) error {
	if err := m.checkError(method); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	sp, err := m.owned(userID, accountID)
	if err != nil {
		return err
	}
	return fn(sp)
}

func (sp *storedProfile) snapshot(withChildren bool) *domain.Profile {
	p := sp.profile
	if sp.profile.Phone != nil {
		phone := *sp.profile.Phone
		p.Phone = &phone
	}
	if sp.profile.Email != nil {
		email := *sp.profile.Email
		p.Email = &email
	}
	p.Photos = make([]domain.PhotoEntry, 0)
	p.SocialAccounts = make([]domain.SocialEntry, 0)
	p.InterestedCategories = make([]string, 0, len(sp.categories))
	for c := range sp.categories {
		p.InterestedCategories = append(p.InterestedCategories, c)
	}
	sort.Strings(p.InterestedCategories)

	if !withChildren {
		return &p
	}
	for _, ph := range sp.photos {
		ph.Main = ph.PhotoID == sp.mainPhotoID
		p.Photos = append(p.Photos, ph)
	}
	sort.Slice(p.Photos, func(i, j int) bool { return p.Photos[i].PhotoID < p.Photos[j].PhotoID })
	for _, s := range sp.socials {
		p.SocialAccounts = append(p.SocialAccounts, s)
	}
	sort.Slice(p.SocialAccounts, func(i, j int) bool { return p.SocialAccounts[i].Key() < p.SocialAccounts[j].Key() })
	return &p
}

type claim struct {
	status     string
	leaseUntil time.Time
}

// IdempotencyStore is an in-memory repository.IdempotencyStore with the same lease rules as
// the DynamoDB store.
type IdempotencyStore struct {
	mu      sync.Mutex
	lease   time.Duration
	entries map[string]claim
	results map[string]interface{}
	now     func() time.Time
}

var _ repository.IdempotencyStore = (*IdempotencyStore)(nil)

func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{
		lease:   5 * time.Minute,
		entries: map[string]claim{},
		results: map[string]interface{}{},
		now:     time.Now,
	}
}

func (s *IdempotencyStore) Claim(ctx context.Context, key repository.IdempotencyKey) (repository.ClaimState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if c, ok := s.entries[key.String()]; ok {
		if c.status == "COMPLETED" {
			return repository.ClaimCompleted, nil
		}
		if now.Before(c.leaseUntil) {
			return repository.ClaimInProgress, nil
		}
	}
	s.entries[key.String()] = claim{status: "IN_PROGRESS", leaseUntil: now.Add(s.lease)}
	return repository.ClaimAcquired, nil
}

func (s *IdempotencyStore) Complete(ctx context.Context, key repository.IdempotencyKey, result interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key.String()] = claim{status: "COMPLETED"}
	s.results[key.String()] = result
	return nil
}

func (s *IdempotencyStore) Release(ctx context.Context, key repository.IdempotencyKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries[key.String()].status == "IN_PROGRESS" {
		delete(s.entries, key.String())
	}
	return nil
}

// Expire ends the lease of an in-progress claim, as if its holder had timed out.
func (s *IdempotencyStore) Expire(key repository.IdempotencyKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.entries[key.String()]; ok && c.status == "IN_PROGRESS" {
		c.leaseUntil = time.Time{}
		s.entries[key.String()] = c
	}
}

// Status returns the recorded state for key, or "" if unknown.
func (s *IdempotencyStore) Status(key repository.IdempotencyKey) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[key.String()].status
}
