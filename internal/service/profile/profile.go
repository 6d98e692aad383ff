package profile

import (
	"context"
	"sort"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	"github.com/bhajian/gigbusters-profile/internal/repository"
	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *service) List(ctx context.Context, userID string) (profiles []*domain.Profile, err error) {
	ctx, done := s.start(ctx, "ListProfiles", userID, "")
	defer func() { done(err) }()

	profiles, err = s.repo.ListProfilesByOwner(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to list profiles")
	}
	if profiles == nil {
		profiles = []*domain.Profile{}
	}
	return profiles, nil
}

func (s *service) Get(ctx context.Context, userID, accountID string) (p *domain.Profile, err error) {
	ctx, done := s.start(ctx, "GetProfile", userID, accountID)
	defer func() { done(err) }()

	p, err = s.ownedProfile(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return &domain.Profile{}, nil
	}
	return p, nil
}

// Create stores a new profile owned by userID. The owner and active flag are never taken
// from the input.
func (s *service) Create(ctx context.Context, userID string, in domain.ProfileInput) (p *domain.Profile, err error) {
	ctx, done := s.start(ctx, "CreateProfile", userID, "")
	defer func() { done(err) }()

	if userID == "" {
		return nil, appErrors.NewValidation("userId is required")
	}
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	p = &domain.Profile{
		AccountID:            uuid.New().String(),
		UserID:               userID,
		Active:               true,
		AccountType:          in.AccountType,
		Subscription:         in.Subscription,
		Name:                 in.Name,
		Bio:                  in.Bio,
		Address:              in.Address,
		Location:             in.Location,
		Settings:             in.Settings,
		Photos:               []domain.PhotoEntry{},
		SocialAccounts:       dedupeSocial(in.SocialAccounts),
		InterestedCategories: normalizeCategories(in.InterestedCategories),
		CreatedDateTime:      s.now(),
	}
	if in.Phone != nil {
		p.Phone = &domain.PhoneEntry{Phone: in.Phone.Phone}
	}
	if in.Email != nil {
		p.Email = &domain.EmailEntry{Email: in.Email.Email}
	}

	if err := s.repo.CreateProfile(ctx, p); err != nil {
		if repository.IsConditionFailed(err) {
			return nil, appErrors.NewConflict("profile already exists")
		}
		return nil, appErrors.Wrap(err, "failed to create profile")
	}

	s.logger.Info("profile created", zap.String("accountID", p.AccountID), zap.String("userID", userID))
	s.publish(ctx, domain.NewEvent(domain.EventProfileCreated, p.AccountID, userID, map[string]interface{}{
		"accountType": p.AccountType,
	}))
	return p, nil
}

// Edit replaces the identity and contact fields. A changed phone or email loses its
// verified flag and any pending code; the client's verified value is ignored.
func (s *service) Edit(ctx context.Context, userID string, in domain.EditProfileInput) (p *domain.Profile, err error) {
	ctx, done := s.start(ctx, "EditProfile", userID, in.AccountID)
	defer func() { done(err) }()

	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}
	current, err := s.ownedProfile(ctx, userID, in.AccountID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, appErrors.NewNotFound(MsgNotFoundOrNotOwner)
	}

	update := repository.ProfileUpdate{
		AccountID:    in.AccountID,
		AccountType:  in.AccountType,
		Subscription: in.Subscription,
		Name:         in.Name,
		Bio:          in.Bio,
		Address:      in.Address,
		Location:     in.Location,
		Settings:     in.Settings,
		UpdatedAt:    s.now(),
	}
	if in.Phone != nil {
		unchanged := current.Phone != nil && current.Phone.Phone == in.Phone.Phone
		update.Phone = &domain.PhoneEntry{Phone: in.Phone.Phone, Verified: unchanged && current.Phone.Verified}
		update.ClearPhoneCode = !unchanged
	}
	if in.Email != nil {
		unchanged := current.Email != nil && current.Email.Email == in.Email.Email
		update.Email = &domain.EmailEntry{Email: in.Email.Email, Verified: unchanged && current.Email.Verified}
		update.ClearEmailCode = !unchanged
	}

	if err := s.repo.UpdateProfile(ctx, userID, update); err != nil {
		return nil, mutationError(err, "failed to edit profile")
	}

	p = current
	p.AccountType, p.Subscription, p.Name, p.Bio = update.AccountType, update.Subscription, update.Name, update.Bio
	if update.Phone != nil {
		p.Phone = update.Phone
	}
	p.Email = update.Email
	if update.Address != nil {
		p.Address = update.Address
	}
	if update.Location != nil {
		p.Location = update.Location
	}
	if update.Settings != nil {
		p.Settings = update.Settings
	}
	return p, nil
}

// Delete removes the profile with all sub-records, then the photo objects.
func (s *service) Delete(ctx context.Context, userID, accountID string) (err error) {
	ctx, done := s.start(ctx, "DeleteProfile", userID, accountID)
	defer func() { done(err) }()

	photos, err := s.repo.DeleteProfile(ctx, userID, accountID)
	if err != nil {
		return mutationError(err, "failed to delete profile")
	}
	for _, ph := range photos {
		s.deleteObject(ctx, ph)
	}

	s.logger.Info("profile deleted", zap.String("accountID", accountID), zap.Int("photos", len(photos)))
	s.publish(ctx, domain.NewEvent(domain.EventProfileDeleted, accountID, userID, map[string]interface{}{
		"photos": len(photos),
	}))
	return nil
}

func (s *service) Deactivate(ctx context.Context, userID, accountID string) (err error) {
	ctx, done := s.start(ctx, "DeactivateProfile", userID, accountID)
	defer func() { done(err) }()

	return mutationError(s.repo.SetActive(ctx, userID, accountID, false), "failed to deactivate profile")
}

// Discover pages through active profiles of other users.
func (s *service) Discover(ctx context.Context, userID string, page repository.Pagination) (out *domain.DiscoverPage, err error) {
	ctx, done := s.start(ctx, "Discover", userID, "")
	defer func() { done(err) }()

	if err := page.Validate(); err != nil {
		return nil, appErrors.NewValidation(err.Error())
	}
	items, next, err := s.repo.Discover(ctx, userID, page)
	if err != nil {
		if repository.IsInvalidQuery(err) {
			return nil, appErrors.NewValidation(err.Error())
		}
		return nil, appErrors.Wrap(err, "failed to discover profiles")
	}
	if items == nil {
		items = []domain.ProfileSummary{}
	}
	return &domain.DiscoverPage{Items: items, NextCursor: next, HasMore: next != ""}, nil
}

// dedupeSocial keeps the last entry for each (snName, socialUserId).
func dedupeSocial(in []domain.SocialEntry) []domain.SocialEntry {
	out := make([]domain.SocialEntry, 0, len(in))
	index := make(map[string]int, len(in))
	for _, sa := range in {
		if i, ok := index[sa.Key()]; ok {
			out[i] = sa
			continue
		}
		index[sa.Key()] = len(out)
		out = append(out, sa)
	}
	return out
}

func normalizeCategories(in []string) []string {
	set := make(map[string]struct{}, len(in))
	for _, c := range in {
		if c = domain.NormalizeCategory(c); c != "" {
			set[c] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
