package profile

import (
	"context"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"
)

func (s *service) SetLocation(ctx context.Context, userID, accountID string, in domain.LocationEntry) (err error) {
	ctx, done := s.start(ctx, "SetLocation", userID, accountID)
	defer func() { done(err) }()

	if err := s.validator.Validate(in); err != nil {
		return err
	}
	return mutationError(s.repo.SetLocation(ctx, userID, accountID, in), "failed to set location")
}

func (s *service) GetLocation(ctx context.Context, userID, accountID string) (loc domain.LocationEntry, err error) {
	ctx, done := s.start(ctx, "GetLocation", userID, accountID)
	defer func() { done(err) }()

	p, err := s.ownedProfile(ctx, userID, accountID)
	if err != nil || p == nil || p.Location == nil {
		return domain.LocationEntry{}, err
	}
	return *p.Location, nil
}

func (s *service) SetSetting(ctx context.Context, userID, accountID string, in domain.SettingEntry) (err error) {
	ctx, done := s.start(ctx, "SetSetting", userID, accountID)
	defer func() { done(err) }()

	if err := s.validator.Validate(in); err != nil {
		return err
	}
	return mutationError(s.repo.SetSettings(ctx, userID, accountID, in), "failed to set settings")
}

func (s *service) GetSetting(ctx context.Context, userID, accountID string) (set domain.SettingEntry, err error) {
	ctx, done := s.start(ctx, "GetSetting", userID, accountID)
	defer func() { done(err) }()

	p, err := s.ownedProfile(ctx, userID, accountID)
	if err != nil || p == nil || p.Settings == nil {
		return domain.SettingEntry{}, err
	}
	return *p.Settings, nil
}

// AddSocial inserts the link or replaces the one with the same (snName, socialUserId).
func (s *service) AddSocial(ctx context.Context, userID, accountID string, in domain.SocialEntry) (err error) {
	ctx, done := s.start(ctx, "AddSocial", userID, accountID)
	defer func() { done(err) }()

	if err := s.validator.Validate(in); err != nil {
		return err
	}
	return mutationError(s.repo.PutSocial(ctx, userID, accountID, in), "failed to add social account")
}

func (s *service) DeleteSocial(ctx context.Context, userID, accountID, snName, socialUserID string) (err error) {
	ctx, done := s.start(ctx, "DeleteSocial", userID, accountID)
	defer func() { done(err) }()

	if snName == "" || socialUserID == "" {
		return appErrors.NewValidation("snName and socialUserId are required")
	}
	return mutationError(s.repo.DeleteSocial(ctx, userID, accountID, snName, socialUserID), "failed to delete social account")
}

func (s *service) ListSocial(ctx context.Context, userID, accountID string) (out []domain.SocialEntry, err error) {
	ctx, done := s.start(ctx, "ListSocial", userID, accountID)
	defer func() { done(err) }()

	p, err := s.ownedProfile(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.SocialAccounts == nil {
		return []domain.SocialEntry{}, nil
	}
	return p.SocialAccounts, nil
}

func (s *service) AddCategory(ctx context.Context, userID, accountID, category string) (err error) {
	ctx, done := s.start(ctx, "AddCategory", userID, accountID)
	defer func() { done(err) }()

	c, err := categoryArg(category)
	if err != nil {
		return err
	}
	return mutationError(s.repo.AddCategories(ctx, userID, accountID, []string{c}), "failed to add category")
}

func (s *service) DeleteCategory(ctx context.Context, userID, accountID, category string) (err error) {
	ctx, done := s.start(ctx, "DeleteCategory", userID, accountID)
	defer func() { done(err) }()

	c, err := categoryArg(category)
	if err != nil {
		return err
	}
	return mutationError(s.repo.RemoveCategories(ctx, userID, accountID, []string{c}), "failed to delete category")
}

func (s *service) ListCategory(ctx context.Context, userID, accountID string) (out []string, err error) {
	ctx, done := s.start(ctx, "ListCategory", userID, accountID)
	defer func() { done(err) }()

	p, err := s.ownedProfile(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.InterestedCategories == nil {
		return []string{}, nil
	}
	return p.InterestedCategories, nil
}

func categoryArg(category string) (string, error) {
	c := domain.NormalizeCategory(category)
	if c == "" {
		return "", appErrors.NewValidation("category is required")
	}
	if len(c) > 64 {
		return "", appErrors.NewValidation("category must be at most 64 characters")
	}
	return c, nil
}
