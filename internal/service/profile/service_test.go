package profile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	"github.com/bhajian/gigbusters-profile/internal/repository"
	"github.com/bhajian/gigbusters-profile/internal/repository/mocks"
	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	owner    = "user-owner"
	stranger = "user-stranger"
)

type fakeStorage struct {
	mu      sync.Mutex
	deleted []string
	err     error
}

func (f *fakeStorage) Bucket() string { return "profile-photos" }

func (f *fakeStorage) PresignUpload(ctx context.Context, key, contentType string) (string, time.Duration, error) {
	if f.err != nil {
		return "", 0, f.err
	}
	return "https://upload/" + key, 15 * time.Minute, nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return nil
}

type fakeSMS struct {
	phone, message string
	err            error
}

func (f *fakeSMS) SendSMS(ctx context.Context, phone, message string) error {
	f.phone, f.message = phone, message
	return f.err
}

type fakeEvents struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (f *fakeEvents) Publish(ctx context.Context, events ...domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, events...)
	return nil
}

func (f *fakeEvents) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	svc     *service
	repo    *mocks.MockRepository
	storage *fakeStorage
	sms     *fakeSMS
	events  *fakeEvents
	now     time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:    mocks.NewMockRepository(),
		storage: &fakeStorage{},
		sms:     &fakeSMS{},
		events:  &fakeEvents{},
		now:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(f.repo, f.storage, f.sms, f.events, nil, Config{}, nil).(*service)
	f.svc.now = func() time.Time { return f.now }
	f.svc.newCode = func(int) (string, error) { return "123456", nil }
	return f
}

func validInput() domain.ProfileInput {
	return domain.ProfileInput{
		AccountType:  "worker",
		Subscription: "free",
		Name:         "Ada",
		Phone:        &domain.PhoneEntry{Phone: "+15555550100", Verified: true},
		Email:        &domain.EmailEntry{Email: "ada@example.com", Verified: true},
		SocialAccounts: []domain.SocialEntry{
			{SnName: "twitter", SocialUserID: "ada"},
		},
		InterestedCategories: []string{" Plumbing", "plumbing", "Design"},
	}
}

func (f *fixture) create(t *testing.T) *domain.Profile {
	t.Helper()
	p, err := f.svc.Create(context.Background(), owner, validInput())
	require.NoError(t, err)
	return p
}

func TestCreate_OwnerIsCaller(t *testing.T) {
	f := newFixture(t)
	p := f.create(t)

	assert.NotEmpty(t, p.AccountID)
	assert.Equal(t, owner, p.UserID)
	assert.True(t, p.Active)
	assert.Equal(t, f.now, p.CreatedDateTime)
	assert.False(t, p.Phone.Verified, "client cannot pre-verify contacts")
	assert.False(t, p.Email.Verified)
	assert.Equal(t, []string{"design", "plumbing"}, p.InterestedCategories)

	stored, err := f.svc.Get(context.Background(), owner, p.AccountID)
	require.NoError(t, err)
	assert.Equal(t, owner, stored.UserID)
	assert.Equal(t, []string{domain.EventProfileCreated}, f.events.types())
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*domain.ProfileInput)
	}{
		{"missing name", func(in *domain.ProfileInput) { in.Name = "" }},
		{"missing email", func(in *domain.ProfileInput) { in.Email = nil }},
		{"bad phone", func(in *domain.ProfileInput) { in.Phone.Phone = "555" }},
		{"bad address", func(in *domain.ProfileInput) { in.Address = &domain.AddressEntry{Country: "CA"} }},
		{"bad settings country", func(in *domain.ProfileInput) {
			on := true
			in.Settings = &domain.SettingEntry{Notifications: &on, Language: "en", Country: "Canada"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := f.svc.Create(context.Background(), owner, in)
			assert.True(t, appErrors.IsValidation(err), "got %v", err)
		})
	}
}

func TestGet_MissingOrForeignIsEmpty(t *testing.T) {
	f := newFixture(t)
	p := f.create(t)

	missing, err := f.svc.Get(context.Background(), owner, "does-not-exist")
	require.NoError(t, err)
	assert.True(t, missing.IsZero())

	foreign, err := f.svc.Get(context.Background(), stranger, p.AccountID)
	require.NoError(t, err)
	assert.True(t, foreign.IsZero())
}

func TestList(t *testing.T) {
	f := newFixture(t)
	f.create(t)
	f.create(t)

	mine, err := f.svc.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := f.svc.List(context.Background(), stranger)
	require.NoError(t, err)
	assert.NotNil(t, theirs)
	assert.Empty(t, theirs)
}

func TestNonOwnerMutationsFailWithoutChange(t *testing.T) {
	f := newFixture(t)
	p := f.create(t)
	ctx := context.Background()

	_, err := f.svc.Edit(ctx, stranger, domain.EditProfileInput{
		AccountID: p.AccountID, AccountType: "x", Subscription: "x", Name: "Mallory",
		Email: &domain.EmailEntry{Email: "m@example.com"},
	})
	assert.True(t, appErrors.IsNotFound(err))
	assert.Equal(t, MsgNotFoundOrNotOwner, appErrors.MessageOf(err))

	err = f.svc.Delete(ctx, stranger, p.AccountID)
	assert.True(t, appErrors.IsNotFound(err))

	err = f.svc.Deactivate(ctx, stranger, p.AccountID)
	assert.True(t, appErrors.IsNotFound(err))

	err = f.svc.AddCategory(ctx, stranger, p.AccountID, "hacking")
	assert.True(t, appErrors.IsNotFound(err))

	stored, err := f.svc.Get(ctx, owner, p.AccountID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.Name)
	assert.True(t, stored.Active)
	assert.NotContains(t, stored.InterestedCategories, "hacking")
}

func TestEdit_ResetsVerificationOnChange(t *testing.T) {
	f := newFixture(t)
	p := f.create(t)
	ctx := context.Background()

	require.NoError(t, f.svc.RequestValidation(ctx, owner, p.AccountID, domain.VerifyPhone))
	require.NoError(t, f.svc.Validate(ctx, owner, p.AccountID, domain.VerifyPhone, "123456"))

	edit := domain.EditProfileInput{
		AccountID: p.AccountID, AccountType: "worker", Subscription: "pro", Name: "Ada L",
		Phone: &domain.PhoneEntry{Phone: "+15555550100"},
		Email: &domain.EmailEntry{Email: "ada@example.com"},
	}
	out, err := f.svc.Edit(ctx, owner, edit)
	require.NoError(t, err)
	assert.True(t, out.Phone.Verified, "unchanged phone keeps verification")
	assert.Equal(t, "pro", out.Subscription)

	edit.Phone = &domain.PhoneEntry{Phone: "+15555550199", Verified: true}
	out, err = f.svc.Edit(ctx, owner, edit)
	require.NoError(t, err)
	assert.False(t, out.Phone.Verified)

	stored, err := f.svc.Get(ctx, owner, p.AccountID)
	require.NoError(t, err)
	assert.Equal(t, "+15555550199", stored.Phone.Phone)
	assert.False(t, stored.Phone.Verified)
}

func TestDeactivate(t *testing.T) {
	f := newFixture(t)
	p := f.create(t)

	require.NoError(t, f.svc.Deactivate(context.Background(), owner, p.AccountID))
	stored, _ := f.svc.Get(context.Background(), owner, p.AccountID)
	assert.False(t, stored.Active)
}

func TestPhotos_SingleMain(t *testing.T) {
	f := newFixture(t)
	p := f.create(t)
	ctx := context.Background()

	first, err := f.svc.AddPhoto(ctx, owner, p.AccountID, domain.PhotoInput{Main: true})
	require.NoError(t, err)
	assert.Equal(t, "PUT", first.Method)
	assert.Equal(t, int64(900), first.ExpiresIn)
	assert.Equal(t, owner+"/photos/"+first.Photo.PhotoID, first.Photo.Key)
	assert.Equal(t, "profile-photos", first.Photo.Bucket)

	_, err = f.svc.AddPhoto(ctx, owner, p.AccountID, domain.PhotoInput{})
	require.NoError(t, err)
	second, err := f.svc.AddPhoto(ctx, owner, p.AccountID, domain.PhotoInput{Type: "main"})
	require.NoError(t, err)

	photos, err := f.svc.ListPhotos(ctx, owner, p.AccountID)
	require.NoError(t, err)
	require.Len(t, photos, 3)
	mains := 0
	for _, ph := range photos {
		if ph.Main {
			mains++
			assert.Equal(t, second.Photo.PhotoID, ph.PhotoID)
		}
	}
	assert.Equal(t, 1, mains)

	require.NoError(t, f.svc.SetMainPhoto(ctx, owner, p.AccountID, first.Photo.PhotoID))
	got, err := f.svc.GetPhoto(ctx, owner, p.AccountID, first.Photo.PhotoID)
	require.NoError(t, err)
	assert.True(t, got.Main)

	require.NoError(t, f.svc.DeletePhoto(ctx, owner, p.AccountID, first.Photo.PhotoID))
	assert.Equal(t, []string{first.Photo.Key}, f.storage.deleted)

	gone, err := f.svc.GetPhoto(ctx, owner, p.AccountID, first.Photo.PhotoID)
	require.NoError(t, err)
	assert.Empty(t, gone.PhotoID)

	err = f.svc.DeletePhoto(ctx, owner, p.AccountID, first.Photo.PhotoID)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestAddPhoto_PresignFailureStoresNothing(t *testing.T) {
	f := newFixture(t)
	p := f.create(t)
	f.storage.err = appErrors.NewInternal("failed to presign photo upload", errors.New("no creds"))

	_, err := f.svc.AddPhoto(context.Background(), owner, p.AccountID, domain.PhotoInput{})
	assert.True(t, appErrors.IsInternal(err))

	photos, _ := f.svc.ListPhotos(context.Background(), owner, p.AccountID)
	assert.Empty(t, photos)
}

func TestDelete_RemovesObjectsAndPublishes(t *testing.T) {
	f := newFixture(t)
	p := f.create(t)
	ctx := context.Background()

	a, err := f.svc.AddPhoto(ctx, owner, p.AccountID, domain.PhotoInput{})
	require.NoError(t, err)
	require.NoError(t, f.svc.Delete(ctx, owner, p.AccountID))

	assert.Equal(t, []string{a.Photo.Key}, f.storage.deleted)
	assert.Contains(t, f.events.types(), domain.EventProfileDeleted)

	stored, err := f.svc.Get(ctx, owner, p.AccountID)
	require.NoError(t, err)
	assert.True(t, stored.IsZero())
}

func TestLocationAndSettings(t *testing.T) {
	f := newFixture(t)
	p := f.create(t)
	ctx := context.Background()

	empty, err := f.svc.GetLocation(ctx, owner, p.AccountID)
	require.NoError(t, err)
	assert.Nil(t, empty.Latitude)

	lat, lng := 43.65, -79.38
	require.NoError(t, f.svc.SetLocation(ctx, owner, p.AccountID, domain.LocationEntry{LocationName: "Toronto", Latitude: &lat, Longitude: &lng}))
	loc, err := f.svc.GetLocation(ctx, owner, p.AccountID)
	require.NoError(t, err)
	assert.Equal(t, "Toronto", loc.LocationName)

	bad := 200.0
	err = f.svc.SetLocation(ctx, owner, p.AccountID, domain.LocationEntry{Latitude: &bad, Longitude: &lng})
	assert.True(t, appErrors.IsValidation(err))

	on := true
	require.NoError(t, f.svc.SetSetting(ctx, owner, p.AccountID, domain.SettingEntry{Notifications: &on, Language: "fr-CA", Country: "CA"}))
	set, err := f.svc.GetSetting(ctx, owner, p.AccountID)
	require.NoError(t, err)
	assert.Equal(t, "fr-CA", set.Language)

	foreign, err := f.svc.GetSetting(ctx, stranger, p.AccountID)
	require.NoError(t, err)
	assert.Empty(t, foreign.Language)
}

func TestSocial_ReplaceNotDuplicate(t *testing.T) {
	f := newFixture(t)
	p := f.create(t)
	ctx := context.Background()

	require.NoError(t, f.svc.AddSocial(ctx, owner, p.AccountID, domain.SocialEntry{SnName: "twitter", SocialUserID: "ada", Token: "new"}))
	list, err := f.svc.ListSocial(ctx, owner, p.AccountID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "new", list[0].Token)

	require.NoError(t, f.svc.DeleteSocial(ctx, owner, p.AccountID, "twitter", "ada"))
	err = f.svc.DeleteSocial(ctx, owner, p.AccountID, "twitter", "ada")
	assert.True(t, appErrors.IsNotFound(err))

	err = f.svc.AddSocial(ctx, owner, p.AccountID, domain.SocialEntry{SnName: "bad#name", SocialUserID: "x"})
	assert.True(t, appErrors.IsValidation(err))
}

func TestCategories_AddThenDeleteRestores(t *testing.T) {
	f := newFixture(t)
	p := f.create(t)
	ctx := context.Background()

	before, err := f.svc.ListCategory(ctx, owner, p.AccountID)
	require.NoError(t, err)

	require.NoError(t, f.svc.AddCategory(ctx, owner, p.AccountID, "Carpentry"))
	during, _ := f.svc.ListCategory(ctx, owner, p.AccountID)
	assert.Contains(t, during, "carpentry")

	require.NoError(t, f.svc.DeleteCategory(ctx, owner, p.AccountID, "carpentry"))
	after, _ := f.svc.ListCategory(ctx, owner, p.AccountID)
	assert.Equal(t, before, after)

	err = f.svc.AddCategory(ctx, owner, p.AccountID, "   ")
	assert.True(t, appErrors.IsValidation(err))
}

func TestVerification(t *testing.T) {
	f := newFixture(t)
	p := f.create(t)
	ctx := context.Background()

	t.Run("phone by sms", func(t *testing.T) {
		require.NoError(t, f.svc.RequestValidation(ctx, owner, p.AccountID, domain.VerifyPhone))
		assert.Equal(t, "+15555550100", f.sms.phone)
		assert.Equal(t, "Your Verification Code is: 123456", f.sms.message)

		_, expires, ok := f.repo.VerificationCode(p.AccountID, domain.VerifyPhone)
		require.True(t, ok)
		assert.Equal(t, f.now.Add(15*time.Minute), expires)

		err := f.svc.Validate(ctx, owner, p.AccountID, domain.VerifyPhone, "000000")
		assert.True(t, appErrors.IsValidation(err))
		assert.Equal(t, MsgNotVerified, appErrors.MessageOf(err))

		require.NoError(t, f.svc.Validate(ctx, owner, p.AccountID, domain.VerifyPhone, "123456"))
		stored, _ := f.svc.Get(ctx, owner, p.AccountID)
		assert.True(t, stored.Phone.Verified)
	})

	t.Run("email by event", func(t *testing.T) {
		require.NoError(t, f.svc.RequestValidation(ctx, owner, p.AccountID, domain.VerifyEmail))
		assert.Contains(t, f.events.types(), domain.EventEmailVerificationRequested)
	})

	t.Run("expired code", func(t *testing.T) {
		require.NoError(t, f.svc.RequestValidation(ctx, owner, p.AccountID, domain.VerifyEmail))
		f.now = f.now.Add(16 * time.Minute)
		err := f.svc.Validate(ctx, owner, p.AccountID, domain.VerifyEmail, "123456")
		assert.Equal(t, MsgNotVerified, appErrors.MessageOf(err))
	})

	t.Run("missing profile", func(t *testing.T) {
		err := f.svc.RequestValidation(ctx, owner, "nope", domain.VerifyPhone)
		assert.True(t, appErrors.IsNotFound(err))
		assert.Equal(t, MsgProfileMissing, appErrors.MessageOf(err))
	})

	t.Run("sms failure surfaces", func(t *testing.T) {
		f.sms.err = appErrors.NewUnavailable("failed to send SMS", errors.New("throttled"))
		defer func() { f.sms.err = nil }()
		err := f.svc.RequestValidation(ctx, owner, p.AccountID, domain.VerifyPhone)
		assert.True(t, appErrors.IsUnavailable(err))
	})
}

func TestDiscover(t *testing.T) {
	f := newFixture(t)
	f.create(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.svc.Create(ctx, stranger, validInput())
		require.NoError(t, err)
	}

	page, err := f.svc.Discover(ctx, owner, repository.Pagination{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.True(t, page.HasMore)

	rest, err := f.svc.Discover(ctx, owner, repository.Pagination{Limit: 2, Cursor: page.NextCursor})
	require.NoError(t, err)
	assert.Len(t, rest.Items, 1)
	assert.False(t, rest.HasMore)

	_, err = f.svc.Discover(ctx, owner, repository.Pagination{Cursor: "!!!"})
	assert.True(t, appErrors.IsValidation(err))

	_, err = f.svc.Discover(ctx, owner, repository.Pagination{Limit: 500})
	assert.True(t, appErrors.IsValidation(err))
}

func TestRepositoryFailuresAreWrapped(t *testing.T) {
	f := newFixture(t)
	f.repo.SetError("ListProfilesByOwner", appErrors.NewUnavailable("dynamodb throttled", nil))
	_, err := f.svc.List(context.Background(), owner)
	assert.True(t, appErrors.IsUnavailable(err))

	f.repo.SetError("CreateProfile", errors.New("network down"))
	_, err = f.svc.Create(context.Background(), owner, validInput())
	assert.True(t, appErrors.IsInternal(err))
}

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := generateCode(6)
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.Regexp(t, `^[0-9]{6}$`, code)
	}
}
