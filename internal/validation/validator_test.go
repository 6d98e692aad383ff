package validation

import (
	"testing"

	"github.com/bhajian/gigbusters-profile/internal/domain"
	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(f float64) *float64 { return &f }
func boolean(b bool) *bool     { return &b }

func validInput() domain.ProfileInput {
	return domain.ProfileInput{
		AccountType:  "worker",
		Subscription: "free",
		Name:         "Ada",
		Email:        &domain.EmailEntry{Email: "ada@example.com"},
	}
}

func TestValidateProfileInput(t *testing.T) {
	v := NewValidator()

	t.Run("Minimal", func(t *testing.T) {
		in := validInput()
		require.NoError(t, v.Validate(&in))
	})

	t.Run("MissingRequired", func(t *testing.T) {
		in := validInput()
		in.Name = ""
		in.Email = nil
		err := v.Validate(&in)
		require.Error(t, err)
		assert.True(t, appErrors.IsValidation(err))
		msg := appErrors.MessageOf(err)
		assert.Contains(t, msg, "name is required")
		assert.Contains(t, msg, "email is required")
	})

	t.Run("NestedAddress", func(t *testing.T) {
		in := validInput()
		in.Address = &domain.AddressEntry{Country: "CA", City: "Toronto"}
		err := v.Validate(&in)
		require.Error(t, err)
		assert.Contains(t, appErrors.MessageOf(err), "address.state is required")
	})

	t.Run("LocationRange", func(t *testing.T) {
		in := validInput()
		in.Location = &domain.LocationEntry{Latitude: float(123), Longitude: float(10)}
		err := v.Validate(&in)
		require.Error(t, err)
		assert.Contains(t, appErrors.MessageOf(err), "location.latitude")
	})

	t.Run("ZeroCoordinatesAreValid", func(t *testing.T) {
		in := validInput()
		in.Location = &domain.LocationEntry{Latitude: float(0), Longitude: float(0)}
		assert.NoError(t, v.Validate(&in))
	})

	t.Run("Settings", func(t *testing.T) {
		in := validInput()
		in.Settings = &domain.SettingEntry{Notifications: boolean(false), Language: "fr-CA", Country: "CA"}
		assert.NoError(t, v.Validate(&in))

		in.Settings.Language = "not a language!"
		err := v.Validate(&in)
		require.Error(t, err)
		assert.Contains(t, appErrors.MessageOf(err), "BCP 47")

		in.Settings.Language = "en"
		in.Settings.Country = "Canada"
		err = v.Validate(&in)
		require.Error(t, err)
		assert.Contains(t, appErrors.MessageOf(err), "ISO 3166-1")
	})

	t.Run("SettingsNotificationsRequired", func(t *testing.T) {
		in := validInput()
		in.Settings = &domain.SettingEntry{Language: "en", Country: "US"}
		err := v.Validate(&in)
		require.Error(t, err)
		assert.Contains(t, appErrors.MessageOf(err), "settings.notifications is required")
	})

	t.Run("SocialKeyCannotContainSeparator", func(t *testing.T) {
		in := validInput()
		in.SocialAccounts = []domain.SocialEntry{{SnName: "x#y", SocialUserID: "1"}}
		assert.Error(t, v.Validate(&in))
	})
}

func TestValidateCodes(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.Validate(&domain.ValidateInput{Type: "phone", Code: "123456"}))
	assert.Error(t, v.Validate(&domain.ValidateInput{Type: "fax", Code: "123456"}))
	assert.Error(t, v.Validate(&domain.ValidateInput{Type: "email", Code: "12ab56"}))
}
