package domain

// ProfileInput is the body accepted when creating a profile. Any owner field a client
// sends is ignored; the owner is always the authenticated caller.
type ProfileInput struct {
	AccountType          string         `json:"accountType" validate:"required,max=64"`
	Subscription         string         `json:"subscription" validate:"required,max=64"`
	Name                 string         `json:"name" validate:"required,max=256"`
	Bio                  string         `json:"bio" validate:"max=2048"`
	Phone                *PhoneEntry    `json:"phone" validate:"omitempty"`
	Email                *EmailEntry    `json:"email" validate:"required"`
	Address              *AddressEntry  `json:"address" validate:"omitempty"`
	Location             *LocationEntry `json:"location" validate:"omitempty"`
	Settings             *SettingEntry  `json:"settings" validate:"omitempty"`
	SocialAccounts       []SocialEntry  `json:"socialAccounts" validate:"max=20,dive"`
	InterestedCategories []string       `json:"interestedCategories" validate:"max=100,dive,required,max=64"`
}

// EditProfileInput replaces the editable identity and contact fields of a profile.
// AccountID may come from the path instead of the body.
type EditProfileInput struct {
	AccountID    string         `json:"accountId"`
	AccountType  string         `json:"accountType" validate:"required,max=64"`
	Subscription string         `json:"subscription" validate:"required,max=64"`
	Name         string         `json:"name" validate:"required,max=256"`
	Bio          string         `json:"bio" validate:"max=2048"`
	Phone        *PhoneEntry    `json:"phone" validate:"omitempty"`
	Email        *EmailEntry    `json:"email" validate:"required"`
	Address      *AddressEntry  `json:"address" validate:"omitempty"`
	Location     *LocationEntry `json:"location" validate:"omitempty"`
	Settings     *SettingEntry  `json:"settings" validate:"omitempty"`
}

// PhotoInput requests a new photo slot; the upload itself goes straight to storage.
type PhotoInput struct {
	Main        bool   `json:"main"`
	Type        string `json:"type" validate:"omitempty,oneof=main gallery"`
	ContentType string `json:"contentType" validate:"omitempty,oneof=image/jpeg image/png image/webp image/heic"`
}

// IsMain accepts both the boolean flag and the legacy type=main form.
func (p PhotoInput) IsMain() bool {
	return p.Main || p.Type == "main"
}

type CategoryInput struct {
	Category string `json:"category" validate:"required,max=64"`
}

type ValidationRequestInput struct {
	Type string `json:"type" validate:"required,oneof=phone email"`
}

type ValidateInput struct {
	Type string `json:"type" validate:"required,oneof=phone email"`
	Code string `json:"code" validate:"required,numeric,min=4,max=10"`
}

// PhotoUpload is returned when a photo slot is created.
type PhotoUpload struct {
	Photo     PhotoEntry `json:"photo"`
	UploadURL string     `json:"uploadUrl"`
	Method    string     `json:"method"`
	ExpiresIn int64      `json:"expiresIn"`
}

// DiscoverPage is one page of other users' profiles.
type DiscoverPage struct {
	Items      []ProfileSummary `json:"items"`
	NextCursor string           `json:"nextCursor,omitempty"`
	HasMore    bool             `json:"hasMore"`
}
