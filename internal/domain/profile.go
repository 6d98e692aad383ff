// Package domain holds the profile aggregate and the inputs accepted for it.
package domain

import (
	"strings"
	"time"
)

// Profile is a user's account record together with its sub-resources.
type Profile struct {
	AccountID            string         `json:"accountId"`
	UserID               string         `json:"userId"`
	Active               bool           `json:"active"`
	AccountType          string         `json:"accountType"`
	Subscription         string         `json:"subscription"`
	Name                 string         `json:"name"`
	AccountCode          string         `json:"accountCode,omitempty"`
	Bio                  string         `json:"bio,omitempty"`
	Phone                *PhoneEntry    `json:"phone,omitempty"`
	Email                *EmailEntry    `json:"email,omitempty"`
	Address              *AddressEntry  `json:"address,omitempty"`
	Location             *LocationEntry `json:"location,omitempty"`
	Settings             *SettingEntry  `json:"settings,omitempty"`
	Photos               []PhotoEntry   `json:"photos"`
	SocialAccounts       []SocialEntry  `json:"socialAccounts"`
	InterestedCategories []string       `json:"interestedCategories"`
	ReviewableID         string         `json:"reviewableId,omitempty"`
	CreatedDateTime      time.Time      `json:"createdDateTime"`
}

// IsZero reports whether p is the empty profile returned for missing or foreign records.
func (p *Profile) IsZero() bool {
	return p == nil || p.AccountID == ""
}

// OwnedBy reports whether userID is the profile owner.
func (p *Profile) OwnedBy(userID string) bool {
	return p != nil && userID != "" && p.UserID == userID
}

// MainPhoto returns the photo flagged main, if any.
func (p *Profile) MainPhoto() (PhotoEntry, bool) {
	for _, ph := range p.Photos {
		if ph.Main {
			return ph, true
		}
	}
	return PhotoEntry{}, false
}

type PhoneEntry struct {
	Phone    string `json:"phone" validate:"required,e164"`
	Verified bool   `json:"verified"`
}

type EmailEntry struct {
	Email    string `json:"email" validate:"required,email"`
	Verified bool   `json:"verified"`
}

type AddressEntry struct {
	Country   string `json:"country" validate:"required"`
	State     string `json:"state" validate:"required"`
	City      string `json:"city" validate:"required"`
	AddressL1 string `json:"addressL1" validate:"required"`
	AddressL2 string `json:"addressL2,omitempty"`
}

type LocationEntry struct {
	LocationName string   `json:"locationName,omitempty"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
}

type SettingEntry struct {
	Notifications *bool  `json:"notifications" validate:"required"`
	Language      string `json:"language" validate:"required,language"`
	Country       string `json:"country" validate:"required,iso3166_1_alpha2"`
}

// PhotoEntry references an object in the photo bucket.
type PhotoEntry struct {
	PhotoID   string    `json:"photoId"`
	Bucket    string    `json:"bucket"`
	Key       string    `json:"key"`
	Main      bool      `json:"main"`
	CreatedAt time.Time `json:"createdAt"`
}

// SocialEntry links the profile to an account on an external network.
type SocialEntry struct {
	SnName       string `json:"snName" validate:"required,max=64,excludes=#"`
	SocialUserID string `json:"socialUserId" validate:"required,max=256,excludes=#"`
	Token        string `json:"token,omitempty"`
	Secret       string `json:"secret,omitempty"`
}

// Key identifies a social link within a profile.
func (s SocialEntry) Key() string {
	return s.SnName + "#" + s.SocialUserID
}

// ProfileSummary is the public projection served by discovery.
type ProfileSummary struct {
	AccountID    string         `json:"accountId"`
	AccountType  string         `json:"accountType"`
	Name         string         `json:"name"`
	AccountCode  string         `json:"accountCode,omitempty"`
	Bio          string         `json:"bio,omitempty"`
	Location     *LocationEntry `json:"location,omitempty"`
	ReviewableID string         `json:"reviewableId,omitempty"`
}

// VerificationKind selects which contact channel a code is issued for.
type VerificationKind string

const (
	VerifyPhone VerificationKind = "phone"
	VerifyEmail VerificationKind = "email"
)

// ParseVerificationKind accepts "phone" or "email", case-insensitively.
func ParseVerificationKind(s string) (VerificationKind, bool) {
	switch VerificationKind(strings.ToLower(strings.TrimSpace(s))) {
	case VerifyPhone:
		return VerifyPhone, true
	case VerifyEmail:
		return VerifyEmail, true
	}
	return "", false
}

// NormalizeCategory trims and lower-cases a category so set membership is stable.
func NormalizeCategory(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
