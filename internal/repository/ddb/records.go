package ddb

import (
	"time"

	"github.com/bhajian/gigbusters-profile/internal/domain"
)

type contactRecord struct {
	Value    string `dynamodbav:"Value"`
	Verified bool   `dynamodbav:"Verified"`
}

type profileRecord struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI1PK     string `dynamodbav:"GSI1PK"`
	GSI1SK     string `dynamodbav:"GSI1SK"`
	EntityType string `dynamodbav:"EntityType"`

	AccountID    string `dynamodbav:"AccountID"`
	UserID       string `dynamodbav:"UserID"`
	Active       bool   `dynamodbav:"Active"`
	AccountType  string `dynamodbav:"AccountType"`
	Subscription string `dynamodbav:"Subscription"`
	Name         string `dynamodbav:"Name"`
	AccountCode  string `dynamodbav:"AccountCode,omitempty"`
	Bio          string `dynamodbav:"Bio,omitempty"`

	Phone              *contactRecord `dynamodbav:"Phone,omitempty"`
	Email              *contactRecord `dynamodbav:"Email,omitempty"`
	PhoneCode          string         `dynamodbav:"PhoneCode,omitempty"`
	PhoneCodeExpiresAt int64          `dynamodbav:"PhoneCodeExpiresAt,omitempty"`
	EmailCode          string         `dynamodbav:"EmailCode,omitempty"`
	EmailCodeExpiresAt int64          `dynamodbav:"EmailCodeExpiresAt,omitempty"`

	Address  *domain.AddressEntry  `dynamodbav:"Address,omitempty"`
	Location *domain.LocationEntry `dynamodbav:"Location,omitempty"`
	Settings *domain.SettingEntry  `dynamodbav:"Settings,omitempty"`

	Categories   []string `dynamodbav:"Categories,stringset,omitempty"`
	MainPhotoID  string   `dynamodbav:"MainPhotoID,omitempty"`
	ReviewableID string   `dynamodbav:"ReviewableID,omitempty"`

	CreatedAt string `dynamodbav:"CreatedAt"`
	UpdatedAt string `dynamodbav:"UpdatedAt,omitempty"`
}

type photoRecord struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	EntityType string `dynamodbav:"EntityType"`
	PhotoID    string `dynamodbav:"PhotoID"`
	Bucket     string `dynamodbav:"Bucket"`
	Key        string `dynamodbav:"Key"`
	CreatedAt  string `dynamodbav:"CreatedAt"`
}

type socialRecord struct {
	PK           string `dynamodbav:"PK"`
	SK           string `dynamodbav:"SK"`
	EntityType   string `dynamodbav:"EntityType"`
	SnName       string `dynamodbav:"SnName"`
	SocialUserID string `dynamodbav:"SocialUserID"`
	Token        string `dynamodbav:"Token,omitempty"`
	Secret       string `dynamodbav:"Secret,omitempty"`
	UpdatedAt    string `dynamodbav:"UpdatedAt"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func toContact(value string, verified bool) *contactRecord {
	return &contactRecord{Value: value, Verified: verified}
}

func newProfileRecord(p *domain.Profile) profileRecord {
	rec := profileRecord{
		PK:           accountPK(p.AccountID),
		SK:           profileSK,
		GSI1PK:       ownerPK(p.UserID),
		GSI1SK:       ownerSK(p.AccountID),
		EntityType:   entityProfile,
		AccountID:    p.AccountID,
		UserID:       p.UserID,
		Active:       p.Active,
		AccountType:  p.AccountType,
		Subscription: p.Subscription,
		Name:         p.Name,
		AccountCode:  p.AccountCode,
		Bio:          p.Bio,
		Address:      p.Address,
		Location:     p.Location,
		Settings:     p.Settings,
		Categories:   p.InterestedCategories,
		ReviewableID: p.ReviewableID,
		CreatedAt:    formatTime(p.CreatedDateTime),
	}
	if p.Phone != nil {
		rec.Phone = toContact(p.Phone.Phone, p.Phone.Verified)
	}
	if p.Email != nil {
		rec.Email = toContact(p.Email.Email, p.Email.Verified)
	}
	if main, ok := p.MainPhoto(); ok {
		rec.MainPhotoID = main.PhotoID
	}
	return rec
}

func newPhotoRecord(accountID string, photo domain.PhotoEntry) photoRecord {
	return photoRecord{
		PK:         accountPK(accountID),
		SK:         photoSK(photo.PhotoID),
		EntityType: entityPhoto,
		PhotoID:    photo.PhotoID,
		Bucket:     photo.Bucket,
		Key:        photo.Key,
		CreatedAt:  formatTime(photo.CreatedAt),
	}
}

func newSocialRecord(accountID string, s domain.SocialEntry, now time.Time) socialRecord {
	return socialRecord{
		PK:           accountPK(accountID),
		SK:           socialSK(s.SnName, s.SocialUserID),
		EntityType:   entitySocial,
		SnName:       s.SnName,
		SocialUserID: s.SocialUserID,
		Token:        s.Token,
		Secret:       s.Secret,
		UpdatedAt:    formatTime(now),
	}
}

func (r profileRecord) toDomain(photos []photoRecord, socials []socialRecord) *domain.Profile {
	p := &domain.Profile{
		AccountID:            r.AccountID,
		UserID:               r.UserID,
		Active:               r.Active,
		AccountType:          r.AccountType,
		Subscription:         r.Subscription,
		Name:                 r.Name,
		AccountCode:          r.AccountCode,
		Bio:                  r.Bio,
		Address:              r.Address,
		Location:             r.Location,
		Settings:             r.Settings,
		ReviewableID:         r.ReviewableID,
		CreatedDateTime:      parseTime(r.CreatedAt),
		Photos:               make([]domain.PhotoEntry, 0, len(photos)),
		SocialAccounts:       make([]domain.SocialEntry, 0, len(socials)),
		InterestedCategories: append([]string{}, r.Categories...),
	}
	if r.Phone != nil {
		p.Phone = &domain.PhoneEntry{Phone: r.Phone.Value, Verified: r.Phone.Verified}
	}
	if r.Email != nil {
		p.Email = &domain.EmailEntry{Email: r.Email.Value, Verified: r.Email.Verified}
	}
	for _, ph := range photos {
		entry := ph.toDomain()
		entry.Main = ph.PhotoID == r.MainPhotoID
		p.Photos = append(p.Photos, entry)
	}
	for _, s := range socials {
		p.SocialAccounts = append(p.SocialAccounts, domain.SocialEntry{
			SnName:       s.SnName,
			SocialUserID: s.SocialUserID,
			Token:        s.Token,
			Secret:       s.Secret,
		})
	}
	return p
}

func (r photoRecord) toDomain() domain.PhotoEntry {
	return domain.PhotoEntry{
		PhotoID:   r.PhotoID,
		Bucket:    r.Bucket,
		Key:       r.Key,
		CreatedAt: parseTime(r.CreatedAt),
	}
}
