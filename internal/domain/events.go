package domain

import "time"

// Event detail types published to the event bus.
const (
	EventProfileCreated             = "ProfileCreated"
	EventProfileDeleted             = "ProfileDeleted"
	EventEmailVerificationRequested = "EmailVerificationRequested"
	EventProfileEnriched            = "ProfileEnriched"
)

// Event is a domain event with a JSON-serialisable detail payload.
type Event struct {
	Type       string
	AccountID  string
	UserID     string
	OccurredAt time.Time
	Detail     map[string]interface{}
}

// NewEvent stamps an event for the given profile.
func NewEvent(eventType, accountID, userID string, detail map[string]interface{}) Event {
	if detail == nil {
		detail = map[string]interface{}{}
	}
	return Event{
		Type:       eventType,
		AccountID:  accountID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
		Detail:     detail,
	}
}
