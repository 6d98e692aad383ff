package repository

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination represents cursor-based pagination parameters.
type Pagination struct {
	Limit  int
	Cursor string
}

// Validate checks if pagination parameters are valid
func (p Pagination) Validate() error {
	if p.Limit < 0 {
		return NewInvalidQuery("limit", "cannot be negative")
	}
	if p.Limit > MaxPageSize {
		return NewInvalidQuery("limit", fmt.Sprintf("cannot exceed %d", MaxPageSize))
	}
	return nil
}

// GetEffectiveLimit returns the limit to use, with a default if not specified
func (p Pagination) GetEffectiveLimit() int {
	if p.Limit <= 0 {
		return DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		return MaxPageSize
	}
	return p.Limit
}

// CursorKey is the primary key of the last item returned on a page.
type CursorKey struct {
	PK string `json:"pk"`
	SK string `json:"sk"`
}

// EncodeCursor turns a key into an opaque URL-safe cursor.
func EncodeCursor(key *CursorKey) string {
	if key == nil || key.PK == "" {
		return ""
	}
	data, err := json.Marshal(key)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeCursor reverses EncodeCursor. An empty cursor decodes to nil.
func DecodeCursor(cursor string) (*CursorKey, error) {
	if cursor == "" {
		return nil, nil
	}
	data, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	var key CursorKey
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}
	if key.PK == "" || key.SK == "" {
		return nil, ErrInvalidCursor
	}
	return &key, nil
}
