package repository

import (
	"errors"
	"fmt"
)

// ErrConditionFailed is returned when a conditional write was rejected: the record does
// not exist, belongs to someone else, or is not in the expected state.
var ErrConditionFailed = errors.New("condition failed")

// ErrInvalidCursor is returned for pagination cursors that cannot be decoded.
var ErrInvalidCursor = errors.New("invalid cursor")

// ErrInvalidQuery represents an invalid query error in the repository layer.
type ErrInvalidQuery struct {
	Field  string
	Reason string
}

func (e ErrInvalidQuery) Error() string {
	return fmt.Sprintf("invalid query for field '%s': %s", e.Field, e.Reason)
}

// NewInvalidQuery creates a new ErrInvalidQuery.
func NewInvalidQuery(field, reason string) ErrInvalidQuery {
	return ErrInvalidQuery{Field: field, Reason: reason}
}

// IsConditionFailed reports whether err is a rejected conditional write.
func IsConditionFailed(err error) bool {
	return errors.Is(err, ErrConditionFailed)
}

// IsInvalidQuery checks if an error is a repository invalid query error.
func IsInvalidQuery(err error) bool {
	var q ErrInvalidQuery
	return errors.As(err, &q) || errors.Is(err, ErrInvalidCursor)
}
