package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorTypes(t *testing.T) {
	t.Run("Validation", func(t *testing.T) {
		err := NewValidation("name is required")
		assert.True(t, IsValidation(err))
		assert.False(t, IsNotFound(err))
		assert.Equal(t, "name is required", MessageOf(err))
	})

	t.Run("NotFoundSurvivesFmtWrapping", func(t *testing.T) {
		err := fmt.Errorf("loading: %w", NewNotFound("missing"))
		assert.True(t, IsNotFound(err))
		assert.Equal(t, "missing", MessageOf(err))
	})

	t.Run("PlainErrorIsInternal", func(t *testing.T) {
		err := stderrors.New("boom")
		assert.True(t, IsInternal(err))
		assert.Equal(t, "", MessageOf(err))
	})

	t.Run("NilIsNothing", func(t *testing.T) {
		assert.False(t, IsInternal(nil))
		assert.False(t, IsValidation(nil))
	})
}

func TestWrap(t *testing.T) {
	t.Run("PreservesType", func(t *testing.T) {
		err := Wrap(NewConflict("already enriched"), "enrich")
		assert.True(t, IsConflict(err))
		assert.Equal(t, "enrich: already enriched", MessageOf(err))
	})

	t.Run("PlainErrorBecomesInternal", func(t *testing.T) {
		cause := stderrors.New("dial tcp")
		err := Wrap(cause, "query profile")
		assert.True(t, IsInternal(err))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "noop"))
	})
}

func TestUnavailableUnwraps(t *testing.T) {
	cause := stderrors.New("circuit breaker is open")
	err := NewUnavailable("review service unavailable", cause)
	assert.True(t, IsUnavailable(err))
	assert.ErrorIs(t, err, cause)
}
