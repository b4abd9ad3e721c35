package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Validation, KindOf(Validationf("missing field")))
	assert.Equal(t, Conflict, KindOf(Conflictf("already registered")))
	assert.Equal(t, NotFound, KindOf(NotFoundf("no such customer")))
	assert.Equal(t, Persistence, KindOf(Persistencef(errors.New("boom"), "insert failed")))
	assert.Equal(t, Unknown, KindOf(errors.New("plain")))
	assert.Equal(t, Unknown, KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	inner := Conflictf("duplicate identity")
	wrapped := fmt.Errorf("registering customer: %w", inner)
	assert.Equal(t, Conflict, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, Conflict))
	assert.False(t, IsKind(wrapped, NotFound))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Persistencef(cause, "insert failed")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "insert failed: connection reset", err.Error())
}

func TestErrorMessageWithoutCause(t *testing.T) {
	assert.Equal(t, "missing required fields: customer_email", Validationf("missing required fields: %s", "customer_email").Error())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "validation", Validation.String())
	assert.Equal(t, "conflict", Conflict.String())
	assert.Equal(t, "not_found", NotFound.String())
	assert.Equal(t, "persistence", Persistence.String())
	assert.Equal(t, "unknown", Unknown.String())
}
