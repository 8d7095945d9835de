package contract

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_MessageIncludesContext(t *testing.T) {
	err := NewVersionConflict("c-1", 3, 1)
	assert.Contains(t, err.Error(), "SEQUENTIAL_VERSION_VIOLATION")
	assert.Contains(t, err.Error(), "c-1")
	assert.Contains(t, err.Error(), "version=3")

	plain := NewValidation("clause id is required")
	assert.Equal(t, "VALIDATION: clause id is required", plain.Error())
}

func TestError_CodeHelpers(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("c-1")))
	assert.True(t, IsNotFound(NewVersionNotFound("c-1", 4)))
	assert.True(t, IsVersionConflict(NewVersionConflict("c-1", 3, 1)))
	assert.True(t, IsValidation(NewValidation("bad input")))
	assert.True(t, IsConstraint(NewUniqueConstraint("insert clause", errors.New("dup"))))
	assert.True(t, IsConstraint(NewReferentialIntegrity("insert clause", errors.New("fk"))))

	assert.False(t, IsNotFound(NewValidation("nope")))
	assert.False(t, IsVersionConflict(errors.New("plain")))
	assert.False(t, IsValidation(nil))
}

func TestError_HelpersSeeThroughWrapping(t *testing.T) {
	inner := NewVersionConflict("c-1", 3, 1)
	wrapped := fmt.Errorf("commit version 3 of contract c-1: %w", inner)

	assert.True(t, IsVersionConflict(wrapped))
	assert.False(t, IsNotFound(wrapped))
}

func TestError_UnwrapExposesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewStorage("insert clause", cause)

	assert.True(t, errors.Is(err, cause))
}
