package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrTaskNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrTaskNotFound)))
	assert.False(t, IsNotFoundError(ErrInvalidEntity))
	assert.False(t, IsNotFoundError(nil))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")

	err := NewStoreError("task", "save", "insert failed", cause)
	assert.Equal(t, "save operation on task failed: insert failed: connection reset", err.Error())
	assert.True(t, errors.Is(err, cause))

	bare := NewStoreError("task", "find_all", "scan failed", nil)
	assert.Equal(t, "find_all operation on task failed: scan failed", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
