package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorStatusCodes(t *testing.T) {
	assert.Equal(t, 400, NewValidationError("x").StatusCode())
	assert.Equal(t, 400, NewConflictError("x").StatusCode())
	assert.Equal(t, 401, NewAuthError("x").StatusCode())
	assert.Equal(t, 404, NewNotFoundError("x").StatusCode())
	assert.Equal(t, 500, NewInternalError("x", nil).StatusCode())
}

func TestKindOfWrapped(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("handler: %w", NewInternalError("Error updating progress", cause))

	assert.Equal(t, KindInternal, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindAuth, KindOf(NewAuthError("nope")))
	assert.Equal(t, KindInternal, KindOf(cause))
}
