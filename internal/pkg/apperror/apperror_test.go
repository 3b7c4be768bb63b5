package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("x").Code)
	assert.Equal(t, http.StatusBadRequest, Validation("x").Code)
	assert.Equal(t, http.StatusConflict, Conflict("x").Code)
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := Wrap(cause, http.StatusConflict, "email already used")

	assert.Equal(t, "email already used", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAsThroughWrapping(t *testing.T) {
	sentinel := NotFound("booking not found")
	wrapped := fmt.Errorf("load booking 7: %w", sentinel)

	var appErr *AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "booking not found", appErr.Message)
}
