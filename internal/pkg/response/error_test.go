package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareit/shareit-backend/internal/pkg/apperror"
)

func render(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Error(c, err)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestErrorMapsAppError(t *testing.T) {
	code, body := render(t, apperror.NotFound("item not found"))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "item not found", body.Error)

	code, body = render(t, fmt.Errorf("wrapped: %w", apperror.Conflict("email already used")))
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "email already used", body.Error)
}

func TestErrorHidesUnknownErrors(t *testing.T) {
	code, body := render(t, errors.New("connection refused"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal server error", body.Error)
}

func TestNewListNeverNil(t *testing.T) {
	out, err := json.Marshal(NewList[int](nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}
