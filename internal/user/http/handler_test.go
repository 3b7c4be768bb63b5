package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareit/shareit-backend/internal/pkg/request"
	"github.com/shareit/shareit-backend/internal/user"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	request.RegisterValidators()

	r := gin.New()
	RegisterRoutes(&r.RouterGroup, NewHandler(user.NewService(user.NewMemoryRepository())))
	return r
}

func executeRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserEndpoints(t *testing.T) {
	r := newTestRouter()

	t.Run("Create", func(t *testing.T) {
		w := executeRequest(r, "POST", "/users", map[string]string{"name": "Alice", "email": "alice@example.com"})
		require.Equal(t, http.StatusCreated, w.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, UserResponse{ID: 1, Name: "Alice", Email: "alice@example.com"}, resp)
	})

	t.Run("Create duplicate email", func(t *testing.T) {
		w := executeRequest(r, "POST", "/users", map[string]string{"name": "Eve", "email": "alice@example.com"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Create invalid body", func(t *testing.T) {
		w := executeRequest(r, "POST", "/users", map[string]string{"name": "Eve", "email": "nope"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = executeRequest(r, "POST", "/users", map[string]string{"email": "eve@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Get and List", func(t *testing.T) {
		w := executeRequest(r, "GET", "/users/1", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = executeRequest(r, "GET", "/users/2", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = executeRequest(r, "GET", "/users/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = executeRequest(r, "GET", "/users", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list, 1)
	})

	t.Run("Update", func(t *testing.T) {
		w := executeRequest(r, "PATCH", "/users/1", map[string]string{"name": "Alicia"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Alicia", resp.Name)
		assert.Equal(t, "alice@example.com", resp.Email)
	})

	t.Run("Delete", func(t *testing.T) {
		w := executeRequest(r, "DELETE", "/users/1", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = executeRequest(r, "DELETE", "/users/1", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
