package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareit/shareit-backend/internal/auth"
	"github.com/shareit/shareit-backend/internal/booking"
	"github.com/shareit/shareit-backend/internal/item"
	"github.com/shareit/shareit-backend/internal/pkg/request"
	"github.com/shareit/shareit-backend/internal/pkg/response"
	"github.com/shareit/shareit-backend/internal/user"
)

type noRequests struct{}

func (noRequests) Exists(context.Context, int64) (bool, error) { return false, nil }

var testNow = time.Date(2030, 6, 15, 12, 0, 0, 0, time.UTC)

// newTestRouter seeds booker 1, owner 2 and item 1 owned by user 2.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	request.RegisterValidators()
	ctx := context.Background()

	clock := clockwork.NewFakeClockAt(testNow)
	userRepo := user.NewMemoryRepository()
	itemRepo := item.NewMemoryRepository()
	repo := booking.NewMemoryRepository(itemRepo, userRepo)

	users := user.NewService(userRepo)
	items := item.NewService(itemRepo, users, booking.NewItemBookingReader(repo), noRequests{}, clock)

	_, err := users.Create(ctx, user.CreateRequest{Name: "Booker", Email: "booker@example.com"})
	require.NoError(t, err)
	owner, err := users.Create(ctx, user.CreateRequest{Name: "Owner", Email: "owner@example.com"})
	require.NoError(t, err)
	_, err = items.Create(ctx, owner.ID, item.CreateRequest{Name: "Drill", Description: "Cordless", Available: true})
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(&r.RouterGroup, NewHandler(booking.NewService(repo, users, items, clock)), auth.SharerRequired())
	return r
}

func executeRequest(r *gin.Engine, method, path string, body any, userID int64) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set(auth.HeaderUserID, strconv.FormatInt(userID, 10))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestBookingEndpoints(t *testing.T) {
	r := newTestRouter(t)

	body := map[string]any{
		"itemId": 1,
		"start":  "2030-06-16T10:00:00",
		"end":    "2030-06-17T10:00:00",
	}

	t.Run("Create", func(t *testing.T) {
		w := executeRequest(r, "POST", "/bookings", body, 1)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		assert.JSONEq(t, `{
			"id": 1,
			"start": "2030-06-16T10:00:00",
			"end": "2030-06-17T10:00:00",
			"status": "WAITING",
			"item": {"id": 1, "name": "Drill"},
			"booker": {"id": 1, "name": "Booker"}
		}`, w.Body.String())
	})

	t.Run("Create failures", func(t *testing.T) {
		w := executeRequest(r, "POST", "/bookings", body, 0)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = executeRequest(r, "POST", "/bookings", body, 2)
		assert.Equal(t, http.StatusNotFound, w.Code, "owner booking own item")

		w = executeRequest(r, "POST", "/bookings", body, 99)
		assert.Equal(t, http.StatusNotFound, w.Code, "unknown user")

		w = executeRequest(r, "POST", "/bookings", map[string]any{"itemId": 1, "start": "2030-06-16T10:00:00"}, 1)
		assert.Equal(t, http.StatusBadRequest, w.Code, "missing end")

		w = executeRequest(r, "POST", "/bookings", map[string]any{"itemId": 1, "start": "yesterday", "end": "2030-06-17T10:00:00"}, 1)
		assert.Equal(t, http.StatusBadRequest, w.Code, "bad date")

		reversed := map[string]any{"itemId": 1, "start": "2030-06-17T10:00:00", "end": "2030-06-16T10:00:00"}
		w = executeRequest(r, "POST", "/bookings", reversed, 1)
		assert.Equal(t, http.StatusBadRequest, w.Code, "reversed range")

		past := map[string]any{"itemId": 1, "start": "2020-01-01T10:00:00", "end": "2020-01-02T10:00:00"}
		w = executeRequest(r, "POST", "/bookings", past, 1)
		assert.Equal(t, http.StatusBadRequest, w.Code, "past range")
	})

	t.Run("Get", func(t *testing.T) {
		w := executeRequest(r, "GET", "/bookings/1", nil, 1)
		assert.Equal(t, http.StatusOK, w.Code)

		w = executeRequest(r, "GET", "/bookings/1", nil, 2)
		assert.Equal(t, http.StatusOK, w.Code)

		w = executeRequest(r, "GET", "/bookings/1", nil, 99)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("UpdateStatus", func(t *testing.T) {
		w := executeRequest(r, "PATCH", "/bookings/1?approved=true", nil, 1)
		assert.Equal(t, http.StatusNotFound, w.Code, "booker cannot approve")

		w = executeRequest(r, "PATCH", "/bookings/1", nil, 2)
		assert.Equal(t, http.StatusBadRequest, w.Code, "missing flag")

		w = executeRequest(r, "PATCH", "/bookings/1?approved=maybe", nil, 2)
		assert.Equal(t, http.StatusBadRequest, w.Code, "bad flag")

		w = executeRequest(r, "PATCH", "/bookings/1?approved=true", nil, 2)
		require.Equal(t, http.StatusOK, w.Code)
		var resp BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, booking.StatusApproved, resp.Status)

		w = executeRequest(r, "PATCH", "/bookings/1?approved=false", nil, 2)
		assert.Equal(t, http.StatusBadRequest, w.Code, "already decided")
	})

	t.Run("Lists", func(t *testing.T) {
		w := executeRequest(r, "GET", "/bookings", nil, 1)
		require.Equal(t, http.StatusOK, w.Code)
		var list []BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list, 1)

		w = executeRequest(r, "GET", "/bookings/owner?state=FUTURE&from=0&size=5", nil, 2)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list, 1)

		w = executeRequest(r, "GET", "/bookings?state=WAITING", nil, 1)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("List failures", func(t *testing.T) {
		w := executeRequest(r, "GET", "/bookings?state=UNSUPPORTED_STATUS", nil, 1)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Unknown state: UNSUPPORTED_STATUS", decodeError(t, w))

		w = executeRequest(r, "GET", "/bookings/owner", nil, 99)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = executeRequest(r, "GET", "/bookings?from=-1", nil, 1)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = executeRequest(r, "GET", "/bookings?size=0", nil, 1)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
