package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareit/shareit-backend/internal/user"
)

func strPtr(s string) *string { return &s }

func TestUserService(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(user.NewMemoryRepository())

	var alice *user.User

	t.Run("Create assigns sequential IDs", func(t *testing.T) {
		var err error
		alice, err = svc.Create(ctx, user.CreateRequest{Name: " Alice ", Email: "Alice@Example.com"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), alice.ID)
		assert.Equal(t, "Alice", alice.Name)
		assert.Equal(t, "alice@example.com", alice.Email)

		bob, err := svc.Create(ctx, user.CreateRequest{Name: "Bob", Email: "bob@example.com"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), bob.ID)
	})

	t.Run("Create rejects duplicate email", func(t *testing.T) {
		_, err := svc.Create(ctx, user.CreateRequest{Name: "Other", Email: "alice@example.com"})
		assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
	})

	t.Run("Create validates input", func(t *testing.T) {
		_, err := svc.Create(ctx, user.CreateRequest{Name: "  ", Email: "x@example.com"})
		assert.ErrorIs(t, err, user.ErrNameRequired)

		_, err = svc.Create(ctx, user.CreateRequest{Name: "X", Email: ""})
		assert.ErrorIs(t, err, user.ErrEmailRequired)

		_, err = svc.Create(ctx, user.CreateRequest{Name: "X", Email: "not-an-email"})
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("GetByID unknown", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 999)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("List is ordered by ID", func(t *testing.T) {
		users, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, int64(1), users[0].ID)
		assert.Equal(t, int64(2), users[1].ID)
	})

	t.Run("Update is partial", func(t *testing.T) {
		u, err := svc.Update(ctx, alice.ID, user.UpdateRequest{Name: strPtr("Alicia")})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", u.Name)
		assert.Equal(t, "alice@example.com", u.Email)

		u, err = svc.Update(ctx, alice.ID, user.UpdateRequest{Email: strPtr("alicia@example.com")})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", u.Name)
		assert.Equal(t, "alicia@example.com", u.Email)
	})

	t.Run("Update keeping own email is allowed", func(t *testing.T) {
		_, err := svc.Update(ctx, alice.ID, user.UpdateRequest{Email: strPtr("alicia@example.com")})
		assert.NoError(t, err)
	})

	t.Run("Update to another user's email conflicts", func(t *testing.T) {
		_, err := svc.Update(ctx, alice.ID, user.UpdateRequest{Email: strPtr("bob@example.com")})
		assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
	})

	t.Run("Update unknown user", func(t *testing.T) {
		_, err := svc.Update(ctx, 42, user.UpdateRequest{Name: strPtr("Ghost")})
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, alice.ID))
		_, err := svc.GetByID(ctx, alice.ID)
		assert.ErrorIs(t, err, user.ErrNotFound)
		assert.ErrorIs(t, svc.Delete(ctx, alice.ID), user.ErrNotFound)
	})
}
