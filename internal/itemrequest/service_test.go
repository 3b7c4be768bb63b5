package itemrequest_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareit/shareit-backend/internal/item"
	"github.com/shareit/shareit-backend/internal/itemrequest"
	"github.com/shareit/shareit-backend/internal/user"
)

func TestItemRequestService(t *testing.T) {
	ctx := context.Background()

	users := user.NewService(user.NewMemoryRepository())
	alice, err := users.Create(ctx, user.CreateRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	bob, err := users.Create(ctx, user.CreateRequest{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC))
	items := item.NewMemoryRepository()
	repo := itemrequest.NewMemoryRepository()
	svc := itemrequest.NewService(repo, items, users, clock)

	first, err := svc.Create(ctx, alice.ID, "Need a ladder")
	require.NoError(t, err)
	assert.Equal(t, clock.Now(), first.Created)
	assert.NotNil(t, first.Items)
	assert.Empty(t, first.Items)

	clock.Advance(time.Hour)
	second, err := svc.Create(ctx, alice.ID, "Need a tent")
	require.NoError(t, err)

	answer := &item.Item{Name: "Ladder", Description: "3m", Available: true, OwnerID: bob.ID, RequestID: &first.ID}
	require.NoError(t, items.Create(ctx, answer))

	t.Run("Create validates", func(t *testing.T) {
		_, err := svc.Create(ctx, 99, "Anything")
		assert.ErrorIs(t, err, user.ErrNotFound)

		_, err = svc.Create(ctx, alice.ID, "  ")
		assert.ErrorIs(t, err, itemrequest.ErrDescriptionRequired)
	})

	t.Run("ListOwn is newest first with answers", func(t *testing.T) {
		list, err := svc.ListOwn(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID)
		assert.Empty(t, list[0].Items)
		assert.Equal(t, first.ID, list[1].ID)
		require.Len(t, list[1].Items, 1)
		assert.Equal(t, answer.ID, list[1].Items[0].ID)
	})

	t.Run("ListOthers excludes own requests", func(t *testing.T) {
		list, err := svc.ListOthers(ctx, alice.ID, 0, 10)
		require.NoError(t, err)
		assert.Empty(t, list)

		list, err = svc.ListOthers(ctx, bob.ID, 0, 10)
		require.NoError(t, err)
		assert.Len(t, list, 2)

		list, err = svc.ListOthers(ctx, bob.ID, 1, 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, first.ID, list[0].ID)
	})

	t.Run("GetByID", func(t *testing.T) {
		got, err := svc.GetByID(ctx, bob.ID, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Need a ladder", got.Description)
		assert.Len(t, got.Items, 1)

		_, err = svc.GetByID(ctx, bob.ID, 404)
		assert.ErrorIs(t, err, itemrequest.ErrNotFound)

		_, err = svc.GetByID(ctx, 99, first.ID)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("Exists backs item creation checks", func(t *testing.T) {
		ok, err := repo.Exists(ctx, first.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Exists(ctx, 404)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
