package service_test

import (
	"context"
	"testing"

	"placebook/backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShare(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	ctx := context.Background()
	park := env.place(t, alice, "Park", "Park", 52.23, 21.0)

	shared, err := env.sharing.Share(ctx, alice.ID, "bob", park.ID)
	require.NoError(t, err)
	require.Len(t, shared.SharedWith, 1)
	assert.Equal(t, "bob", shared.SharedWith[0].Username)

	t.Run("sharing again is idempotent", func(t *testing.T) {
		again, err := env.sharing.Share(ctx, alice.ID, "bob", park.ID)
		require.NoError(t, err)
		assert.Len(t, again.SharedWith, 1)

		list, err := env.sharing.ListShared(ctx, bob.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("with yourself fails before the place is looked up", func(t *testing.T) {
		_, err := env.sharing.Share(ctx, alice.ID, "alice", park.ID)
		assert.ErrorIs(t, err, service.ErrCannotShareWithYourself)

		_, err = env.sharing.Share(ctx, alice.ID, "alice", 9999)
		assert.ErrorIs(t, err, service.ErrCannotShareWithYourself)
	})

	t.Run("place of another owner", func(t *testing.T) {
		_, err := env.sharing.Share(ctx, bob.ID, "alice", park.ID)
		assert.ErrorIs(t, err, service.ErrPlaceNotFound)
	})

	t.Run("unknown receiver", func(t *testing.T) {
		_, err := env.sharing.Share(ctx, alice.ID, "nobody", park.ID)
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})

	t.Run("does not require friendship", func(t *testing.T) {
		carol := env.user(t, "carol")
		_, err := env.sharing.Share(ctx, alice.ID, "carol", park.ID)
		require.NoError(t, err)

		list, err := env.sharing.ListShared(ctx, carol.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, park.ID, list[0].ID)
	})
}

func TestListSharedIncludesPrivatePlaces(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	ctx := context.Background()

	private, err := env.places.Create(ctx, alice.ID, service.CreatePlaceInput{
		Name: "Diary spot", Category: "Cafe", Latitude: 2, Longitude: 2, Address: "x", IsPublic: boolPtr(false),
	})
	require.NoError(t, err)

	_, err = env.sharing.Share(ctx, alice.ID, "bob", private.ID)
	require.NoError(t, err)

	list, err := env.sharing.ListShared(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsPublic)

	mine, err := env.sharing.ListShared(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}
