package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"placebook/backend/internal/database"
	"placebook/backend/internal/models"
	"placebook/backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *store.GormStore {
	t.Helper()
	db, err := database.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return store.New(db)
}

func mustUser(t *testing.T, st store.Store, name string) *models.User {
	t.Helper()
	u := &models.User{Username: name, Email: name + "@example.com", PasswordHash: "x"}
	require.NoError(t, st.Users().Create(context.Background(), u))
	return u
}

func mustCategory(t *testing.T, st store.Store, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	require.NoError(t, st.Categories().Create(context.Background(), c))
	return c
}

func mustPlace(t *testing.T, st store.Store, owner *models.User, category *models.Category, name string, public bool) *models.Place {
	t.Helper()
	p := &models.Place{
		UserID:     owner.ID,
		CategoryID: category.ID,
		Name:       name,
		Latitude:   1,
		Longitude:  1,
		IsPublic:   public,
		PostDate:   time.Now(),
	}
	require.NoError(t, st.Places().Create(context.Background(), p))
	return p
}

func TestUserDefaultsToFreePlan(t *testing.T) {
	st := newStore(t)
	u := mustUser(t, st, "alice")

	got, err := st.Users().FindByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Roles{models.RoleFree}, got.Roles)
	assert.Zero(t, got.PlaceCount)
}

func TestUserLookups(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	u := mustUser(t, st, "alice")

	byLogin, err := st.Users().FindByLogin(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byLogin.ID)

	_, err = st.Users().FindByUsername(ctx, "bob")
	assert.ErrorIs(t, err, store.ErrNotFound)

	dup := &models.User{Username: "alice", Email: "other@example.com", PasswordHash: "x"}
	assert.ErrorIs(t, st.Users().Create(ctx, dup), store.ErrDuplicate)
}

func TestReservePlaceSlot(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	u := mustUser(t, st, "alice")

	for i := 0; i < 2; i++ {
		ok, err := st.Users().ReservePlaceSlot(ctx, u.ID, 2)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := st.Users().ReservePlaceSlot(ctx, u.ID, 2)
	require.NoError(t, err)
	assert.False(t, ok, "counter is at the limit")

	ok, err = st.Users().ReservePlaceSlot(ctx, u.ID, -1)
	require.NoError(t, err)
	assert.True(t, ok, "negative limit is unbounded")

	require.NoError(t, st.Users().ReleasePlaceSlot(ctx, u.ID))

	got, err := st.Users().FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.PlaceCount)
}

func TestReleasePlaceSlotStopsAtZero(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	u := mustUser(t, st, "alice")

	require.NoError(t, st.Users().ReleasePlaceSlot(ctx, u.ID))

	got, err := st.Users().FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, got.PlaceCount)
}

func TestPlaceNameUniquePerOwner(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	alice := mustUser(t, st, "alice")
	bob := mustUser(t, st, "bob")
	park := mustCategory(t, st, "Park")

	mustPlace(t, st, alice, park, "Home", true)
	mustPlace(t, st, bob, park, "Home", true)

	dup := &models.Place{UserID: alice.ID, CategoryID: park.ID, Name: "Home", Latitude: 2, Longitude: 2, PostDate: time.Now()}
	assert.ErrorIs(t, st.Places().Create(ctx, dup), store.ErrDuplicate)
}

func TestListByOwnerFilters(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	alice := mustUser(t, st, "alice")
	park := mustCategory(t, st, "Park")
	cafe := mustCategory(t, st, "Cafe")

	first := mustPlace(t, st, alice, park, "Public park", true)
	mustPlace(t, st, alice, park, "Private park", false)
	mustPlace(t, st, alice, cafe, "Public cafe", true)

	tests := []struct {
		name   string
		filter store.PlaceFilter
		want   []string
	}{
		{name: "all", filter: store.PlaceFilter{}, want: []string{"Public park", "Private park", "Public cafe"}},
		{name: "public", filter: store.PlaceFilter{Visibility: store.VisibilityPublic}, want: []string{"Public park", "Public cafe"}},
		{name: "private", filter: store.PlaceFilter{Visibility: store.VisibilityPrivate}, want: []string{"Private park"}},
		{name: "category", filter: store.PlaceFilter{Category: "Park"}, want: []string{"Public park", "Private park"}},
		{name: "public category", filter: store.PlaceFilter{Category: "Cafe", Visibility: store.VisibilityPublic}, want: []string{"Public cafe"}},
		{name: "unknown category", filter: store.PlaceFilter{Category: "Zoo"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			places, err := st.Places().ListByOwner(ctx, alice.ID, tt.filter)
			require.NoError(t, err)

			var names []string
			for _, p := range places {
				names = append(names, p.Name)
				assert.NotEmpty(t, p.Category.Name, "category is preloaded")
			}
			assert.Equal(t, tt.want, names)
		})
	}

	got, err := st.Places().FindOwned(ctx, alice.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.User.Username)
}

func TestShares(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	alice := mustUser(t, st, "alice")
	bob := mustUser(t, st, "bob")
	park := mustCategory(t, st, "Park")
	p := mustPlace(t, st, alice, park, "Park", true)

	require.NoError(t, st.Places().AddShare(ctx, p.ID, bob.ID))
	require.NoError(t, st.Places().AddShare(ctx, p.ID, bob.ID), "second share is ignored")

	shared, err := st.Places().ListSharedWith(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, shared, 1)
	require.Len(t, shared[0].SharedWith, 1)
	assert.Equal(t, "bob", shared[0].SharedWith[0].Username)

	require.NoError(t, st.Places().DeleteSharesForUser(ctx, bob.ID))
	shared, err = st.Places().ListSharedWith(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, shared)
}

func TestDeletePlaceRemovesShares(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	alice := mustUser(t, st, "alice")
	bob := mustUser(t, st, "bob")
	park := mustCategory(t, st, "Park")
	p := mustPlace(t, st, alice, park, "Park", true)
	require.NoError(t, st.Places().AddShare(ctx, p.ID, bob.ID))

	require.NoError(t, st.Places().Delete(ctx, p.ID))
	assert.ErrorIs(t, st.Places().Delete(ctx, p.ID), store.ErrNotFound)

	count, err := st.Places().CountByCategory(ctx, park.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFriendshipPairKey(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	alice := mustUser(t, st, "alice")
	bob := mustUser(t, st, "bob")

	f := &models.Friendship{RequesterID: alice.ID, ReceiverID: bob.ID, Status: models.StatusPending}
	require.NoError(t, st.Friendships().Create(ctx, f))
	assert.Equal(t, models.PairKey(alice.ID, bob.ID), f.PairKey)

	reverse := &models.Friendship{RequesterID: bob.ID, ReceiverID: alice.ID, Status: models.StatusPending}
	assert.ErrorIs(t, st.Friendships().Create(ctx, reverse), store.ErrDuplicate)

	got, err := st.Friendships().FindPair(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, f.ID, got.ID)
	assert.Equal(t, "alice", got.Requester.Username)

	_, err = st.Friendships().Find(ctx, bob.ID, alice.ID)
	assert.ErrorIs(t, err, store.ErrNotFound, "Find is directional")

	incoming, err := st.Friendships().ListIncoming(ctx, bob.ID, models.StatusPending)
	require.NoError(t, err)
	assert.Len(t, incoming, 1)

	accepted, err := st.Friendships().ListForUser(ctx, alice.ID, models.StatusAccepted)
	require.NoError(t, err)
	assert.Empty(t, accepted)

	require.NoError(t, st.Friendships().Delete(ctx, f.ID))
	assert.ErrorIs(t, st.Friendships().Delete(ctx, f.ID), store.ErrNotFound)
}

func TestTransactionRollsBack(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := st.Transaction(ctx, func(tx store.Store) error {
		mustUser(t, tx, "ghost")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = st.Users().FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCategoryDeleteIsHard(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()
	c := mustCategory(t, st, "Zoo")

	require.NoError(t, st.Categories().Delete(ctx, c.ID))
	assert.ErrorIs(t, st.Categories().Delete(ctx, c.ID), store.ErrNotFound)

	mustCategory(t, st, "Zoo")

	list, err := st.Categories().List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
