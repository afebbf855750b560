package service_test

import (
	"context"
	"fmt"
	"testing"

	"placebook/backend/internal/models"
	"placebook/backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Register(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, models.Roles{models.RoleFree}, user.Roles)
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	_, err = env.users.Register(ctx, "alice", "other@example.com", "x")
	assert.ErrorIs(t, err, service.ErrUserAlreadyExists)

	_, err = env.users.Register(ctx, "other", "alice@example.com", "x")
	assert.ErrorIs(t, err, service.ErrUserAlreadyExists)

	for _, login := range []string{"alice", "alice@example.com"} {
		got, err := env.users.Authenticate(ctx, login, "s3cret")
		require.NoError(t, err, login)
		assert.Equal(t, user.ID, got.ID)
	}

	_, err = env.users.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = env.users.Authenticate(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestUpdateProfileAndPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice, err := env.users.Register(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	_, err = env.users.Register(ctx, "bob", "bob@example.com", "s3cret")
	require.NoError(t, err)

	updated, err := env.users.UpdateProfile(ctx, alice.ID, service.UpdateProfileInput{
		Email: service.Some("alice@placebook.dev"),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "alice@placebook.dev", updated.Email)

	_, err = env.users.UpdateProfile(ctx, alice.ID, service.UpdateProfileInput{
		Username: service.Some("bob"),
	})
	assert.ErrorIs(t, err, service.ErrUserAlreadyExists)

	require.NoError(t, env.users.ChangePassword(ctx, alice.ID, "n3w"))

	_, err = env.users.Authenticate(ctx, "alice", "s3cret")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = env.users.Authenticate(ctx, "alice", "n3w")
	assert.NoError(t, err)
}

func TestSetRolesLiftsQuota(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.user(t, "owner")

	for i := 0; i < service.FreePlaceLimit; i++ {
		env.place(t, owner, fmt.Sprintf("place-%d", i), "Park", 10+float64(i), 10)
	}

	updated, err := env.users.SetRoles(ctx, owner.ID, models.Roles{models.RoleFree, models.RolePremium, models.RolePremium})
	require.NoError(t, err)
	assert.Equal(t, models.Roles{models.RoleFree, models.RolePremium}, updated.Roles)

	env.place(t, owner, "eleventh", "Park", 1, 1)

	cleared, err := env.users.SetRoles(ctx, owner.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, models.Roles{models.RoleFree}, cleared.Roles)

	_, err = env.places.Create(ctx, owner.ID, service.CreatePlaceInput{
		Name: "twelfth", Category: "Park", Latitude: 2, Longitude: 2, Address: "x",
	})
	assert.ErrorIs(t, err, service.ErrPlaceLimitExceeded)
}

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		env.user(t, fmt.Sprintf("user-%d", i))
	}

	page, total, err := env.users.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page, 2)
	assert.Equal(t, "user-2", page[0].Username)

	last, _, err := env.users.List(ctx, 3, 2)
	require.NoError(t, err)
	assert.Len(t, last, 1)
}

func TestDeleteUserCascades(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	ctx := context.Background()

	park := env.place(t, alice, "Park", "Park", 1, 1)
	bobsPlace := env.place(t, bob, "Bench", "Park", 2, 2)
	env.befriend(t, alice, bob)
	_, err := env.sharing.Share(ctx, alice.ID, "bob", park.ID)
	require.NoError(t, err)
	_, err = env.sharing.Share(ctx, bob.ID, "alice", bobsPlace.ID)
	require.NoError(t, err)

	require.NoError(t, env.users.Delete(ctx, alice.ID))

	_, err = env.users.Get(ctx, alice.ID)
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	shared, err := env.sharing.ListShared(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, shared)

	friends, err := env.friends.GetFriends(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	remaining, err := env.places.FindByID(ctx, bob.ID, bobsPlace.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining.SharedWith)

	err = env.users.Delete(ctx, alice.ID)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestEnsureAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.users.EnsureAdmin(ctx, "admin", "admin@example.com", "pw")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = env.users.EnsureAdmin(ctx, "admin", "admin@example.com", "pw")
	require.NoError(t, err)
	assert.False(t, created)

	admin, err := env.users.Authenticate(ctx, "admin", "pw")
	require.NoError(t, err)
	assert.True(t, admin.Roles.Has(models.RoleAdmin))
}
