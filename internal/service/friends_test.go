package service_test

import (
	"context"
	"testing"

	"placebook/backend/internal/models"
	"placebook/backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendInvitation(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	ctx := context.Background()

	_, err := env.friends.SendInvitation(ctx, alice.ID, "alice")
	assert.ErrorIs(t, err, service.ErrCannotInviteYourself)

	_, err = env.friends.SendInvitation(ctx, alice.ID, "nobody")
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	invitation, err := env.friends.SendInvitation(ctx, alice.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, invitation.RequesterID)
	assert.Equal(t, bob.ID, invitation.ReceiverID)
	assert.Equal(t, "bob", invitation.Receiver.Username)
	assert.Equal(t, models.StatusPending, invitation.Status)

	_, err = env.friends.SendInvitation(ctx, alice.ID, "bob")
	assert.ErrorIs(t, err, service.ErrInvitationAlreadyExists)

	_, err = env.friends.SendInvitation(ctx, bob.ID, "alice")
	assert.ErrorIs(t, err, service.ErrInvitationAlreadyExists, "reverse direction is the same pair")

	incoming, err := env.friends.GetInvitations(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, "alice", incoming[0].Requester.Username)

	outgoing, err := env.friends.GetInvitations(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, outgoing)
}

func TestAcceptInvitation(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	ctx := context.Background()

	_, err := env.friends.AcceptInvitation(ctx, bob.ID, "alice")
	assert.ErrorIs(t, err, service.ErrInvitationNotFound)

	_, err = env.friends.SendInvitation(ctx, alice.ID, "bob")
	require.NoError(t, err)

	_, err = env.friends.AcceptInvitation(ctx, alice.ID, "bob")
	assert.ErrorIs(t, err, service.ErrInvitationNotFound, "only the receiver can accept")

	accepted, err := env.friends.AcceptInvitation(ctx, bob.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, accepted.Status)

	_, err = env.friends.AcceptInvitation(ctx, bob.ID, "alice")
	assert.ErrorIs(t, err, service.ErrInvitationNotFound, "already accepted")

	for _, u := range []*models.User{alice, bob} {
		friends, err := env.friends.GetFriends(ctx, u.ID)
		require.NoError(t, err)
		assert.Len(t, friends, 1)
	}

	ok, err := env.friends.IsFriendWith(ctx, alice.ID, "bob")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = env.friends.IsFriendWith(ctx, bob.ID, "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	invitations, err := env.friends.GetInvitations(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, invitations)
}

func TestDeleteInvitation(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	ctx := context.Background()

	assert.NoError(t, env.friends.DeleteInvitation(ctx, alice.ID, "bob"), "withdrawing nothing is a no-op")

	_, err := env.friends.SendInvitation(ctx, alice.ID, "bob")
	require.NoError(t, err)

	require.NoError(t, env.friends.DeleteInvitation(ctx, alice.ID, "bob"))

	invitations, err := env.friends.GetInvitations(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, invitations)

	err = env.friends.DeleteInvitation(ctx, alice.ID, "nobody")
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	t.Run("accepted friendship is not withdrawn", func(t *testing.T) {
		env.befriend(t, alice, bob)
		require.NoError(t, env.friends.DeleteInvitation(ctx, alice.ID, "bob"))

		ok, err := env.friends.IsFriendWith(ctx, alice.ID, "bob")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestDeclineInvitation(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	ctx := context.Background()

	_, err := env.friends.SendInvitation(ctx, alice.ID, "bob")
	require.NoError(t, err)

	err = env.friends.DeclineInvitation(ctx, alice.ID, "bob")
	assert.ErrorIs(t, err, service.ErrInvitationNotFound, "the requester cannot decline")

	require.NoError(t, env.friends.DeclineInvitation(ctx, bob.ID, "alice"))

	err = env.friends.DeclineInvitation(ctx, bob.ID, "alice")
	assert.ErrorIs(t, err, service.ErrInvitationNotFound)

	_, err = env.friends.SendInvitation(ctx, bob.ID, "alice")
	assert.NoError(t, err, "a declined pair can start over")
}

func TestDeleteFriend(t *testing.T) {
	tests := []struct {
		name   string
		actor  func(alice, bob *models.User) *models.User
		target string
	}{
		{name: "by requester", actor: func(a, _ *models.User) *models.User { return a }, target: "bob"},
		{name: "by receiver", actor: func(_, b *models.User) *models.User { return b }, target: "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			alice := env.user(t, "alice")
			bob := env.user(t, "bob")
			ctx := context.Background()
			env.befriend(t, alice, bob)

			require.NoError(t, env.friends.DeleteFriend(ctx, tt.actor(alice, bob).ID, tt.target))

			friends, err := env.friends.GetFriends(ctx, alice.ID)
			require.NoError(t, err)
			assert.Empty(t, friends)

			err = env.friends.DeleteFriend(ctx, tt.actor(alice, bob).ID, tt.target)
			assert.ErrorIs(t, err, service.ErrFriendshipNotFound)
		})
	}
}

func TestDeleteFriendPendingIsNotAFriendship(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	env.user(t, "bob")
	ctx := context.Background()

	_, err := env.friends.SendInvitation(ctx, alice.ID, "bob")
	require.NoError(t, err)

	err = env.friends.DeleteFriend(ctx, alice.ID, "bob")
	assert.ErrorIs(t, err, service.ErrFriendshipNotFound)
}

func TestGetFriendsUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.friends.GetFriends(context.Background(), 42)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
