package service

import (
	"context"
	"errors"

	"placebook/backend/internal/models"
	"placebook/backend/internal/store"
)

// FriendService drives the friendship state machine.
//
// A row moves None -> Pending (requester -> receiver) -> Accepted. Pending is
// directional; Accepted is treated symmetrically by every query.
type FriendService struct {
	store store.Store
}

// NewFriendService creates a FriendService.
func NewFriendService(st store.Store) *FriendService {
	return &FriendService{store: st}
}

// GetFriends returns the accepted rows in which userID takes part.
func (s *FriendService) GetFriends(ctx context.Context, userID uint) ([]models.Friendship, error) {
	if _, err := findUser(ctx, s.store, userID); err != nil {
		return nil, err
	}
	return s.store.Friendships().ListForUser(ctx, userID, models.StatusAccepted)
}

// GetInvitations returns the pending invitations received by userID.
func (s *FriendService) GetInvitations(ctx context.Context, userID uint) ([]models.Friendship, error) {
	if _, err := findUser(ctx, s.store, userID); err != nil {
		return nil, err
	}
	return s.store.Friendships().ListIncoming(ctx, userID, models.StatusPending)
}

// SendInvitation creates a pending invitation from requesterID to receiverUsername.
// It fails when any row already links the two users, in either direction.
func (s *FriendService) SendInvitation(ctx context.Context, requesterID uint, receiverUsername string) (*models.Friendship, error) {
	var created *models.Friendship

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		requester, receiver, err := findPair(ctx, tx, requesterID, receiverUsername)
		if err != nil {
			return err
		}

		if requester.ID == receiver.ID {
			return fail(ErrCannotInviteYourself, "Cannot send invite to yourself.")
		}

		_, err = tx.Friendships().FindPair(ctx, requester.ID, receiver.ID)
		if err == nil {
			return fail(ErrInvitationAlreadyExists, "Invitation already exists.")
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		friendship := &models.Friendship{
			RequesterID: requester.ID,
			ReceiverID:  receiver.ID,
			Status:      models.StatusPending,
		}
		if err := tx.Friendships().Create(ctx, friendship); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return fail(ErrInvitationAlreadyExists, "Invitation already exists.")
			}
			return err
		}

		created, err = tx.Friendships().Find(ctx, requester.ID, receiver.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// AcceptInvitation accepts the pending invitation sent by requesterUsername to
// receiverID. Only the receiver can accept.
func (s *FriendService) AcceptInvitation(ctx context.Context, receiverID uint, requesterUsername string) (*models.Friendship, error) {
	var accepted *models.Friendship

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		receiver, requester, err := findPair(ctx, tx, receiverID, requesterUsername)
		if err != nil {
			return err
		}

		friendship, err := findPending(ctx, tx, requester.ID, receiver.ID)
		if err != nil {
			return err
		}

		friendship.Status = models.StatusAccepted
		if err := tx.Friendships().Save(ctx, friendship); err != nil {
			return err
		}
		accepted = friendship
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accepted, nil
}

// DeleteInvitation withdraws a pending invitation sent by requesterID.
// Withdrawing an invitation that does not exist is not an error.
func (s *FriendService) DeleteInvitation(ctx context.Context, requesterID uint, receiverUsername string) error {
	return s.store.Transaction(ctx, func(tx store.Store) error {
		requester, receiver, err := findPair(ctx, tx, requesterID, receiverUsername)
		if err != nil {
			return err
		}

		friendship, err := tx.Friendships().Find(ctx, requester.ID, receiver.ID)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if friendship.Status != models.StatusPending {
			return nil
		}
		return tx.Friendships().Delete(ctx, friendship.ID)
	})
}

// DeclineInvitation rejects a pending invitation received by receiverID.
func (s *FriendService) DeclineInvitation(ctx context.Context, receiverID uint, requesterUsername string) error {
	return s.store.Transaction(ctx, func(tx store.Store) error {
		receiver, requester, err := findPair(ctx, tx, receiverID, requesterUsername)
		if err != nil {
			return err
		}

		friendship, err := findPending(ctx, tx, requester.ID, receiver.ID)
		if err != nil {
			return err
		}
		return tx.Friendships().Delete(ctx, friendship.ID)
	})
}

// DeleteFriend removes an accepted friendship, however it was stored.
func (s *FriendService) DeleteFriend(ctx context.Context, userID uint, otherUsername string) error {
	return s.store.Transaction(ctx, func(tx store.Store) error {
		user, other, err := findPair(ctx, tx, userID, otherUsername)
		if err != nil {
			return err
		}

		friendship, err := tx.Friendships().FindPair(ctx, user.ID, other.ID)
		if errors.Is(err, store.ErrNotFound) || (err == nil && friendship.Status != models.StatusAccepted) {
			return fail(ErrFriendshipNotFound, "Friendship not found between %s and %s", user.Username, other.Username)
		}
		if err != nil {
			return err
		}
		return tx.Friendships().Delete(ctx, friendship.ID)
	})
}

// IsFriendWith reports whether otherUsername is the counterpart of one of
// userID's accepted friendships.
func (s *FriendService) IsFriendWith(ctx context.Context, userID uint, otherUsername string) (bool, error) {
	friends, err := s.GetFriends(ctx, userID)
	if err != nil {
		return false, err
	}

	for _, f := range friends {
		counterpart := f.Requester
		if f.RequesterID == userID {
			counterpart = f.Receiver
		}
		if counterpart.Username == otherUsername {
			return true, nil
		}
	}
	return false, nil
}

func findUser(ctx context.Context, st store.Store, id uint) (*models.User, error) {
	user, err := st.Users().FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fail(ErrUserNotFound, "User not found: %d", id)
	}
	return user, err
}

// findPair loads the acting user by id and the other user by username.
func findPair(ctx context.Context, st store.Store, actorID uint, otherUsername string) (*models.User, *models.User, error) {
	actor, err := findUser(ctx, st, actorID)
	if err != nil {
		return nil, nil, err
	}

	other, err := st.Users().FindByUsername(ctx, otherUsername)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil, fail(ErrUserNotFound, "User '%s' not found", otherUsername)
	}
	if err != nil {
		return nil, nil, err
	}
	return actor, other, nil
}

func findPending(ctx context.Context, tx store.Store, requesterID, receiverID uint) (*models.Friendship, error) {
	friendship, err := tx.Friendships().Find(ctx, requesterID, receiverID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && friendship.Status != models.StatusPending) {
		return nil, fail(ErrInvitationNotFound, "Invitation not found")
	}
	return friendship, err
}
