package service

import (
	"context"
	"errors"

	"placebook/backend/internal/models"
	"placebook/backend/internal/store"
)

// SharingService grants other users read access to places.
type SharingService struct {
	store store.Store
}

// NewSharingService creates a SharingService.
func NewSharingService(st store.Store) *SharingService {
	return &SharingService{store: st}
}

// Share adds receiverUsername to the shared-with set of a place owned by
// ownerID. Sharing again with the same user is a no-op.
func (s *SharingService) Share(ctx context.Context, ownerID uint, receiverUsername string, placeID uint) (*models.Place, error) {
	var shared *models.Place

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		owner, err := tx.Users().FindByID(ctx, ownerID)
		if errors.Is(err, store.ErrNotFound) {
			return fail(ErrUserNotFound, "User not found: %d", ownerID)
		}
		if err != nil {
			return err
		}

		if owner.Username == receiverUsername {
			return fail(ErrCannotShareWithYourself, "Cannot share place to yourself.")
		}

		place, err := tx.Places().FindOwned(ctx, ownerID, placeID)
		if errors.Is(err, store.ErrNotFound) {
			return fail(ErrPlaceNotFound, "Place not found or does not belong to user")
		}
		if err != nil {
			return err
		}

		receiver, err := tx.Users().FindByUsername(ctx, receiverUsername)
		if errors.Is(err, store.ErrNotFound) {
			return fail(ErrUserNotFound, "User not found: %s", receiverUsername)
		}
		if err != nil {
			return err
		}

		if err := tx.Places().AddShare(ctx, place.ID, receiver.ID); err != nil {
			return err
		}

		shared, err = tx.Places().FindByID(ctx, place.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return shared, nil
}

// ListShared returns every place shared with userID.
func (s *SharingService) ListShared(ctx context.Context, userID uint) ([]models.Place, error) {
	return s.store.Places().ListSharedWith(ctx, userID)
}
