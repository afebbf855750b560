// Package service holds the place book's business rules: place ownership and
// quotas, proximity search, sharing and the friendship state machine.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"placebook/backend/internal/geo"
	"placebook/backend/internal/models"
	"placebook/backend/internal/store"
)

// FreePlaceLimit is the maximum number of places a free plan user may own.
const FreePlaceLimit = 10

// LocationResolver turns partial coordinate/address input into a location.
type LocationResolver interface {
	Resolve(ctx context.Context, lat, lng float64, address string) (geo.Location, error)
}

// CreatePlaceInput holds the fields of a new place. IsPublic defaults to true.
type CreatePlaceInput struct {
	Name      string
	Category  string
	Latitude  float64
	Longitude float64
	Address   string
	Note      string
	IsPublic  *bool
}

// UpdatePlaceInput holds a partial update. Absent and blank string fields keep
// the current value.
type UpdatePlaceInput struct {
	Name      Optional[string]
	Category  Optional[string]
	Latitude  Optional[float64]
	Longitude Optional[float64]
	Address   Optional[string]
	Note      Optional[string]
}

// PlaceService manages the places owned by a user.
type PlaceService struct {
	store    store.Store
	resolver LocationResolver
	friends  *FriendService
	now      func() time.Time
}

// NewPlaceService creates a PlaceService.
func NewPlaceService(st store.Store, resolver LocationResolver, friends *FriendService) *PlaceService {
	return &PlaceService{
		store:    st,
		resolver: resolver,
		friends:  friends,
		now:      time.Now,
	}
}

// SetClock replaces the clock used to stamp new places.
func (s *PlaceService) SetClock(now func() time.Time) {
	s.now = now
}

// Create saves a new place for ownerID.
func (s *PlaceService) Create(ctx context.Context, ownerID uint, in CreatePlaceInput) (*models.Place, error) {
	var created *models.Place

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		owner, err := tx.Users().FindByID(ctx, ownerID)
		if errors.Is(err, store.ErrNotFound) {
			return fail(ErrUserNotFound, "User not found: %d", ownerID)
		}
		if err != nil {
			return err
		}

		if err := s.reserveSlot(ctx, tx, owner); err != nil {
			return err
		}

		if err := ensureNameFree(ctx, tx, owner.ID, in.Name); err != nil {
			return err
		}

		category, err := findCategory(ctx, tx, in.Category)
		if err != nil {
			return err
		}

		loc, err := s.resolve(ctx, in.Latitude, in.Longitude, in.Address)
		if err != nil {
			return err
		}

		place := &models.Place{
			UserID:     owner.ID,
			Name:       in.Name,
			CategoryID: category.ID,
			Latitude:   loc.Lat,
			Longitude:  loc.Lng,
			Address:    loc.Address,
			City:       loc.City,
			Country:    loc.Country,
			Note:       in.Note,
			IsPublic:   in.IsPublic == nil || *in.IsPublic,
			PostDate:   s.now(),
		}
		if err := tx.Places().Create(ctx, place); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return fail(ErrPlaceAlreadyExists, "Place already exists: %s", in.Name)
			}
			return err
		}

		created, err = tx.Places().FindByID(ctx, place.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// reserveSlot bumps the owner's place counter. For free plan users the bump
// is conditional on the counter being under the limit, so concurrent creates
// cannot overshoot it.
func (s *PlaceService) reserveSlot(ctx context.Context, tx store.Store, owner *models.User) error {
	limit := -1
	if owner.Roles.FreeOnly() {
		limit = FreePlaceLimit
	}

	ok, err := tx.Users().ReservePlaceSlot(ctx, owner.ID, limit)
	if err != nil {
		return err
	}
	if !ok {
		return fail(ErrPlaceLimitExceeded,
			"Users on the free plan can add at most %d places. Upgrade to premium to add places without a limit.",
			FreePlaceLimit)
	}
	return nil
}

// Update applies a partial update to a place owned by ownerID.
func (s *PlaceService) Update(ctx context.Context, ownerID, placeID uint, in UpdatePlaceInput) (*models.Place, error) {
	var updated *models.Place

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		place, err := tx.Places().FindOwned(ctx, ownerID, placeID)
		if errors.Is(err, store.ErrNotFound) {
			return fail(ErrPlaceNotFound, "Place not found or does not belong to user")
		}
		if err != nil {
			return err
		}

		if name := in.Category.OrZero(); !isBlank(name) {
			category, err := findCategory(ctx, tx, name)
			if err != nil {
				return err
			}
			place.CategoryID = category.ID
			place.Category = *category
		}

		lat, lng, address := in.Latitude.OrZero(), in.Longitude.OrZero(), in.Address.OrZero()
		if (lat != 0 && lng != 0) || !isBlank(address) {
			loc, err := s.resolve(ctx, lat, lng, address)
			if err != nil {
				return err
			}
			place.Latitude = loc.Lat
			place.Longitude = loc.Lng
			place.Address = loc.Address
			place.City = loc.City
			place.Country = loc.Country
		}

		if name := in.Name.OrZero(); !isBlank(name) && name != place.Name {
			if err := ensureNameFree(ctx, tx, ownerID, name); err != nil {
				return err
			}
			place.Name = name
		}

		if note := in.Note.OrZero(); !isBlank(note) {
			place.Note = note
		}

		if err := tx.Places().Save(ctx, place); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return fail(ErrPlaceAlreadyExists, "Place already exists: %s", place.Name)
			}
			return err
		}

		updated, err = tx.Places().FindByID(ctx, place.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete permanently removes a place and its sharing memberships.
func (s *PlaceService) Delete(ctx context.Context, ownerID, placeID uint) error {
	return s.store.Transaction(ctx, func(tx store.Store) error {
		place, err := tx.Places().FindByID(ctx, placeID)
		if errors.Is(err, store.ErrNotFound) {
			return fail(ErrPlaceNotFound, "Place not found with id: %d", placeID)
		}
		if err != nil {
			return err
		}

		if place.UserID != ownerID {
			return fail(ErrResourceOwnership, "User does not own this place")
		}

		if err := tx.Places().Delete(ctx, place.ID); err != nil {
			return err
		}
		return tx.Users().ReleasePlaceSlot(ctx, ownerID)
	})
}

// FindAll returns every place owned by ownerID.
func (s *PlaceService) FindAll(ctx context.Context, ownerID uint) ([]models.Place, error) {
	return s.store.Places().ListByOwner(ctx, ownerID, store.PlaceFilter{})
}

// FindAllPrivate returns the private places owned by ownerID.
func (s *PlaceService) FindAllPrivate(ctx context.Context, ownerID uint) ([]models.Place, error) {
	return s.store.Places().ListByOwner(ctx, ownerID, store.PlaceFilter{Visibility: store.VisibilityPrivate})
}

// FindByID returns a place owned by ownerID.
func (s *PlaceService) FindByID(ctx context.Context, ownerID, placeID uint) (*models.Place, error) {
	place, err := s.store.Places().FindOwned(ctx, ownerID, placeID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fail(ErrPlaceNotFound, "Place not found or does not belong to user")
	}
	return place, err
}

// FindFriendPlaces returns the public places of an accepted friend.
func (s *PlaceService) FindFriendPlaces(ctx context.Context, ownerID uint, friendUsername string) ([]models.Place, error) {
	ok, err := s.friends.IsFriendWith(ctx, ownerID, friendUsername)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fail(ErrFriendNotFound, "You have no friend named: %s", friendUsername)
	}

	friend, err := s.store.Users().FindByUsername(ctx, friendUsername)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fail(ErrFriendNotFound, "You have no friend named: %s", friendUsername)
	}
	if err != nil {
		return nil, err
	}

	return s.store.Places().ListByOwner(ctx, friend.ID, store.PlaceFilter{Visibility: store.VisibilityPublic})
}

func (s *PlaceService) resolve(ctx context.Context, lat, lng float64, address string) (geo.Location, error) {
	loc, err := s.resolver.Resolve(ctx, lat, lng, address)
	if err != nil {
		return geo.Location{}, &Error{Kind: ErrInvalidLocation, Detail: err.Error()}
	}
	return loc, nil
}

func ensureNameFree(ctx context.Context, tx store.Store, ownerID uint, name string) error {
	_, err := tx.Places().FindByOwnerAndName(ctx, ownerID, name)
	switch {
	case err == nil:
		return fail(ErrPlaceAlreadyExists, "Place already exists: %s", name)
	case errors.Is(err, store.ErrNotFound):
		return nil
	}
	return err
}

func findCategory(ctx context.Context, tx store.Store, name string) (*models.Category, error) {
	category, err := tx.Categories().FindByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fail(ErrCategoryNotFound, "Category not found: %s", name)
	}
	return category, err
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
