// Package store defines the persistence contracts used by the services and
// their gorm implementation.
package store

import (
	"context"
	"errors"

	"placebook/backend/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)

// Visibility narrows owner place listings.
type Visibility int

const (
	VisibilityAll Visibility = iota
	VisibilityPublic
	VisibilityPrivate
)

// PlaceFilter restricts ListByOwner. A blank Category matches every category.
type PlaceFilter struct {
	Category   string
	Visibility Visibility
}

// PlaceStore persists places and their shared-with memberships.
type PlaceStore interface {
	Create(ctx context.Context, place *models.Place) error
	Save(ctx context.Context, place *models.Place) error
	Delete(ctx context.Context, id uint) error
	DeleteByOwner(ctx context.Context, ownerID uint) error

	FindByID(ctx context.Context, id uint) (*models.Place, error)
	FindOwned(ctx context.Context, ownerID, id uint) (*models.Place, error)
	FindByOwnerAndName(ctx context.Context, ownerID uint, name string) (*models.Place, error)
	ListByOwner(ctx context.Context, ownerID uint, filter PlaceFilter) ([]models.Place, error)
	ListSharedWith(ctx context.Context, userID uint) ([]models.Place, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)

	AddShare(ctx context.Context, placeID, userID uint) error
	DeleteSharesForUser(ctx context.Context, userID uint) error
}

// UserStore persists users.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error

	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// FindByLogin matches either the username or the email.
	FindByLogin(ctx context.Context, login string) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]models.User, int64, error)

	// ReservePlaceSlot increments the user's place counter when it is below
	// limit and reports whether it did. A negative limit always succeeds.
	ReservePlaceSlot(ctx context.Context, userID uint, limit int) (bool, error)
	ReleasePlaceSlot(ctx context.Context, userID uint) error
}

// CategoryStore persists categories.
type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
}

// FriendshipStore persists friendship rows.
type FriendshipStore interface {
	Create(ctx context.Context, friendship *models.Friendship) error
	Save(ctx context.Context, friendship *models.Friendship) error
	Delete(ctx context.Context, id uint) error
	DeleteForUser(ctx context.Context, userID uint) error

	// Find returns the row with exactly this direction.
	Find(ctx context.Context, requesterID, receiverID uint) (*models.Friendship, error)
	// FindPair returns the row for the unordered pair, whatever its direction.
	FindPair(ctx context.Context, a, b uint) (*models.Friendship, error)
	// ListForUser returns rows where the user is requester or receiver.
	ListForUser(ctx context.Context, userID uint, status models.FriendshipStatus) ([]models.Friendship, error)
	// ListIncoming returns rows where the user is the receiver.
	ListIncoming(ctx context.Context, userID uint, status models.FriendshipStatus) ([]models.Friendship, error)
}

// Store groups the per-entity stores and runs units of work.
type Store interface {
	Places() PlaceStore
	Users() UserStore
	Categories() CategoryStore
	Friendships() FriendshipStore

	// Transaction runs fn against a Store bound to one database transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
