package models

import (
	"fmt"
	"time"
)

// FriendshipStatus defines the state of a relationship between two users.
type FriendshipStatus string

const (
	// StatusPending means an invitation has been sent but not yet accepted.
	// It is directional: requester -> receiver.
	StatusPending FriendshipStatus = "pending"

	// StatusAccepted means the invitation was accepted and the users are friends.
	// Queries treat it symmetrically.
	StatusAccepted FriendshipStatus = "accepted"
)

// Friendship represents the relationship between two users.
// PairKey is unique, so at most one row exists per unordered pair of users.
type Friendship struct {
	ID          uint             `gorm:"primaryKey"`
	RequesterID uint             `gorm:"not null;index"`
	ReceiverID  uint             `gorm:"not null;index"`
	PairKey     string           `gorm:"size:64;not null;uniqueIndex"`
	Status      FriendshipStatus `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Requester User `gorm:"foreignKey:RequesterID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Receiver  User `gorm:"foreignKey:ReceiverID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// PairKey returns the order-independent key of two user ids.
func PairKey(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}

// Counterpart returns the id of the user on the other side of the row.
func (f Friendship) Counterpart(userID uint) uint {
	if f.RequesterID == userID {
		return f.ReceiverID
	}
	return f.RequesterID
}
