package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is a plan tier or capability tag carried by a user.
type Role string

const (
	RoleFree    Role = "FREE"
	RolePremium Role = "PREMIUM"
	RoleAdmin   Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleFree, RolePremium, RoleAdmin:
		return true
	}
	return false
}

// Roles is the set of roles held by a user. It is stored as a JSON array.
type Roles []Role

// Has reports whether the set contains r.
func (rs Roles) Has(r Role) bool {
	for _, role := range rs {
		if role == r {
			return true
		}
	}
	return false
}

// FreeOnly reports whether the set is exactly {FREE}, i.e. the user is subject
// to the free plan place quota.
func (rs Roles) FreeOnly() bool {
	return rs.Has(RoleFree) && !rs.Has(RolePremium) && !rs.Has(RoleAdmin)
}

// User represents a user in the system.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:255;unique;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Roles        Roles  `gorm:"serializer:json;type:text;not null"`

	// PlaceCount mirrors the number of places owned and is the counter the
	// free plan quota is checked against.
	PlaceCount int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate gives new users the free plan when no roles were assigned.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if len(u.Roles) == 0 {
		u.Roles = Roles{RoleFree}
	}
	return nil
}
