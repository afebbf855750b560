package models

import "time"

// Place is a geographic point saved by a user.
// Names are unique per owner, not globally.
type Place struct {
	ID         uint    `gorm:"primaryKey"`
	UserID     uint    `gorm:"not null;uniqueIndex:idx_places_owner_name"`
	Name       string  `gorm:"size:255;not null;uniqueIndex:idx_places_owner_name"`
	CategoryID uint    `gorm:"not null;index"`
	Latitude   float64 `gorm:"not null"`
	Longitude  float64 `gorm:"not null"`
	Address    string  `gorm:"size:512"`
	City       string  `gorm:"size:255"`
	Country    string  `gorm:"size:255"`
	Note       string
	IsPublic   bool      `gorm:"not null"`
	PostDate   time.Time `gorm:"not null"`
	UpdatedAt  time.Time

	User       User     `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Category   Category `gorm:"foreignKey:CategoryID"`
	SharedWith []User   `gorm:"many2many:place_shares;"`
}

// PlaceShare is the join row granting a user read access to a place.
type PlaceShare struct {
	PlaceID   uint `gorm:"primaryKey"`
	UserID    uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Place Place `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	User  User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
