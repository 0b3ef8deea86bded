package models

import "gorm.io/gorm"

// FavoriteLocation is a place a user pinned for quick repeat lookups.
type FavoriteLocation struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Latitude    float64 `json:"latitude" gorm:"not null"`
	Longitude   float64 `json:"longitude" gorm:"not null"`
	CountryCode string  `json:"country_code"`
	UserID      string  `json:"-" gorm:"column:user_id;index"`
	gorm.Model
}

func (FavoriteLocation) TableName() string {
	return "favorite_locations"
}
