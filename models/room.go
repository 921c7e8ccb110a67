package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoomTypeNormal  = "normal"
	RoomTypePremium = "premium"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name       string `gorm:"size:128" json:"name"`
	RoomNumber string `gorm:"column:room_number;size:16;index" json:"roomNumber"`

	Type        string  `gorm:"size:32" json:"type"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`

	// Advisory flag, flipped by booking confirmation and cancellation. The
	// availability engine is the authoritative overlap check.
	Available bool `gorm:"default:true" json:"available"`

	Image     string         `gorm:"size:512" json:"image,omitempty"`
	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
}
