package models

import (
	"time"

	"gorm.io/datatypes"
)

// RoomType is the inventory-level record seeded by the admin tooling.
// TotalCount is the number of physical units of this type.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string         `gorm:"size:128" json:"name"`
	Type        string         `gorm:"size:32;uniqueIndex" json:"type"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `json:"price"`
	Capacity    int            `json:"capacity"`
	TotalCount  int            `gorm:"column:total_count" json:"totalCount"`
	Image       string         `gorm:"size:512" json:"image,omitempty"`
	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
}
