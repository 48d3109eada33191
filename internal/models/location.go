package models

import "gorm.io/gorm"

// Location is a pickup/drop-off point. Coordinates are stored as a
// "lat,lng" string, matching what the mobile client sends.
type Location struct {
	gorm.Model
	Address     string `json:"address" gorm:"column:address;not null"`
	Coordinates string `json:"coordinates" gorm:"column:coordinates;not null"`
	Available   bool   `json:"available" gorm:"column:available;not null"`
}

// TableName specifies the table name
func (Location) TableName() string {
	return "locations"
}
