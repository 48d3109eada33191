package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Car represents a rentable car. Availability is false while a confirmed
// booking references the car; the bookings handler owns that transition.
type Car struct {
	gorm.Model
	Brand          string            `json:"brand" gorm:"column:brand;not null"`
	CarModel       string            `json:"model" gorm:"column:model;not null"`
	Type           string            `json:"type" gorm:"column:type;not null"`
	Price          float64           `json:"price" gorm:"column:price;not null"`
	NumberOfSeats  int               `json:"number_of_seats" gorm:"column:number_of_seats;not null"`
	Specifications datatypes.JSONMap `json:"specifications" gorm:"column:specifications"`
	// No column default: gorm skips zero-value fields that carry one,
	// which would silently turn an explicit false back into true. The
	// handlers apply the true default instead.
	Availability bool      `json:"availability" gorm:"column:availability;not null"`
	LocationID   *uint     `json:"location_id,omitempty"`
	Location     *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	Image        string    `json:"image"`
}

// TableName specifies the table name
func (Car) TableName() string {
	return "cars"
}
