package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking lifecycle: pending -> confirmed -> cancelled. Cancelled is
// terminal; bookings are never physically deleted outside the bulk
// admin operation.
type Booking struct {
	gorm.Model
	UserID            uint          `json:"userId" gorm:"not null"`
	User              *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CarID             uint          `json:"carId" gorm:"not null"`
	Car               *Car          `json:"car,omitempty" gorm:"foreignKey:CarID"`
	PickupLocationID  uint          `json:"pickupLocationId" gorm:"not null"`
	PickupLocation    *Location     `json:"pickupLocation,omitempty" gorm:"foreignKey:PickupLocationID"`
	DropOffLocationID uint          `json:"dropOffLocationId" gorm:"not null"`
	DropOffLocation   *Location     `json:"dropOffLocation,omitempty" gorm:"foreignKey:DropOffLocationID"`
	RentalStartDate   time.Time     `json:"rentalStartDate" gorm:"not null"`
	RentalEndDate     time.Time     `json:"rentalEndDate" gorm:"not null"`
	Status            BookingStatus `json:"status" gorm:"not null;default:'pending'"`
}

// TableName specifies the table name
func (Booking) TableName() string {
	return "bookings"
}
