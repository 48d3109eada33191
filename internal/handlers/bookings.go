package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chachabrian/rentacar-backend/internal/models"
	"github.com/chachabrian/rentacar-backend/internal/services"
	"github.com/chachabrian/rentacar-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateBookingInput struct {
	CarID           uint      `json:"carId" binding:"required"`
	RentalStartDate time.Time `json:"rentalStartDate" binding:"required"`
	RentalEndDate   time.Time `json:"rentalEndDate" binding:"required"`
	PickupLocation  uint      `json:"pickupLocation" binding:"required"`
	DropOffLocation uint      `json:"dropOffLocation" binding:"required"`
	UserID          uint      `json:"userId" binding:"required"`
}

// CreateBooking reserves a car for a user. The availability flip and the
// booking insert share one transaction, with a conditional update on the
// car row so two concurrent requests cannot both reserve it.
func CreateBooking(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if input.RentalEndDate.Before(input.RentalStartDate) {
			c.JSON(400, gin.H{"error": "Rental end date must not be before start date"})
			return
		}

		var user models.User
		if err := db.First(&user, input.UserID).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		var car models.Car
		if err := db.First(&car, input.CarID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Car not found"})
			return
		}

		if !car.Availability {
			c.JSON(400, gin.H{"error": "Car is already booked"})
			return
		}

		var pickup, dropOff models.Location
		if err := db.First(&pickup, input.PickupLocation).Error; err != nil {
			c.JSON(404, gin.H{"error": "Pickup location not found"})
			return
		}
		if err := db.First(&dropOff, input.DropOffLocation).Error; err != nil {
			c.JSON(404, gin.H{"error": "Drop-off location not found"})
			return
		}

		booking := models.Booking{
			UserID:            input.UserID,
			CarID:             input.CarID,
			PickupLocationID:  input.PickupLocation,
			DropOffLocationID: input.DropOffLocation,
			RentalStartDate:   input.RentalStartDate,
			RentalEndDate:     input.RentalEndDate,
			Status:            models.BookingStatusConfirmed,
		}

		tx := db.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		// Reserve the car only if it is still available. Losing this
		// update means another request got there first.
		reserve := tx.Model(&models.Car{}).
			Where("id = ? AND availability = ?", input.CarID, true).
			Update("availability", false)
		if reserve.Error != nil {
			tx.Rollback()
			c.JSON(500, gin.H{"error": "Failed to reserve car"})
			return
		}
		if reserve.RowsAffected == 0 {
			tx.Rollback()
			c.JSON(400, gin.H{"error": "Car is already booked"})
			return
		}

		if err := tx.Create(&booking).Error; err != nil {
			tx.Rollback()
			c.JSON(500, gin.H{"error": "Failed to create booking"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to complete booking"})
			return
		}

		totalPrice := utils.TotalPrice(car.Price, input.RentalStartDate, input.RentalEndDate)

		// The booking stands even if the confirmation notification cannot
		// be recorded; delivery failures are logged, not propagated.
		notification := models.Notification{
			UserID:  input.UserID,
			Message: fmt.Sprintf("Booking confirmed: %s %s", car.Brand, car.CarModel),
			Details: fmt.Sprintf("Pickup at %s, drop-off at %s. Rental from %s to %s. Total: %.2f",
				pickup.Address, dropOff.Address,
				input.RentalStartDate.Format("2006-01-02"), input.RentalEndDate.Format("2006-01-02"),
				totalPrice),
		}
		if err := db.Create(&notification).Error; err != nil {
			log.Printf("Failed to create booking notification for user %d: %v", input.UserID, err)
		} else {
			hub.SendNotificationCreated(input.UserID, services.NotificationCreated{
				NotificationID: notification.ID,
				Message:        notification.Message,
				Details:        notification.Details,
			})
		}

		hub.SendBookingConfirmed(input.UserID, services.BookingConfirmed{
			BookingID:  booking.ID,
			CarID:      car.ID,
			CarModel:   car.CarModel,
			TotalPrice: totalPrice,
		})

		ctx := context.Background()
		if err := services.SetCarAvailability(ctx, car.ID, false); err != nil {
			log.Printf("Failed to cache car availability: %v", err)
		}
		if err := services.PublishBookingUpdate(ctx, booking.ID, string(booking.Status)); err != nil {
			log.Printf("Failed to publish booking update: %v", err)
		}

		var created models.Booking
		if err := db.Preload("Car").Preload("PickupLocation").Preload("DropOffLocation").
			First(&created, booking.ID).Error; err != nil {
			c.JSON(201, booking)
			return
		}

		c.JSON(201, created)
	}
}

// CancelBooking marks a booking cancelled and releases its car. The
// booking record is kept; cancellation is a status transition, never a
// delete.
func CancelBooking(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID := c.Param("id")

		var booking models.Booking
		if err := db.Preload("Car").First(&booking, bookingID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		if booking.Status == models.BookingStatusCancelled {
			c.JSON(400, gin.H{"error": "Booking is already cancelled"})
			return
		}

		tx := db.Begin()
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
			}
		}()

		if err := tx.Model(&booking).Update("status", models.BookingStatusCancelled).Error; err != nil {
			tx.Rollback()
			c.JSON(500, gin.H{"error": "Failed to cancel booking"})
			return
		}

		if err := tx.Model(&models.Car{}).Where("id = ?", booking.CarID).
			Update("availability", true).Error; err != nil {
			tx.Rollback()
			c.JSON(500, gin.H{"error": "Failed to release car"})
			return
		}

		if err := tx.Commit().Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to cancel booking"})
			return
		}

		notification := models.Notification{
			UserID:  booking.UserID,
			Message: "Booking cancelled",
			Details: fmt.Sprintf("Your booking #%d has been cancelled and the car is available again.", booking.ID),
		}
		if err := db.Create(&notification).Error; err != nil {
			log.Printf("Failed to create cancellation notification for user %d: %v", booking.UserID, err)
		}

		hub.SendBookingCancelled(booking.UserID, services.BookingCancelled{
			BookingID: booking.ID,
			CarID:     booking.CarID,
		})

		ctx := context.Background()
		if err := services.SetCarAvailability(ctx, booking.CarID, true); err != nil {
			log.Printf("Failed to cache car availability: %v", err)
		}
		if err := services.PublishBookingUpdate(ctx, booking.ID, string(models.BookingStatusCancelled)); err != nil {
			log.Printf("Failed to publish booking update: %v", err)
		}

		c.JSON(200, gin.H{
			"message":   "Booking cancelled successfully",
			"bookingId": booking.ID,
			"status":    models.BookingStatusCancelled,
		})
	}
}

// GetBookings retrieves all bookings with their relations expanded
func GetBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bookings []models.Booking
		if err := db.Preload("Car").Preload("User").
			Preload("PickupLocation").Preload("DropOffLocation").
			Find(&bookings).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		c.JSON(200, bookings)
	}
}

// GetUserBookings retrieves one user's bookings. The car is summarized
// to the fields the booking list screen renders.
func GetUserBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		var bookings []models.Booking
		if err := db.Where("user_id = ?", userID).
			Preload("Car", func(db *gorm.DB) *gorm.DB {
				return db.Select("id", "brand", "model", "image")
			}).
			Preload("PickupLocation").Preload("DropOffLocation").
			Find(&bookings).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		if len(bookings) == 0 {
			c.JSON(200, gin.H{"message": "No bookings found", "bookings": []models.Booking{}})
			return
		}

		c.JSON(200, bookings)
	}
}

// DeleteAllBookings removes every booking record. Administrative
// operation used by seeding scripts and tests.
func DeleteAllBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Unscoped().Where("1 = 1").Delete(&models.Booking{})
		if result.Error != nil {
			c.JSON(500, gin.H{"error": "Failed to delete bookings"})
			return
		}

		c.JSON(200, gin.H{"message": "All bookings deleted", "deleted": result.RowsAffected})
	}
}
