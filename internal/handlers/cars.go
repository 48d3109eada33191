package handlers

import (
	"context"
	"log"
	"strconv"

	"github.com/chachabrian/rentacar-backend/internal/models"
	"github.com/chachabrian/rentacar-backend/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateCarInput struct {
	Brand          string            `json:"brand" binding:"required"`
	CarModel       string            `json:"model" binding:"required"`
	Type           string            `json:"type" binding:"required"`
	Price          float64           `json:"price" binding:"required,gt=0"`
	NumberOfSeats  int               `json:"number_of_seats" binding:"required,gt=0"`
	Specifications datatypes.JSONMap `json:"specifications"`
	Availability   *bool             `json:"availability"`
	LocationID     *uint             `json:"location_id"`
	Image          string            `json:"image"`
}

// GetCars retrieves all cars with their location expanded. When any
// filter parameter is present, only available cars matching the full
// predicate are returned; absent bounds are open.
func GetCars(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		minPrice := c.Query("minPrice")
		maxPrice := c.Query("maxPrice")
		minSeats := c.Query("minSeats")
		maxSeats := c.Query("maxSeats")
		carType := c.Query("type")

		query := db.Preload("Location")

		filtered := minPrice != "" || maxPrice != "" || minSeats != "" || maxSeats != "" || carType != ""
		if filtered {
			query = query.Where("availability = ?", true)

			if minPrice != "" {
				v, err := strconv.ParseFloat(minPrice, 64)
				if err != nil {
					c.JSON(400, gin.H{"error": "Invalid minPrice"})
					return
				}
				query = query.Where("price >= ?", v)
			}
			if maxPrice != "" {
				v, err := strconv.ParseFloat(maxPrice, 64)
				if err != nil {
					c.JSON(400, gin.H{"error": "Invalid maxPrice"})
					return
				}
				query = query.Where("price <= ?", v)
			}
			if minSeats != "" {
				v, err := strconv.Atoi(minSeats)
				if err != nil {
					c.JSON(400, gin.H{"error": "Invalid minSeats"})
					return
				}
				query = query.Where("number_of_seats >= ?", v)
			}
			if maxSeats != "" {
				v, err := strconv.Atoi(maxSeats)
				if err != nil {
					c.JSON(400, gin.H{"error": "Invalid maxSeats"})
					return
				}
				query = query.Where("number_of_seats <= ?", v)
			}
			if carType != "" && carType != "All" {
				query = query.Where("type = ?", carType)
			}
		}

		var cars []models.Car
		if err := query.Find(&cars).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch cars"})
			return
		}

		c.JSON(200, cars)
	}
}

// GetCarByID retrieves one car with its location expanded. Availability
// is served from the cache when present and warmed on a miss.
func GetCarByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		carID := c.Param("id")

		var car models.Car
		if err := db.Preload("Location").First(&car, carID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Car not found"})
			return
		}

		ctx := context.Background()
		cached, found, err := services.GetCarAvailability(ctx, car.ID)
		if err != nil {
			log.Printf("Failed to read availability cache for car %d: %v", car.ID, err)
		} else if found {
			car.Availability = cached
		} else if err := services.SetCarAvailability(ctx, car.ID, car.Availability); err != nil {
			log.Printf("Failed to warm availability cache for car %d: %v", car.ID, err)
		}

		c.JSON(200, car)
	}
}

// CreateCar handles the creation of a new car
func CreateCar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCarInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if input.LocationID != nil {
			var location models.Location
			if err := db.First(&location, *input.LocationID).Error; err != nil {
				c.JSON(404, gin.H{"error": "Location not found"})
				return
			}
		}

		availability := true
		if input.Availability != nil {
			availability = *input.Availability
		}

		car := models.Car{
			Brand:          input.Brand,
			CarModel:       input.CarModel,
			Type:           input.Type,
			Price:          input.Price,
			NumberOfSeats:  input.NumberOfSeats,
			Specifications: input.Specifications,
			Availability:   availability,
			LocationID:     input.LocationID,
			Image:          input.Image,
		}

		if err := db.Create(&car).Error; err != nil {
			c.JSON(400, gin.H{"error": "Failed to create car: " + err.Error()})
			return
		}

		c.JSON(201, car)
	}
}

// UploadCarImage stores a car image in S3 or local storage and persists
// the resulting URL on the car
func UploadCarImage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		carID := c.Param("id")

		var car models.Car
		if err := db.First(&car, carID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Car not found"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(400, gin.H{"error": "Car image is required"})
			return
		}

		imagePath, err := services.UploadImage(file, "cars")
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to upload image", "details": err.Error()})
			return
		}

		if car.Image != "" {
			if err := services.DeleteImage(car.Image); err != nil {
				log.Printf("Failed to delete replaced image for car %d: %v", car.ID, err)
			}
		}

		car.Image = imagePath
		if err := db.Save(&car).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update car image"})
			return
		}

		c.JSON(200, gin.H{
			"message": "Image uploaded successfully",
			"carId":   car.ID,
			"image":   services.GetImageURL(imagePath),
		})
	}
}

// DeleteAllCars removes every car record. Administrative operation used
// by seeding scripts and tests.
func DeleteAllCars(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Unscoped().Where("1 = 1").Delete(&models.Car{})
		if result.Error != nil {
			c.JSON(500, gin.H{"error": "Failed to delete cars"})
			return
		}

		if err := services.FlushCarAvailability(context.Background()); err != nil {
			log.Printf("Failed to flush availability cache: %v", err)
		}

		c.JSON(200, gin.H{"message": "All cars deleted", "deleted": result.RowsAffected})
	}
}

// ResetAvailability marks every car available again. Administrative
// operation used by seeding scripts and tests.
func ResetAvailability(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Model(&models.Car{}).Where("availability = ?", false).Update("availability", true)
		if result.Error != nil {
			c.JSON(500, gin.H{"error": "Failed to reset availability"})
			return
		}

		if err := services.FlushCarAvailability(context.Background()); err != nil {
			log.Printf("Failed to flush availability cache: %v", err)
		}

		c.JSON(200, gin.H{"message": "All cars set to available", "updated": result.RowsAffected})
	}
}
