package handlers

import (
	"github.com/chachabrian/rentacar-backend/internal/models"
	"github.com/chachabrian/rentacar-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetLocations retrieves all locations
func GetLocations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var locations []models.Location
		if err := db.Find(&locations).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch locations"})
			return
		}

		c.JSON(200, locations)
	}
}

// GetLocationByID retrieves one location
func GetLocationByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		locationID := c.Param("id")

		var location models.Location
		if err := db.First(&location, locationID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Location not found"})
			return
		}

		c.JSON(200, location)
	}
}

// CreateLocation handles the creation of a new pickup/drop-off location
func CreateLocation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Address     string `json:"address" binding:"required"`
			Coordinates string `json:"coordinates" binding:"required"`
			Available   *bool  `json:"available"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if _, _, err := utils.ParseCoordinates(input.Coordinates); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		available := true
		if input.Available != nil {
			available = *input.Available
		}

		location := models.Location{
			Address:     input.Address,
			Coordinates: input.Coordinates,
			Available:   available,
		}

		if err := db.Create(&location).Error; err != nil {
			c.JSON(400, gin.H{"error": "Failed to create location: " + err.Error()})
			return
		}

		c.JSON(201, location)
	}
}
