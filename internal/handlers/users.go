package handlers

import (
	"github.com/chachabrian/rentacar-backend/internal/models"
	"github.com/chachabrian/rentacar-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SignupInput struct {
	Name           string            `json:"name" binding:"required,max=100"`
	Email          string            `json:"email" binding:"required,email,max=100"`
	Password       string            `json:"password" binding:"required,min=8,max=255"`
	Preferences    datatypes.JSONMap `json:"preferences"`
	PaymentDetails datatypes.JSONMap `json:"payment_details"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup registers a new user and returns a signed token
func Signup(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var existing models.User
		if result := db.Where("email = ?", input.Email).First(&existing); result.Error == nil {
			c.JSON(400, gin.H{"error": "Email already in use"})
			return
		}

		user := models.User{
			Name:           input.Name,
			Email:          input.Email,
			Preferences:    input.Preferences,
			PaymentDetails: input.PaymentDetails,
		}
		if err := user.SetPassword(input.Password); err != nil {
			c.JSON(500, gin.H{"error": "Failed to hash password"})
			return
		}

		if result := db.Create(&user); result.Error != nil {
			c.JSON(400, gin.H{"error": "Failed to create user: " + result.Error.Error()})
			return
		}

		token, err := utils.GenerateToken(&user)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(201, gin.H{
			"token":  token,
			"userId": user.ID,
			"name":   user.Name,
		})
	}
}

// Login authenticates a user by email and password
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if result := db.Where("email = ?", input.Email).First(&user); result.Error != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		if err := user.CheckPassword(input.Password); err != nil {
			c.JSON(400, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := utils.GenerateToken(&user)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(200, gin.H{
			"token":  token,
			"userId": user.ID,
			"name":   user.Name,
		})
	}
}

// GetUsers retrieves all users, password hashes excluded
func GetUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Find(&users).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch users"})
			return
		}

		// PasswordHash is json-hidden on the model; nothing sensitive
		// leaves this handler.
		c.JSON(200, users)
	}
}

// UpdateUser updates a user's identity fields
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.Param("userId")

		var input struct {
			Name  string `json:"name"`
			Email string `json:"email" binding:"omitempty,email"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		// Reject the new email if another account already holds it
		if input.Email != "" && input.Email != user.Email {
			var existing models.User
			if result := db.Where("email = ?", input.Email).First(&existing); result.Error == nil {
				c.JSON(400, gin.H{"error": "Email already in use by another account"})
				return
			}
		}

		if input.Name != "" {
			user.Name = input.Name
		}
		if input.Email != "" {
			user.Email = input.Email
		}

		if err := db.Save(&user).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update user"})
			return
		}

		c.JSON(200, gin.H{
			"message": "User updated successfully",
			"userId":  user.ID,
			"name":    user.Name,
			"email":   user.Email,
		})
	}
}

// GetProfile retrieves the profile of the token bearer
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId := c.GetUint("userId")

		var user models.User
		if err := db.First(&user, userId).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		c.JSON(200, gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"preferences": user.Preferences,
		})
	}
}
