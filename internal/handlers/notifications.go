package handlers

import (
	"github.com/chachabrian/rentacar-backend/internal/models"
	"github.com/chachabrian/rentacar-backend/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetNotifications retrieves all notifications
func GetNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var notifications []models.Notification
		if err := db.Find(&notifications).Error; err != nil {
			c.JSON(500, gin.H{"error": "Error fetching notifications"})
			return
		}

		c.JSON(200, notifications)
	}
}

// GetUserNotifications retrieves all notifications for a specific user,
// read and unread alike; read state is a display concern.
func GetUserNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		var notifications []models.Notification
		if err := db.Where("user_id = ?", userID).Find(&notifications).Error; err != nil {
			c.JSON(500, gin.H{"error": "Error fetching notifications"})
			return
		}

		c.JSON(200, notifications)
	}
}

// CreateNotification stores a notification and mirrors it to the user's
// open WebSocket clients
func CreateNotification(db *gorm.DB, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			UserID  uint   `json:"user_id" binding:"required"`
			Message string `json:"message" binding:"required"`
			Details string `json:"details"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, input.UserID).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		notification := models.Notification{
			UserID:  input.UserID,
			Message: input.Message,
			Details: input.Details,
		}

		if err := db.Create(&notification).Error; err != nil {
			c.JSON(400, gin.H{"error": "Failed to create notification: " + err.Error()})
			return
		}

		hub.SendNotificationCreated(input.UserID, services.NotificationCreated{
			NotificationID: notification.ID,
			Message:        notification.Message,
			Details:        notification.Details,
		})

		c.JSON(201, notification)
	}
}

// MarkNotificationRead marks one notification as read
func MarkNotificationRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		notificationID := c.Param("notificationId")

		var notification models.Notification
		if err := db.First(&notification, notificationID).Error; err != nil {
			c.JSON(404, gin.H{"error": "Notification not found"})
			return
		}

		notification.IsRead = true
		if err := db.Save(&notification).Error; err != nil {
			c.JSON(500, gin.H{"error": "Error marking notification as read"})
			return
		}

		c.JSON(200, notification)
	}
}

// DeleteAllNotifications removes every notification record.
// Administrative operation used by seeding scripts and tests.
func DeleteAllNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Unscoped().Where("1 = 1").Delete(&models.Notification{})
		if result.Error != nil {
			c.JSON(500, gin.H{"error": "Error deleting notifications"})
			return
		}

		c.JSON(200, gin.H{"message": "All notifications deleted", "deleted": result.RowsAffected})
	}
}
