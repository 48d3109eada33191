package handlers

import (
	"fmt"
	"testing"

	"github.com/chachabrian/rentacar-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNotification(t *testing.T) {
	r, db := setupTestRouter(t)
	user := seedUser(t, db, "Alice", "alice@example.com")

	w := performRequest(r, "POST", "/api/notifications", map[string]interface{}{
		"user_id": user.ID,
		"message": "Welcome aboard",
		"details": "Your account is ready",
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var notification models.Notification
	require.NoError(t, db.First(&notification).Error)
	assert.Equal(t, user.ID, notification.UserID)
	assert.Equal(t, "Welcome aboard", notification.Message)
	assert.False(t, notification.IsRead, "notifications start unread")
}

func TestCreateNotificationUnknownUser(t *testing.T) {
	r, db := setupTestRouter(t)

	w := performRequest(r, "POST", "/api/notifications", map[string]interface{}{
		"user_id": 9999,
		"message": "Ghost message",
	})
	assert.Equal(t, 404, w.Code)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetUserNotifications(t *testing.T) {
	r, db := setupTestRouter(t)
	alice := seedUser(t, db, "Alice", "alice@example.com")
	bob := seedUser(t, db, "Bob", "bob@example.com")

	for _, n := range []models.Notification{
		{UserID: alice.ID, Message: "First"},
		{UserID: alice.ID, Message: "Second", IsRead: true},
		{UserID: bob.ID, Message: "Other"},
	} {
		require.NoError(t, db.Create(&n).Error)
	}

	w := performRequest(r, "GET", fmt.Sprintf("/api/notifications/%d", alice.ID), nil)
	require.Equal(t, 200, w.Code)

	// Read and unread alike belong to the listing
	var notifications []models.Notification
	decodeBody(t, w, &notifications)
	require.Len(t, notifications, 2)
	for _, n := range notifications {
		assert.Equal(t, alice.ID, n.UserID)
	}
}

func TestMarkNotificationRead(t *testing.T) {
	r, db := setupTestRouter(t)
	user := seedUser(t, db, "Alice", "alice@example.com")
	notification := models.Notification{UserID: user.ID, Message: "Unread"}
	require.NoError(t, db.Create(&notification).Error)

	w := performRequest(r, "PUT", fmt.Sprintf("/api/notifications/mark-read/%d", notification.ID), nil)
	require.Equal(t, 200, w.Code)

	var updated models.Notification
	require.NoError(t, db.First(&updated, notification.ID).Error)
	assert.True(t, updated.IsRead)
}

func TestMarkNotificationReadNotFound(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := performRequest(r, "PUT", "/api/notifications/mark-read/9999", nil)
	assert.Equal(t, 404, w.Code)
}

func TestDeleteAllNotifications(t *testing.T) {
	r, db := setupTestRouter(t)
	user := seedUser(t, db, "Alice", "alice@example.com")
	require.NoError(t, db.Create(&models.Notification{UserID: user.ID, Message: "One"}).Error)
	require.NoError(t, db.Create(&models.Notification{UserID: user.ID, Message: "Two"}).Error)

	w := performRequest(r, "DELETE", "/api/notifications/all", nil)
	require.Equal(t, 200, w.Code)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.Zero(t, count)
}
