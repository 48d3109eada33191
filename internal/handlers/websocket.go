package handlers

import (
	"github.com/chachabrian/rentacar-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// WebSocketHandler upgrades the connection and registers the client on
// the notification hub
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")
		services.HandleWebSocket(hub, c.Writer, c.Request, userID)
	}
}
