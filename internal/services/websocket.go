package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Client represents a WebSocket client
type Client struct {
	ID   uint
	Conn *websocket.Conn
	Send chan []byte
	Hub  *Hub
}

// Hub maintains the set of active clients and pushes notification
// events to them
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			log.Printf("Client %d connected", client.ID)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mutex.Unlock()
			log.Printf("Client %d disconnected", client.ID)
		}
	}
}

// BroadcastToUser sends a message to a specific user
func (h *Hub) BroadcastToUser(userID uint, message []byte) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for client := range h.clients {
		if client.ID == userID {
			select {
			case client.Send <- message:
			default:
				log.Printf("Warning: Could not send to client %d (channel full)", client.ID)
			}
		}
	}
}

// GetConnectedClients returns the number of connected clients
func (h *Hub) GetConnectedClients() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// WebSocket message types
type WebSocketMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// BookingConfirmed is pushed to the booking user after a successful
// reservation
type BookingConfirmed struct {
	BookingID  uint    `json:"bookingId"`
	CarID      uint    `json:"carId"`
	CarModel   string  `json:"carModel"`
	TotalPrice float64 `json:"totalPrice"`
}

// BookingCancelled is pushed to the booking user after a cancellation
type BookingCancelled struct {
	BookingID uint `json:"bookingId"`
	CarID     uint `json:"carId"`
}

// NotificationCreated mirrors a stored notification record
type NotificationCreated struct {
	NotificationID uint   `json:"notificationId"`
	Message        string `json:"message"`
	Details        string `json:"details,omitempty"`
}

// HandleWebSocket handles WebSocket connections
func HandleWebSocket(hub *Hub, w http.ResponseWriter, r *http.Request, userID uint) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := &Client{
		ID:   userID,
		Conn: conn,
		Send: make(chan []byte, 256),
		Hub:  hub,
	}

	client.Hub.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump drains the connection so control frames are processed; the
// notification stream is one-way.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// SendBookingConfirmed sends a booking confirmation to the user
func (hub *Hub) SendBookingConfirmed(userID uint, confirmed BookingConfirmed) {
	hub.sendToUser(userID, WebSocketMessage{Type: "booking_confirmed", Data: confirmed})
}

// SendBookingCancelled sends a booking cancellation to the user
func (hub *Hub) SendBookingCancelled(userID uint, cancelled BookingCancelled) {
	hub.sendToUser(userID, WebSocketMessage{Type: "booking_cancelled", Data: cancelled})
}

// SendNotificationCreated mirrors a new notification record to the user
func (hub *Hub) SendNotificationCreated(userID uint, created NotificationCreated) {
	hub.sendToUser(userID, WebSocketMessage{Type: "notification", Data: created})
}

func (hub *Hub) sendToUser(userID uint, message WebSocketMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Error marshaling %s message: %v", message.Type, err)
		return
	}
	hub.BroadcastToUser(userID, data)
}
