package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/chachabrian/rentacar-backend/internal/database"
	"github.com/chachabrian/rentacar-backend/internal/middleware"
	"github.com/chachabrian/rentacar-backend/internal/models"
	"github.com/chachabrian/rentacar-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every request on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(db))
	return db
}

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	hub := services.NewHub()
	go hub.Run()

	r := gin.New()
	api := r.Group("/api")

	user := api.Group("/user")
	user.POST("/signup", Signup(db))
	user.POST("/login", Login(db))
	user.GET("", GetUsers(db))
	user.GET("/me", middleware.AuthMiddleware(), GetProfile(db))
	user.PUT("/:userId", UpdateUser(db))

	cars := api.Group("/cars")
	cars.GET("", GetCars(db))
	cars.GET("/:id", GetCarByID(db))
	cars.POST("", CreateCar(db))
	cars.DELETE("", DeleteAllCars(db))
	cars.PUT("/availability/true", ResetAvailability(db))

	bookings := api.Group("/bookings")
	bookings.GET("", GetBookings(db))
	bookings.GET("/user/:userId", GetUserBookings(db))
	bookings.POST("", CreateBooking(db, hub))
	bookings.POST("/:id/cancel", CancelBooking(db, hub))
	bookings.DELETE("/all", DeleteAllBookings(db))

	locations := api.Group("/locations")
	locations.GET("", GetLocations(db))
	locations.GET("/:id", GetLocationByID(db))
	locations.POST("", CreateLocation(db))

	notifications := api.Group("/notifications")
	notifications.GET("", GetNotifications(db))
	notifications.GET("/:userId", GetUserNotifications(db))
	notifications.POST("", CreateNotification(db, hub))
	notifications.PUT("/mark-read/:notificationId", MarkNotificationRead(db))
	notifications.DELETE("/all", DeleteAllNotifications(db))

	return r, db
}

func performRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email}
	require.NoError(t, user.SetPassword("password1"))
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCar(t *testing.T, db *gorm.DB, brand, model string, price float64, seats int, available bool) models.Car {
	t.Helper()
	car := models.Car{
		Brand:         brand,
		CarModel:      model,
		Type:          "Automatic",
		Price:         price,
		NumberOfSeats: seats,
		Availability:  available,
	}
	require.NoError(t, db.Create(&car).Error)
	return car
}

func seedLocation(t *testing.T, db *gorm.DB, address string) models.Location {
	t.Helper()
	location := models.Location{Address: address, Coordinates: "0.3476,32.5825", Available: true}
	require.NoError(t, db.Create(&location).Error)
	return location
}

func authHeaderRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
