package main

import (
	"log"
	"os"
	"time"

	"github.com/chachabrian/rentacar-backend/internal/database"
	"github.com/chachabrian/rentacar-backend/internal/handlers"
	"github.com/chachabrian/rentacar-backend/internal/middleware"
	"github.com/chachabrian/rentacar-backend/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Redis is optional; without it availability reads always hit the database
	if err := services.InitRedis(); err != nil {
		log.Printf("Redis initialization warning: %v", err)
	}

	// Initialize Storage (S3 or local fallback)
	if err := services.InitStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize WebSocket hub
	hub := services.NewHub()
	go hub.Run()

	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Serve locally stored car images
	r.Static("/uploads", "/app/uploads")

	api := r.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/signup", handlers.Signup(db))
			user.POST("/login", handlers.Login(db))
			user.GET("", handlers.GetUsers(db))
			user.GET("/me", middleware.AuthMiddleware(), handlers.GetProfile(db))
			user.PUT("/:userId", handlers.UpdateUser(db))
		}

		cars := api.Group("/cars")
		{
			cars.GET("", handlers.GetCars(db))
			cars.GET("/:id", handlers.GetCarByID(db))
			cars.POST("", handlers.CreateCar(db))
			cars.POST("/:id/image", handlers.UploadCarImage(db))
			cars.DELETE("", handlers.DeleteAllCars(db))
			cars.PUT("/availability/true", handlers.ResetAvailability(db))
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", handlers.GetBookings(db))
			bookings.GET("/user/:userId", handlers.GetUserBookings(db))
			bookings.POST("", handlers.CreateBooking(db, hub))
			bookings.POST("/:id/cancel", handlers.CancelBooking(db, hub))
			bookings.DELETE("/all", handlers.DeleteAllBookings(db))
		}

		locations := api.Group("/locations")
		{
			locations.GET("", handlers.GetLocations(db))
			locations.GET("/:id", handlers.GetLocationByID(db))
			locations.POST("", handlers.CreateLocation(db))
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", handlers.GetNotifications(db))
			notifications.GET("/:userId", handlers.GetUserNotifications(db))
			notifications.POST("", handlers.CreateNotification(db, hub))
			notifications.PUT("/mark-read/:notificationId", handlers.MarkNotificationRead(db))
			notifications.DELETE("/all", handlers.DeleteAllNotifications(db))
		}

		// WebSocket notification stream
		api.GET("/ws", middleware.AuthMiddleware(), handlers.WebSocketHandler(hub))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
