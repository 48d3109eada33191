package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// SetCarAvailability caches a car's availability flag. No-op when Redis
// is not configured; the database stays the source of truth.
func SetCarAvailability(ctx context.Context, carID uint, available bool) error {
	if RedisClient == nil {
		return nil
	}
	key := fmt.Sprintf("car:availability:%d", carID)
	value := "true"
	if !available {
		value = "false"
	}
	return RedisClient.Set(ctx, key, value, time.Hour).Err()
}

// GetCarAvailability retrieves a cached availability flag. The second
// return value is false on a cache miss or when Redis is not configured.
func GetCarAvailability(ctx context.Context, carID uint) (available, found bool, err error) {
	if RedisClient == nil {
		return false, false, nil
	}
	key := fmt.Sprintf("car:availability:%d", carID)
	result, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return result == "true", true, nil
}

// FlushCarAvailability drops every cached availability flag. Used by the
// administrative reset operation.
func FlushCarAvailability(ctx context.Context) error {
	if RedisClient == nil {
		return nil
	}
	iter := RedisClient.Scan(ctx, 0, "car:availability:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := RedisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// PublishBookingUpdate publishes a booking status change to Redis pub/sub
// for any interested backend consumers.
func PublishBookingUpdate(ctx context.Context, bookingID uint, status string) error {
	if RedisClient == nil {
		return nil
	}
	payload := fmt.Sprintf(`{"bookingId":%d,"status":%q,"timestamp":%d}`, bookingID, status, time.Now().Unix())
	return RedisClient.Publish(ctx, "booking:updates", payload).Err()
}
