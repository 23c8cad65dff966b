// Package cache provides optional Redis caching for catalog reads. When
// REDIS_HOST is unset the cache is disabled and every operation reports
// ErrDisabled, which callers treat as a miss.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"restaurant-app-api/pkg/config"
	"restaurant-app-api/pkg/logger"
	"restaurant-app-api/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// ErrDisabled is returned when no Redis instance is configured.
var ErrDisabled = errors.New("cache disabled")

var RedisClient *redis.Client

// InitRedis connects to Redis when a host is configured. A missing or
// unreachable Redis never prevents startup; the service just runs uncached.
func InitRedis(cfg *config.Config) error {
	if cfg.Redis.Host == "" {
		logger.GlobalLogger.Println("REDIS_HOST not set, running without cache")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	_, err := client.Ping(ctx).Result()
	metrics.RedisOperationDuration.WithLabelValues("ping").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("ping").Inc()
		logger.GlobalLogger.Errorf("failed to connect to Redis, running without cache: %v", err)
		return nil
	}

	RedisClient = client
	logger.GlobalLogger.Println("Redis connected successfully")
	return nil
}

// Enabled reports whether a Redis connection is active.
func Enabled() bool {
	return RedisClient != nil
}

// CloseRedis closes the Redis connection if one exists.
func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.GlobalLogger.Errorf("Error closing Redis: %v", err)
		} else {
			logger.GlobalLogger.Println("Redis connection closed")
		}
	}
}

// Ping checks Redis connectivity.
func Ping(ctx context.Context) error {
	if !Enabled() {
		return ErrDisabled
	}
	_, err := RedisClient.Ping(ctx).Result()
	return err
}

// Set stores a JSON-encoded value under key with the given expiration.
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if !Enabled() {
		return ErrDisabled
	}
	data, err := json.Marshal(value)
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set_marshal").Inc()
		return fmt.Errorf("failed to marshal value: %v", err)
	}
	start := time.Now()
	err = RedisClient.Set(ctx, key, data, expiration).Err()
	metrics.RedisOperationDuration.WithLabelValues("set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set").Inc()
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return err
	}
	return nil
}

// Get loads the JSON value at key into dest. Misses and a disabled cache
// count toward the cache-miss metric; hits toward the hit metric.
func Get(ctx context.Context, key string, dest interface{}) error {
	if !Enabled() {
		return ErrDisabled
	}
	start := time.Now()
	val, err := RedisClient.Get(ctx, key).Result()
	metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == redis.Nil {
			metrics.CacheMissesTotal.Inc()
		} else {
			metrics.RedisErrorsTotal.WithLabelValues("get").Inc()
		}
		return err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_unmarshal").Inc()
		return fmt.Errorf("failed to unmarshal value: %v", err)
	}
	metrics.CacheHitsTotal.Inc()
	return nil
}
