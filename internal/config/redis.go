package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host      string
	Port      string
	Password  string
	DB        int
	KeyPrefix string
}

func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Host:      getEnvWithDefault("REDIS_HOST", "localhost"),
		Port:      getEnvWithDefault("REDIS_PORT", "6379"),
		Password:  getEnvWithDefault("REDIS_PASSWORD", ""),
		DB:        getEnvIntWithDefault("REDIS_DB", 0),
		KeyPrefix: getEnvWithDefault("REDIS_KEY_PREFIX", "notes"),
	}
}

// GetClient connects and pings Redis, failing fast when it is unreachable.
func (c *RedisConfig) GetClient(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", c.Host, c.Port),
		Password: c.Password,
		DB:       c.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
