package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/saas-platform-api/pkg/logger"
	"github.com/kingrain94/saas-platform-api/pkg/retry"
)

// RedisConfig backs the rate limiter counters and the change feed.
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	MaxAttempts  int
	PingDeadline time.Duration
}

func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Host:         getEnvWithDefault("REDIS_HOST", "localhost"),
		Port:         getEnvWithDefault("REDIS_PORT", "6379"),
		Password:     getEnvWithDefault("REDIS_PASSWORD", ""),
		DB:           getEnvIntWithDefault("REDIS_DB", 0),
		PoolSize:     getEnvIntWithDefault("REDIS_POOL_SIZE", 20),
		DialTimeout:  getEnvDurationWithDefault("REDIS_DIAL_TIMEOUT", 5*time.Second),
		ReadTimeout:  getEnvDurationWithDefault("REDIS_READ_TIMEOUT", 3*time.Second),
		MaxAttempts:  getEnvIntWithDefault("REDIS_CONNECT_MAX_ATTEMPTS", 3),
		PingDeadline: 5 * time.Second,
	}
}

func (c *RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c *RedisConfig) options() *redis.Options {
	return &redis.Options{
		Addr:        c.Addr(),
		Password:    c.Password,
		DB:          c.DB,
		PoolSize:    c.PoolSize,
		DialTimeout: c.DialTimeout,
		ReadTimeout: c.ReadTimeout,
	}
}

// GetClient connects and pings, retrying while Redis is still coming up.
func (c *RedisConfig) GetClient(ctx context.Context, log *logger.Logger) (*redis.Client, error) {
	retryConfig := retry.DefaultConfig()
	retryConfig.MaxAttempts = c.MaxAttempts
	retryConfig.ShouldRetry = isTransientRedisError

	client, err := retry.Do(ctx, retryConfig, log, "connect redis", func(ctx context.Context) (*redis.Client, error) {
		client := redis.NewClient(c.options())

		pingCtx, cancel := context.WithTimeout(ctx, c.PingDeadline)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, err
		}
		return client, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", c.Addr(), err)
	}

	return client, nil
}

// isTransientRedisError is true for network failures and for a server that is
// still loading its dataset. Auth and protocol errors are permanent.
func isTransientRedisError(err error) bool {
	var netErr net.Error
	switch {
	case errors.As(err, &netErr):
		return true
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, io.EOF):
		return true
	default:
		return strings.HasPrefix(err.Error(), "LOADING")
	}
}
