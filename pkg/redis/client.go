package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Config holds redis connection settings
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	Enabled  bool
}

// Client wraps the redis connection. A disabled client is a no-op, so callers
// never branch on availability.
type Client struct {
	rdb     *redis.Client
	enabled bool
	log     *zap.Logger
}

// NewClient creates a redis client. When the connection cannot be established
// the client comes up disabled instead of failing the process.
func NewClient(cfg Config, log *zap.Logger) *Client {
	if !cfg.Enabled {
		return &Client{enabled: false, log: log}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("Failed to connect to Redis, cache disabled",
			zap.String("address", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
			zap.Error(err),
		)
		_ = rdb.Close()
		return &Client{enabled: false, log: log}
	}

	log.Info("Connected to Redis",
		zap.String("address", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("database", cfg.DB),
	)

	return &Client{rdb: rdb, enabled: true, log: log}
}

func (c *Client) IsEnabled() bool {
	return c != nil && c.enabled
}

func (c *Client) Close() error {
	if !c.IsEnabled() {
		return nil
	}
	return c.rdb.Close()
}

// Get returns the cached value and whether the key was present
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	if !c.IsEnabled() {
		return "", false, nil
	}

	value, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil // cache miss
		}
		return "", false, fmt.Errorf("failed to get cache: %w", err)
	}

	return value, true, nil
}

// Set stores a value with a TTL
func (c *Client) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if !c.IsEnabled() {
		return nil
	}

	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

// Del removes keys
func (c *Client) Del(ctx context.Context, keys ...string) error {
	if !c.IsEnabled() {
		return nil
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys: %w", err)
	}

	return nil
}
