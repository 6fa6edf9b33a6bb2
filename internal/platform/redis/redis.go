package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/sky_take_out/internal/apperrors"
	"github.com/redis/go-redis/v9"
)

// Config holds all configuration for the Redis client
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewClient creates a go-redis client and verifies the connection.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

// Template is a string-keyed view over a Redis client. Values are stored as
// strings or, through the JSON helpers, as encoded documents.
type Template struct {
	client redis.UniversalClient
}

// NewTemplate wraps client.
func NewTemplate(client redis.UniversalClient) *Template {
	return &Template{client: client}
}

// Get returns the value stored at key, or apperrors.ErrNotFound.
func (t *Template) Get(ctx context.Context, key string) (string, error) {
	val, err := t.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("redis key %q: %w", key, apperrors.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return val, nil
}

// Set stores value at key. A zero ttl keeps the key until deleted.
func (t *Template) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if err := t.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Delete removes keys. Missing keys are ignored.
func (t *Template) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := t.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// GetJSON decodes the document stored at key into dest.
func (t *Template) GetJSON(ctx context.Context, key string, dest any) error {
	raw, err := t.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("decode redis key %q: %w", key, err)
	}
	return nil
}

// SetJSON encodes value and stores it at key.
func (t *Template) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode redis key %q: %w", key, err)
	}
	return t.Set(ctx, key, raw, ttl)
}
