package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"dijlah_store/internal/models"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Cart storage, keyed by the visitor's session token. A missing key reads as
// an empty cart.

func (c *Client) GetCart(ctx context.Context, token string) ([]models.CartEntry, error) {
	val, err := c.rdb.Get(ctx, "cart:"+token).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var entries []models.CartEntry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	return entries, nil
}

func (c *Client) SetCart(ctx context.Context, token string, entries []models.CartEntry, ttl time.Duration) error {
	jsonData, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	return c.rdb.Set(ctx, "cart:"+token, jsonData, ttl).Err()
}

func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.rdb.Del(ctx, "cart:"+token).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
