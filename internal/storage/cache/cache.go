package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/recerqa/recerqa-ai/internal/domain/model"
)

const keyPrefix = "catalog:product:"

// Cache stores resolved catalog products.
type Cache interface {
	Get(ctx context.Context, name string) (*model.Product, bool)
	Set(ctx context.Context, product model.Product)
	Close() error
}

// ProductCache is a Redis backed read-through cache for catalog lookups.
// Redis failures are logged and reported as misses.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New connects to Redis at addr and verifies connectivity with PING.
func New(ctx context.Context, addr string, ttl time.Duration, logger *slog.Logger) (*ProductCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
		MaxRetries:   1,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &ProductCache{client: client, ttl: ttl, logger: logger}, nil
}

func productKey(name string) string {
	return keyPrefix + name
}

// Get returns the cached product for name.
func (c *ProductCache) Get(ctx context.Context, name string) (*model.Product, bool) {
	data, err := c.client.Get(ctx, productKey(name)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("catalog cache read failed", slog.String("product", name), slog.String("error", err.Error()))
		}
		return nil, false
	}

	var product model.Product
	if err := json.Unmarshal(data, &product); err != nil {
		c.logger.Warn("catalog cache entry is corrupt", slog.String("product", name), slog.String("error", err.Error()))
		return nil, false
	}
	return &product, true
}

// Set stores product under its name for the configured TTL.
func (c *ProductCache) Set(ctx context.Context, product model.Product) {
	data, err := json.Marshal(product)
	if err != nil {
		c.logger.Warn("catalog cache encode failed", slog.String("product", product.Name), slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, productKey(product.Name), data, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", slog.String("product", product.Name), slog.String("error", err.Error()))
	}
}

// Close releases Redis connections.
func (c *ProductCache) Close() error {
	return c.client.Close()
}

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (*model.Product, bool) { return nil, false }
func (NopCache) Set(context.Context, model.Product)                 {}
func (NopCache) Close() error                                       { return nil }
