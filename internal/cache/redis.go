// Package cache provides a small read-through cache for the product
// catalog. The service degrades gracefully: a nil *Cache (redis not
// configured or unreachable) behaves as a permanent miss.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	productListKey = "products:all"
	productListTTL = 5 * time.Minute
)

// Cache wraps a redis client.
type Cache struct {
	client *redis.Client
}

// New connects to redis and returns a Cache, or an error when the server
// cannot be reached.
func New(addr, password string) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &Cache{client: client}, nil
}

// GetProductList returns the cached serialized catalog, if present.
func (c *Cache) GetProductList(ctx context.Context) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, productListKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetProductList caches the serialized catalog.
func (c *Cache) SetProductList(ctx context.Context, data []byte) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Set(ctx, productListKey, data, productListTTL)
}

// InvalidateProductList drops the cached catalog after a write.
func (c *Cache) InvalidateProductList(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, productListKey)
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
