package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mohammadsaqib2064/onyx-aura/internal/app/model"
	"github.com/mohammadsaqib2064/onyx-aura/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const catalogKey = "onyxaura:catalog"

// CatalogCache keeps the full product list in Redis so the hot list
// endpoint skips the database. Cache-aside: the service reads through it
// and invalidates on every write. A nil *CatalogCache is a valid disabled
// cache, so callers never need to branch on whether Redis is configured.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if client == nil {
		return nil
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// Get returns the cached catalog, or ok=false on miss, disabled cache or
// any Redis failure. Failures are logged, never surfaced: the caller just
// falls back to the database.
func (c *CatalogCache) Get(ctx context.Context) ([]model.Product, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Catalog cache read failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		logger.Warn("Discarding unreadable catalog cache entry", map[string]interface{}{
			"error": err.Error(),
		})
		c.Invalidate(ctx)
		return nil, false
	}
	return products, true
}

// Set stores the catalog with the configured TTL. Best effort.
func (c *CatalogCache) Set(ctx context.Context, products []model.Product) {
	if c == nil {
		return
	}

	data, err := json.Marshal(products)
	if err != nil {
		logger.Error("Failed to encode catalog for caching", err)
		return
	}
	if err := c.client.Set(ctx, catalogKey, data, c.ttl).Err(); err != nil {
		logger.Warn("Catalog cache write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Invalidate drops the cached catalog. Called after every product write so
// readers never see a stale list longer than one request.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		logger.Warn("Catalog cache invalidation failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
