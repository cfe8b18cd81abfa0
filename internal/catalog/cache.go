package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/windsor-dist/storefront-api/internal/obs"
)

// Cache stores rendered catalog payloads in Redis. A nil client disables
// caching entirely; every method degrades to a no-op.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetJSON unmarshals a cached payload into dst, reporting whether the key
// existed. Cache errors are returned so callers can log and fall through.
func (c *Cache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	if c == nil || c.client == nil || key == "" {
		return false, nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			if obs.CatalogCacheTotal != nil {
				obs.CatalogCacheTotal.WithLabelValues("miss").Inc()
			}
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	if obs.CatalogCacheTotal != nil {
		obs.CatalogCacheTotal.WithLabelValues("hit").Inc()
	}
	return true, nil
}

// SetJSON serialises v and stores it under key with the configured TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, v any) error {
	if c == nil || c.client == nil || key == "" || c.ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func listKey(p ListParams) string {
	minPrice, maxPrice := int64(-1), int64(-1)
	if p.MinPrice != nil {
		minPrice = *p.MinPrice
	}
	if p.MaxPrice != nil {
		maxPrice = *p.MaxPrice
	}
	conf := "any"
	if p.Configurable != nil {
		conf = fmt.Sprintf("%t", *p.Configurable)
	}
	return fmt.Sprintf("catalog:list:q=%s:cat=%s:min=%d:max=%d:conf=%s:sort=%s:p=%d:l=%d",
		p.Query, p.Category, minPrice, maxPrice, conf, p.Sort, p.Page, p.Limit)
}

func detailKey(id string) string {
	return "catalog:detail:" + id
}
