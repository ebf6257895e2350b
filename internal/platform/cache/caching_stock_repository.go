// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"finstock_backend/internal/feature/stocks/domain/entity"
	"finstock_backend/internal/feature/stocks/usecase"
)

// CachingStockRepository decorates a StockRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Reads (List, FindBySymbol) go through
// the cache; every write invalidates the whole namespace, since any write can
// change the result of any filtered listing.
type CachingStockRepository struct {
	inner     usecase.StockRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.StockRepository = (*CachingStockRepository)(nil)

// NewCachingStockRepository decorates a StockRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "stocks".
func NewCachingStockRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StockRepository, namespace string) *CachingStockRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "stocks"
	}
	return &CachingStockRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List retrieves stocks matching the query, checking cache first then
// falling back to the database.
func (c *CachingStockRepository) List(ctx context.Context, query entity.StockQuery) ([]entity.Stock, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, query)
	}

	key := c.listKey(query)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Stock
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx, query)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindBySymbol retrieves a stock by symbol through the cache. Absence is not
// cached: a (nil, nil) miss always hits the database.
func (c *CachingStockRepository) FindBySymbol(ctx context.Context, symbol string) (*entity.Stock, error) {
	if c.rdb == nil {
		return c.inner.FindBySymbol(ctx, symbol)
	}

	key := c.symbolKey(symbol)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Stock
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindBySymbol(ctx, symbol)
	if err != nil || out == nil {
		return out, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID is a pass-through; id lookups are already a primary-key read.
func (c *CachingStockRepository) FindByID(ctx context.Context, id uint) (*entity.Stock, error) {
	return c.inner.FindByID(ctx, id)
}

// Exists is a pass-through; it is a precondition probe and must not be
// answered from a stale cache.
func (c *CachingStockRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return c.inner.Exists(ctx, id)
}

// Create persists the stock and invalidates the cache namespace.
func (c *CachingStockRepository) Create(ctx context.Context, stock *entity.Stock) error {
	if err := c.inner.Create(ctx, stock); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update applies the update and invalidates the cache namespace.
func (c *CachingStockRepository) Update(ctx context.Context, id uint, stock entity.Stock) (int64, error) {
	affected, err := c.inner.Update(ctx, id, stock)
	if err != nil {
		return affected, err
	}
	if affected > 0 {
		c.invalidate(ctx)
	}
	return affected, nil
}

// Delete removes the stock and invalidates the cache namespace.
func (c *CachingStockRepository) Delete(ctx context.Context, id uint) (int64, error) {
	affected, err := c.inner.Delete(ctx, id)
	if err != nil {
		return affected, err
	}
	if affected > 0 {
		c.invalidate(ctx)
	}
	return affected, nil
}

// invalidate drops every key in the namespace. Best effort: cache failures
// never fail the write that triggered them.
func (c *CachingStockRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// listKey generates a cache key for a filtered listing.
func (c *CachingStockRepository) listKey(q entity.StockQuery) string {
	return fmt.Sprintf("%s:list:%s:%s:%s:%t",
		c.namespace,
		safe(q.Symbol),
		safe(q.CompanyName),
		safe(q.SortBy),
		q.Descending,
	)
}

// symbolKey generates a cache key for a symbol lookup.
// Symbol matching is case-insensitive, so the key is lowercased.
func (c *CachingStockRepository) symbolKey(symbol string) string {
	return fmt.Sprintf("%s:symbol:%s", c.namespace, safe(strings.ToLower(symbol)))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingStockRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
