// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"finstock_backend/internal/feature/stocks/adapters"
	"finstock_backend/internal/feature/stocks/usecase"
	"finstock_backend/internal/platform/cache"
)

// NewStockRepository creates a StockRepository implementation.
// If Redis is available, the gorm-backed repository is wrapped in the
// caching decorator. Otherwise the bare repository is returned.
func NewStockRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.StockRepository {
	repo := adapters.NewStockRepository(db)
	if rdb != nil {
		return cache.NewCachingStockRepository(rdb, ttl, repo, "stocks")
	}
	return repo
}
