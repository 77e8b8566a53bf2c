package cache

import (
	"context"
	"time"

	"github.com/servibook/booking-api/internal/models"
)

// Cache is the small surface the catalog needs: best-effort string
// storage. Misses and backend errors are indistinguishable on purpose.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

const CatalogTTL = 60 * time.Second

func CatalogKey(category string) string {
	return "catalog:" + category
}

// CatalogKeys enumerates every key the public catalog can be cached
// under, so admin writes can invalidate them all. Categories are a closed
// enum, which is what makes this enumeration possible.
func CatalogKeys() []string {
	keys := []string{CatalogKey("")}
	for _, c := range models.ServiceCategories {
		keys = append(keys, CatalogKey(c))
	}
	return keys
}

// Noop disables caching; used when REDIS_URL is not configured and in
// most tests.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string) (string, bool)          { return "", false }
func (Noop) Set(ctx context.Context, key, value string, _ time.Duration) {}
func (Noop) Delete(ctx context.Context, keys ...string)                  {}
