// Package cache provides caching decorators for provider interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"equity_backend/internal/feature/equities/domain/entity"
	"equity_backend/internal/feature/equities/usecase"
)

var _ usecase.ChartProvider = (*CachingChartProvider)(nil)

const (
	defaultTTL       = 5 * time.Minute
	defaultNamespace = "charts"
)

// CachingChartProvider decorates a ChartProvider with Redis caching.
// Entries live until ttl() elapses, typically the next daily refresh time.
type CachingChartProvider struct {
	inner     usecase.ChartProvider
	rdb       *redis.Client
	ttl       func() time.Duration
	namespace string
}

// NewCachingChartProvider decorates a ChartProvider with Redis caching.
// A nil rdb bypasses the cache. A nil ttl caches for 5 minutes. An empty namespace uses "charts".
func NewCachingChartProvider(rdb *redis.Client, inner usecase.ChartProvider, ttl func() time.Duration, namespace string) *CachingChartProvider {
	if ttl == nil {
		ttl = func() time.Duration { return defaultTTL }
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &CachingChartProvider{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetChart returns the cached chart for symbol, falling back to the inner provider.
// Errors and empty results are never cached.
func (c *CachingChartProvider) GetChart(ctx context.Context, symbol string) ([]entity.Equity, error) {
	if c.rdb == nil {
		return c.inner.GetChart(ctx, symbol)
	}

	key := c.cacheKey(symbol)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Equity
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// 壊れたエントリは削除
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.GetChart(ctx, symbol)
	if err != nil || len(out) == 0 {
		return out, err
	}

	if ttl := c.ttl(); ttl > 0 {
		if b, err := json.Marshal(out); err == nil {
			_ = c.rdb.Set(ctx, key, b, ttl).Err()
		}
	}
	return out, nil
}

// Invalidate removes the cached charts for the given symbols.
func (c *CachingChartProvider) Invalidate(ctx context.Context, symbols ...string) error {
	if c.rdb == nil || len(symbols) == 0 {
		return nil
	}
	keys := make([]string, 0, len(symbols))
	for _, s := range symbols {
		keys = append(keys, c.cacheKey(s))
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *CachingChartProvider) cacheKey(symbol string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(symbol))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
