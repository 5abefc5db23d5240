package di

import (
	"time"

	companyadapters "equity_backend/internal/feature/companies/adapters"
	"equity_backend/internal/feature/companies/usecase"
	"equity_backend/internal/platform/symbolbatch"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SymbolBatchPrefix is the Redis key prefix for pending symbol batches.
const SymbolBatchPrefix = "symbols:batch"

// NewSymbolBatchStore creates a SymbolBatchStore implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the database.
func NewSymbolBatchStore(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.SymbolBatchStore {
	if rdb != nil {
		return symbolbatch.NewBatchRedis(rdb, SymbolBatchPrefix, ttl)
	}
	return companyadapters.NewSymbolBatchRepository(db, ttl)
}
