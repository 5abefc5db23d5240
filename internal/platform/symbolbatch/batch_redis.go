// Package symbolbatch provides a Redis-backed store for symbol lists awaiting confirmation.
package symbolbatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"equity_backend/internal/feature/companies/domain/entity"
	"equity_backend/internal/feature/companies/usecase"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// BatchRedis implements usecase.SymbolBatchStore using Redis.
type BatchRedis struct {
	client   *redis.Client
	prefix   string
	ttl      time.Duration
	newToken func() string
}

var _ usecase.SymbolBatchStore = (*BatchRedis)(nil)

// NewBatchRedis creates a new BatchRedis instance whose entries expire after ttl.
func NewBatchRedis(client *redis.Client, prefix string, ttl time.Duration) *BatchRedis {
	return &BatchRedis{
		client:   client,
		prefix:   prefix,
		ttl:      ttl,
		newToken: uuid.NewString,
	}
}

// batchKey returns the Redis key for a batch.
func (r *BatchRedis) batchKey(token string) string {
	return fmt.Sprintf("%s:%s", r.prefix, token)
}

// Save stores the companies under a new random token.
func (r *BatchRedis) Save(ctx context.Context, companies []entity.Company) (string, error) {
	data, err := json.Marshal(companies)
	if err != nil {
		return "", fmt.Errorf("failed to marshal symbol batch: %w", err)
	}

	token := r.newToken()
	if err := r.client.Set(ctx, r.batchKey(token), data, r.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Load returns the companies stored under token.
func (r *BatchRedis) Load(ctx context.Context, token string) ([]entity.Company, error) {
	data, err := r.client.Get(ctx, r.batchKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrBatchNotFound
		}
		return nil, err
	}

	var companies []entity.Company
	if err := json.Unmarshal(data, &companies); err != nil {
		return nil, fmt.Errorf("failed to unmarshal symbol batch: %w", err)
	}
	return companies, nil
}
