package cache

import (
	"context"
	"time"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain/repository"
)

// noopCache stands in when Redis is not configured. Every read is a miss and
// every write succeeds, so callers never need to know the difference.
type noopCache struct{}

func NewNoopCache() repository.CacheRepository {
	return noopCache{}
}

func (noopCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }

func (noopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (noopCache) Delete(ctx context.Context, key string) error { return nil }

func (noopCache) GetSnapshot(ctx context.Context) (*domain.DashboardSnapshot, error) {
	return nil, nil
}

func (noopCache) SetSnapshot(ctx context.Context, snapshot *domain.DashboardSnapshot, ttl time.Duration) error {
	return nil
}
