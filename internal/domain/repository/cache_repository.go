package repository

import (
	"context"
	"time"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

// CacheRepository defines the snapshot cache operations.
type CacheRepository interface {
	// Get returns the raw value for key, nil on cache miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// GetSnapshot returns the cached dashboard snapshot, nil on miss.
	GetSnapshot(ctx context.Context) (*domain.DashboardSnapshot, error)

	// SetSnapshot caches the dashboard snapshot with a TTL.
	SetSnapshot(ctx context.Context, snapshot *domain.DashboardSnapshot, ttl time.Duration) error
}
