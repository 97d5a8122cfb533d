package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain/repository"
)

// DataContext loads the master datasets exactly once and shares the immutable
// result across all usecases. Loaded tables are never mutated, so concurrent
// readers need no locking after the load completes.
type DataContext struct {
	datasets repository.DatasetRepository
	logger   *zap.Logger

	once   sync.Once
	tables *domain.Tables
	err    error
}

func NewDataContext(datasets repository.DatasetRepository, logger *zap.Logger) *DataContext {
	return &DataContext{
		datasets: datasets,
		logger:   logger,
	}
}

// Tables returns the loaded datasets, loading them on first call. Every later
// call returns the same pointer. The load degrades per dataset; a total
// failure still yields empty tables so callers always get usable data.
func (d *DataContext) Tables(ctx context.Context) (*domain.Tables, error) {
	d.once.Do(func() {
		d.logger.Info("loading master datasets")
		d.tables, d.err = d.datasets.LoadTables(ctx)
		if d.err != nil || d.tables == nil {
			d.logger.Warn("dataset load failed, continuing with empty tables",
				zap.Error(d.err))
			d.tables = domain.EmptyTables()
			d.err = nil
		}
	})
	return d.tables, d.err
}
