package repository

import (
	"context"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

// DatasetRepository loads the three master datasets. Implementations must
// degrade gracefully: a missing or unreadable source yields an empty table,
// never an error for the whole load.
type DatasetRepository interface {
	LoadTables(ctx context.Context) (*domain.Tables, error)
}
