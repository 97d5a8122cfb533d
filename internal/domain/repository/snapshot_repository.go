package repository

import (
	"context"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

// SnapshotRepository persists pipeline runs for history. Persistence is
// optional; the service runs without it.
type SnapshotRepository interface {
	Save(ctx context.Context, run *domain.PipelineRun) error
	ListRecent(ctx context.Context, limit int) ([]domain.PipelineRun, error)
}
