package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain/repository"
)

const createPipelineRunsTable = `
CREATE TABLE IF NOT EXISTS pipeline_runs (
	id UUID PRIMARY KEY,
	generated_at TIMESTAMPTZ NOT NULL,
	dsi_average DOUBLE PRECISION NOT NULL,
	stressed_districts INTEGER NOT NULL,
	critical_districts INTEGER NOT NULL,
	total_districts INTEGER NOT NULL,
	snapshot JSONB
)`

type snapshotRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewSnapshotRepository prepares the run-history store, creating its table
// on first use.
func NewSnapshotRepository(db *DB, logger *zap.Logger) (repository.SnapshotRepository, error) {
	if _, err := db.Exec(createPipelineRunsTable); err != nil {
		return nil, fmt.Errorf("create pipeline_runs table: %w", err)
	}
	return &snapshotRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Save persists one pipeline run. A zero ID is assigned before insert.
func (r *snapshotRepository) Save(ctx context.Context, run *domain.PipelineRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.Snapshot == nil {
		run.Snapshot = json.RawMessage("null")
	}

	query := `
		INSERT INTO pipeline_runs (
			id, generated_at, dsi_average,
			stressed_districts, critical_districts, total_districts, snapshot
		) VALUES (
			:id, :generated_at, :dsi_average,
			:stressed_districts, :critical_districts, :total_districts, :snapshot
		)`

	if _, err := r.db.NamedExecContext(ctx, query, run); err != nil {
		r.logger.Error("failed to save pipeline run",
			zap.String("id", run.ID.String()),
			zap.Error(err))
		return fmt.Errorf("save pipeline run: %w", err)
	}

	r.logger.Info("pipeline run saved",
		zap.String("id", run.ID.String()),
		zap.Float64("dsi_average", run.DsiAverage),
	)
	return nil
}

// ListRecent returns the newest runs first, without their snapshot payloads.
func (r *snapshotRepository) ListRecent(ctx context.Context, limit int) ([]domain.PipelineRun, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, generated_at, dsi_average,
		       stressed_districts, critical_districts, total_districts
		FROM pipeline_runs
		ORDER BY generated_at DESC
		LIMIT $1`

	runs := make([]domain.PipelineRun, 0, limit)
	if err := r.db.SelectContext(ctx, &runs, query, limit); err != nil {
		r.logger.Error("failed to list pipeline runs", zap.Error(err))
		return nil, fmt.Errorf("list pipeline runs: %w", err)
	}

	return runs, nil
}
