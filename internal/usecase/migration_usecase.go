package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/analytics"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase/dto"
)

// surgeChangePercent marks a corridor as surging for the summary rollup.
const surgeChangePercent = 20.0

// MigrationUseCase serves the corridor table enriched with live volumes.
type MigrationUseCase struct {
	data   *DataContext
	logger *zap.Logger
}

func NewMigrationUseCase(data *DataContext, logger *zap.Logger) *MigrationUseCase {
	return &MigrationUseCase{
		data:   data,
		logger: logger,
	}
}

func (uc *MigrationUseCase) Flows(ctx context.Context) (*dto.MigrationFlowsResponse, error) {
	tables, err := uc.data.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}

	states := analytics.BuildStateActivity(tables)
	corridors := analytics.EstimateCorridors(states, analytics.DefaultCorridors)

	summary := dto.MigrationSummary{}
	var topVolume int64 = -1
	for _, c := range corridors {
		summary.ActiveFlow += c.Volume
		if c.ChangePercent > surgeChangePercent {
			summary.SurgeCorridors++
		}
		if c.Volume > topVolume {
			topVolume = c.Volume
			summary.TopOrigin = c.Origin
			summary.TopDestination = c.Destination
		}
	}

	return &dto.MigrationFlowsResponse{
		Corridors: corridors,
		Summary:   summary,
	}, nil
}
