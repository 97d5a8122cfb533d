package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/analytics"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase/dto"
)

// DemographicsUseCase serves the age-structure views: child transition gaps,
// senior-dense blue zones and the full zone classification.
type DemographicsUseCase struct {
	data   *DataContext
	logger *zap.Logger
}

func NewDemographicsUseCase(data *DataContext, logger *zap.Logger) *DemographicsUseCase {
	return &DemographicsUseCase{
		data:   data,
		logger: logger,
	}
}

func (uc *DemographicsUseCase) Data(ctx context.Context) (*dto.DemographicsResponse, error) {
	tables, err := uc.data.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}

	aggs := analytics.BuildDistrictAggregates(tables)

	resp := &dto.DemographicsResponse{
		ChildGaps: analytics.ChildGaps(aggs, 0),
		BlueZones: analytics.TopBlueZones(aggs, analytics.BlueZonesLimit),
		Zones:     analytics.ClassifyZones(aggs),
	}

	uc.logger.Debug("demographics views built",
		zap.Int("child_gaps", len(resp.ChildGaps)),
		zap.Int("blue_zones", len(resp.BlueZones)),
		zap.Int("zones", len(resp.Zones)),
	)
	return resp, nil
}
