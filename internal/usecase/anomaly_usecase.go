package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/analytics"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
)

// AnomalyUseCase serves anomaly detection and the dead-center report.
type AnomalyUseCase struct {
	data   *DataContext
	logger *zap.Logger
}

func NewAnomalyUseCase(data *DataContext, logger *zap.Logger) *AnomalyUseCase {
	return &AnomalyUseCase{
		data:   data,
		logger: logger,
	}
}

// Detect returns the strongest deviations from the expected update baseline.
// Without the biometric dataset there is no update volume to deviate, so the
// result is empty rather than a blanket drop across every district.
func (uc *AnomalyUseCase) Detect(ctx context.Context, limit int) ([]domain.AnomalyRecord, error) {
	tables, aggs, err := uc.aggregates(ctx)
	if err != nil {
		return nil, err
	}
	if tables.Biometric.Empty() {
		uc.logger.Debug("biometric dataset empty, skipping anomaly detection")
		return []domain.AnomalyRecord{}, nil
	}

	anomalies := analytics.DetectAnomalies(aggs, nil, limit)
	uc.logger.Debug("anomalies detected", zap.Int("count", len(anomalies)))
	return anomalies, nil
}

// DeadCenters returns the districts in the lowest update-rate decile, empty
// when the biometric dataset is missing.
func (uc *AnomalyUseCase) DeadCenters(ctx context.Context, limit int) ([]domain.DeadCenter, error) {
	tables, aggs, err := uc.aggregates(ctx)
	if err != nil {
		return nil, err
	}
	if tables.Biometric.Empty() {
		return []domain.DeadCenter{}, nil
	}
	return analytics.DeadCenters(aggs, limit), nil
}

func (uc *AnomalyUseCase) aggregates(ctx context.Context) (*domain.Tables, []domain.DistrictAggregate, error) {
	tables, err := uc.data.Tables(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load tables: %w", err)
	}
	return tables, analytics.BuildDistrictAggregates(tables), nil
}
