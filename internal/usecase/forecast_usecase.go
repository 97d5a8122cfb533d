package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/analytics"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase/dto"
)

// ForecastUseCase serves the 7-day demand projection and the per-state
// resource recommendations derived from it.
type ForecastUseCase struct {
	data   *DataContext
	logger *zap.Logger
	now    func() time.Time
}

func NewForecastUseCase(data *DataContext, logger *zap.Logger) *ForecastUseCase {
	return &ForecastUseCase{
		data:   data,
		logger: logger,
		now:    time.Now,
	}
}

// Demand projects national daily demand for the next 7 days.
func (uc *ForecastUseCase) Demand(ctx context.Context) (*dto.ForecastResponse, error) {
	tables, err := uc.data.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}

	points := analytics.Forecast7Day(analytics.DemandBaseline(tables), uc.now().UTC())

	summary := dto.ForecastSummary{}
	var confidenceSum float64
	for _, p := range points {
		summary.TotalPredicted += p.Predicted
		confidenceSum += p.Confidence
		if p.Predicted > summary.PeakDemand {
			summary.PeakDemand = p.Predicted
			summary.PeakDay = p.DayName
		}
	}
	if len(points) > 0 {
		summary.AvgConfidence = analytics.Round2(confidenceSum / float64(len(points)))
	}

	return &dto.ForecastResponse{
		Points:  points,
		Summary: summary,
	}, nil
}

// Recommendations flags the states whose predicted demand outruns capacity.
func (uc *ForecastUseCase) Recommendations(ctx context.Context) ([]domain.ResourceRecommendation, error) {
	tables, err := uc.data.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}

	states := analytics.BuildStateActivity(tables)
	recs := analytics.RecommendResources(states, 0)

	uc.logger.Debug("resource recommendations built", zap.Int("count", len(recs)))
	return recs, nil
}
