package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/analytics"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/pkg/errors"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/pkg/validator"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase/dto"
)

// DsiUseCase serves on-demand district scores and documents the formula.
type DsiUseCase struct {
	data   *DataContext
	logger *zap.Logger
}

func NewDsiUseCase(data *DataContext, logger *zap.Logger) *DsiUseCase {
	return &DsiUseCase{
		data:   data,
		logger: logger,
	}
}

// Calculate scores a single district by name. The district match folds case
// and padding; the state narrows the match when districts share a name.
func (uc *DsiUseCase) Calculate(ctx context.Context, req dto.DsiCalculateRequest) (*dto.DsiCalculateResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	tables, err := uc.data.Tables(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}

	wantDistrict := analytics.NormalizeKey(req.District)
	wantState := analytics.NormalizeKey(req.State)

	for _, agg := range analytics.BuildDistrictAggregates(tables) {
		if analytics.NormalizeKey(agg.District) != wantDistrict {
			continue
		}
		if wantState != "" && analytics.NormalizeKey(agg.State) != wantState {
			continue
		}

		result := analytics.ScoreDistrict(agg)
		uc.logger.Debug("district scored",
			zap.String("district", result.District),
			zap.Float64("dsi", result.DSI),
		)

		return &dto.DsiCalculateResponse{
			District:        result.District,
			State:           result.State,
			DSI:             result.DSI,
			Status:          string(result.Status),
			Volume:          result.Volume,
			Capacity:        result.Capacity,
			AdultPercent:    result.AdultPercent,
			TotalPopulation: result.TotalPopulation,
		}, nil
	}

	return nil, errors.ErrDistrictNotFound.WithDetails(map[string]interface{}{
		"district": req.District,
		"state":    req.State,
	})
}

// Formula documents the scoring formula and its constants.
func (uc *DsiUseCase) Formula() *dto.DsiFormulaResponse {
	return &dto.DsiFormulaResponse{
		Formula: "dsi = clamp(((volume*adult_weight + seasonal_spike*urgency) / capacity + repeat_volume) / 1000, 0, 10)",
		Constants: map[string]float64{
			"scale_divisor":         analytics.ScaleDivisor,
			"population_per_center": analytics.PopulationPerCenter,
			"urgency_multiplier":    analytics.UrgencyMultiplier,
			"seasonal_factor":       analytics.DefaultSeasonalFactor,
			"repeat_rate":           analytics.DefaultRepeatRate,
		},
		Thresholds: map[string]float64{
			"medium":   analytics.StatusMediumMin,
			"critical": analytics.StatusCriticalMin,
		},
		Statuses: []string{"low", "medium", "critical"},
	}
}
