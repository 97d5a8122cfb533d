package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/pkg/utils"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase"
)

// ForecastHandler serves the demand projection views.
type ForecastHandler struct {
	forecastUC *usecase.ForecastUseCase
	logger     *zap.Logger
}

func NewForecastHandler(forecastUC *usecase.ForecastUseCase, logger *zap.Logger) *ForecastHandler {
	return &ForecastHandler{
		forecastUC: forecastUC,
		logger:     logger,
	}
}

// GetDemand godoc
// @Summary 7-day demand forecast
// @Description Projects national daily demand for the next week
// @Tags Forecast
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/forecast/demand [get]
func (h *ForecastHandler) GetDemand(c *fiber.Ctx) error {
	resp, err := h.forecastUC.Demand(c.Context())
	if err != nil {
		h.logger.Error("Failed to build forecast", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// GetRecommendations godoc
// @Summary Resource recommendations
// @Description Flags states whose predicted demand exceeds estimated center capacity
// @Tags Resources
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/resources/recommendations [get]
func (h *ForecastHandler) GetRecommendations(c *fiber.Ctx) error {
	recs, err := h.forecastUC.Recommendations(c.Context())
	if err != nil {
		h.logger.Error("Failed to build recommendations", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, recs, &utils.Meta{Total: len(recs)})
}
