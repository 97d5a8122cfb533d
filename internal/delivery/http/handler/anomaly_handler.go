package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/pkg/utils"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase"
)

// AnomalyHandler serves anomaly detection and the dead-center report.
type AnomalyHandler struct {
	anomalyUC *usecase.AnomalyUseCase
	logger    *zap.Logger
}

func NewAnomalyHandler(anomalyUC *usecase.AnomalyUseCase, logger *zap.Logger) *AnomalyHandler {
	return &AnomalyHandler{
		anomalyUC: anomalyUC,
		logger:    logger,
	}
}

// Detect godoc
// @Summary Detect activity anomalies
// @Description Returns districts whose update volume deviates strongly from baseline
// @Tags Anomalies
// @Produce json
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/anomalies/detect [get]
func (h *AnomalyHandler) Detect(c *fiber.Ctx) error {
	limit, err := parseLimit(c, 10)
	if err != nil {
		return utils.SendError(c, err)
	}

	anomalies, err := h.anomalyUC.Detect(c.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to detect anomalies", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, anomalies, &utils.Meta{Total: len(anomalies), Limit: limit})
}

// GetDeadCenters godoc
// @Summary Districts with dormant centers
// @Description Returns districts whose update rate falls in the lowest decile
// @Tags Resources
// @Produce json
// @Param limit query int false "Maximum rows" default(20)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/resources/assets [get]
func (h *AnomalyHandler) GetDeadCenters(c *fiber.Ctx) error {
	limit, err := parseLimit(c, 20)
	if err != nil {
		return utils.SendError(c, err)
	}

	dead, err := h.anomalyUC.DeadCenters(c.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to build dead-center report", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dead, &utils.Meta{Total: len(dead), Limit: limit})
}
