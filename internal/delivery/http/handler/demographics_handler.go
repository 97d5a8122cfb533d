package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/pkg/utils"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase"
)

// DemographicsHandler serves the age-structure views.
type DemographicsHandler struct {
	demographicsUC *usecase.DemographicsUseCase
	logger         *zap.Logger
}

func NewDemographicsHandler(demographicsUC *usecase.DemographicsUseCase, logger *zap.Logger) *DemographicsHandler {
	return &DemographicsHandler{
		demographicsUC: demographicsUC,
		logger:         logger,
	}
}

// GetData godoc
// @Summary Demographic structure views
// @Description Returns child transition gaps, blue zones and the full zone classification
// @Tags Demographics
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/demographics/data [get]
func (h *DemographicsHandler) GetData(c *fiber.Ctx) error {
	resp, err := h.demographicsUC.Data(c.Context())
	if err != nil {
		h.logger.Error("Failed to build demographics views", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}
