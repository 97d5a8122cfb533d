package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/pkg/errors"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/pkg/utils"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase/dto"
)

// DsiHandler serves on-demand district scoring.
type DsiHandler struct {
	dsiUC  *usecase.DsiUseCase
	logger *zap.Logger
}

func NewDsiHandler(dsiUC *usecase.DsiUseCase, logger *zap.Logger) *DsiHandler {
	return &DsiHandler{
		dsiUC:  dsiUC,
		logger: logger,
	}
}

// Calculate godoc
// @Summary Calculate DSI for a district
// @Description Scores a single district by name; state narrows the match
// @Tags DSI
// @Produce json
// @Param district query string true "District name"
// @Param state query string false "State name"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/dsi/calculate [get]
func (h *DsiHandler) Calculate(c *fiber.Ctx) error {
	req := dto.DsiCalculateRequest{
		District: c.Query("district"),
		State:    c.Query("state"),
	}
	if req.District == "" {
		return utils.SendError(c, errors.ErrDistrictRequired)
	}

	resp, err := h.dsiUC.Calculate(c.Context(), req)
	if err != nil {
		h.logger.Debug("DSI calculation failed",
			zap.String("district", req.District),
			zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}

// Formula godoc
// @Summary DSI formula reference
// @Description Documents the scoring formula, its constants and thresholds
// @Tags DSI
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/dsi/formula [get]
func (h *DsiHandler) Formula(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.dsiUC.Formula(), nil)
}
