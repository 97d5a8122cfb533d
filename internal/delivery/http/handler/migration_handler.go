package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/pkg/utils"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase"
)

// MigrationHandler serves the migration corridor view.
type MigrationHandler struct {
	migrationUC *usecase.MigrationUseCase
	logger      *zap.Logger
}

func NewMigrationHandler(migrationUC *usecase.MigrationUseCase, logger *zap.Logger) *MigrationHandler {
	return &MigrationHandler{
		migrationUC: migrationUC,
		logger:      logger,
	}
}

// GetFlows godoc
// @Summary Migration corridor flows
// @Description Returns the curated corridors enriched with live origin volumes
// @Tags Migration
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/migration/flows [get]
func (h *MigrationHandler) GetFlows(c *fiber.Ctx) error {
	resp, err := h.migrationUC.Flows(c.Context())
	if err != nil {
		h.logger.Error("Failed to estimate migration flows", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, nil)
}
