package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/pkg/errors"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/pkg/utils"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase"
)

// DashboardHandler serves the dashboard views.
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// GetKPIs godoc
// @Summary Dashboard KPI summary
// @Description Returns the aggregate indicators shown in the dashboard header
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/dashboard/kpis [get]
func (h *DashboardHandler) GetKPIs(c *fiber.Ctx) error {
	kpis, err := h.dashboardUC.KPIs(c.Context())
	if err != nil {
		h.logger.Error("Failed to build KPIs", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, kpis, nil)
}

// GetStressedDistricts godoc
// @Summary Top stressed districts
// @Description Returns districts ranked by District Stress Index, highest first
// @Tags Dashboard
// @Produce json
// @Param limit query int false "Maximum rows" default(50)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/dashboard/stressed-districts [get]
func (h *DashboardHandler) GetStressedDistricts(c *fiber.Ctx) error {
	limit, err := parseLimit(c, 50)
	if err != nil {
		return utils.SendError(c, err)
	}

	results, err := h.dashboardUC.StressedDistricts(c.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to rank districts", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, results, &utils.Meta{Total: len(results), Limit: limit})
}

// GetAlerts godoc
// @Summary Active dashboard alerts
// @Description Returns alerts synthesized from detected activity anomalies
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/dashboard/alerts [get]
func (h *DashboardHandler) GetAlerts(c *fiber.Ctx) error {
	alerts, err := h.dashboardUC.Alerts(c.Context())
	if err != nil {
		h.logger.Error("Failed to build alerts", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, alerts, &utils.Meta{Total: len(alerts)})
}

// GetSnapshot godoc
// @Summary Full dashboard snapshot
// @Description Returns the complete result document all dashboard views bind to
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/dashboard/snapshot [get]
func (h *DashboardHandler) GetSnapshot(c *fiber.Ctx) error {
	snapshot, err := h.dashboardUC.Snapshot(c.Context())
	if err != nil {
		h.logger.Error("Failed to build snapshot", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, snapshot, nil)
}

// GetMapMarkers godoc
// @Summary District map markers
// @Description Returns one marker per scored district with synthetic stable coordinates
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/map/markers [get]
func (h *DashboardHandler) GetMapMarkers(c *fiber.Ctx) error {
	markers, err := h.dashboardUC.MapMarkers(c.Context())
	if err != nil {
		h.logger.Error("Failed to build map markers", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, markers, &utils.Meta{Total: len(markers)})
}

// GetPipelineRuns godoc
// @Summary Recent pipeline runs
// @Description Returns persisted run history, newest first; empty without a database
// @Tags Pipeline
// @Produce json
// @Param limit query int false "Maximum rows" default(10)
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/pipeline/runs [get]
func (h *DashboardHandler) GetPipelineRuns(c *fiber.Ctx) error {
	limit, err := parseLimit(c, 10)
	if err != nil {
		return utils.SendError(c, err)
	}

	runs, err := h.dashboardUC.RecentRuns(c.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list pipeline runs", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, runs, &utils.Meta{Total: len(runs), Limit: limit})
}

// parseLimit reads the optional limit query param, bounded to sane values.
func parseLimit(c *fiber.Ctx, def int) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return def, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > 500 {
		return 0, errors.ErrInvalidLimit.WithDetails(map[string]interface{}{
			"limit": raw,
		})
	}
	return limit, nil
}
