package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/config"
	delivery "github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/delivery/http"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/delivery/http/handler"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/domain"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/repository/cache"
	"github.com/HoneyBadger-010/SANKHYA-NUMBERS-TO-DECISION/internal/usecase"
)

// stubDatasets serves a fixed in-memory dataset.
type stubDatasets struct{}

func (stubDatasets) LoadTables(ctx context.Context) (*domain.Tables, error) {
	tables := domain.EmptyTables()
	tables.Demographic.Rows = []domain.Record{
		{
			State:    "Bihar",
			District: "Patna",
			Counts: map[string]float64{
				domain.ColDemoAge5_17: 4000,
				domain.ColDemoAge17:   6000,
			},
		},
	}
	tables.Biometric.Rows = []domain.Record{
		{
			State:    "Bihar",
			District: "Patna",
			Counts:   map[string]float64{domain.ColBioAge17: 300},
		},
	}
	return tables, nil
}

func testServer(t *testing.T) *delivery.Server {
	t.Helper()

	logger := zap.NewNop()
	cfg := &config.Config{}

	dc := usecase.NewDataContext(stubDatasets{}, logger)
	noop := cache.NewNoopCache()

	dashboardUC := usecase.NewDashboardUseCase(dc, noop, nil, logger, time.Hour)
	dsiUC := usecase.NewDsiUseCase(dc, logger)
	demographicsUC := usecase.NewDemographicsUseCase(dc, logger)
	migrationUC := usecase.NewMigrationUseCase(dc, logger)
	anomalyUC := usecase.NewAnomalyUseCase(dc, logger)
	forecastUC := usecase.NewForecastUseCase(dc, logger)

	return delivery.NewServer(
		cfg,
		logger,
		handler.NewDashboardHandler(dashboardUC, logger),
		handler.NewDsiHandler(dsiUC, logger),
		handler.NewDemographicsHandler(demographicsUC, logger),
		handler.NewMigrationHandler(migrationUC, logger),
		handler.NewAnomalyHandler(anomalyUC, logger),
		handler.NewForecastHandler(forecastUC, logger),
	)
}

func doRequest(t *testing.T, srv *delivery.Server, path string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &doc))
	return resp, doc
}

func TestServerRoutes(t *testing.T) {
	srv := testServer(t)

	t.Run("health", func(t *testing.T) {
		resp, doc := doRequest(t, srv, "/api/v1/health")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, doc, "status")
	})

	t.Run("kpis", func(t *testing.T) {
		resp, doc := doRequest(t, srv, "/api/v1/dashboard/kpis")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var kpis domain.KPIs
		require.NoError(t, json.Unmarshal(doc["data"], &kpis))
		assert.Equal(t, 1, kpis.TotalDistricts)
	})

	t.Run("snapshot carries the contract keys", func(t *testing.T) {
		resp, doc := doRequest(t, srv, "/api/v1/dashboard/snapshot")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var snap map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(doc["data"], &snap))
		for _, key := range []string{
			"kpis", "stressed_districts", "map_markers", "migration_corridors",
			"child_gaps", "blue_zones", "dead_centers", "anomalies", "demand_forecast",
		} {
			assert.Contains(t, snap, key)
		}
	})

	t.Run("dsi calculate known district", func(t *testing.T) {
		resp, _ := doRequest(t, srv, "/api/v1/dsi/calculate?district=Patna")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("dsi calculate unknown district", func(t *testing.T) {
		resp, doc := doRequest(t, srv, "/api/v1/dsi/calculate?district=Atlantis")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, doc, "error")
	})

	t.Run("dsi calculate without district", func(t *testing.T) {
		resp, _ := doRequest(t, srv, "/api/v1/dsi/calculate")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, _ := doRequest(t, srv, "/api/v1/dashboard/stressed-districts?limit=zero")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("remaining views respond", func(t *testing.T) {
		for _, path := range []string{
			"/api/v1/dashboard/stressed-districts",
			"/api/v1/dashboard/alerts",
			"/api/v1/map/markers",
			"/api/v1/dsi/formula",
			"/api/v1/demographics/data",
			"/api/v1/migration/flows",
			"/api/v1/anomalies/detect",
			"/api/v1/resources/assets",
			"/api/v1/resources/recommendations",
			"/api/v1/forecast/demand",
			"/api/v1/pipeline/runs",
		} {
			resp, _ := doRequest(t, srv, path)
			assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		}
	})
}
