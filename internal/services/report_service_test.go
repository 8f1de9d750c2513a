package services

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/repository"
)

func newReportFixture(t *testing.T) (*productionFixture, ReportService) {
	t.Helper()
	f := newProductionFixture(t)
	require.NoError(t, f.db.AutoMigrate(&models.Report{}))
	reportRepo := repository.NewReportRepository(f.db)
	return f, NewReportService(reportRepo, f.productionRepo, f.stageRepo, f.orderRepo)
}

func TestGenerateProductionReport(t *testing.T) {
	f, reportService := newReportFixture(t)

	order := f.createOrder(t, models.OrderPending)
	result, err := f.service.StartProduction(order.ID, nil)
	require.NoError(t, err)

	report, err := reportService.GenerateProductionReport(result.Production.ID)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("Production Report for Order #%d", order.ID), report.Title)
	assert.Equal(t, "Production", report.Type)
	assert.True(t, report.IsGenerated)
	require.NotNil(t, report.GeneratedAt)

	var payload struct {
		Order      models.Order             `json:"order"`
		Production models.Production        `json:"production"`
		Stages     []models.ProductionStage `json:"stages"`
	}
	require.NoError(t, json.Unmarshal([]byte(report.Data), &payload))
	assert.Equal(t, order.ID, payload.Order.ID)
	assert.Equal(t, result.Production.ID, payload.Production.ID)
	assert.Len(t, payload.Stages, models.StageCount)
}

func TestGenerateProductionReportUnknownProduction(t *testing.T) {
	_, reportService := newReportFixture(t)

	_, err := reportService.GenerateProductionReport(77)
	assert.ErrorIs(t, err, ErrProductionNotFound)
}
