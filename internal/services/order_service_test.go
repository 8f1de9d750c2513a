package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
)

func newOrderFixture(t *testing.T) (*productionFixture, OrderService) {
	t.Helper()
	f := newProductionFixture(t)
	orderService := NewOrderService(f.orderRepo, f.productionRepo, f.stageRepo, zap.NewNop())
	orderService.AddStatusListener(f.service)
	return f, orderService
}

func TestCreateOrderDefaultsToPending(t *testing.T) {
	_, orderService := newOrderFixture(t)

	order := &models.Order{Customer: "Beta Textiles", Article: "Denim Shirt"}
	require.NoError(t, orderService.CreateOrder(order))
	assert.Equal(t, models.OrderPending, order.Status)
}

func TestCreateOrderRejectsUnknownStatus(t *testing.T) {
	_, orderService := newOrderFixture(t)

	order := &models.Order{Customer: "Beta Textiles", Article: "Denim Shirt", Status: "Shipped"}
	err := orderService.CreateOrder(order)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestOrderMovedToInProductionGetsStages(t *testing.T) {
	f, orderService := newOrderFixture(t)

	order := &models.Order{Customer: "Acme Corp", Article: "Leather Jacket"}
	require.NoError(t, orderService.CreateOrder(order))

	stages, err := f.stageRepo.GetByOrderID(order.ID)
	require.NoError(t, err)
	assert.Empty(t, stages)

	order.Status = models.OrderInProduction
	_, err = orderService.UpdateOrder(order.ID, order)
	require.NoError(t, err)

	stages, err = f.stageRepo.GetByOrderID(order.ID)
	require.NoError(t, err)
	require.Len(t, stages, models.StageCount)
	assert.Equal(t, models.StageInProgress, stages[0].Status)

	// Updating without a status change must not touch the stages again.
	order.Notes = "rush order"
	_, err = orderService.UpdateOrder(order.ID, order)
	require.NoError(t, err)

	after, err := f.stageRepo.GetByOrderID(order.ID)
	require.NoError(t, err)
	require.Len(t, after, models.StageCount)
	assert.Equal(t, stages[0].ID, after[0].ID)
}

func TestDeleteOrderCascades(t *testing.T) {
	f, orderService := newOrderFixture(t)

	order := f.createOrder(t, models.OrderPending)
	_, err := f.service.StartProduction(order.ID, nil)
	require.NoError(t, err)

	require.NoError(t, orderService.DeleteOrder(order.ID))

	_, err = orderService.GetOrderByID(order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	stages, err := f.stageRepo.GetByOrderID(order.ID)
	require.NoError(t, err)
	assert.Empty(t, stages)

	production, err := f.productionRepo.GetByOrderID(order.ID)
	require.NoError(t, err)
	assert.Nil(t, production)
}

func TestDeleteOrderUnknown(t *testing.T) {
	_, orderService := newOrderFixture(t)
	assert.ErrorIs(t, orderService.DeleteOrder(123), ErrOrderNotFound)
}
