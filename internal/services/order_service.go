package services

import (
	"errors"
	"fmt"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderStatusListener is notified after an order's status has been
// persisted. The production module registers itself here so stage creation
// follows order updates without the order module knowing about stages.
type OrderStatusListener interface {
	OnOrderStatusChanged(orderID uint, oldStatus, newStatus models.OrderStatus) error
}

type OrderService interface {
	CreateOrder(order *models.Order) error
	GetOrderByID(id uint) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
	UpdateOrder(id uint, updated *models.Order) (*models.Order, error)
	DeleteOrder(id uint) error
	AddStatusListener(listener OrderStatusListener)
}

type orderService struct {
	orderRepo      repository.OrderRepository
	productionRepo repository.ProductionRepository
	stageRepo      repository.ProductionStageRepository
	listeners      []OrderStatusListener
	logger         *zap.Logger
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productionRepo repository.ProductionRepository,
	stageRepo repository.ProductionStageRepository,
	logger *zap.Logger,
) OrderService {
	return &orderService{
		orderRepo:      orderRepo,
		productionRepo: productionRepo,
		stageRepo:      stageRepo,
		logger:         logger,
	}
}

func (s *orderService) AddStatusListener(listener OrderStatusListener) {
	s.listeners = append(s.listeners, listener)
}

func (s *orderService) CreateOrder(order *models.Order) error {
	if order.Status == "" {
		order.Status = models.OrderPending
	}
	if !order.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, order.Status)
	}
	return s.orderRepo.Create(order)
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return order, err
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) UpdateOrder(id uint, updated *models.Order) (*models.Order, error) {
	existing, err := s.orderRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if !updated.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, updated.Status)
	}

	oldStatus := existing.Status
	existing.Customer = updated.Customer
	existing.Article = updated.Article
	existing.Sizes = updated.Sizes
	existing.TotalQuantity = updated.TotalQuantity
	existing.Status = updated.Status
	existing.Price = updated.Price
	existing.Notes = updated.Notes

	if err := s.orderRepo.Update(existing); err != nil {
		return nil, err
	}

	if oldStatus != existing.Status {
		for _, listener := range s.listeners {
			if err := listener.OnOrderStatusChanged(existing.ID, oldStatus, existing.Status); err != nil {
				return nil, err
			}
		}
		s.logger.Info("order status changed",
			zap.Uint("order_id", existing.ID),
			zap.String("from", string(oldStatus)),
			zap.String("to", string(existing.Status)))
	}
	return existing, nil
}

// DeleteOrder removes the order together with its production record and
// stage trackers; those never outlive the order.
func (s *orderService) DeleteOrder(id uint) error {
	if _, err := s.orderRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if err := s.stageRepo.DeleteByOrderID(id); err != nil {
		return err
	}
	if err := s.productionRepo.DeleteByOrderID(id); err != nil {
		return err
	}
	return s.orderRepo.Delete(id)
}
