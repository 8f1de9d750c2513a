package services

import (
	"time"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/repository"
)

type PaymentService interface {
	CreatePayment(payment *models.Payment) error
	GetPaymentByID(id uint) (*models.Payment, error)
	GetAllPayments() ([]models.Payment, error)
	UpdatePayment(id uint, updated *models.Payment) (*models.Payment, error)
	DeletePayment(id uint) error
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) CreatePayment(payment *models.Payment) error {
	if payment.Status == "" {
		payment.Status = models.PaymentPending
	}
	return s.paymentRepo.Create(payment)
}

func (s *paymentService) GetPaymentByID(id uint) (*models.Payment, error) {
	return s.paymentRepo.GetByID(id)
}

func (s *paymentService) GetAllPayments() ([]models.Payment, error) {
	return s.paymentRepo.GetAll()
}

func (s *paymentService) UpdatePayment(id uint, updated *models.Payment) (*models.Payment, error) {
	existing, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	existing.OrderID = updated.OrderID
	existing.Status = updated.Status
	existing.Method = updated.Method
	existing.Amount = updated.Amount
	existing.PaymentDate = updated.PaymentDate
	existing.Customer = updated.Customer
	existing.TransactionID = updated.TransactionID
	existing.Notes = updated.Notes
	existing.IsPaid = updated.IsPaid
	existing.UpdatedAt = &now

	// Marking a payment as settled stamps the date when the caller did not.
	if existing.IsPaid && existing.PaymentDate == nil {
		existing.PaymentDate = &now
	}

	if err := s.paymentRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *paymentService) DeletePayment(id uint) error {
	if _, err := s.paymentRepo.GetByID(id); err != nil {
		return err
	}
	return s.paymentRepo.Delete(id)
}
