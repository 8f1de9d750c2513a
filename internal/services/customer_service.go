package services

import (
	"errors"
	"time"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/repository"

	"gorm.io/gorm"
)

type CustomerService interface {
	CreateCustomer(customer *models.Customer) error
	GetAllCustomers() ([]models.Customer, error)
	UpdateCustomer(id uint, updated *models.Customer) (*models.Customer, error)
	DeleteCustomer(id uint) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(customer *models.Customer) error {
	customer.IsActive = true
	return s.customerRepo.Create(customer)
}

func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *customerService) UpdateCustomer(id uint, updated *models.Customer) (*models.Customer, error) {
	existing, err := s.customerRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gorm.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	existing.Name = updated.Name
	existing.Email = updated.Email
	existing.Phone = updated.Phone
	existing.Address = updated.Address
	existing.Company = updated.Company
	existing.ContactPerson = updated.ContactPerson
	existing.IsActive = updated.IsActive
	existing.UpdatedAt = &now

	if err := s.customerRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *customerService) DeleteCustomer(id uint) error {
	if _, err := s.customerRepo.GetByID(id); err != nil {
		return err
	}
	return s.customerRepo.Delete(id)
}
