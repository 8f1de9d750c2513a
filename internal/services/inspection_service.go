package services

import (
	"time"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/repository"
)

type InspectionService interface {
	CreateInspection(inspection *models.Inspection) error
	GetInspectionByID(id uint) (*models.Inspection, error)
	GetAllInspections() ([]models.Inspection, error)
	UpdateInspection(id uint, updated *models.Inspection) (*models.Inspection, error)
	DeleteInspection(id uint) error
}

type inspectionService struct {
	inspectionRepo repository.InspectionRepository
}

func NewInspectionService(inspectionRepo repository.InspectionRepository) InspectionService {
	return &inspectionService{inspectionRepo: inspectionRepo}
}

func (s *inspectionService) CreateInspection(inspection *models.Inspection) error {
	if inspection.Status == "" {
		inspection.Status = models.InspectionInProgress
	}
	return s.inspectionRepo.Create(inspection)
}

func (s *inspectionService) GetInspectionByID(id uint) (*models.Inspection, error) {
	return s.inspectionRepo.GetByID(id)
}

func (s *inspectionService) GetAllInspections() ([]models.Inspection, error) {
	return s.inspectionRepo.GetAll()
}

func (s *inspectionService) UpdateInspection(id uint, updated *models.Inspection) (*models.Inspection, error) {
	existing, err := s.inspectionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	existing.OrderID = updated.OrderID
	existing.Status = updated.Status
	existing.Inspector = updated.Inspector
	existing.InspectionDate = updated.InspectionDate
	existing.Result = updated.Result
	existing.Notes = updated.Notes
	existing.IsPassed = updated.IsPassed
	existing.Defects = updated.Defects
	existing.DefectCount = updated.DefectCount
	existing.UpdatedAt = &now

	if err := s.inspectionRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *inspectionService) DeleteInspection(id uint) error {
	if _, err := s.inspectionRepo.GetByID(id); err != nil {
		return err
	}
	return s.inspectionRepo.Delete(id)
}
