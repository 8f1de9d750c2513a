package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/repository"

	"gorm.io/gorm"
)

type ReportService interface {
	CreateReport(report *models.Report) error
	GetReportByID(id uint) (*models.Report, error)
	GetAllReports() ([]models.Report, error)
	UpdateReport(id uint, updated *models.Report) (*models.Report, error)
	DeleteReport(id uint) error
	GenerateProductionReport(productionID uint) (*models.Report, error)
}

type reportService struct {
	reportRepo     repository.ReportRepository
	productionRepo repository.ProductionRepository
	stageRepo      repository.ProductionStageRepository
	orderRepo      repository.OrderRepository
}

func NewReportService(
	reportRepo repository.ReportRepository,
	productionRepo repository.ProductionRepository,
	stageRepo repository.ProductionStageRepository,
	orderRepo repository.OrderRepository,
) ReportService {
	return &reportService{
		reportRepo:     reportRepo,
		productionRepo: productionRepo,
		stageRepo:      stageRepo,
		orderRepo:      orderRepo,
	}
}

func (s *reportService) CreateReport(report *models.Report) error {
	return s.reportRepo.Create(report)
}

func (s *reportService) GetReportByID(id uint) (*models.Report, error) {
	return s.reportRepo.GetByID(id)
}

func (s *reportService) GetAllReports() ([]models.Report, error) {
	return s.reportRepo.GetAll()
}

func (s *reportService) UpdateReport(id uint, updated *models.Report) (*models.Report, error) {
	existing, err := s.reportRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	existing.Title = updated.Title
	existing.Type = updated.Type
	existing.Data = updated.Data
	existing.DownloadURL = updated.DownloadURL
	existing.Description = updated.Description
	existing.IsGenerated = updated.IsGenerated
	existing.GeneratedBy = updated.GeneratedBy
	existing.GeneratedAt = updated.GeneratedAt
	existing.UpdatedAt = &now

	if err := s.reportRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *reportService) DeleteReport(id uint) error {
	if _, err := s.reportRepo.GetByID(id); err != nil {
		return err
	}
	return s.reportRepo.Delete(id)
}

// GenerateProductionReport snapshots one production run (order, record,
// ordered stages) into a stored JSON report.
func (s *reportService) GenerateProductionReport(productionID uint) (*models.Report, error) {
	production, err := s.productionRepo.GetByID(productionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductionNotFound
	}
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepo.GetByID(production.OrderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	stages, err := s.stageRepo.GetByOrderID(production.OrderID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(map[string]interface{}{
		"order":      order,
		"production": production,
		"stages":     stages,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	report := &models.Report{
		Title:       fmt.Sprintf("Production Report for Order #%d", order.ID),
		Type:        "Production",
		Data:        string(payload),
		Description: fmt.Sprintf("Auto-generated report for Order #%d (%s)", order.ID, order.Article),
		IsGenerated: true,
		GeneratedAt: &now,
	}
	if err := s.reportRepo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}
