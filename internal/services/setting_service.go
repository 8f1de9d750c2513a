package services

import (
	"time"

	"github.com/mustafazaki616/IndustriTrack/internal/models"
	"github.com/mustafazaki616/IndustriTrack/internal/repository"
)

type SettingService interface {
	CreateSetting(setting *models.Setting) error
	GetSettingByID(id uint) (*models.Setting, error)
	GetAllSettings() ([]models.Setting, error)
	UpdateSetting(id uint, updated *models.Setting) (*models.Setting, error)
	DeleteSetting(id uint) error
}

type settingService struct {
	settingRepo repository.SettingRepository
}

func NewSettingService(settingRepo repository.SettingRepository) SettingService {
	return &settingService{settingRepo: settingRepo}
}

func (s *settingService) CreateSetting(setting *models.Setting) error {
	setting.IsActive = true
	return s.settingRepo.Create(setting)
}

func (s *settingService) GetSettingByID(id uint) (*models.Setting, error) {
	return s.settingRepo.GetByID(id)
}

func (s *settingService) GetAllSettings() ([]models.Setting, error) {
	return s.settingRepo.GetAll()
}

func (s *settingService) UpdateSetting(id uint, updated *models.Setting) (*models.Setting, error) {
	existing, err := s.settingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	existing.Key = updated.Key
	existing.Value = updated.Value
	existing.Category = updated.Category
	existing.Description = updated.Description
	existing.IsActive = updated.IsActive
	existing.UpdatedAt = &now

	if err := s.settingRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *settingService) DeleteSetting(id uint) error {
	if _, err := s.settingRepo.GetByID(id); err != nil {
		return err
	}
	return s.settingRepo.Delete(id)
}
