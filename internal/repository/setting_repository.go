package repository

import (
	"github.com/mustafazaki616/IndustriTrack/internal/models"

	"gorm.io/gorm"
)

type SettingRepository interface {
	Create(setting *models.Setting) error
	GetByID(id uint) (*models.Setting, error)
	GetByKey(key string) (*models.Setting, error)
	GetAll() ([]models.Setting, error)
	Update(setting *models.Setting) error
	Delete(id uint) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Create(setting *models.Setting) error {
	return r.db.Create(setting).Error
}

func (r *settingRepository) GetByID(id uint) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.First(&setting, id).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) GetByKey(key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *settingRepository) GetAll() ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.Find(&settings).Error
	return settings, err
}

func (r *settingRepository) Update(setting *models.Setting) error {
	return r.db.Save(setting).Error
}

func (r *settingRepository) Delete(id uint) error {
	return r.db.Delete(&models.Setting{}, id).Error
}
