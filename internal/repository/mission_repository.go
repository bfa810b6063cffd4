package repository

import (
	"github.com/yukikurage/daily-missions-api/internal/models"
	"gorm.io/gorm"
)

// GormMissionRepository is a GORM implementation of MissionRepository
type GormMissionRepository struct {
	db *gorm.DB
}

// NewMissionRepository creates a new MissionRepository
func NewMissionRepository(db *gorm.DB) MissionRepository {
	return &GormMissionRepository{db: db}
}

// Create creates a new mission
func (r *GormMissionRepository) Create(mission *models.Mission) error {
	return r.db.Create(mission).Error
}

// FindByID finds a mission by ID
func (r *GormMissionRepository) FindByID(id uint64) (*models.Mission, error) {
	var mission models.Mission
	if err := r.db.First(&mission, id).Error; err != nil {
		return nil, err
	}
	return &mission, nil
}

// FindAll returns the full mission catalog in primary key order
func (r *GormMissionRepository) FindAll() ([]models.Mission, error) {
	missions := []models.Mission{}
	if err := r.db.Order("id").Find(&missions).Error; err != nil {
		return nil, err
	}
	return missions, nil
}

// SearchByTitle finds missions whose title contains the given substring,
// case-insensitively. LOWER on both sides keeps the behavior identical
// across MySQL and PostgreSQL.
func (r *GormMissionRepository) SearchByTitle(title string) ([]models.Mission, error) {
	missions := []models.Mission{}
	if err := r.db.
		Where("LOWER(title) LIKE LOWER(?)", "%"+title+"%").
		Order("id").
		Find(&missions).Error; err != nil {
		return nil, err
	}
	return missions, nil
}

// Update updates a mission
func (r *GormMissionRepository) Update(mission *models.Mission) error {
	return r.db.Save(mission).Error
}

// ExistsByID reports whether a mission with the given ID exists
func (r *GormMissionRepository) ExistsByID(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Mission{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete deletes a mission
func (r *GormMissionRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Mission{}, id).Error
}
