package repository

import (
	"errors"

	"github.com/yukikurage/daily-missions-api/internal/models"
	"gorm.io/gorm"
)

// ErrDuplicateCompletion is returned when the unique index rejects a second
// completion for the same (user, mission) pair.
var ErrDuplicateCompletion = errors.New("completion repository: completion already exists for user and mission")

// GormCompletionRepository is a GORM implementation of CompletionRepository
type GormCompletionRepository struct {
	db *gorm.DB
}

// NewCompletionRepository creates a new CompletionRepository
func NewCompletionRepository(db *gorm.DB) CompletionRepository {
	return &GormCompletionRepository{db: db}
}

// CreateWithReward inserts the completion record and applies the experience
// grant as a single unit of work. The grant is an in-database increment, so
// concurrent completions for the same user never lose updates. A zero or
// negative reward skips the grant.
func (r *GormCompletionRepository) CreateWithReward(completion *models.Completion, reward int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(completion).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateCompletion
			}
			return err
		}

		if reward <= 0 {
			return nil
		}

		return tx.Model(&models.User{}).
			Where("id = ?", completion.UserID).
			UpdateColumn("experience", gorm.Expr("experience + ?", reward)).Error
	})
}

// FindByID finds a completion record by ID
func (r *GormCompletionRepository) FindByID(id uint64) (*models.Completion, error) {
	var completion models.Completion
	if err := r.db.First(&completion, id).Error; err != nil {
		return nil, err
	}
	return &completion, nil
}

// FindAll returns all completion records
func (r *GormCompletionRepository) FindAll() ([]models.Completion, error) {
	completions := []models.Completion{}
	if err := r.db.Order("id").Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

// FindByUser returns all completion records for a user
func (r *GormCompletionRepository) FindByUser(userID uint64) ([]models.Completion, error) {
	completions := []models.Completion{}
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

// FindByMission returns all completion records for a mission
func (r *GormCompletionRepository) FindByMission(missionID uint64) ([]models.Completion, error) {
	completions := []models.Completion{}
	if err := r.db.Where("mission_id = ?", missionID).Order("id").Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

// ExistsByUserAndMission reports whether the user has already completed the mission
func (r *GormCompletionRepository) ExistsByUserAndMission(userID, missionID uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Completion{}).
		Where("user_id = ? AND mission_id = ?", userID, missionID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByID reports whether a completion record with the given ID exists
func (r *GormCompletionRepository) ExistsByID(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Completion{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete deletes a completion record. The user's experience is deliberately
// left untouched.
func (r *GormCompletionRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Completion{}, id).Error
}
