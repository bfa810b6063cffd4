package repository

import (
	"github.com/yukikurage/daily-missions-api/internal/models"
)

// MissionRepository defines the interface for mission catalog data access
type MissionRepository interface {
	// Create creates a new mission
	Create(mission *models.Mission) error

	// FindByID finds a mission by ID
	FindByID(id uint64) (*models.Mission, error)

	// FindAll returns the full mission catalog
	FindAll() ([]models.Mission, error)

	// SearchByTitle finds missions whose title contains the given
	// substring, case-insensitively
	SearchByTitle(title string) ([]models.Mission, error)

	// Update updates a mission
	Update(mission *models.Mission) error

	// ExistsByID reports whether a mission with the given ID exists
	ExistsByID(id uint64) (bool, error)

	// Delete deletes a mission
	Delete(id uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindAll returns all users
	FindAll() ([]models.User, error)

	// FindByName finds a user by display name
	FindByName(name string) (*models.User, error)

	// ExistsByName reports whether a user with the given name exists
	ExistsByName(name string) (bool, error)

	// Update updates a user
	Update(user *models.User) error

	// ExistsByID reports whether a user with the given ID exists
	ExistsByID(id uint64) (bool, error)

	// Delete deletes a user
	Delete(id uint64) error
}

// CompletionRepository defines the interface for completion record data access
type CompletionRepository interface {
	// CreateWithReward inserts a completion record and grants the mission's
	// experience reward to the user within a single transaction
	CreateWithReward(completion *models.Completion, reward int) error

	// FindByID finds a completion record by ID
	FindByID(id uint64) (*models.Completion, error)

	// FindAll returns all completion records
	FindAll() ([]models.Completion, error)

	// FindByUser returns all completion records for a user
	FindByUser(userID uint64) ([]models.Completion, error)

	// FindByMission returns all completion records for a mission
	FindByMission(missionID uint64) ([]models.Completion, error)

	// ExistsByUserAndMission reports whether the user has already completed
	// the mission
	ExistsByUserAndMission(userID, missionID uint64) (bool, error)

	// ExistsByID reports whether a completion record with the given ID exists
	ExistsByID(id uint64) (bool, error)

	// Delete deletes a completion record
	Delete(id uint64) error
}
