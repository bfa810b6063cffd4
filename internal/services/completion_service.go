package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/daily-missions-api/internal/models"
	"github.com/yukikurage/daily-missions-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCompletionNotFound = errors.New("completion record not found")
	ErrAlreadyCompleted   = errors.New("mission already completed by user")
)

// CompletionService handles completion record business logic
type CompletionService struct {
	completionRepo repository.CompletionRepository
	userRepo       repository.UserRepository
	missionRepo    repository.MissionRepository
}

// NewCompletionService creates a new CompletionService
func NewCompletionService(
	completionRepo repository.CompletionRepository,
	userRepo repository.UserRepository,
	missionRepo repository.MissionRepository,
) *CompletionService {
	return &CompletionService{
		completionRepo: completionRepo,
		userRepo:       userRepo,
		missionRepo:    missionRepo,
	}
}

// ListCompletions returns all completion records
func (s *CompletionService) ListCompletions() ([]models.Completion, error) {
	completions, err := s.completionRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	return completions, nil
}

// GetCompletion returns a completion record by ID
func (s *CompletionService) GetCompletion(id uint64) (*models.Completion, error) {
	completion, err := s.completionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompletionNotFound
		}
		return nil, fmt.Errorf("failed to find completion: %w", err)
	}
	return completion, nil
}

// ListByUser returns all completion records for a user
func (s *CompletionService) ListByUser(userID uint64) ([]models.Completion, error) {
	completions, err := s.completionRepo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions by user: %w", err)
	}
	return completions, nil
}

// ListByMission returns all completion records for a mission
func (s *CompletionService) ListByMission(missionID uint64) ([]models.Completion, error) {
	completions, err := s.completionRepo.FindByMission(missionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions by mission: %w", err)
	}
	return completions, nil
}

// CompleteMission records that a user finished a mission and grants the
// mission's experience reward. Each (user, mission) pair completes at most
// once: a prior record yields ErrAlreadyCompleted, as does losing the insert
// race against a concurrent request for the same pair.
func (s *CompletionService) CompleteMission(userID, missionID uint64, photo string) (*models.Completion, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	mission, err := s.missionRepo.FindByID(missionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissionNotFound
		}
		return nil, fmt.Errorf("failed to find mission: %w", err)
	}

	done, err := s.completionRepo.ExistsByUserAndMission(userID, missionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check completion: %w", err)
	}
	if done {
		return nil, ErrAlreadyCompleted
	}

	completion := &models.Completion{
		UserID:    userID,
		MissionID: missionID,
		Photo:     photo,
	}

	if err := s.completionRepo.CreateWithReward(completion, mission.Experience); err != nil {
		if errors.Is(err, repository.ErrDuplicateCompletion) {
			return nil, ErrAlreadyCompleted
		}
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}

	return completion, nil
}

// CompletedMissionsByUser expands a user's completion records into the
// mission entities. Missions deleted since their completion are skipped.
func (s *CompletionService) CompletedMissionsByUser(userID uint64) ([]models.Mission, error) {
	completions, err := s.completionRepo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions by user: %w", err)
	}

	missions := make([]models.Mission, 0, len(completions))
	for _, completion := range completions {
		mission, err := s.missionRepo.FindByID(completion.MissionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to find mission: %w", err)
		}
		missions = append(missions, *mission)
	}

	return missions, nil
}

// DeleteCompletion removes a completion record. The experience granted when
// it was created is not clawed back.
func (s *CompletionService) DeleteCompletion(id uint64) error {
	exists, err := s.completionRepo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("failed to check completion: %w", err)
	}
	if !exists {
		return ErrCompletionNotFound
	}

	if err := s.completionRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete completion: %w", err)
	}

	return nil
}
