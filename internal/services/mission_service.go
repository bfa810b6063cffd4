package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/daily-missions-api/internal/models"
	"github.com/yukikurage/daily-missions-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMissionNotFound      = errors.New("mission not found")
	ErrMissionTitleRequired = errors.New("mission title is required")
)

// MissionService handles mission catalog business logic
type MissionService struct {
	missionRepo repository.MissionRepository
}

// NewMissionService creates a new MissionService
func NewMissionService(missionRepo repository.MissionRepository) *MissionService {
	return &MissionService{
		missionRepo: missionRepo,
	}
}

// CreateMissionInput represents input for creating a mission
type CreateMissionInput struct {
	Title      string
	Body       string
	Experience int
}

// UpdateMissionInput represents input for a partial mission update; nil
// fields are left unchanged
type UpdateMissionInput struct {
	Title      *string
	Body       *string
	Experience *int
}

// ListMissions returns the full mission catalog
func (s *MissionService) ListMissions() ([]models.Mission, error) {
	missions, err := s.missionRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return missions, nil
}

// GetMission returns a mission by ID
func (s *MissionService) GetMission(id uint64) (*models.Mission, error) {
	mission, err := s.missionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissionNotFound
		}
		return nil, fmt.Errorf("failed to find mission: %w", err)
	}
	return mission, nil
}

// SearchMissions returns missions whose title contains the given substring,
// case-insensitively. A blank query falls back to the full catalog.
func (s *MissionService) SearchMissions(title string) ([]models.Mission, error) {
	if strings.TrimSpace(title) == "" {
		return s.ListMissions()
	}

	missions, err := s.missionRepo.SearchByTitle(title)
	if err != nil {
		return nil, fmt.Errorf("failed to search missions: %w", err)
	}
	return missions, nil
}

// CreateMission creates a new mission with validation
func (s *MissionService) CreateMission(input CreateMissionInput) (*models.Mission, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrMissionTitleRequired
	}

	if input.Experience < 0 {
		input.Experience = 0
	}

	mission := &models.Mission{
		Title:      input.Title,
		Body:       input.Body,
		Experience: input.Experience,
	}

	if err := s.missionRepo.Create(mission); err != nil {
		return nil, fmt.Errorf("failed to create mission: %w", err)
	}

	return mission, nil
}

// UpdateMission applies a partial update to a mission
func (s *MissionService) UpdateMission(id uint64, input UpdateMissionInput) (*models.Mission, error) {
	mission, err := s.missionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMissionNotFound
		}
		return nil, fmt.Errorf("failed to find mission: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrMissionTitleRequired
		}
		mission.Title = *input.Title
	}
	if input.Body != nil {
		mission.Body = *input.Body
	}
	if input.Experience != nil {
		experience := *input.Experience
		if experience < 0 {
			experience = 0
		}
		mission.Experience = experience
	}

	if err := s.missionRepo.Update(mission); err != nil {
		return nil, fmt.Errorf("failed to update mission: %w", err)
	}

	return mission, nil
}

// DeleteMission deletes a mission. Completion records referring to it are
// intentionally left in place.
func (s *MissionService) DeleteMission(id uint64) error {
	exists, err := s.missionRepo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("failed to check mission: %w", err)
	}
	if !exists {
		return ErrMissionNotFound
	}

	if err := s.missionRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete mission: %w", err)
	}

	return nil
}
