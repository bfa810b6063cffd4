package services

import (
	"fmt"
	"time"

	"github.com/yukikurage/daily-missions-api/internal/constants"
	"github.com/yukikurage/daily-missions-api/internal/lcg"
	"github.com/yukikurage/daily-missions-api/internal/models"
	"github.com/yukikurage/daily-missions-api/internal/repository"
)

// DailyMissionService computes the daily mission rotation. The selection is
// recomputed from the live catalog on every call; nothing is cached or
// persisted, so every instance agrees on the same rotation for a given day.
type DailyMissionService struct {
	missionRepo repository.MissionRepository
}

// NewDailyMissionService creates a new DailyMissionService
func NewDailyMissionService(missionRepo repository.MissionRepository) *DailyMissionService {
	return &DailyMissionService{
		missionRepo: missionRepo,
	}
}

// DateSeed derives the selection seed from a calendar date as
// year*10000 + month*100 + day, so 2024-03-07 becomes 20240307.
func DateSeed(t time.Time) int64 {
	return int64(t.Year())*10000 + int64(t.Month())*100 + int64(t.Day())
}

// SelectDaily deterministically picks up to three missions from the catalog
// for the given date. The welcome mission never appears. With three or fewer
// eligible missions the catalog order is preserved; otherwise the date seeds
// the generator and three draws are taken without replacement, one bounded
// draw per pick.
func SelectDaily(catalog []models.Mission, today time.Time) []models.Mission {
	eligible := make([]models.Mission, 0, len(catalog))
	for _, m := range catalog {
		if m.ID == constants.ReservedMissionID {
			continue
		}
		eligible = append(eligible, m)
	}

	if len(eligible) <= constants.DailyMissionCount {
		return eligible
	}

	source := lcg.New(DateSeed(today))
	selected := make([]models.Mission, 0, constants.DailyMissionCount)
	for i := 0; i < constants.DailyMissionCount && len(eligible) > 0; i++ {
		idx := source.Intn(len(eligible))
		selected = append(selected, eligible[idx])
		eligible = append(eligible[:idx], eligible[idx+1:]...)
	}

	return selected
}

// DailyMissions returns the rotation for the given date computed from the
// live catalog.
func (s *DailyMissionService) DailyMissions(today time.Time) ([]models.Mission, error) {
	catalog, err := s.missionRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load mission catalog: %w", err)
	}

	return SelectDaily(catalog, today), nil
}

// IsDailyMission reports whether the mission is part of the rotation for the
// given date.
func (s *DailyMissionService) IsDailyMission(missionID uint64, today time.Time) (bool, error) {
	missions, err := s.DailyMissions(today)
	if err != nil {
		return false, err
	}

	for _, m := range missions {
		if m.ID == missionID {
			return true, nil
		}
	}

	return false, nil
}
