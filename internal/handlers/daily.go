package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/daily-missions-api/internal/errors"
	"github.com/yukikurage/daily-missions-api/internal/services"
)

// DailyMissionHandler exposes the daily rotation. The current date is taken
// at the request boundary; the selection itself is a pure function of
// (catalog, date).
type DailyMissionHandler struct {
	dailyService *services.DailyMissionService
}

func NewDailyMissionHandler(dailyService *services.DailyMissionService) *DailyMissionHandler {
	return &DailyMissionHandler{
		dailyService: dailyService,
	}
}

// GetDailyMissions returns today's rotation. Every user sees the same
// missions on the same day.
func (h *DailyMissionHandler) GetDailyMissions(c *gin.Context) {
	missions, err := h.dailyService.DailyMissions(time.Now())
	if err != nil {
		apierrors.InternalError(c, "Failed to compute daily missions")
		return
	}

	c.JSON(http.StatusOK, missions)
}

// VerifyDailyMission reports whether a mission is part of today's rotation
func (h *DailyMissionHandler) VerifyDailyMission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	isDaily, err := h.dailyService.IsDailyMission(id, time.Now())
	if err != nil {
		apierrors.InternalError(c, "Failed to verify daily mission")
		return
	}

	c.JSON(http.StatusOK, isDaily)
}
