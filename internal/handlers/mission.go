package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/daily-missions-api/internal/errors"
	"github.com/yukikurage/daily-missions-api/internal/services"
)

type MissionHandler struct {
	missionService *services.MissionService
}

func NewMissionHandler(missionService *services.MissionService) *MissionHandler {
	return &MissionHandler{
		missionService: missionService,
	}
}

// ListMissions returns the full mission catalog
func (h *MissionHandler) ListMissions(c *gin.Context) {
	missions, err := h.missionService.ListMissions()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch missions")
		return
	}

	c.JSON(http.StatusOK, missions)
}

// GetMission returns a specific mission by ID
func (h *MissionHandler) GetMission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	mission, err := h.missionService.GetMission(id)
	if err != nil {
		if errors.Is(err, services.ErrMissionNotFound) {
			apierrors.NotFound(c, "Mission not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch mission")
		return
	}

	c.JSON(http.StatusOK, mission)
}

// SearchMissions returns missions whose title contains the query substring
func (h *MissionHandler) SearchMissions(c *gin.Context) {
	title := c.Query("title")
	if strings.TrimSpace(title) == "" {
		apierrors.BadRequest(c, "Query parameter title is required")
		return
	}

	missions, err := h.missionService.SearchMissions(title)
	if err != nil {
		apierrors.InternalError(c, "Failed to search missions")
		return
	}

	c.JSON(http.StatusOK, missions)
}

// CreateMission creates a new mission
func (h *MissionHandler) CreateMission(c *gin.Context) {
	type CreateMissionRequest struct {
		Title      string `json:"title"`
		Body       string `json:"body"`
		Experience int    `json:"experience"`
	}

	var req CreateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	mission, err := h.missionService.CreateMission(services.CreateMissionInput{
		Title:      req.Title,
		Body:       req.Body,
		Experience: req.Experience,
	})
	if err != nil {
		if errors.Is(err, services.ErrMissionTitleRequired) {
			apierrors.BadRequest(c, "Mission title is required")
			return
		}
		apierrors.InternalError(c, "Failed to create mission")
		return
	}

	c.JSON(http.StatusCreated, mission)
}

// UpdateMission applies a partial update; only fields present in the body
// are changed
func (h *MissionHandler) UpdateMission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateMissionRequest struct {
		Title      *string `json:"title"`
		Body       *string `json:"body"`
		Experience *int    `json:"experience"`
	}

	var req UpdateMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	mission, err := h.missionService.UpdateMission(id, services.UpdateMissionInput{
		Title:      req.Title,
		Body:       req.Body,
		Experience: req.Experience,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissionNotFound):
			apierrors.NotFound(c, "Mission not found")
		case errors.Is(err, services.ErrMissionTitleRequired):
			apierrors.BadRequest(c, "Mission title cannot be empty")
		default:
			apierrors.InternalError(c, "Failed to update mission")
		}
		return
	}

	c.JSON(http.StatusOK, mission)
}

// DeleteMission deletes a mission
func (h *MissionHandler) DeleteMission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.missionService.DeleteMission(id); err != nil {
		if errors.Is(err, services.ErrMissionNotFound) {
			apierrors.NotFound(c, "Mission not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete mission")
		return
	}

	c.Status(http.StatusNoContent)
}
