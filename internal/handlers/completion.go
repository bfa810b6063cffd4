package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/daily-missions-api/internal/errors"
	"github.com/yukikurage/daily-missions-api/internal/services"
)

type CompletionHandler struct {
	completionService *services.CompletionService
}

func NewCompletionHandler(completionService *services.CompletionService) *CompletionHandler {
	return &CompletionHandler{
		completionService: completionService,
	}
}

// ListCompletions returns all completion records
func (h *CompletionHandler) ListCompletions(c *gin.Context) {
	completions, err := h.completionService.ListCompletions()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch completions")
		return
	}

	c.JSON(http.StatusOK, completions)
}

// GetCompletion returns a specific completion record by ID
func (h *CompletionHandler) GetCompletion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	completion, err := h.completionService.GetCompletion(id)
	if err != nil {
		if errors.Is(err, services.ErrCompletionNotFound) {
			apierrors.NotFound(c, "Completion not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch completion")
		return
	}

	c.JSON(http.StatusOK, completion)
}

// ListCompletionsByUser returns all completion records for a user
func (h *CompletionHandler) ListCompletionsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	completions, err := h.completionService.ListByUser(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch completions")
		return
	}

	c.JSON(http.StatusOK, completions)
}

// ListCompletionsByMission returns all completion records for a mission
func (h *CompletionHandler) ListCompletionsByMission(c *gin.Context) {
	missionID, ok := parseIDParam(c, "missionId")
	if !ok {
		return
	}

	completions, err := h.completionService.ListByMission(missionID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch completions")
		return
	}

	c.JSON(http.StatusOK, completions)
}

// CompletedMissionDetails returns the missions a user has completed,
// expanded to full mission entities
func (h *CompletionHandler) CompletedMissionDetails(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	missions, err := h.completionService.CompletedMissionsByUser(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch completed missions")
		return
	}

	c.JSON(http.StatusOK, missions)
}

// CompleteMission records a completion. Missing user or mission and repeat
// completions all surface as 400, preserving the original external contract.
func (h *CompletionHandler) CompleteMission(c *gin.Context) {
	userID, ok := parseIDQuery(c, "userId")
	if !ok {
		return
	}
	missionID, ok := parseIDQuery(c, "missionId")
	if !ok {
		return
	}
	photo := c.Query("photo")

	completion, err := h.completionService.CompleteMission(userID, missionID, photo)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.BadRequest(c, "User does not exist")
		case errors.Is(err, services.ErrMissionNotFound):
			apierrors.BadRequest(c, "Mission does not exist")
		case errors.Is(err, services.ErrAlreadyCompleted):
			apierrors.BadRequest(c, "Mission already completed")
		default:
			apierrors.InternalError(c, "Failed to record completion")
		}
		return
	}

	c.JSON(http.StatusCreated, completion)
}

// DeleteCompletion deletes a completion record; granted experience stays
func (h *CompletionHandler) DeleteCompletion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.completionService.DeleteCompletion(id); err != nil {
		if errors.Is(err, services.ErrCompletionNotFound) {
			apierrors.NotFound(c, "Completion not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete completion")
		return
	}

	c.Status(http.StatusNoContent)
}
