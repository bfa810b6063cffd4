package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/daily-missions-api/internal/errors"
	"github.com/yukikurage/daily-missions-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns all users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser returns a specific user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserByName returns a user by display name
func (h *UserHandler) GetUserByName(c *gin.Context) {
	name := c.Param("name")
	if strings.TrimSpace(name) == "" {
		apierrors.BadRequest(c, "Invalid name")
		return
	}

	user, err := h.userService.GetUserByName(name)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser creates a new user; display names are unique
func (h *UserHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Name     string `json:"name"`
		Password string `json:"password"`
		Photo    string `json:"photo"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		Name:     req.Name,
		Password: req.Password,
		Photo:    req.Photo,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNameRequired):
			apierrors.BadRequest(c, "User name is required")
		case errors.Is(err, services.ErrUserPasswordRequired):
			apierrors.BadRequest(c, "User password is required")
		case errors.Is(err, services.ErrUserNameTaken):
			apierrors.Conflict(c, "Username already exists")
		default:
			apierrors.InternalError(c, "Failed to create user")
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser applies a partial update; only fields present in the body are
// changed
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	type UpdateUserRequest struct {
		Name       *string `json:"name"`
		Password   *string `json:"password"`
		Photo      *string `json:"photo"`
		Experience *int    `json:"experience"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(id, services.UpdateUserInput{
		Name:       req.Name,
		Password:   req.Password,
		Photo:      req.Photo,
		Experience: req.Experience,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			apierrors.NotFound(c, "User not found")
		case errors.Is(err, services.ErrUserNameRequired):
			apierrors.BadRequest(c, "User name cannot be empty")
		case errors.Is(err, services.ErrUserNameTaken):
			apierrors.Conflict(c, "Username already exists")
		default:
			apierrors.InternalError(c, "Failed to update user")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser deletes a user
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}
