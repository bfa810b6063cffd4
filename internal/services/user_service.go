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
	ErrUserNotFound         = errors.New("user not found")
	ErrUserNameTaken        = errors.New("username already exists")
	ErrUserNameRequired     = errors.New("user name is required")
	ErrUserPasswordRequired = errors.New("user password is required")
)

// UserService handles user profile business logic
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUserInput represents input for creating a user
type CreateUserInput struct {
	Name     string
	Password string
	Photo    string
}

// UpdateUserInput represents input for a partial user update; nil fields are
// left unchanged
type UpdateUserInput struct {
	Name       *string
	Password   *string
	Photo      *string
	Experience *int
}

// ListUsers returns all users
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// GetUserByName returns a user by display name
func (s *UserService) GetUserByName(name string) (*models.User, error) {
	user, err := s.userRepo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateUser creates a new user. The display name must be unique; the check
// is backed by the unique index, so a lost race still surfaces as
// ErrUserNameTaken.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrUserNameRequired
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, ErrUserPasswordRequired
	}

	taken, err := s.userRepo.ExistsByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, ErrUserNameTaken
	}

	user := &models.User{
		Name:     name,
		Password: input.Password,
		Photo:    input.Photo,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserNameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateUser applies a partial update to a user
func (s *UserService) UpdateUser(id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrUserNameRequired
		}
		user.Name = *input.Name
	}
	if input.Password != nil {
		user.Password = *input.Password
	}
	if input.Photo != nil {
		user.Photo = *input.Photo
	}
	if input.Experience != nil {
		experience := *input.Experience
		if experience < 0 {
			experience = 0
		}
		user.Experience = experience
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserNameTaken
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// DeleteUser deletes a user. Completion records referring to them are
// intentionally left in place.
func (s *UserService) DeleteUser(id uint64) error {
	exists, err := s.userRepo.ExistsByID(id)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return ErrUserNotFound
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
