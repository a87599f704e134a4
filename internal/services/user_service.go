package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pairup/internal/models"
	"pairup/internal/repository"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrPasswordMismatch     = errors.New("passwords don't match")
	ErrUsernameRequired     = errors.New("username is required")
	ErrPasswordRequired     = errors.New("password is required")
	ErrGroupReserved        = errors.New("group is not open to registration")
	ErrGroupNotFound        = errors.New("group not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// UserService handles signup and profile updates.
type UserService struct {
	userRepo  repository.UserRepository
	groupRepo repository.GroupRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, groupRepo repository.GroupRepository) *UserService {
	return &UserService{
		userRepo:  userRepo,
		groupRepo: groupRepo,
	}
}

// SignupInput represents the submitted signup form.
type SignupInput struct {
	Username        string
	Password        string
	PasswordConfirm string
	Name            string
	TimeZone        string
	GroupID         uint64
}

// Signup validates the form and creates the user with a hashed password.
func (s *UserService) Signup(input SignupInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if input.Password == "" {
		return nil, ErrPasswordRequired
	}
	if input.Password != input.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}
	if input.GroupID == models.AdminGroupID {
		return nil, ErrGroupReserved
	}

	if _, err := s.groupRepo.FindByID(input.GroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to check group: %w", err)
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
		TimeZone:     input.TimeZone,
		GroupID:      input.GroupID,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateInput represents the submitted profile edit form. An empty
// Password leaves the stored hash untouched.
type UpdateInput struct {
	Name            string
	TimeZone        string
	GroupID         uint64
	Password        string
	PasswordConfirm string
}

// Update edits a user's name, time zone, group, and optionally password.
func (s *UserService) Update(id uint64, input UpdateInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.GroupID != 0 && input.GroupID != user.GroupID {
		if input.GroupID == models.AdminGroupID {
			return nil, ErrGroupReserved
		}
		if _, err := s.groupRepo.FindByID(input.GroupID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrGroupNotFound
			}
			return nil, fmt.Errorf("failed to check group: %w", err)
		}
		user.GroupID = input.GroupID
	}

	if input.Password != "" {
		if input.Password != input.PasswordConfirm {
			return nil, ErrPasswordMismatch
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrFailedToHashPassword
		}
		user.PasswordHash = string(hashedPassword)
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.TimeZone != "" {
		user.TimeZone = input.TimeZone
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// GetUser retrieves a user by ID.
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
