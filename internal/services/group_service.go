package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"pairup/internal/models"
	"pairup/internal/repository"
)

var (
	ErrGroupNameRequired = errors.New("group name is required")
)

// GroupService handles group and assignment queries and creation.
type GroupService struct {
	groupRepo      repository.GroupRepository
	assignmentRepo repository.AssignmentRepository
}

// NewGroupService creates a new GroupService.
func NewGroupService(groupRepo repository.GroupRepository, assignmentRepo repository.AssignmentRepository) *GroupService {
	return &GroupService{
		groupRepo:      groupRepo,
		assignmentRepo: assignmentRepo,
	}
}

// AssignmentInput is one assignment row on the group creation form.
type AssignmentInput struct {
	Name   string
	Number float64
}

// Create creates a group together with its initial assignments.
func (s *GroupService) Create(name string, assignments []AssignmentInput) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrGroupNameRequired
	}

	group := &models.Group{Name: name}
	rows := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if strings.TrimSpace(a.Name) == "" {
			continue
		}
		rows = append(rows, models.Assignment{
			Name:   strings.TrimSpace(a.Name),
			Number: a.Number,
		})
	}

	if err := s.groupRepo.CreateWithAssignments(group, rows); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return group, nil
}

// List lists all groups.
func (s *GroupService) List() ([]models.Group, error) {
	return s.groupRepo.List()
}

// ListJoinable lists the groups open to self-registration.
func (s *GroupService) ListJoinable() ([]models.Group, error) {
	return s.groupRepo.ListJoinable()
}

// Get retrieves a group by ID.
func (s *GroupService) Get(id uint64) (*models.Group, error) {
	group, err := s.groupRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to find group: %w", err)
	}
	return group, nil
}

// Members lists the users in a group.
func (s *GroupService) Members(groupID uint64) ([]models.User, error) {
	return s.groupRepo.ListMembers(groupID)
}

// Assignments lists a group's assignments.
func (s *GroupService) Assignments(groupID uint64) ([]models.Assignment, error) {
	return s.assignmentRepo.ListByGroup(groupID)
}
