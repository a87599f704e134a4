package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pairup/internal/models"
)

var (
	// ErrCreateGroup is returned when creating a group fails inside the group creation transaction.
	ErrCreateGroup = errors.New("group repository: create group failed")
	// ErrCreateAssignment is returned when creating an assignment fails inside the group creation transaction.
	ErrCreateAssignment = errors.New("group repository: create assignment failed")
)

// GormGroupRepository is a GORM implementation of GroupRepository
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &GormGroupRepository{db: db}
}

// Create creates a new group
func (r *GormGroupRepository) Create(group *models.Group) error {
	return r.db.Create(group).Error
}

// CreateWithAssignments creates a group and its initial assignments atomically.
func (r *GormGroupRepository) CreateWithAssignments(group *models.Group, assignments []models.Assignment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateGroup, err)
		}

		for i := range assignments {
			assignments[i].GroupID = group.ID
			if err := tx.Create(&assignments[i]).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrCreateAssignment, err)
			}
		}

		return nil
	})
}

// FindByID finds a group by ID
func (r *GormGroupRepository) FindByID(id uint64) (*models.Group, error) {
	var group models.Group
	if err := r.db.First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// List lists all groups
func (r *GormGroupRepository) List() ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.Order("id").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// ListJoinable lists all groups except the reserved admin group
func (r *GormGroupRepository) ListJoinable() ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.Where("id <> ?", models.AdminGroupID).Order("id").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// ListMembers lists the users belonging to a group
func (r *GormGroupRepository) ListMembers(groupID uint64) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("group_id = ?", groupID).Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
