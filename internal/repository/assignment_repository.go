package repository

import (
	"gorm.io/gorm"

	"pairup/internal/models"
)

// GormAssignmentRepository is a GORM implementation of AssignmentRepository
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *GormAssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

// FindByID finds an assignment by ID
func (r *GormAssignmentRepository) FindByID(id uint64) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// ListByGroup lists the assignments belonging to a group
func (r *GormAssignmentRepository) ListByGroup(groupID uint64) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := r.db.Where("group_id = ?", groupID).Order("number").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}
