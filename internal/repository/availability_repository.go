package repository

import (
	"gorm.io/gorm"

	"pairup/internal/models"
)

// GormAvailabilityRepository is a GORM implementation of AvailabilityRepository
type GormAvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a new AvailabilityRepository
func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &GormAvailabilityRepository{db: db}
}

// Create creates a new availability window
func (r *GormAvailabilityRepository) Create(availability *models.Availability) error {
	return r.db.Create(availability).Error
}

// ListByUser lists a user's availabilities with assignments preloaded
func (r *GormAvailabilityRepository) ListByUser(userID uint64) ([]models.Availability, error) {
	var availabilities []models.Availability
	err := r.db.
		Preload("Assignment").
		Where("user_id = ?", userID).
		Order("start").
		Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}
