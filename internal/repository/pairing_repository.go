package repository

import (
	"gorm.io/gorm"

	"pairup/internal/models"
)

// GormPairingRepository is a GORM implementation of PairingRepository
type GormPairingRepository struct {
	db *gorm.DB
}

// NewPairingRepository creates a new PairingRepository
func NewPairingRepository(db *gorm.DB) PairingRepository {
	return &GormPairingRepository{db: db}
}

// Create creates a new pairing
func (r *GormPairingRepository) Create(pairing *models.Pairing) error {
	return r.db.Create(pairing).Error
}

// ListForUser lists pairings where the user holds either role.
func (r *GormPairingRepository) ListForUser(userID uint64) ([]models.Pairing, error) {
	var pairings []models.Pairing
	err := r.db.
		Preload("Source").
		Preload("Target").
		Preload("Assignment").
		Where("source_id = ? OR target_id = ?", userID, userID).
		Order("start").
		Find(&pairings).Error
	if err != nil {
		return nil, err
	}
	return pairings, nil
}
