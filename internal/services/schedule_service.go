package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"pairup/internal/models"
	"pairup/internal/repository"
)

var (
	ErrInvalidWindow      = errors.New("window end must be after its start")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrSelfPairing        = errors.New("a pairing needs two distinct users")
)

// ScheduleService handles availability windows and the pairing views.
// Pairing generation (matching declared availabilities into pairings) is
// deliberately not implemented here.
type ScheduleService struct {
	availabilityRepo repository.AvailabilityRepository
	pairingRepo      repository.PairingRepository
	assignmentRepo   repository.AssignmentRepository
	userRepo         repository.UserRepository
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(
	availabilityRepo repository.AvailabilityRepository,
	pairingRepo repository.PairingRepository,
	assignmentRepo repository.AssignmentRepository,
	userRepo repository.UserRepository,
) *ScheduleService {
	return &ScheduleService{
		availabilityRepo: availabilityRepo,
		pairingRepo:      pairingRepo,
		assignmentRepo:   assignmentRepo,
		userRepo:         userRepo,
	}
}

// AvailabilityInput is a declared open window against an assignment.
type AvailabilityInput struct {
	UserID       uint64
	AssignmentID uint64
	Date         time.Time
	Start        time.Time
	End          time.Time
}

// DeclareAvailability records an open time window for a user.
func (s *ScheduleService) DeclareAvailability(input AvailabilityInput) (*models.Availability, error) {
	if !input.End.After(input.Start) {
		return nil, ErrInvalidWindow
	}

	if _, err := s.assignmentRepo.FindByID(input.AssignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}

	availability := &models.Availability{
		UserID:       input.UserID,
		AssignmentID: input.AssignmentID,
		Date:         input.Date,
		Start:        input.Start,
		End:          input.End,
	}
	if err := s.availabilityRepo.Create(availability); err != nil {
		return nil, fmt.Errorf("failed to create availability: %w", err)
	}

	return availability, nil
}

// Availabilities lists a user's declared windows, assignments included.
func (s *ScheduleService) Availabilities(userID uint64) ([]models.Availability, error) {
	return s.availabilityRepo.ListByUser(userID)
}

// PairingInput schedules two users against an assignment.
type PairingInput struct {
	AssignmentID uint64
	SourceID     uint64
	TargetID     uint64
	Date         time.Time
	Start        time.Time
	End          time.Time
}

// CreatePairing records a pairing. Self-pairings are rejected; a user
// matched with themself has no scheduling meaning.
func (s *ScheduleService) CreatePairing(input PairingInput) (*models.Pairing, error) {
	if input.SourceID == input.TargetID {
		return nil, ErrSelfPairing
	}
	if !input.End.After(input.Start) {
		return nil, ErrInvalidWindow
	}

	if _, err := s.assignmentRepo.FindByID(input.AssignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}
	for _, id := range []uint64{input.SourceID, input.TargetID} {
		if _, err := s.userRepo.FindByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to check user: %w", err)
		}
	}

	pairing := &models.Pairing{
		AssignmentID: input.AssignmentID,
		SourceID:     input.SourceID,
		TargetID:     input.TargetID,
		Date:         input.Date,
		Start:        input.Start,
		End:          input.End,
	}
	if err := s.pairingRepo.Create(pairing); err != nil {
		return nil, fmt.Errorf("failed to create pairing: %w", err)
	}

	return pairing, nil
}

// Pairings lists a user's pairings in either role.
func (s *ScheduleService) Pairings(userID uint64) ([]models.Pairing, error) {
	return s.pairingRepo.ListForUser(userID)
}

// Matches resolves the users on the opposite side of a user's pairings,
// deduplicated. This is the derived many-to-many view over pairings.
func (s *ScheduleService) Matches(userID uint64) ([]models.User, error) {
	pairings, err := s.pairingRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint64]bool)
	var matches []models.User
	for _, p := range pairings {
		partner := p.Partner(userID)
		if partner.ID == 0 || seen[partner.ID] {
			continue
		}
		seen[partner.ID] = true
		matches = append(matches, partner)
	}
	return matches, nil
}
