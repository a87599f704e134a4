package repository

import "pairup/internal/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by exact username
	FindByUsername(username string) (*models.User, error)

	// Update persists changes to an existing user
	Update(user *models.User) error
}

// GroupRepository defines the interface for group data access
type GroupRepository interface {
	// Create creates a new group
	Create(group *models.Group) error

	// CreateWithAssignments creates a group and its initial assignments
	// within a single transaction.
	CreateWithAssignments(group *models.Group, assignments []models.Assignment) error

	// FindByID finds a group by ID
	FindByID(id uint64) (*models.Group, error)

	// List lists all groups
	List() ([]models.Group, error)

	// ListJoinable lists the groups open to self-registration
	// (everything except the reserved admin group).
	ListJoinable() ([]models.Group, error)

	// ListMembers lists the users belonging to a group
	ListMembers(groupID uint64) ([]models.User, error)
}

// AssignmentRepository defines the interface for assignment data access
type AssignmentRepository interface {
	// Create creates a new assignment
	Create(assignment *models.Assignment) error

	// FindByID finds an assignment by ID
	FindByID(id uint64) (*models.Assignment, error)

	// ListByGroup lists the assignments belonging to a group
	ListByGroup(groupID uint64) ([]models.Assignment, error)
}

// AvailabilityRepository defines the interface for availability data access
type AvailabilityRepository interface {
	// Create creates a new availability window
	Create(availability *models.Availability) error

	// ListByUser lists a user's availabilities with assignments preloaded
	ListByUser(userID uint64) ([]models.Availability, error)
}

// PairingRepository defines the interface for pairing data access
type PairingRepository interface {
	// Create creates a new pairing
	Create(pairing *models.Pairing) error

	// ListForUser lists pairings where the user is either source or
	// target, with both users and the assignment preloaded.
	ListForUser(userID uint64) ([]models.Pairing, error)
}
