package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pairup/internal/models"
	"pairup/internal/repository"
)

// StrategyPassword is the only strategy shipped by default. Protected
// actions name it explicitly when attempting authentication.
const StrategyPassword = "password"

// FailureMessage is the user-facing wording for any credential failure.
// Unknown usernames and wrong passwords share it so responses never reveal
// whether an account exists.
const FailureMessage = "The username or password is incorrect."

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnknownStrategy    = errors.New("unknown authentication strategy")
)

// Credentials is the submitted username/password pair.
type Credentials struct {
	Username string
	Password string
}

// Strategy verifies credentials and yields the authenticated user.
type Strategy interface {
	Attempt(creds Credentials) (*models.User, error)
}

// Registry maps strategy names to implementations. The route layer selects
// a strategy by name rather than iterating over all of them.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry creates an empty strategy registry.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[string]Strategy)}
}

// Register adds a named strategy, replacing any previous entry.
func (r *Registry) Register(name string, s Strategy) {
	r.strategies[name] = s
}

// Attempt runs the named strategy against the credentials.
func (r *Registry) Attempt(name string, creds Credentials) (*models.User, error) {
	s, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s.Attempt(creds)
}

// PasswordStrategy authenticates against the stored bcrypt hash.
type PasswordStrategy struct {
	users repository.UserRepository
}

// NewPasswordStrategy creates the password strategy.
func NewPasswordStrategy(users repository.UserRepository) *PasswordStrategy {
	return &PasswordStrategy{users: users}
}

// Attempt looks the user up by exact username and compares the submitted
// password against the stored hash. Both failure modes return
// ErrInvalidCredentials.
func (s *PasswordStrategy) Attempt(creds Credentials) (*models.User, error) {
	user, err := s.users.FindByUsername(creds.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
