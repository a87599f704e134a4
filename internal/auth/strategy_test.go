package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pairup/internal/models"
	"pairup/internal/repository"
)

func setupStrategy(t *testing.T) *PasswordStrategy {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Group{}, &models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	group := models.Group{Name: "testers"}
	require.NoError(t, db.Create(&group).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{
		Username:     "alice",
		PasswordHash: string(hash),
		GroupID:      group.ID,
	}).Error)

	return NewPasswordStrategy(repository.NewUserRepository(db))
}

func TestPasswordStrategy_Success(t *testing.T) {
	strategy := setupStrategy(t)

	user, err := strategy.Attempt(Credentials{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
}

func TestPasswordStrategy_WrongPassword(t *testing.T) {
	strategy := setupStrategy(t)

	_, err := strategy.Attempt(Credentials{Username: "alice", Password: "supersecreT"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordStrategy_UnknownUsername(t *testing.T) {
	strategy := setupStrategy(t)

	_, err := strategy.Attempt(Credentials{Username: "nobody", Password: "supersecret"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

// Unknown usernames and wrong passwords must be indistinguishable to the
// caller, so username enumeration stays impossible.
func TestPasswordStrategy_FailuresAreIndistinguishable(t *testing.T) {
	strategy := setupStrategy(t)

	_, unknownErr := strategy.Attempt(Credentials{Username: "nobody", Password: "supersecret"})
	_, wrongErr := strategy.Attempt(Credentials{Username: "alice", Password: "wrong"})
	require.Equal(t, unknownErr, wrongErr)
}

func TestRegistry_AttemptByName(t *testing.T) {
	strategy := setupStrategy(t)

	registry := NewRegistry()
	registry.Register(StrategyPassword, strategy)

	user, err := registry.Attempt(StrategyPassword, Credentials{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	_, err = registry.Attempt("token", Credentials{})
	require.ErrorIs(t, err, ErrUnknownStrategy)
}
