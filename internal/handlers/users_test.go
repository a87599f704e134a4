package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pairup/internal/models"
)

func signupForm(env *testEnv, username, password, confirm string) url.Values {
	return url.Values{
		"username":         {username},
		"password":         {password},
		"password_confirm": {confirm},
		"name":             {"Test User"},
		"time_zone":        {"UTC"},
		"group_id":         {strconv.FormatUint(env.group.ID, 10)},
	}
}

func TestSignupCreatesUserWithHashedPassword(t *testing.T) {
	env := setupTestEnv(t)
	b := newBrowser(env.router)

	w := b.do(t, http.MethodPost, "/users/new", signupForm(env, "alice", "pw1", "pw1"))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/auth/login", w.Header().Get("Location"))

	var user models.User
	require.NoError(t, env.db.Where("username = ?", "alice").First(&user).Error)
	require.NotEqual(t, "pw1", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")))
}

func TestSignupRejectsDuplicateUsername(t *testing.T) {
	env := setupTestEnv(t)
	b := newBrowser(env.router)

	// "admin" is pre-seeded.
	w := b.do(t, http.MethodPost, "/users/new", signupForm(env, "admin", "pw1", "pw1"))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/users/new", w.Header().Get("Location"))

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error)
	require.EqualValues(t, 1, count)

	w = b.do(t, http.MethodGet, "/users/new", nil)
	require.Contains(t, w.Body.String(), "username already exists")
}

func TestSignupRejectsPasswordMismatch(t *testing.T) {
	env := setupTestEnv(t)
	b := newBrowser(env.router)

	w := b.do(t, http.MethodPost, "/users/new", signupForm(env, "bob", "pw1", "pw2"))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/users/new", w.Header().Get("Location"))

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Where("username = ?", "bob").Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestSignupFormExcludesAdminGroup(t *testing.T) {
	env := setupTestEnv(t)
	b := newBrowser(env.router)

	w := b.do(t, http.MethodGet, "/users/new", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "test group 1")
	require.NotContains(t, w.Body.String(), "admins")
}

func TestSignupFormRedirectsWhenLoggedIn(t *testing.T) {
	env := setupTestEnv(t)
	b := newBrowser(env.router)

	b.login(t, "admin", "admin")

	w := b.do(t, http.MethodGet, "/users/new", nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/protected", w.Header().Get("Location"))
}

func TestProfileUpdateRejectsOtherUsers(t *testing.T) {
	env := setupTestEnv(t)
	b := newBrowser(env.router)

	b.do(t, http.MethodPost, "/users/new", signupForm(env, "alice", "pw1", "pw1"))
	b.login(t, "admin", "admin")

	var alice models.User
	require.NoError(t, env.db.Where("username = ?", "alice").First(&alice).Error)

	w := b.do(t, http.MethodPut, "/users/"+strconv.FormatUint(alice.ID, 10)+"/edit", url.Values{
		"name": {"hijacked"},
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestProfileUpdate(t *testing.T) {
	env := setupTestEnv(t)
	b := newBrowser(env.router)

	b.do(t, http.MethodPost, "/users/new", signupForm(env, "alice", "pw1", "pw1"))
	b.login(t, "alice", "pw1")

	var alice models.User
	require.NoError(t, env.db.Where("username = ?", "alice").First(&alice).Error)

	w := b.do(t, http.MethodPut, "/users/"+strconv.FormatUint(alice.ID, 10)+"/edit", url.Values{
		"name":      {"Alice Example"},
		"time_zone": {"America/New_York"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/users/profile", w.Header().Get("Location"))

	require.NoError(t, env.db.First(&alice, alice.ID).Error)
	require.Equal(t, "Alice Example", alice.Name)
	require.Equal(t, "America/New_York", alice.TimeZone)
}
