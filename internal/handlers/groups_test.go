package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"pairup/internal/models"
)

func TestGroupIndexIsPublic(t *testing.T) {
	env := setupTestEnv(t)
	b := newBrowser(env.router)

	w := b.do(t, http.MethodGet, "/groups", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "test group 1")
}

func TestGroupCreateWithAssignments(t *testing.T) {
	env := setupTestEnv(t)
	b := newBrowser(env.router)

	b.login(t, "admin", "admin")

	w := b.do(t, http.MethodPost, "/groups", url.Values{
		"name":              {"algorithms"},
		"assignment_name":   {"Sorting", "Graphs", ""},
		"assignment_number": {"1", "2", ""},
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/groups", w.Header().Get("Location"))

	var group models.Group
	require.NoError(t, env.db.Where("name = ?", "algorithms").First(&group).Error)

	var assignments []models.Assignment
	require.NoError(t, env.db.Where("group_id = ?", group.ID).Find(&assignments).Error)
	require.Len(t, assignments, 2)

	w = b.do(t, http.MethodGet, "/groups/"+strconv.FormatUint(group.ID, 10)+"/assignments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Sorting")
	require.Contains(t, w.Body.String(), "Graphs")
}

func TestGroupCreateRequiresName(t *testing.T) {
	env := setupTestEnv(t)
	b := newBrowser(env.router)

	b.login(t, "admin", "admin")

	w := b.do(t, http.MethodPost, "/groups", url.Values{"name": {"  "}})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/groups/new", w.Header().Get("Location"))
}

func TestGroupUsersPage(t *testing.T) {
	env := setupTestEnv(t)
	b := newBrowser(env.router)

	b.do(t, http.MethodPost, "/users/new", signupForm(env, "alice", "pw1", "pw1"))
	b.login(t, "alice", "pw1")

	w := b.do(t, http.MethodGet, "/groups/"+strconv.FormatUint(env.group.ID, 10)+"/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "alice")
}

func TestGroupPagesRequireLogin(t *testing.T) {
	env := setupTestEnv(t)
	b := newBrowser(env.router)

	w := b.do(t, http.MethodGet, "/groups/profile", nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/auth/login", w.Header().Get("Location"))
}

func TestGroupNotFound(t *testing.T) {
	env := setupTestEnv(t)
	b := newBrowser(env.router)

	b.login(t, "admin", "admin")

	w := b.do(t, http.MethodGet, "/groups/9999/users", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
