package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pairup/internal/dto"
	"pairup/internal/logger"
	"pairup/internal/services"
	"pairup/internal/session"
)

// UserHandler serves signup, profile, and profile edits.
type UserHandler struct {
	users    *services.UserService
	groups   *services.GroupService
	schedule *services.ScheduleService
	sessions *session.Manager
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *services.UserService, groups *services.GroupService, schedule *services.ScheduleService, sessions *session.Manager) *UserHandler {
	return &UserHandler{
		users:    users,
		groups:   groups,
		schedule: schedule,
		sessions: sessions,
	}
}

// NewForm renders the signup form with the joinable groups. Anyone already
// logged in is sent to the protected area instead.
func (h *UserHandler) NewForm(c *gin.Context) {
	if h.sessions.LoggedIn(c) {
		c.Redirect(http.StatusFound, "/protected")
		return
	}

	groups, err := h.groups.ListJoinable()
	if err != nil {
		logger.L.Error("failed to list groups", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.HTML(http.StatusOK, "signup.html", dto.SignupPage{
		Base:   pageBase(c, h.sessions),
		Groups: dto.ToGroupViews(groups),
	})
}

// Create handles the signup form. Validation failures flash and redirect
// back to the form; success redirects to login.
func (h *UserHandler) Create(c *gin.Context) {
	groupID, _ := strconv.ParseUint(c.PostForm("group_id"), 10, 64)

	_, err := h.users.Signup(services.SignupInput{
		Username:        c.PostForm("username"),
		Password:        c.PostForm("password"),
		PasswordConfirm: c.PostForm("password_confirm"),
		Name:            c.PostForm("name"),
		TimeZone:        c.PostForm("time_zone"),
		GroupID:         groupID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			session.FlashError(c, "username already exists, try another")
		case errors.Is(err, services.ErrPasswordMismatch):
			session.FlashError(c, "passwords don't match")
		case errors.Is(err, services.ErrUsernameRequired),
			errors.Is(err, services.ErrPasswordRequired):
			session.FlashError(c, "username and password are required")
		case errors.Is(err, services.ErrGroupReserved),
			errors.Is(err, services.ErrGroupNotFound):
			session.FlashError(c, "pick one of the listed groups")
		default:
			logger.L.Error("signup failed", zap.Error(err))
			c.String(http.StatusInternalServerError, "Internal server error")
			return
		}
		saveSession(c)
		c.Redirect(http.StatusFound, "/users/new")
		return
	}

	c.Redirect(http.StatusFound, "/auth/login")
}

// Profile shows the current user, their group's assignments, their
// declared availabilities, and their matches.
func (h *UserHandler) Profile(c *gin.Context) {
	user := h.sessions.CurrentUser(c)

	group, err := h.groups.Get(user.GroupID)
	if err != nil {
		logger.L.Error("failed to load group", zap.Uint64("group_id", user.GroupID), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	assignments, err := h.groups.Assignments(group.ID)
	if err != nil {
		logger.L.Error("failed to load assignments", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	availabilities, err := h.schedule.Availabilities(user.ID)
	if err != nil {
		logger.L.Error("failed to load availabilities", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	pairings, err := h.schedule.Pairings(user.ID)
	if err != nil {
		logger.L.Error("failed to load pairings", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	matches, err := h.schedule.Matches(user.ID)
	if err != nil {
		logger.L.Error("failed to load matches", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.HTML(http.StatusOK, "profile.html", dto.ProfilePage{
		Base:           pageBase(c, h.sessions),
		UserID:         user.ID,
		Name:           user.Name,
		TimeZone:       user.TimeZone,
		Group:          dto.ToGroupView(*group),
		Assignments:    dto.ToAssignmentViews(assignments),
		Availabilities: dto.ToAvailabilityViews(availabilities),
		Pairings:       dto.ToPairingViews(pairings, user.ID),
		Matches:        dto.Usernames(matches),
	})
}

// Update edits the current user's profile. Users may only edit themselves.
func (h *UserHandler) Update(c *gin.Context) {
	user := h.sessions.CurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id != user.ID {
		c.String(http.StatusForbidden, "You may only edit your own profile")
		return
	}

	groupID, _ := strconv.ParseUint(c.PostForm("group_id"), 10, 64)

	_, err = h.users.Update(id, services.UpdateInput{
		Name:            c.PostForm("name"),
		TimeZone:        c.PostForm("time_zone"),
		GroupID:         groupID,
		Password:        c.PostForm("password"),
		PasswordConfirm: c.PostForm("password_confirm"),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordMismatch):
			session.FlashError(c, "passwords don't match")
		case errors.Is(err, services.ErrGroupReserved),
			errors.Is(err, services.ErrGroupNotFound):
			session.FlashError(c, "pick one of the listed groups")
		default:
			logger.L.Error("profile update failed", zap.Error(err))
			c.String(http.StatusInternalServerError, "Internal server error")
			return
		}
		saveSession(c)
		c.Redirect(http.StatusFound, "/users/profile")
		return
	}

	session.FlashSuccess(c, "Profile updated")
	saveSession(c)
	c.Redirect(http.StatusFound, "/users/profile")
}
