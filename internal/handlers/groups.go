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

// GroupHandler serves the group pages.
type GroupHandler struct {
	groups   *services.GroupService
	sessions *session.Manager
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groups *services.GroupService, sessions *session.Manager) *GroupHandler {
	return &GroupHandler{
		groups:   groups,
		sessions: sessions,
	}
}

// Index lists all groups. Public.
func (h *GroupHandler) Index(c *gin.Context) {
	groups, err := h.groups.List()
	if err != nil {
		logger.L.Error("failed to list groups", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.HTML(http.StatusOK, "groups_index.html", dto.GroupListPage{
		Base:   pageBase(c, h.sessions),
		Groups: dto.ToGroupViews(groups),
	})
}

// NewForm renders the group creation form.
func (h *GroupHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "group_new.html", pageBase(c, h.sessions))
}

// Create creates a group with its initial assignments from the form's
// parallel assignment_name/assignment_number rows.
func (h *GroupHandler) Create(c *gin.Context) {
	names := c.PostFormArray("assignment_name")
	numbers := c.PostFormArray("assignment_number")

	assignments := make([]services.AssignmentInput, 0, len(names))
	for i, name := range names {
		var number float64
		if i < len(numbers) {
			number, _ = strconv.ParseFloat(numbers[i], 64)
		}
		assignments = append(assignments, services.AssignmentInput{
			Name:   name,
			Number: number,
		})
	}

	if _, err := h.groups.Create(c.PostForm("name"), assignments); err != nil {
		if errors.Is(err, services.ErrGroupNameRequired) {
			session.FlashError(c, "group name is required")
			saveSession(c)
			c.Redirect(http.StatusFound, "/groups/new")
			return
		}
		logger.L.Error("group creation failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	session.FlashSuccess(c, "Group created")
	saveSession(c)
	c.Redirect(http.StatusFound, "/groups")
}

// Profile shows the current user's group with members and assignments.
func (h *GroupHandler) Profile(c *gin.Context) {
	user := h.sessions.CurrentUser(c)
	h.renderGroup(c, user.GroupID, "group_show.html")
}

// Users shows the members of a group.
func (h *GroupHandler) Users(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid group ID")
		return
	}
	h.renderGroup(c, groupID, "group_users.html")
}

// Assignments shows the assignments of a group.
func (h *GroupHandler) Assignments(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid group ID")
		return
	}
	h.renderGroup(c, groupID, "assignments_index.html")
}

func (h *GroupHandler) renderGroup(c *gin.Context, groupID uint64, template string) {
	group, err := h.groups.Get(groupID)
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			c.String(http.StatusNotFound, "Group not found")
			return
		}
		logger.L.Error("failed to load group", zap.Uint64("group_id", groupID), zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	members, err := h.groups.Members(groupID)
	if err != nil {
		logger.L.Error("failed to load members", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	assignments, err := h.groups.Assignments(groupID)
	if err != nil {
		logger.L.Error("failed to load assignments", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.HTML(http.StatusOK, template, dto.GroupPage{
		Base:        pageBase(c, h.sessions),
		Group:       dto.ToGroupView(*group),
		Members:     dto.Usernames(members),
		Assignments: dto.ToAssignmentViews(assignments),
	})
}
