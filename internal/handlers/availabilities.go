package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pairup/internal/logger"
	"pairup/internal/services"
	"pairup/internal/session"
)

const (
	formDateLayout     = "2006-01-02"
	formDateTimeLayout = "2006-01-02T15:04"
)

// AvailabilityHandler records declared open windows.
type AvailabilityHandler struct {
	schedule *services.ScheduleService
	sessions *session.Manager
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(schedule *services.ScheduleService, sessions *session.Manager) *AvailabilityHandler {
	return &AvailabilityHandler{
		schedule: schedule,
		sessions: sessions,
	}
}

// Create declares an availability window for the current user against an
// assignment. Date is a date input; start and end are datetime-local.
func (h *AvailabilityHandler) Create(c *gin.Context) {
	user := h.sessions.CurrentUser(c)

	assignmentID, err := strconv.ParseUint(c.PostForm("assignment_id"), 10, 64)
	if err != nil {
		h.rejected(c, "pick an assignment")
		return
	}

	date, dateErr := time.Parse(formDateLayout, c.PostForm("date"))
	start, startErr := time.Parse(formDateTimeLayout, c.PostForm("start"))
	end, endErr := time.Parse(formDateTimeLayout, c.PostForm("end"))
	if dateErr != nil || startErr != nil || endErr != nil {
		h.rejected(c, "invalid date or time")
		return
	}

	_, err = h.schedule.DeclareAvailability(services.AvailabilityInput{
		UserID:       user.ID,
		AssignmentID: assignmentID,
		Date:         date,
		Start:        start,
		End:          end,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidWindow):
			h.rejected(c, "the window must end after it starts")
		case errors.Is(err, services.ErrAssignmentNotFound):
			h.rejected(c, "pick an assignment")
		default:
			logger.L.Error("availability creation failed", zap.Error(err))
			c.String(http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	session.FlashSuccess(c, "Availability recorded")
	saveSession(c)
	c.Redirect(http.StatusFound, "/users/profile")
}

func (h *AvailabilityHandler) rejected(c *gin.Context, msg string) {
	session.FlashError(c, msg)
	saveSession(c)
	c.Redirect(http.StatusFound, "/users/profile")
}
