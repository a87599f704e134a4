package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pairup/internal/dto"
	"pairup/internal/logger"
	"pairup/internal/session"
)

// pageBase drains the flash messages and captures the session state every
// template renders.
func pageBase(c *gin.Context, sessions *session.Manager) dto.Base {
	errs, successes := session.TakeFlashes(c)
	base := dto.Base{
		Errors:    errs,
		Successes: successes,
	}
	if user := sessions.CurrentUser(c); user != nil {
		base.LoggedIn = true
		base.Username = user.Username
	}
	return base
}

// saveSession commits pending session mutations, logging rather than
// failing the request if the cookie cannot be written.
func saveSession(c *gin.Context) {
	if err := session.Save(c); err != nil {
		logger.L.Error("failed to save session", zap.Error(err))
	}
}
