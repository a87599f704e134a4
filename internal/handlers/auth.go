package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pairup/internal/auth"
	"pairup/internal/logger"
	"pairup/internal/middleware"
	"pairup/internal/session"
)

// DefaultLandingPath is where a successful login goes when no return-to
// path is pending.
const DefaultLandingPath = "/users/profile"

// AuthHandler coordinates the login/logout flow and the failure endpoint.
type AuthHandler struct {
	engine     *gin.Engine
	strategies *auth.Registry
	sessions   *session.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(engine *gin.Engine, strategies *auth.Registry, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		engine:     engine,
		strategies: strategies,
		sessions:   sessions,
	}
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", pageBase(c, h.sessions))
}

// Login attempts the password strategy against the submitted credentials.
// Failures re-enter the unauthenticated flow with the generic message;
// success initializes the session and honors any pending return-to path.
func (h *AuthHandler) Login(c *gin.Context) {
	creds := auth.Credentials{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	}

	user, err := h.strategies.Attempt(auth.StrategyPassword, creds)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			middleware.AuthFailure(h.engine, c, auth.FailureMessage, "")
			return
		}
		logger.L.Error("login failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	h.sessions.Login(c, user)
	session.FlashSuccess(c, "Successfully logged in")

	target := DefaultLandingPath
	if returnTo, ok := session.ConsumeReturnTo(c); ok {
		target = returnTo
	}
	saveSession(c)
	c.Redirect(http.StatusFound, target)
}

// Logout clears the session identity entirely and returns to the landing page.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c)
	session.FlashSuccess(c, "Successfully logged out")
	saveSession(c)
	c.Redirect(http.StatusFound, "/")
}

// Unauthenticated is the single failure endpoint every authentication
// failure routes through. It records the originally attempted path (only
// if none is pending), flashes the failure message, and redirects to the
// login form.
func (h *AuthHandler) Unauthenticated(c *gin.Context) {
	if path, ok := middleware.AttemptedPath(c.Request); ok {
		session.SetReturnTo(c, path)
	}

	msg := "You must log in"
	if m, ok := middleware.FailureMessage(c.Request); ok {
		msg = m
	}
	session.FlashError(c, msg)
	saveSession(c)
	c.Redirect(http.StatusFound, "/auth/login")
}

// Protected is an identity-gated passthrough to the profile page.
func (h *AuthHandler) Protected(c *gin.Context) {
	c.Redirect(http.StatusFound, DefaultLandingPath)
}
