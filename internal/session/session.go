// Package session owns everything the cookie session carries: the
// authenticated principal's id, one-shot flash messages, and the pending
// return-to path saved across a login redirect.
package session

import (
	"errors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pairup/internal/logger"
	"pairup/internal/models"
	"pairup/internal/repository"
)

// CookieName is the session cookie installed app-wide.
const CookieName = "pairup_session"

const (
	keyUserID   = "user_id"
	keyReturnTo = "return_to"

	flashError   = "error"
	flashSuccess = "success"

	// gin context cache for the resolved principal, one request only
	ctxKeyCurrentUser = "current_user"
)

// Manager serializes the principal into the session and resolves it back.
type Manager struct {
	users repository.UserRepository
}

// NewManager creates a session identity manager.
func NewManager(users repository.UserRepository) *Manager {
	return &Manager{users: users}
}

// Login stores the principal's id. Only the opaque id goes into the
// session, never the record. The caller commits with Save.
func (m *Manager) Login(c *gin.Context, user *models.User) {
	sessions.Default(c).Set(keyUserID, user.ID)
}

// Logout clears the session's stored identity entirely. The caller commits
// with Save.
func (m *Manager) Logout(c *gin.Context) {
	sessions.Default(c).Clear()
}

// CurrentUser resolves the stored id to a live user record, caching the
// result in the gin context for the rest of the request. A stale id (for
// example a deleted account) resolves to nil, i.e. logged out.
func (m *Manager) CurrentUser(c *gin.Context) *models.User {
	if cached, ok := c.Get(ctxKeyCurrentUser); ok {
		if user, ok := cached.(*models.User); ok {
			return user
		}
	}

	id, ok := sessions.Default(c).Get(keyUserID).(uint64)
	if !ok {
		return nil
	}

	user, err := m.users.FindByID(id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.L.Error("failed to resolve session user", zap.Uint64("user_id", id), zap.Error(err))
		}
		return nil
	}

	c.Set(ctxKeyCurrentUser, user)
	return user
}

// LoggedIn reports whether the request carries a resolvable principal.
func (m *Manager) LoggedIn(c *gin.Context) bool {
	return m.CurrentUser(c) != nil
}

// SetReturnTo records the originally attempted path, unless one is already
// pending. Repeated failures must not clobber the first intended
// destination.
func SetReturnTo(c *gin.Context, path string) {
	s := sessions.Default(c)
	if s.Get(keyReturnTo) == nil {
		s.Set(keyReturnTo, path)
	}
}

// ConsumeReturnTo pops the pending return-to path, if any.
func ConsumeReturnTo(c *gin.Context) (string, bool) {
	s := sessions.Default(c)
	path, ok := s.Get(keyReturnTo).(string)
	if !ok || path == "" {
		return "", false
	}
	s.Delete(keyReturnTo)
	return path, true
}

// FlashError queues a one-shot error message. The caller commits with Save.
func FlashError(c *gin.Context, msg string) {
	sessions.Default(c).AddFlash(msg, flashError)
}

// FlashSuccess queues a one-shot success message. The caller commits with Save.
func FlashSuccess(c *gin.Context, msg string) {
	sessions.Default(c).AddFlash(msg, flashSuccess)
}

// TakeFlashes drains and returns the queued messages, committing the drain
// so each message renders exactly once.
func TakeFlashes(c *gin.Context) (errs, successes []string) {
	s := sessions.Default(c)
	for _, f := range s.Flashes(flashError) {
		if msg, ok := f.(string); ok {
			errs = append(errs, msg)
		}
	}
	for _, f := range s.Flashes(flashSuccess) {
		if msg, ok := f.(string); ok {
			successes = append(successes, msg)
		}
	}
	if err := s.Save(); err != nil {
		logger.L.Error("failed to save session", zap.Error(err))
	}
	return errs, successes
}

// Save commits pending session mutations. Call once per request, before
// writing the redirect or response body.
func Save(c *gin.Context) error {
	return sessions.Default(c).Save()
}
