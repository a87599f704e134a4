package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pairup/internal/session"
)

// PageHandler serves pages with no entity behind them.
type PageHandler struct {
	sessions *session.Manager
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(sessions *session.Manager) *PageHandler {
	return &PageHandler{sessions: sessions}
}

// Landing renders the index page.
func (h *PageHandler) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageBase(c, h.sessions))
}
