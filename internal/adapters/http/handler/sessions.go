package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bnema/gathering-relay/internal/application"
	"github.com/bnema/gathering-relay/internal/domain"
)

// StatusProvider is the read side of the relay.
type StatusProvider interface {
	Status() application.RelayStatus
	Session(code domain.LobbyCode) (application.SessionStatus, bool)
}

type SessionsHandler struct {
	relay StatusProvider
}

func NewSessionsHandler(relay StatusProvider) *SessionsHandler {
	return &SessionsHandler{relay: relay}
}

func (h *SessionsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.relay.Status())
}

func (h *SessionsHandler) Get(c *gin.Context) {
	code := domain.LobbyCode(c.Param("code"))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}

	session, ok := h.relay.Session(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, session)
}
