package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"diet-api/internal/service"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
}

// register logs in by username, creating the user on first use, and issues the
// session cookie.
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, service.ErrUsernameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, err)
		return
	}

	h.setSessionCookie(c, user.SessionID.UUID)
	c.Status(http.StatusCreated)
}

func (h *Handler) profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": currentUser(c)})
}
