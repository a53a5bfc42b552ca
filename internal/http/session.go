package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"diet-api/internal/domain"
	"diet-api/internal/service"
)

const (
	sessionCookieName    = "sessionId"
	defaultSessionMaxAge = 7 * 24 * time.Hour
	userContextKey       = "diet.user"

	msgUnauthorized    = "Unauthorized."
	msgSessionNotFound = "Session ID does not exist"
)

// requireSession rejects requests that carry no session cookie. The value itself
// is not checked here.
func requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID, err := c.Cookie(sessionCookieName); err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
			return
		}
		c.Next()
	}
}

// resolveUser maps the session cookie to its user and stores it on the context
// for the guarded handlers.
func (h *Handler) resolveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, _ := c.Cookie(sessionCookieName)
		sessionID, err := uuid.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
			return
		}

		user, err := h.users.ResolveSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msgSessionNotFound})
				return
			}
			h.internalError(c, err)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	return c.MustGet(userContextKey).(*domain.User)
}

func (h *Handler) setSessionCookie(c *gin.Context, sessionID uuid.UUID) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		sessionCookieName,
		sessionID.String(),
		int(h.opts.SessionMaxAge/time.Second),
		"/",
		"",
		h.opts.SecureCookie,
		true,
	)
}
