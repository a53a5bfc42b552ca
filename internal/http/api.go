package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"diet-api/internal/service"
)

// Options tunes cookie issuing and cross-origin access.
type Options struct {
	SessionMaxAge  time.Duration
	SecureCookie   bool
	AllowedOrigins []string
}

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	snacks service.SnackService
	opts   Options
	logger logrus.FieldLogger
}

func NewHandler(users service.UserService, snacks service.SnackService, opts Options, logger logrus.FieldLogger) *Handler {
	if opts.SessionMaxAge <= 0 {
		opts.SessionMaxAge = defaultSessionMaxAge
	}
	return &Handler{
		users:  users,
		snacks: snacks,
		opts:   opts,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestLogger(h.logger), gin.Recovery())
	if len(h.opts.AllowedOrigins) > 0 {
		router.Use(corsMiddleware(h.opts.AllowedOrigins))
	}

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	user := router.Group("/user")
	{
		user.POST("", h.register)
		user.GET("/profile", requireSession(), h.resolveUser(), h.profile)
	}

	snack := router.Group("/snack", requireSession(), h.resolveUser())
	{
		snack.GET("", h.listSnacks)
		snack.GET("/summary", h.summary)
		snack.GET("/:snackId", h.getSnack)
		snack.POST("", h.createSnack)
		snack.PUT("/:snackId", h.updateSnack)
		snack.DELETE("/:snackId", h.deleteSnack)
	}
}

// internalError logs a store failure and answers 500.
func (h *Handler) internalError(c *gin.Context, err error) {
	h.logger.WithError(err).WithField("route", c.FullPath()).Error("request failed")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
