package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"diet-api/internal/service"
)

// Pointer fields let "required" accept empty strings while still rejecting
// missing keys.
type createSnackRequest struct {
	Name        *string `json:"name" binding:"required"`
	Description *string `json:"description" binding:"required"`
	CreatedAt   *string `json:"createdAt" binding:"required"`
	Status      *bool   `json:"status"`
}

type updateSnackRequest struct {
	Name        *string `json:"name" binding:"required"`
	Description *string `json:"description" binding:"required"`
	Status      *bool   `json:"status"`
}

func (h *Handler) listSnacks(c *gin.Context) {
	snacks, err := h.snacks.ListSnacks(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snacks": snacks})
}

func (h *Handler) summary(c *gin.Context) {
	summary, err := h.snacks.Summary(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (h *Handler) getSnack(c *gin.Context) {
	id, ok := snackIDParam(c)
	if !ok {
		return
	}

	snack, err := h.snacks.GetSnack(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		if errors.Is(err, service.ErrSnackNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Snack not found"})
			return
		}
		h.internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snack": snack})
}

func (h *Handler) createSnack(c *gin.Context) {
	var req createSnackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdAt, err := time.Parse(time.RFC3339, *req.CreatedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "createdAt must be an RFC 3339 timestamp"})
		return
	}

	if _, err := h.snacks.CreateSnack(c.Request.Context(), currentUser(c).ID, service.SnackInput{
		Name:        *req.Name,
		Description: *req.Description,
		Status:      boolOrFalse(req.Status),
		CreatedAt:   createdAt,
	}); err != nil {
		h.internalError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// updateSnack answers 201 like create does; existing clients depend on it.
func (h *Handler) updateSnack(c *gin.Context) {
	id, ok := snackIDParam(c)
	if !ok {
		return
	}

	var req updateSnackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.snacks.UpdateSnack(c.Request.Context(), currentUser(c).ID, id, service.SnackInput{
		Name:        *req.Name,
		Description: *req.Description,
		Status:      boolOrFalse(req.Status),
	}); err != nil {
		h.internalError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *Handler) deleteSnack(c *gin.Context) {
	id, ok := snackIDParam(c)
	if !ok {
		return
	}

	if err := h.snacks.DeleteSnack(c.Request.Context(), currentUser(c).ID, id); err != nil {
		h.internalError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func snackIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("snackId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid snack id"})
		return uuid.Nil, false
	}
	return id, true
}

func boolOrFalse(v *bool) bool {
	return v != nil && *v
}
