package api

import (
	"net/http"
	"strconv"

	"laborlink/internal/domain/notification"
	resdto "laborlink/internal/handler/dto/response"
	"laborlink/internal/handler/httperr"
	"laborlink/internal/handler/middleware"
	"laborlink/internal/pkg/errs"
	"laborlink/internal/usecase/commands"
	"laborlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary List notifications
// @Description List the authenticated user's notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} map[string]any
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	limit := queries.DefaultLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	items, err := h.q.ListByRecipient(c.Request.Context(), userID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": resdto.FromNotificationList(items)})
}

// @Summary Unread notification count
// @Description Count of unread notifications for the authenticated user
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Failure 401 {object} map[string]string
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	count, err := h.q.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// @Summary Mark notification read
// @Description Mark one of the authenticated user's notifications as read
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	if err := h.cmds.MarkRead(c.Request.Context(), id, userID); err != nil {
		switch {
		case errs.Is(err, commands.ErrNotificationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		case errs.Is(err, notification.ErrNotRecipient):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errs.Is(err, notification.ErrAlreadyRead):
			c.Status(http.StatusNoContent)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Mark read failed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark all notifications read
// @Description Mark all of the authenticated user's notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Failure 401 {object} map[string]string
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	count, err := h.cmds.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Mark all read failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"marked_read": count})
}
