package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"authorsite-backend/internal/domains/notification"
	"authorsite-backend/internal/shared/middleware"
	"authorsite-backend/internal/shared/response"
)

type NotificationHandler struct {
	service notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{service: svc}
}

// List - GET /v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "NOT_AUTHENTICATED", "authentication required")
		return
	}

	notifications, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.ErrorResponse(c, notification.ToHTTPStatus(err), notification.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, notifications)
}

// UnreadCount - GET /v1/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "NOT_AUTHENTICATED", "authentication required")
		return
	}

	count, err := h.service.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.ErrorResponse(c, notification.ToHTTPStatus(err), notification.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"count": count})
}

// MarkRead - PATCH /v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "NOT_AUTHENTICATED", "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "VALIDATION_ERROR", "invalid notification id")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), userID, id); err != nil {
		response.ErrorResponse(c, notification.ToHTTPStatus(err), notification.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "notification marked as read"})
}

// MarkAllRead - PATCH /v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "NOT_AUTHENTICATED", "authentication required")
		return
	}

	updated, err := h.service.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		response.ErrorResponse(c, notification.ToHTTPStatus(err), notification.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}
