package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bellebook/salon-scheduler/internal/httperr"
	"github.com/bellebook/salon-scheduler/internal/httpresp"
	"github.com/bellebook/salon-scheduler/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := currentUserID(c)

	var notifications []models.Notification
	if err := h.db.
		Where("user_id = ?", userID).
		Order("read ASC, created_at DESC").
		Find(&notifications).Error; err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Failed to load notifications")
		return
	}

	httpresp.OK(c, notifications)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := currentUserID(c)

	if err := h.db.
		Model(&models.Notification{}).
		Where("user_id = ? AND read = false", userID).
		Update("read", true).Error; err != nil {
		httperr.Internal(c, "failed_to_mark_read", "Failed to mark notifications read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
