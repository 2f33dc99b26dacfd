package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nailsdg/salon-api/internal/httperr"
	"github.com/nailsdg/salon-api/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

type UpdateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// UpdateToken persists the device push token for a user.
func (h *NotificationHandler) UpdateToken(c *gin.Context) {
	userID := c.Param("userId")

	var req UpdateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	if err := h.db.Model(&user).Update("push_token", req.Token).Error; err != nil {
		httperr.Internal(c, "failed_to_save_token", "Could not save the push token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
