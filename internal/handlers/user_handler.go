package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nailsdg/salon-api/internal/httperr"
	"github.com/nailsdg/salon-api/internal/models"
	"github.com/nailsdg/salon-api/internal/storage"
)

type UserHandler struct {
	db     *gorm.DB
	store  *storage.S3Store
	logger zerolog.Logger
}

func NewUserHandler(db *gorm.DB, store *storage.S3Store, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		db:     db,
		store:  store,
		logger: logger.With().Str("component", "users").Logger(),
	}
}

// --------- Requests ---------

type UpdateUserRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2"`
	LastName  string `json:"lastName" binding:"required,min=2"`
	Password  string `json:"password,omitempty"`
}

// --------- Handlers ---------

func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	updates := map[string]any{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
	}

	if req.Password != "" {
		if len(req.Password) < 6 {
			httperr.BadRequest(c, "password_too_short", "Password must be at least 6 characters.")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Could not process the password.")
			return
		}
		updates["password_hash"] = string(hashed)
	}

	if err := h.db.Model(&user).Updates(updates).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Could not update the profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (h *UserHandler) UploadProfilePicture(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	data, err := readImageFile(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "A valid image file is required.")
		return
	}

	processed, err := storage.ProcessImage(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not decode the image.")
		return
	}

	result, err := h.store.Upload(c.Request.Context(), "profiles", processed, "image/webp")
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", id).Msg("profile picture upload failed")
		httperr.Internal(c, "upload_failed", "Could not store the image.")
		return
	}

	if err := h.db.Model(&user).Update("profile_picture_url", result.URL).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Could not save the picture.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}
