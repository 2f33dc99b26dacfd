package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nailsdg/salon-api/internal/audit"
	"github.com/nailsdg/salon-api/internal/httperr"
	"github.com/nailsdg/salon-api/internal/models"
)

// VersionHandler serves the mobile build descriptor. The record is a
// persisted row, not process state, so it survives restarts and is
// shared across replicas.
type VersionHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewVersionHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *VersionHandler {
	return &VersionHandler{db: db, audit: auditDispatcher}
}

type UpdateVersionRequest struct {
	Version     *string `json:"version,omitempty"`
	ApkURL      *string `json:"apkUrl,omitempty"`
	ForceUpdate *bool   `json:"forceUpdate,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

func (h *VersionHandler) Get(c *gin.Context) {
	var version models.AppVersion
	if err := h.db.First(&version).Error; err != nil {
		httperr.Internal(c, "version_unavailable", "Could not load the app version.")
		return
	}

	c.JSON(http.StatusOK, version)
}

func (h *VersionHandler) Update(c *gin.Context) {
	var req UpdateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var version models.AppVersion
	if err := h.db.First(&version).Error; err != nil {
		httperr.Internal(c, "version_unavailable", "Could not load the app version.")
		return
	}

	updates := map[string]any{}
	if req.Version != nil {
		updates["version"] = *req.Version
	}
	if req.ApkURL != nil {
		updates["apk_url"] = *req.ApkURL
	}
	if req.ForceUpdate != nil {
		updates["force_update"] = *req.ForceUpdate
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := h.db.Model(&version).Updates(updates).Error; err != nil {
			httperr.Internal(c, "failed_to_update_version", "Could not update the app version.")
			return
		}
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorFromContext(c),
		Action:   "version_updated",
		Entity:   "app_version",
		Metadata: updates,
	})

	c.JSON(http.StatusOK, version)
}
