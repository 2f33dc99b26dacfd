package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nailsdg/salon-api/internal/audit"
	"github.com/nailsdg/salon-api/internal/httperr"
	"github.com/nailsdg/salon-api/internal/middleware"
	"github.com/nailsdg/salon-api/internal/models"
	"github.com/nailsdg/salon-api/internal/storage"
)

type ServiceHandler struct {
	db     *gorm.DB
	store  *storage.S3Store
	audit  *audit.Dispatcher
	logger zerolog.Logger
}

func NewServiceHandler(db *gorm.DB, store *storage.S3Store, auditDispatcher *audit.Dispatcher, logger zerolog.Logger) *ServiceHandler {
	return &ServiceHandler{
		db:     db,
		store:  store,
		audit:  auditDispatcher,
		logger: logger.With().Str("component", "services").Logger(),
	}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required,min=3"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	DurationMin int     `json:"duration" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		IsActive:    true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create the service.")
		return
	}

	h.dispatchAudit(c, "service_created", service.ID, nil)
	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			httperr.BadRequest(c, "invalid_price", "Price must be positive.")
			return
		}
		updates["price"] = *req.Price
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be positive.")
			return
		}
		updates["duration_min"] = *req.DurationMin
	}

	if len(updates) > 0 {
		if err := h.db.Model(&service).Updates(updates).Error; err != nil {
			httperr.Internal(c, "failed_to_update_service", "Could not update the service.")
			return
		}
	}

	h.dispatchAudit(c, "service_updated", service.ID, updates)
	c.JSON(http.StatusOK, service)
}

// Delete is a soft delete: the service disappears from the public list
// but existing bookings keep their reference.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	if err := h.db.Model(&service).Update("is_active", false).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete the service.")
		return
	}

	h.dispatchAudit(c, "service_deleted", service.ID, nil)
	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) UploadImage(c *gin.Context) {
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

	result, err := h.store.Upload(c.Request.Context(), "services", processed, "image/webp")
	if err != nil {
		h.logger.Error().Err(err).Msg("service image upload failed")
		httperr.Internal(c, "upload_failed", "Could not store the image.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": result.URL})
}

func (h *ServiceHandler) UpdateImage(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		ImageURL string `json:"imageUrl" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	if err := h.db.Model(&service).Update("image_url", req.ImageURL).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update the image.")
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) dispatchAudit(c *gin.Context, action, serviceID string, meta any) {
	actorID := actorFromContext(c)
	h.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   action,
		Entity:   "service",
		EntityID: &serviceID,
		Metadata: meta,
	})
}

func actorFromContext(c *gin.Context) *string {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(string); ok && id != "" {
			return &id
		}
	}
	return nil
}
