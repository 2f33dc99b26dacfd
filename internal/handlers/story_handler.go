package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nailsdg/salon-api/internal/audit"
	"github.com/nailsdg/salon-api/internal/httperr"
	"github.com/nailsdg/salon-api/internal/middleware"
	"github.com/nailsdg/salon-api/internal/storage"
	"github.com/nailsdg/salon-api/internal/stories"
)

type StoryHandler struct {
	service *stories.Service
	store   *storage.S3Store
	audit   *audit.Dispatcher
	logger  zerolog.Logger
}

func NewStoryHandler(service *stories.Service, store *storage.S3Store, auditDispatcher *audit.Dispatcher, logger zerolog.Logger) *StoryHandler {
	return &StoryHandler{
		service: service,
		store:   store,
		audit:   auditDispatcher,
		logger:  logger.With().Str("component", "stories").Logger(),
	}
}

// --------- Requests ---------

type CreateStoryRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	PublicID string `json:"publicId" binding:"required"`
	Caption  string `json:"caption"`
	// Optional; defaults to the authenticated admin.
	UserID string `json:"userId"`
}

// --------- Handlers ---------

func (h *StoryHandler) Create(c *gin.Context) {
	var req CreateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = c.MustGet(middleware.ContextUserID).(string)
	}

	story, err := h.service.Create(c.Request.Context(), stories.CreateStoryInput{
		ImageURL: req.ImageURL,
		PublicID: req.PublicID,
		Caption:  req.Caption,
		UserID:   userID,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_story", "Could not create the story.")
		return
	}

	c.JSON(http.StatusCreated, story)
}

func (h *StoryHandler) ListActive(c *gin.Context) {
	items, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_stories", "Could not list stories.")
		return
	}

	c.JSON(http.StatusOK, items)
}

// Delete is tolerant: removing a story that no longer exists succeeds.
func (h *StoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_story", "Could not delete the story.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actorFromContext(c),
		Action:   "story_deleted",
		Entity:   "story",
		EntityID: &id,
	})

	c.Status(http.StatusNoContent)
}

func (h *StoryHandler) UploadImage(c *gin.Context) {
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

	result, err := h.store.Upload(c.Request.Context(), "stories", processed, "image/webp")
	if err != nil {
		h.logger.Error().Err(err).Msg("story image upload failed")
		httperr.Internal(c, "upload_failed", "Could not store the image.")
		return
	}

	c.JSON(http.StatusOK, result)
}
