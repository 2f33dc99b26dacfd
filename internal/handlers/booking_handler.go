package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nailsdg/salon-api/internal/audit"
	"github.com/nailsdg/salon-api/internal/cache"
	"github.com/nailsdg/salon-api/internal/httperr"
	"github.com/nailsdg/salon-api/internal/httpresp"
	"github.com/nailsdg/salon-api/internal/middleware"
	ucBooking "github.com/nailsdg/salon-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *ucBooking.CreateBooking
	bookedSlotsUC  *ucBooking.ListBookedSlots
	listUserUC     *ucBooking.ListUserBookings
	listAllUC      *ucBooking.ListAllBookings
	updateStatusUC *ucBooking.UpdateStatus
	audit          *audit.Dispatcher
	cache          *cache.Cache
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	bookedSlotsUC *ucBooking.ListBookedSlots,
	listUserUC *ucBooking.ListUserBookings,
	listAllUC *ucBooking.ListAllBookings,
	updateStatusUC *ucBooking.UpdateStatus,
	auditDispatcher *audit.Dispatcher,
	statsCache *cache.Cache,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		bookedSlotsUC:  bookedSlotsUC,
		listUserUC:     listUserUC,
		listAllUC:      listAllUC,
		updateStatusUC: updateStatusUC,
		audit:          auditDispatcher,
		cache:          statsCache,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Date      string `json:"date" binding:"required"`
	Notes     string `json:"notes"`
	ServiceID string `json:"serviceId" binding:"required"`
	// Optional; defaults to the authenticated user.
	UserID string `json:"userId"`
}

type UpdateBookingStatusRequest struct {
	Status             string  `json:"status" binding:"required"`
	CancellationReason *string `json:"cancellationReason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = c.MustGet(middleware.ContextUserID).(string)
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:    userID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Notes:     req.Notes,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "service_not_found", "Service not found.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Invalid booking date.")
		case httperr.IsBusiness(err, "booking_in_past"):
			httperr.BadRequest(c, "booking_in_past", "The booking date cannot be in the past.")
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.Conflict(c, "slot_taken", "This time slot is already booked by another user.")
		default:
			httperr.Internal(c, "failed_to_create_booking", "Could not create the booking.")
		}
		return
	}

	c.JSON(201, created)
}

// ======================================================
// LISTS
// ======================================================

func (h *BookingHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)

	result, err := h.listUserUC.Execute(c.Request.Context(), userID, page, limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.Page(c, result.Items, result.Total, result.Page, result.Limit)
}

func (h *BookingHandler) ListAll(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)

	result, err := h.listAllUC.Execute(c.Request.Context(), page, limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.Page(c, result.Items, result.Total, result.Page, result.Limit)
}

func (h *BookingHandler) BookedSlots(c *gin.Context) {
	dateStr := c.Param("date")

	slots, err := h.bookedSlotsUC.Execute(c.Request.Context(), dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		httperr.Internal(c, "failed_to_list_slots", "Could not list booked slots.")
		return
	}

	c.JSON(200, slots)
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	updated, err := h.updateStatusUC.Execute(c.Request.Context(), ucBooking.UpdateStatusInput{
		ID:                 id,
		Status:             req.Status,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Unknown booking status.")
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		default:
			httperr.Internal(c, "failed_to_update_booking", "Could not update the booking.")
		}
		return
	}

	// A status change can move revenue between windows.
	h.cache.Invalidate(c.Request.Context(), statsCacheKey)

	h.audit.Dispatch(audit.Event{
		UserID:   actorFromContext(c),
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: &updated.ID,
		Metadata: map[string]any{"status": updated.Status},
	})

	c.JSON(200, updated)
}

// ======================================================
// HELPERS
// ======================================================

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
