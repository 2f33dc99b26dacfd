package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/nailsdg/salon-api/internal/domain/booking"
	"github.com/nailsdg/salon-api/internal/httperr"
	"github.com/nailsdg/salon-api/internal/models"
	"github.com/nailsdg/salon-api/internal/notify"
)

// Dispatcher is the fire-and-forget push sink used by the booking use
// cases.
type Dispatcher interface {
	Dispatch(ev notify.Event)
}

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID    string
	ServiceID string

	// RFC 3339 appointment start instant.
	Date  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo domain.Repository
	push Dispatcher
	now  func() time.Time
}

func NewCreateBooking(repo domain.Repository, push Dispatcher) *CreateBooking {
	return &CreateBooking{
		repo: repo,
		push: push,
		now:  time.Now,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	start, err := time.Parse(time.RFC3339, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	slot := domain.NormalizeSlot(start)

	if slot.Before(uc.now()) {
		return nil, httperr.ErrBusiness("booking_in_past")
	}

	// Advisory pre-check; ux_bookings_active_slot is the authority
	// under concurrency.
	taken, err := uc.repo.HasActiveBookingAt(ctx, slot)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	b := &models.Booking{
		UserID:    in.UserID,
		ServiceID: service.ID,
		Date:      slot,
		Notes:     in.Notes,
		Status:    string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	created, err := uc.repo.GetBookingDetailed(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	uc.push.Dispatch(notify.Event{
		ToAdmins: true,
		Title:    "New Appointment!",
		Body:     fmt.Sprintf("%s booked: %s", created.User.FirstName, created.Service.Name),
		Data:     map[string]any{"bookingId": created.ID},
	})

	return created, nil
}
