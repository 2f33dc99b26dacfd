package booking

import (
	"context"
	"fmt"

	domain "github.com/nailsdg/salon-api/internal/domain/booking"
	"github.com/nailsdg/salon-api/internal/httperr"
	"github.com/nailsdg/salon-api/internal/models"
	"github.com/nailsdg/salon-api/internal/notify"
)

type UpdateStatusInput struct {
	ID     string
	Status string

	// Always overwrites the stored reason; nil clears it.
	CancellationReason *string
}

type UpdateStatus struct {
	repo domain.Repository
	push Dispatcher
}

func NewUpdateStatus(repo domain.Repository, push Dispatcher) *UpdateStatus {
	return &UpdateStatus{
		repo: repo,
		push: push,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Booking, error) {

	status := domain.Status(in.Status)
	if !domain.IsValid(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	b, err := uc.repo.GetBookingDetailed(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	b.Status = string(status)
	b.CancellationReason = in.CancellationReason

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	title, body := statusNotification(status, b.Service.Name)
	if title != "" {
		uc.push.Dispatch(notify.Event{
			UserID: b.UserID,
			Title:  title,
			Body:   body,
			Data:   map[string]any{"bookingId": b.ID, "status": string(status)},
		})
	}

	return b, nil
}

func statusNotification(status domain.Status, serviceName string) (string, string) {
	switch status {
	case domain.StatusAccepted:
		return "Appointment Confirmed",
			fmt.Sprintf("Your appointment for %q was accepted.", serviceName)
	case domain.StatusRefused:
		return "Appointment Refused",
			fmt.Sprintf("Unfortunately your appointment for %q was refused.", serviceName)
	case domain.StatusCancelled:
		return "Appointment Cancelled",
			fmt.Sprintf("Your appointment for %q was cancelled by the administrator.", serviceName)
	case domain.StatusCompleted:
		return "Service Completed",
			"Thank you for trusting us! See you soon at Nails by Divine Grace."
	}
	return "", ""
}
