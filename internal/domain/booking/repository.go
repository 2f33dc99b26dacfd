package booking

import (
	"context"
	"time"

	"github.com/nailsdg/salon-api/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- Booking (create / conflict) --------
	HasActiveBookingAt(
		ctx context.Context,
		slot time.Time,
	) (bool, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (read) --------
	GetBookingDetailed(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	ListSlotTimes(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]time.Time, error)

	ListByUser(
		ctx context.Context,
		userID string,
		offset int,
		limit int,
	) ([]models.Booking, int64, error)

	ListAll(
		ctx context.Context,
		offset int,
		limit int,
	) ([]models.Booking, int64, error)

	// -------- Booking (state change) --------
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
