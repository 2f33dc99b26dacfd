package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/nailsdg/salon-api/internal/domain/booking"
	"github.com/nailsdg/salon-api/internal/httperr"
	"github.com/nailsdg/salon-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		First(&service, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) HasActiveBookingAt(
	ctx context.Context,
	slot time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("date = ? AND status <> ?", slot, string(domain.StatusCancelled)).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		// ux_bookings_active_slot lost the race to a concurrent insert.
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingDetailed(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("User").
		First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListSlotTimes(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]time.Time, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("date").
		Where(
			"date >= ? AND date <= ? AND status <> ?",
			start, end, string(domain.StatusCancelled),
		).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	times := make([]time.Time, 0, len(bookings))
	for _, b := range bookings {
		times = append(times, b.Date)
	}
	return times, nil
}

func (r *BookingGormRepository) ListByUser(
	ctx context.Context,
	userID string,
	offset int,
	limit int,
) ([]models.Booking, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("user_id = ?", userID).
		Order("date ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *BookingGormRepository) ListAll(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Booking, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("User").
		Order("date ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	// Save would skip a nil CancellationReason; select it explicitly so
	// clearing the reason reaches the row.
	return r.db.WithContext(ctx).
		Model(b).
		Select("status", "cancellation_reason").
		Updates(map[string]any{
			"status":              b.Status,
			"cancellation_reason": b.CancellationReason,
		}).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
