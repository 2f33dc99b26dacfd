package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/nailsdg/salon-api/internal/domain/booking"
	"github.com/nailsdg/salon-api/internal/models"
	"github.com/nailsdg/salon-api/internal/usecase/accounting"
)

type AccountingGormRepository struct {
	db *gorm.DB
}

func NewAccountingGormRepository(db *gorm.DB) *AccountingGormRepository {
	return &AccountingGormRepository{db: db}
}

func (r *AccountingGormRepository) ListCompletedBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"status = ? AND date >= ? AND date <= ?",
			string(domain.StatusCompleted), start, end,
		).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ accounting.Repository = (*AccountingGormRepository)(nil)
