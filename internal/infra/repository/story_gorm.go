package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nailsdg/salon-api/internal/models"
	"github.com/nailsdg/salon-api/internal/stories"
)

type StoryGormRepository struct {
	db *gorm.DB
}

func NewStoryGormRepository(db *gorm.DB) *StoryGormRepository {
	return &StoryGormRepository{db: db}
}

func (r *StoryGormRepository) Create(
	ctx context.Context,
	s *models.Story,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StoryGormRepository) Get(
	ctx context.Context,
	id string,
) (*models.Story, error) {

	var story models.Story
	if err := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "first_name", "last_name")
		}).
		First(&story, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &story, nil
}

func (r *StoryGormRepository) ListActive(
	ctx context.Context,
	now time.Time,
) ([]models.Story, error) {

	var items []models.Story
	if err := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "first_name", "last_name")
		}).
		Where("expires_at > ?", now).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *StoryGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Story{}, "id = ?", id).Error
}

func (r *StoryGormRepository) ListExpired(
	ctx context.Context,
	now time.Time,
) ([]models.Story, error) {

	var items []models.Story
	if err := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *StoryGormRepository) DeleteExpired(
	ctx context.Context,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&models.Story{})
	return res.RowsAffected, res.Error
}

// Compile-time check
var _ stories.Repository = (*StoryGormRepository)(nil)
