package stories

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nailsdg/salon-api/internal/models"
)

// TTL is the fixed visibility window of a story. Not configurable per
// post.
const TTL = 24 * time.Hour

type Repository interface {
	Create(ctx context.Context, s *models.Story) error
	Get(ctx context.Context, id string) (*models.Story, error)
	ListActive(ctx context.Context, now time.Time) ([]models.Story, error)
	Delete(ctx context.Context, id string) error
	ListExpired(ctx context.Context, now time.Time) ([]models.Story, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// AssetStore deletes the backing media object. Implemented by
// storage.S3Store.
type AssetStore interface {
	Delete(ctx context.Context, publicID string) error
}

type CreateStoryInput struct {
	ImageURL string
	PublicID string
	Caption  string
	UserID   string
}

type Service struct {
	repo   Repository
	assets AssetStore
	logger zerolog.Logger
	now    func() time.Time
}

func NewService(repo Repository, assets AssetStore, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		assets: assets,
		logger: logger.With().Str("component", "stories").Logger(),
		now:    time.Now,
	}
}

func (s *Service) Create(ctx context.Context, in CreateStoryInput) (*models.Story, error) {
	now := s.now().UTC()

	story := &models.Story{
		ImageURL:  in.ImageURL,
		PublicID:  in.PublicID,
		Caption:   in.Caption,
		UserID:    in.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}

	if err := s.repo.Create(ctx, story); err != nil {
		return nil, err
	}

	return s.repo.Get(ctx, story.ID)
}

func (s *Service) ListActive(ctx context.Context) ([]models.Story, error) {
	return s.repo.ListActive(ctx, s.now().UTC())
}

// Delete removes the story and its backing asset. A missing id is a
// silent no-op; a failed asset delete is logged and never blocks the
// row delete.
func (s *Service) Delete(ctx context.Context, id string) error {
	story, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.assets.Delete(ctx, story.PublicID); err != nil {
		s.logger.Error().Err(err).Str("story_id", id).Msg("failed to delete story asset")
	}

	return s.repo.Delete(ctx, story.ID)
}

// Sweep purges every expired story: assets first, best effort, then one
// bulk row delete. Idempotent; running with nothing expired is a no-op.
func (s *Service) Sweep(ctx context.Context) error {
	now := s.now().UTC()

	expired, err := s.repo.ListExpired(ctx, now)
	if err != nil {
		return err
	}

	if len(expired) == 0 {
		return nil
	}

	s.logger.Info().Int("count", len(expired)).Msg("purging expired stories")

	for _, story := range expired {
		if err := s.assets.Delete(ctx, story.PublicID); err != nil {
			s.logger.Error().Err(err).Str("story_id", story.ID).Msg("failed to delete expired story asset")
		}
	}

	deleted, err := s.repo.DeleteExpired(ctx, now)
	if err != nil {
		return err
	}

	s.logger.Info().Int64("deleted", deleted).Msg("expired stories purged")
	return nil
}
