package stories

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper runs Sweep on a fixed period. Overlapping runs would be
// benign (delete-if-expired is idempotent), so no overlap guard.
type Sweeper struct {
	service  *Service
	interval time.Duration
	logger   zerolog.Logger
}

func NewSweeper(service *Service, interval time.Duration, logger zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweeper{
		service:  service,
		interval: interval,
		logger:   logger.With().Str("component", "story_sweeper").Logger(),
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.service.Sweep(ctx); err != nil {
				s.logger.Error().Err(err).Msg("story sweep failed")
			}
		}
	}
}
