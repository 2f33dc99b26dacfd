package accounting

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nailsdg/salon-api/internal/models"
	"github.com/nailsdg/salon-api/internal/timezone"
)

// Repository is the slice of the store the revenue aggregator needs.
type Repository interface {
	ListCompletedBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}

type Range struct {
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

type Stats struct {
	Today Range `json:"today"`
	Week  Range `json:"week"`
	Month Range `json:"month"`
}

type GetStats struct {
	repo Repository
	tz   string
	now  func() time.Time
}

func NewGetStats(repo Repository, tz string) *GetStats {
	return &GetStats{
		repo: repo,
		tz:   tz,
		now:  time.Now,
	}
}

// Execute computes the three rolling revenue windows, each the sum of
// service prices over COMPLETED bookings. The windows overlap (today is
// inside week is inside month) and are recomputed independently; the
// volumes of a single salon make that redundancy irrelevant.
func (uc *GetStats) Execute(ctx context.Context) (*Stats, error) {
	now := uc.now().In(timezone.Location(uc.tz))

	dayStart, dayEnd := DayWindow(now)
	weekStart := WeekStart(now)
	monthStart := MonthStart(now)

	var stats Stats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := uc.calculateRange(gctx, dayStart, dayEnd)
		stats.Today = r
		return err
	})
	g.Go(func() error {
		r, err := uc.calculateRange(gctx, weekStart, dayEnd)
		stats.Week = r
		return err
	})
	g.Go(func() error {
		r, err := uc.calculateRange(gctx, monthStart, dayEnd)
		stats.Month = r
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (uc *GetStats) calculateRange(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (Range, error) {

	bookings, err := uc.repo.ListCompletedBetween(ctx, start, end)
	if err != nil {
		return Range{}, err
	}

	var amount float64
	for _, b := range bookings {
		amount += b.Service.Price
	}

	return Range{Amount: amount, Count: len(bookings)}, nil
}
