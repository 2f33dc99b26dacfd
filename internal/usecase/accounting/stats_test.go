package accounting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nailsdg/salon-api/internal/models"
)

type fakeAccountingRepo struct {
	bookings []models.Booking
	err      error
}

func (f *fakeAccountingRepo) ListCompletedBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}

	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date.Before(start) || b.Date.After(end) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func completedAt(date time.Time, price float64) models.Booking {
	return models.Booking{
		Date:    date,
		Status:  "COMPLETED",
		Service: models.Service{Price: price},
	}
}

func TestGetStatsWindows(t *testing.T) {
	// Wednesday 2024-06-12, UTC salon.
	now := time.Date(2024, 6, 12, 18, 0, 0, 0, time.UTC)

	repo := &fakeAccountingRepo{
		bookings: []models.Booking{
			// Today.
			completedAt(time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC), 35),
			completedAt(time.Date(2024, 6, 12, 14, 0, 0, 0, time.UTC), 20),
			// Earlier this week (Monday).
			completedAt(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), 50),
			// Earlier this month, previous week.
			completedAt(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), 40),
			// Previous month, outside every window.
			completedAt(time.Date(2024, 5, 28, 9, 0, 0, 0, time.UTC), 100),
		},
	}

	uc := NewGetStats(repo, "UTC")
	uc.now = func() time.Time { return now }

	stats, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if stats.Today.Amount != 55 || stats.Today.Count != 2 {
		t.Errorf("today = %+v, want {55 2}", stats.Today)
	}
	if stats.Week.Amount != 105 || stats.Week.Count != 3 {
		t.Errorf("week = %+v, want {105 3}", stats.Week)
	}
	if stats.Month.Amount != 145 || stats.Month.Count != 4 {
		t.Errorf("month = %+v, want {145 4}", stats.Month)
	}
}

func TestGetStatsEmpty(t *testing.T) {
	uc := NewGetStats(&fakeAccountingRepo{}, "UTC")
	uc.now = func() time.Time {
		return time.Date(2024, 6, 12, 18, 0, 0, 0, time.UTC)
	}

	stats, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if stats.Today.Amount != 0 || stats.Today.Count != 0 {
		t.Errorf("today = %+v, want zero", stats.Today)
	}
	if stats.Month.Count != 0 {
		t.Errorf("month = %+v, want zero", stats.Month)
	}
}

func TestGetStatsRepoError(t *testing.T) {
	wantErr := errors.New("connection refused")
	uc := NewGetStats(&fakeAccountingRepo{err: wantErr}, "UTC")

	_, err := uc.Execute(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}

func TestGetStatsUnknownTimezoneFallsBack(t *testing.T) {
	uc := NewGetStats(&fakeAccountingRepo{}, "Not/AZone")
	uc.now = func() time.Time {
		return time.Date(2024, 6, 12, 18, 0, 0, 0, time.UTC)
	}

	if _, err := uc.Execute(context.Background()); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}
