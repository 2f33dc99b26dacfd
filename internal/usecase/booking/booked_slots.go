package booking

import (
	"context"
	"sort"
	"time"

	domain "github.com/nailsdg/salon-api/internal/domain/booking"
	"github.com/nailsdg/salon-api/internal/httperr"
)

type ListBookedSlots struct {
	repo domain.Repository
}

func NewListBookedSlots(repo domain.Repository) *ListBookedSlots {
	return &ListBookedSlots{repo: repo}
}

// Execute returns the "HH:MM" start times of every non-cancelled
// booking on the given UTC calendar day, ascending.
func (uc *ListBookedSlots) Execute(
	ctx context.Context,
	dateStr string,
) ([]string, error) {

	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, end := domain.DayWindowUTC(day)

	times, err := uc.repo.ListSlotTimes(ctx, start, end)
	if err != nil {
		return nil, err
	}

	slots := make([]string, 0, len(times))
	for _, t := range times {
		slots = append(slots, domain.FormatSlot(t))
	}
	sort.Strings(slots)

	return slots, nil
}
