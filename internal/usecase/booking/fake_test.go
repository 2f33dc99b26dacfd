package booking

import (
	"context"
	"sort"
	"strconv"
	"time"

	"gorm.io/gorm"

	domain "github.com/nailsdg/salon-api/internal/domain/booking"
	"github.com/nailsdg/salon-api/internal/httperr"
	"github.com/nailsdg/salon-api/internal/models"
	"github.com/nailsdg/salon-api/internal/notify"
)

// fakeRepo is an in-memory domain.Repository used by the use case
// tests. It mirrors the slot uniqueness rule enforced in Postgres by
// the partial unique index.
type fakeRepo struct {
	services map[string]*models.Service
	users    map[string]*models.User
	bookings []*models.Booking

	nextID int
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: map[string]*models.Service{},
		users:    map[string]*models.User{},
	}
}

func (f *fakeRepo) addService(s *models.Service) {
	f.services[s.ID] = s
}

func (f *fakeRepo) addUser(u *models.User) {
	f.users[u.ID] = u
}

func (f *fakeRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeRepo) HasActiveBookingAt(ctx context.Context, slot time.Time) (bool, error) {
	for _, b := range f.bookings {
		if b.Date.Equal(slot) && b.Status != string(domain.StatusCancelled) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	taken, _ := f.HasActiveBookingAt(ctx, b.Date)
	if taken {
		return httperr.ErrBusiness("slot_taken")
	}
	f.nextID++
	if b.ID == "" {
		b.ID = "booking-" + strconv.Itoa(f.nextID)
	}
	b.CreatedAt = time.Now()
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeRepo) GetBookingDetailed(ctx context.Context, id string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			out := *b
			if s, ok := f.services[b.ServiceID]; ok {
				out.Service = *s
			}
			if u, ok := f.users[b.UserID]; ok {
				out.User = *u
			}
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListSlotTimes(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	var times []time.Time
	for _, b := range f.bookings {
		if b.Status == string(domain.StatusCancelled) {
			continue
		}
		if b.Date.Before(start) || b.Date.After(end) {
			continue
		}
		times = append(times, b.Date)
	}
	return times, nil
}

func (f *fakeRepo) ListByUser(ctx context.Context, userID string, offset, limit int) ([]models.Booking, int64, error) {
	var matched []*models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			matched = append(matched, b)
		}
	}
	return paginate(matched, offset, limit)
}

func (f *fakeRepo) ListAll(ctx context.Context, offset, limit int) ([]models.Booking, int64, error) {
	return paginate(f.bookings, offset, limit)
}

func paginate(all []*models.Booking, offset, limit int) ([]models.Booking, int64, error) {
	sort.Slice(all, func(i, j int) bool {
		return all[i].Date.Before(all[j].Date)
	})

	total := int64(len(all))
	if offset >= len(all) {
		return []models.Booking{}, total, nil
	}

	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	items := make([]models.Booking, 0, end-offset)
	for _, b := range all[offset:end] {
		items = append(items, *b)
	}
	return items, total, nil
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	for _, stored := range f.bookings {
		if stored.ID == b.ID {
			stored.Status = b.Status
			stored.CancellationReason = b.CancellationReason
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// fakeDispatcher records dispatched push events.
type fakeDispatcher struct {
	events []notify.Event
}

func (f *fakeDispatcher) Dispatch(ev notify.Event) {
	f.events = append(f.events, ev)
}
