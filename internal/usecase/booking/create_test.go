package booking

import (
	"context"
	"testing"
	"time"

	domain "github.com/nailsdg/salon-api/internal/domain/booking"
	"github.com/nailsdg/salon-api/internal/httperr"
	"github.com/nailsdg/salon-api/internal/models"
)

var testNow = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

func newCreateUC(repo *fakeRepo, push *fakeDispatcher) *CreateBooking {
	uc := NewCreateBooking(repo, push)
	uc.now = func() time.Time { return testNow }
	return uc
}

func seedRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.addService(&models.Service{ID: "svc-1", Name: "Gel Manicure", Price: 35})
	repo.addUser(&models.User{ID: "user-1", FirstName: "Grace", LastName: "Divine"})
	return repo
}

func TestCreateBookingSuccess(t *testing.T) {
	repo := seedRepo()
	push := &fakeDispatcher{}
	uc := newCreateUC(repo, push)

	got, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:    "user-1",
		ServiceID: "svc-1",
		Date:      "2024-06-10T09:30:42Z",
		Notes:     "first visit",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got.Status != string(domain.StatusPending) {
		t.Errorf("status = %q, want %q", got.Status, domain.StatusPending)
	}

	wantSlot := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	if !got.Date.Equal(wantSlot) {
		t.Errorf("date = %v, want normalized %v", got.Date, wantSlot)
	}

	if len(push.events) != 1 {
		t.Fatalf("dispatched %d events, want 1", len(push.events))
	}
	ev := push.events[0]
	if !ev.ToAdmins {
		t.Error("event not addressed to admins")
	}
	if ev.Title != "New Appointment!" {
		t.Errorf("title = %q", ev.Title)
	}
	if ev.Body != "Grace booked: Gel Manicure" {
		t.Errorf("body = %q", ev.Body)
	}
}

func TestCreateBookingServiceNotFound(t *testing.T) {
	repo := seedRepo()
	push := &fakeDispatcher{}
	uc := newCreateUC(repo, push)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:    "user-1",
		ServiceID: "missing",
		Date:      "2024-06-10T09:30:00Z",
	})
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("err = %v, want service_not_found", err)
	}
}

func TestCreateBookingInvalidDate(t *testing.T) {
	repo := seedRepo()
	push := &fakeDispatcher{}
	uc := newCreateUC(repo, push)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:    "user-1",
		ServiceID: "svc-1",
		Date:      "10/06/2024 09:30",
	})
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("err = %v, want invalid_date", err)
	}
}

func TestCreateBookingInPast(t *testing.T) {
	repo := seedRepo()
	push := &fakeDispatcher{}
	uc := newCreateUC(repo, push)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		UserID:    "user-1",
		ServiceID: "svc-1",
		Date:      "2024-05-31T10:00:00Z",
	})
	if !httperr.IsBusiness(err, "booking_in_past") {
		t.Fatalf("err = %v, want booking_in_past", err)
	}
	if len(push.events) != 0 {
		t.Errorf("dispatched %d events, want 0", len(push.events))
	}
}

func TestCreateBookingSlotTaken(t *testing.T) {
	repo := seedRepo()
	push := &fakeDispatcher{}
	uc := newCreateUC(repo, push)

	in := CreateBookingInput{
		UserID:    "user-1",
		ServiceID: "svc-1",
		Date:      "2024-06-10T09:30:00Z",
	}
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("err = %v, want slot_taken", err)
	}
}

// Two requests for the same minute written with different seconds and
// offsets collide on the normalized slot.
func TestCreateBookingNormalizedInstantsCollide(t *testing.T) {
	repo := seedRepo()
	push := &fakeDispatcher{}
	uc := newCreateUC(repo, push)

	first := CreateBookingInput{
		UserID:    "user-1",
		ServiceID: "svc-1",
		Date:      "2024-06-10T09:30:15Z",
	}
	if _, err := uc.Execute(context.Background(), first); err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	second := CreateBookingInput{
		UserID:    "user-1",
		ServiceID: "svc-1",
		Date:      "2024-06-10T11:30:59+02:00",
	}
	_, err := uc.Execute(context.Background(), second)
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Fatalf("err = %v, want slot_taken", err)
	}
}

func TestCreateBookingCancelledSlotReusable(t *testing.T) {
	repo := seedRepo()
	push := &fakeDispatcher{}
	uc := newCreateUC(repo, push)

	in := CreateBookingInput{
		UserID:    "user-1",
		ServiceID: "svc-1",
		Date:      "2024-06-10T09:30:00Z",
	}
	first, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	updater := NewUpdateStatus(repo, push)
	if _, err := updater.Execute(context.Background(), UpdateStatusInput{
		ID:     first.ID,
		Status: string(domain.StatusCancelled),
	}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("rebook after cancel: %v", err)
	}
}
