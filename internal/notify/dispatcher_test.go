package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type recordingDeliverer struct {
	mu     sync.Mutex
	events []Event
	done   chan struct{}
}

func (r *recordingDeliverer) Deliver(ctx context.Context, ev Event) error {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	if r.done != nil {
		r.done <- struct{}{}
	}
	return nil
}

type blockingDeliverer struct {
	release chan struct{}
}

func (b *blockingDeliverer) Deliver(ctx context.Context, ev Event) error {
	<-b.release
	return nil
}

func TestDispatcherDelivers(t *testing.T) {
	deliverer := &recordingDeliverer{done: make(chan struct{}, 1)}
	d := NewDispatcher(deliverer, zerolog.Nop())

	d.Dispatch(Event{UserID: "user-1", Title: "Appointment Confirmed"})

	select {
	case <-deliverer.done:
	case <-time.After(2 * time.Second):
		t.Fatal("event was never delivered")
	}

	deliverer.mu.Lock()
	defer deliverer.mu.Unlock()
	if len(deliverer.events) != 1 {
		t.Fatalf("delivered %d events, want 1", len(deliverer.events))
	}
	if deliverer.events[0].Title != "Appointment Confirmed" {
		t.Errorf("title = %q", deliverer.events[0].Title)
	}
}

// Dispatch must return immediately even when the worker is stuck and
// the queue is saturated. Excess events are dropped, never queued
// against the caller.
func TestDispatcherNeverBlocks(t *testing.T) {
	deliverer := &blockingDeliverer{release: make(chan struct{})}
	d := NewDispatcher(deliverer, zerolog.Nop())
	defer close(deliverer.release)

	returned := make(chan struct{})
	go func() {
		for i := 0; i < 300; i++ {
			d.Dispatch(Event{Title: "overflow"})
		}
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}
}
