package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Deliverer is implemented by Notifier.
type Deliverer interface {
	Deliver(ctx context.Context, ev Event) error
}

// Dispatcher decouples push delivery from the request path. Events are
// fire-and-forget: a failed or dropped notification never surfaces to
// the caller.
type Dispatcher struct {
	deliverer Deliverer
	queue     chan Event
	logger    zerolog.Logger
}

func NewDispatcher(deliverer Deliverer, logger zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		deliverer: deliverer,
		queue:     make(chan Event, 100),
		logger:    logger.With().Str("component", "push_dispatcher").Logger(),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := d.deliverer.Deliver(ctx, ev); err != nil {
			d.logger.Error().Err(err).Str("title", ev.Title).Msg("push delivery failed")
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop rather than block the API
		d.logger.Warn().Str("title", ev.Title).Msg("push queue full, dropping event")
	}
}
