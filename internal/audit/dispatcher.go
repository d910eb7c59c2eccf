package audit

import "github.com/rs/zerolog"

type Event struct {
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

// Writer persists a single audit entry.
type Writer interface {
	Log(userID *string, action, entity string, entityID *string, metadata any) error
}

// Dispatcher decouples audit writes from request handling: events are queued
// to a single background writer and dropped rather than ever blocking the API.
type Dispatcher struct {
	writer Writer
	log    zerolog.Logger
	queue  chan Event
}

func NewDispatcher(w Writer, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		writer: w,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.writer.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
