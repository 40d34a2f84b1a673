package workers

import (
	"context"
	"log/slog"
	"songster/contract"
	"songster/domain/event"
	"time"
)

// EventFanout broadcasts domain events to the permanent sinks and to every
// connection of the session group.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// durability, or retries. A single EventFanout consumes the channel so events
// of one session reach each sink in publication order.
type EventFanout struct {
	log             *slog.Logger
	permanentSinks  []contract.EventSink
	registry        contract.IRegistry
	domainEvents    <-chan event.DomainEvent
	telemetryEvents chan<- event.Event
	sinkTimeout     time.Duration
}

func NewEventFanout(log *slog.Logger,
	permanentSinks []contract.EventSink,
	registry contract.IRegistry,
	domainEvents <-chan event.DomainEvent,
	telemetryEvents chan<- event.Event,
	sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:             log,
		permanentSinks:  permanentSinks,
		registry:        registry,
		domainEvents:    domainEvents,
		telemetryEvents: telemetryEvents,
		sinkTimeout:     sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.domainEvents:
			w.Fanout(ctx, evt)
			if w.telemetryEvents == nil {
				continue
			}
			select {
			case w.telemetryEvents <- event.NewDomainEvent(evt):
			default:
				w.log.Debug("Observability telemetry event lost")
			}
		case <-ctx.Done():
			w.log.Debug("Context done, stopping domain event fanout")
			return nil
		}
	}
}

// Fanout delivers one event to every permanent sink, then to the session group.
// Each sink gets its own timeout so a slow connection cannot stall the others.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	code := evt.SessionCode()
	sinks := append([]contract.EventSink{}, w.permanentSinks...)
	sinks = append(sinks, w.registry.SinksForSession(code)...)

	for _, sink := range sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink failed to consume event", "game_code", code.Value(), "error", err)
		}
		cancel()
	}

	if event.ClosesGroup(evt) {
		w.registry.DropGroup(code)
	}
}
