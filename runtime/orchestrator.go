package runtime

import (
	"context"
	"log/slog"
	"songster/contract"
	"songster/domain"
	"songster/domain/event"
	"songster/runtime/workers"
	"sync"
	"time"
)

// Orchestrator owns the domain event channel and the supervised workers.
// Command handlers reach the session groups and the fan-out through it.
type Orchestrator struct {
	mu              sync.Mutex
	log             *slog.Logger
	supervisor      contract.ISupervisor
	registry        contract.IRegistry
	permanentSinks  []contract.EventSink
	workers         []contract.Worker
	domainEvents    chan event.DomainEvent
	telemetryEvents chan event.Event
	sinkTimeout     time.Duration
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, registry contract.IRegistry,
	bufferSize int, sinkTimeout time.Duration) *Orchestrator {
	return &Orchestrator{
		log:             log,
		supervisor:      supervisor,
		registry:        registry,
		domainEvents:    make(chan event.DomainEvent, bufferSize),
		telemetryEvents: make(chan event.Event, bufferSize),
		sinkTimeout:     sinkTimeout,
	}
}

// Add registers sinks receiving every domain event, whatever the session.
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// AddWorkers registers extra workers started with the fan-out.
func (o *Orchestrator) AddWorkers(workers ...contract.Worker) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.workers = append(o.workers, workers...)
}

// TelemetryEvents is the channel consumed by the telemetry worker.
func (o *Orchestrator) TelemetryEvents() chan event.Event {
	return o.telemetryEvents
}

// DomainEventsProbe reports the usage of the domain event channel.
func (o *Orchestrator) DomainEventsProbe() workers.ChannelProbe {
	return workers.ChannelProbe{
		Name:     "domain_events",
		Length:   func() int { return len(o.domainEvents) },
		Capacity: cap(o.domainEvents),
	}
}

// Connect registers the sink serving a new connection.
func (o *Orchestrator) Connect(connectionID domain.ConnectionID, sink contract.EventSink) {
	o.registry.Connect(connectionID, sink)
}

func (o *Orchestrator) Disconnect(connectionID domain.ConnectionID) {
	o.registry.Disconnect(connectionID)
}

func (o *Orchestrator) RegisterParticipant(connectionID domain.ConnectionID, code domain.GameCode) {
	o.registry.Subscribe(connectionID, code)
}

func (o *Orchestrator) UnregisterParticipant(connectionID domain.ConnectionID, code domain.GameCode) {
	o.registry.Unsubscribe(connectionID, code)
}

// Publish never blocks: when the channel is full the event is dropped and logged.
func (o *Orchestrator) Publish(evt event.DomainEvent) {
	select {
	case o.domainEvents <- evt:
	default:
		o.log.Warn("Domain event channel full, dropping event", "game_code", evt.SessionCode().Value())
	}
}

// Start builds the fan-out pipeline, registers every worker with the
// supervisor and blocks until the supervisor stops.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	fanout := workers.NewEventFanout(o.log, o.permanentSinks, o.registry,
		o.domainEvents, o.telemetryEvents, o.sinkTimeout)
	o.supervisor.Add(fanout)
	o.supervisor.Add(o.workers...)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

// Stop initiates a graceful shutdown of the supervised workers.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
