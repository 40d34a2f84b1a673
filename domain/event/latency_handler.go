package event

import (
	"log/slog"
	"songster/errors"
	"time"
)

// LatencyHandler measures how long a domain event took to travel from the
// engine to the telemetry worker.
type LatencyHandler struct {
	log              *slog.Logger
	latencyThreshold time.Duration
}

func NewLatencyHandler(log *slog.Logger, latencyThreshold time.Duration) *LatencyHandler {
	return &LatencyHandler{log: log, latencyThreshold: latencyThreshold}
}

func (h *LatencyHandler) Handle(e Event) {
	if e.Type != DomainEventType {
		return
	}
	payload, ok := e.Payload.(DomainEvent)
	if !ok {
		h.log.Error(errors.ErrInvalidPayload.Error())
		return
	}
	leadTime := time.Since(payload.OccurredAt())

	h.log.Debug("telemetry: processing latency",
		"game_code", payload.SessionCode().Value(),
		"lead_time_ms", leadTime.Milliseconds(),
	)

	if leadTime > h.latencyThreshold {
		h.log.Warn("high latency detected", "game_code", payload.SessionCode().Value(), "lead_time", leadTime)
	}
}
