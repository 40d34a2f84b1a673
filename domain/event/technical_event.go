package event

import (
	"songster/domain"
	"time"
)

type Type string

const (
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
	ChannelCapacityType     Type = "CHANNEL_CAPACITY"
	PIDTrackerType          Type = "PID_TRACKER"
	DomainEventType         Type = "DOMAIN_EVENT"
)

// Counter keys for game activity.
const (
	GameCreatedType      Type = "GAME_CREATED"
	PlayerJoinedType     Type = "PLAYER_JOINED"
	GameStartedType      Type = "GAME_STARTED"
	ValidPlacementType   Type = "VALID_PLACEMENT"
	InvalidPlacementType Type = "INVALID_PLACEMENT"
	GameWonType          Type = "GAME_WON"
	GameEndedType        Type = "GAME_ENDED"
	PlayerLeftType       Type = "PLAYER_LEFT"
	SessionExpiredType   Type = "SESSION_EXPIRED"
)

// Event is a technical event consumed by the telemetry worker.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

type ChannelCapacity struct {
	ChannelName string
	Capacity    int
	Length      int
}

type ProcessTracker struct {
	PID    domain.PID
	Status domain.PIDStatus
	Cpu    float64
	Ram    float32
	RSS    uint64
}

func NewDomainEvent(evt DomainEvent) Event {
	return Event{Type: DomainEventType, CreatedAt: time.Now().UTC(), Payload: evt}
}
