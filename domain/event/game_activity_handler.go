package event

import (
	"log/slog"
	"songster/errors"
)

// GameActivityHandler counts game events by kind.
// Placements are split between valid and invalid so the debug server can
// report how hard the deck is.
type GameActivityHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewGameActivityHandler(log *slog.Logger, counter *Counter) *GameActivityHandler {
	return &GameActivityHandler{log: log, counter: counter}
}

func (h *GameActivityHandler) Handle(e Event) {
	if e.Type != DomainEventType {
		return
	}
	switch payload := e.Payload.(type) {
	case GameCreated:
		h.counter.Increment(GameCreatedType)
	case PlayerJoined:
		h.counter.Increment(PlayerJoinedType)
	case GameStarted:
		h.counter.Increment(GameStartedType)
	case CardPlaced:
		if payload.Valid {
			h.counter.Increment(ValidPlacementType)
		} else {
			h.counter.Increment(InvalidPlacementType)
		}
	case GameWon:
		h.counter.Increment(ValidPlacementType)
		h.counter.Increment(GameWonType)
	case GameEnded:
		h.counter.Increment(GameEndedType)
	case PlayerLeft:
		h.counter.Increment(PlayerLeftType)
	case SessionExpired:
		h.counter.Increment(SessionExpiredType)
	default:
		h.log.Error(errors.ErrInvalidPayload.Error())
	}
}
