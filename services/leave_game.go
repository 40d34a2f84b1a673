package services

import (
	"log/slog"
	"songster/contract"
	"songster/domain"
	"songster/domain/event"
	"songster/errors"
	"time"
)

type LeaveGameResponse struct {
	GameCode  string      `json:"gameCode"`
	Nickname  string      `json:"nickname"`
	GameEnded bool        `json:"gameEnded"`
	Players   []PlayerDTO `json:"players"`
}

type LeaveGameHandler struct {
	log          *slog.Logger
	engine       contract.IEngine
	orchestrator contract.IOrchestrator
}

func NewLeaveGameHandler(log *slog.Logger, engine contract.IEngine, orchestrator contract.IOrchestrator) *LeaveGameHandler {
	return &LeaveGameHandler{log: log, engine: engine, orchestrator: orchestrator}
}

// Handle removes a disconnected connection from its session.
func (h *LeaveGameHandler) Handle(cmd domain.LeaveGameCommand) (LeaveGameResponse, error) {
	connectionID, err := domain.NewConnectionID(cmd.ConnectionID)
	if err != nil {
		return LeaveGameResponse{}, err
	}

	departure, ok := h.engine.RemoveMember(connectionID, func(departure domain.Departure) {
		h.orchestrator.UnregisterParticipant(connectionID, departure.Code)
		h.orchestrator.Publish(playerLeft(connectionID, departure))
	})
	if !ok {
		return LeaveGameResponse{}, errors.NotFound("Player is not part of any game.")
	}

	return LeaveGameResponse{
		GameCode:  departure.Code.Value(),
		Nickname:  departure.Member.Nickname.Value(),
		GameEnded: departure.SessionEnded,
		Players:   ToPlayers(departure.Remaining),
	}, nil
}

func playerLeft(connectionID domain.ConnectionID, departure domain.Departure) event.PlayerLeft {
	left := event.PlayerLeft{
		Code:          departure.Code,
		ConnectionID:  connectionID,
		Nickname:      departure.Member.Nickname,
		PreviousPhase: departure.PreviousPhase,
		GameEnded:     departure.SessionEnded,
		Players:       departure.Remaining,
		At:            time.Now().UTC(),
	}
	if departure.SessionEnded {
		all := append([]domain.Member{departure.Member}, departure.Remaining...)
		left.Standings = domain.Standings(all)
	}
	return left
}
