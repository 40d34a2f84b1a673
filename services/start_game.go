package services

import (
	"context"
	"log/slog"
	"songster/contract"
	"songster/domain"
	"songster/domain/event"
	"songster/errors"
)

type StartGameResponse struct {
	CurrentPlayer string      `json:"currentPlayer"`
	CardTitle     string      `json:"cardTitle"`
	Card          CardDTO     `json:"card"`
	Players       []PlayerDTO `json:"players"`
}

type StartGameHandler struct {
	log          *slog.Logger
	engine       contract.IEngine
	orchestrator contract.IOrchestrator
}

func NewStartGameHandler(log *slog.Logger, engine contract.IEngine, orchestrator contract.IOrchestrator) *StartGameHandler {
	return &StartGameHandler{log: log, engine: engine, orchestrator: orchestrator}
}

// Handle moves a lobby to playing. Only the host may start it.
func (h *StartGameHandler) Handle(ctx context.Context, cmd domain.StartGameCommand) (StartGameResponse, error) {
	code, err := domain.NewGameCode(cmd.GameCode)
	if err != nil {
		return StartGameResponse{}, err
	}
	connectionID, err := domain.NewConnectionID(cmd.ConnectionID)
	if err != nil {
		return StartGameResponse{}, err
	}

	session, ok := h.engine.Session(code)
	if !ok {
		return StartGameResponse{}, errors.NotFound("Game with code '%s' not found.", code)
	}
	if session.Phase != domain.PhaseLobby {
		return StartGameResponse{}, errors.BusinessRule("Game has already been started.")
	}
	host, ok := session.Host()
	if !ok {
		return StartGameResponse{}, errors.BusinessRule("No host found for this game.")
	}
	if host.ConnectionID != connectionID {
		return StartGameResponse{}, errors.Unauthorized("Only the host can start the game.")
	}
	if len(session.Members) < domain.MinMembersToStart {
		return StartGameResponse{}, errors.BusinessRule("At least %d players are required to start the game.", domain.MinMembersToStart)
	}

	session, err = h.engine.StartSession(ctx, code, func(session domain.Session) {
		if session.ActiveCard == nil {
			return
		}
		current, _ := session.CurrentMember()
		h.orchestrator.Publish(event.GameStarted{
			Code:        code,
			CurrentTurn: current,
			Card:        *session.ActiveCard,
			Players:     session.Members,
			At:          session.UpdatedAt,
		})
	})
	if err != nil {
		if errors.KindOf(err) != errors.KindInternal {
			return StartGameResponse{}, err
		}
		h.log.Error("Unexpected failure while starting game", "game_code", code.Value(), "error", err)
		return StartGameResponse{}, errors.BusinessRule("Failed to start game due to an unexpected error.")
	}
	if session.ActiveCard == nil {
		return StartGameResponse{}, errors.BusinessRule("Game disappeared after start operation.")
	}
	current, _ := session.CurrentMember()
	card := *session.ActiveCard

	return StartGameResponse{
		CurrentPlayer: current.Nickname.Value(),
		CardTitle:     card.Title,
		Card:          ToCard(card),
		Players:       ToPlayers(session.Members),
	}, nil
}
