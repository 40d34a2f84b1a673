package services

import (
	"log/slog"
	"songster/contract"
	"songster/domain"
	"songster/domain/event"
	"songster/errors"
)

type JoinGameResponse struct {
	GameCode string      `json:"gameCode"`
	Players  []PlayerDTO `json:"players"`
}

type JoinGameHandler struct {
	log          *slog.Logger
	engine       contract.IEngine
	orchestrator contract.IOrchestrator
	filter       contract.INicknameFilter
}

func NewJoinGameHandler(log *slog.Logger, engine contract.IEngine, orchestrator contract.IOrchestrator,
	filter contract.INicknameFilter) *JoinGameHandler {
	return &JoinGameHandler{log: log, engine: engine, orchestrator: orchestrator, filter: filter}
}

// Handle adds the caller to a lobby. Checks run in a fixed order:
// input, existence, phase, capacity, then nickname uniqueness.
func (h *JoinGameHandler) Handle(cmd domain.JoinGameCommand) (JoinGameResponse, error) {
	code, err := domain.NewGameCode(cmd.GameCode)
	if err != nil {
		return JoinGameResponse{}, err
	}
	connectionID, err := domain.NewConnectionID(cmd.ConnectionID)
	if err != nil {
		return JoinGameResponse{}, err
	}
	nickname, err := parseNickname(h.filter, cmd.Nickname)
	if err != nil {
		return JoinGameResponse{}, err
	}

	session, ok := h.engine.Session(code)
	if !ok {
		return JoinGameResponse{}, errors.NotFound("Game with code '%s' not found.", code)
	}
	if session.Phase != domain.PhaseLobby {
		return JoinGameResponse{}, errors.BusinessRule("Cannot join a game that has already started.")
	}
	if len(session.Members) >= domain.MaxMembers {
		return JoinGameResponse{}, errors.BusinessRule("Game is full. Maximum %d players allowed.", domain.MaxMembers)
	}
	if session.HasNickname(nickname) {
		return JoinGameResponse{}, errors.Conflict("A player with nickname '%s' already exists in this game.", nickname)
	}

	// The joiner is in the group before any later event of the session is
	// published, GameStarted included.
	session, err = h.engine.JoinSession(code, connectionID, nickname, func(session domain.Session) {
		player, _ := session.Member(connectionID)
		h.orchestrator.RegisterParticipant(connectionID, code)
		h.orchestrator.Publish(event.PlayerJoined{
			Code:    code,
			Player:  player,
			Players: session.Members,
			At:      session.UpdatedAt,
		})
	})
	if err != nil {
		return JoinGameResponse{}, err
	}

	return JoinGameResponse{
		GameCode: code.Value(),
		Players:  ToPlayers(session.Members),
	}, nil
}
