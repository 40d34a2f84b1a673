package services

import (
	"log/slog"
	"songster/contract"
	"songster/domain"
	"songster/domain/event"
	"songster/errors"
)

type CreateGameResponse struct {
	GameCode string      `json:"gameCode"`
	Players  []PlayerDTO `json:"players"`
}

type CreateGameHandler struct {
	log          *slog.Logger
	engine       contract.IEngine
	orchestrator contract.IOrchestrator
	filter       contract.INicknameFilter
}

func NewCreateGameHandler(log *slog.Logger, engine contract.IEngine, orchestrator contract.IOrchestrator,
	filter contract.INicknameFilter) *CreateGameHandler {
	return &CreateGameHandler{log: log, engine: engine, orchestrator: orchestrator, filter: filter}
}

// Handle creates a lobby hosted by the caller and subscribes the caller to its group.
func (h *CreateGameHandler) Handle(cmd domain.CreateGameCommand) (CreateGameResponse, error) {
	connectionID, err := domain.NewConnectionID(cmd.ConnectionID)
	if err != nil {
		return CreateGameResponse{}, err
	}
	nickname, err := parseNickname(h.filter, cmd.Nickname)
	if err != nil {
		return CreateGameResponse{}, err
	}

	session, err := h.engine.CreateSession(connectionID, nickname, func(session domain.Session) {
		host, _ := session.Host()
		h.orchestrator.RegisterParticipant(connectionID, session.Code)
		h.orchestrator.Publish(event.GameCreated{Code: session.Code, Host: host, At: session.CreatedAt})
	})
	if err != nil {
		return CreateGameResponse{}, err
	}

	return CreateGameResponse{
		GameCode: session.Code.Value(),
		Players:  ToPlayers(session.Members),
	}, nil
}

// parseNickname validates the raw nickname, then runs it through moderation.
func parseNickname(filter contract.INicknameFilter, raw string) (domain.Nickname, error) {
	nickname, err := domain.NewNickname(raw)
	if err != nil {
		return domain.Nickname{}, err
	}
	if filter != nil && !filter.Accepts(nickname.Value()) {
		return domain.Nickname{}, errors.Validation("Nickname is not allowed.")
	}
	return nickname, nil
}
