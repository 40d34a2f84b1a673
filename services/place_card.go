package services

import (
	"log/slog"
	"songster/contract"
	"songster/domain"
	"songster/domain/event"
	"songster/errors"
)

type PlaceCardResponse struct {
	IsValid       bool          `json:"isValid"`
	GameFinished  bool          `json:"gameFinished"`
	DeckExhausted bool          `json:"deckExhausted"`
	Player        string        `json:"player"`
	Card          CardDTO       `json:"card"`
	Position      int           `json:"position"`
	Timeline      []CardDTO     `json:"timeline"`
	CurrentPlayer string        `json:"currentPlayer,omitempty"`
	NextCard      *CardDTO      `json:"nextCard,omitempty"`
	Winner        string        `json:"winner,omitempty"`
	Standings     []StandingDTO `json:"standings,omitempty"`
}

type PlaceCardHandler struct {
	log          *slog.Logger
	engine       contract.IEngine
	orchestrator contract.IOrchestrator
}

func NewPlaceCardHandler(log *slog.Logger, engine contract.IEngine, orchestrator contract.IOrchestrator) *PlaceCardHandler {
	return &PlaceCardHandler{log: log, engine: engine, orchestrator: orchestrator}
}

// Handle places the active card in the caller's timeline. An invalid
// placement is a successful call with IsValid false.
func (h *PlaceCardHandler) Handle(cmd domain.PlaceCardCommand) (PlaceCardResponse, error) {
	code, err := domain.NewGameCode(cmd.GameCode)
	if err != nil {
		return PlaceCardResponse{}, err
	}
	connectionID, err := domain.NewConnectionID(cmd.ConnectionID)
	if err != nil {
		return PlaceCardResponse{}, err
	}
	position, err := domain.NewPosition(cmd.Position)
	if err != nil {
		return PlaceCardResponse{}, err
	}

	session, ok := h.engine.Session(code)
	if !ok {
		return PlaceCardResponse{}, errors.NotFound("Game with code '%s' not found.", code)
	}
	if session.Phase != domain.PhasePlaying {
		return PlaceCardResponse{}, errors.BusinessRule("Game is not in playing state.")
	}
	if session.ActiveCard == nil {
		return PlaceCardResponse{}, errors.BusinessRule("No card is currently drawn.")
	}
	member, ok := session.Member(connectionID)
	if !ok {
		return PlaceCardResponse{}, errors.NotFound("Player not found in game.")
	}
	if current, ok := session.CurrentMember(); !ok || current.ConnectionID != connectionID {
		return PlaceCardResponse{}, errors.BusinessRule("It is not your turn.")
	}
	if position.Value() > len(member.Timeline) {
		return PlaceCardResponse{}, errors.BusinessRule("Position %d is out of range. Timeline length is %d.",
			position.Value(), len(member.Timeline))
	}

	var response PlaceCardResponse
	placement, err := h.engine.PlaceCard(code, connectionID, position, func(placement domain.Placement, session domain.Session) {
		response = h.publish(code, placement, session)
	})
	if err != nil {
		return PlaceCardResponse{}, err
	}
	if placement.Finished && !placement.DeckExhausted && response.Winner == "" {
		h.log.Warn("Game finished without winner", "game_code", code.Value())
	}
	return response, nil
}

// publish announces the placement to the group. A winning placement is
// announced by GameWon alone.
func (h *PlaceCardHandler) publish(code domain.GameCode, placement domain.Placement, session domain.Session) PlaceCardResponse {
	response := PlaceCardResponse{
		IsValid:       placement.Valid,
		GameFinished:  placement.Finished,
		DeckExhausted: placement.DeckExhausted,
		Player:        placement.Member.Nickname.Value(),
		Card:          ToCard(placement.Card),
		Position:      placement.Position,
		Timeline:      ToTimeline(placement.Member.Timeline),
	}
	var standings []domain.Standing
	if placement.Finished {
		standings = domain.Standings(session.Members)
		response.Standings = ToStandings(standings)
		if winner, ok := session.Winner(); ok && !placement.DeckExhausted {
			response.Winner = winner.Nickname.Value()
			h.orchestrator.Publish(event.GameWon{
				Code:      code,
				Winner:    winner,
				Card:      placement.Card,
				Position:  placement.Position,
				Standings: standings,
				At:        session.UpdatedAt,
			})
			return response
		}
	}

	placed := event.CardPlaced{
		Code:     code,
		Player:   placement.Member,
		Card:     placement.Card,
		Valid:    placement.Valid,
		Position: placement.Position,
		At:       session.UpdatedAt,
	}
	if session.Phase == domain.PhasePlaying {
		if current, ok := session.CurrentMember(); ok {
			placed.CurrentTurn = &current
			response.CurrentPlayer = current.Nickname.Value()
		}
		if session.ActiveCard != nil {
			next := *session.ActiveCard
			placed.NextCard = &next
			nextDTO := ToCard(next)
			response.NextCard = &nextDTO
		}
	}
	h.orchestrator.Publish(placed)

	if placement.DeckExhausted {
		h.orchestrator.Publish(event.GameEnded{
			Code:      code,
			Reason:    domain.ReasonDeckExhausted,
			Standings: standings,
			At:        session.UpdatedAt,
		})
	}
	return response
}
