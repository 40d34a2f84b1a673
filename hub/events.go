package hub

import (
	"encoding/json"
	"songster/domain"
	"songster/domain/event"
	"songster/services"
)

type playerJoinedPayload struct {
	GameCode string               `json:"gameCode"`
	Player   services.PlayerDTO   `json:"player"`
	Players  []services.PlayerDTO `json:"players"`
}

type gameStartedPayload struct {
	GameCode    string               `json:"gameCode"`
	CurrentTurn string               `json:"currentTurn"`
	Card        services.CardDTO     `json:"card"`
	Players     []services.PlayerDTO `json:"players"`
}

type cardPlacedPayload struct {
	GameCode    string             `json:"gameCode"`
	Player      string             `json:"player"`
	Card        services.CardDTO   `json:"card"`
	IsValid     bool               `json:"isValid"`
	Position    int                `json:"position"`
	Timeline    []services.CardDTO `json:"timeline"`
	CurrentTurn string             `json:"currentTurn,omitempty"`
	NextCard    *services.CardDTO  `json:"nextCard,omitempty"`
}

type gameWonPayload struct {
	GameCode  string                 `json:"gameCode"`
	Winner    string                 `json:"winner"`
	Timeline  []services.CardDTO     `json:"timeline"`
	Standings []services.StandingDTO `json:"standings"`
}

type gameEndedPayload struct {
	GameCode  string                 `json:"gameCode"`
	Reason    string                 `json:"reason"`
	Standings []services.StandingDTO `json:"standings"`
}

type playerLeftPayload struct {
	GameCode  string                 `json:"gameCode"`
	Nickname  string                 `json:"nickname"`
	GameEnded bool                   `json:"gameEnded"`
	Players   []services.PlayerDTO   `json:"players"`
	Standings []services.StandingDTO `json:"standings,omitempty"`
}

type sessionExpiredPayload struct {
	GameCode  string                 `json:"gameCode"`
	Standings []services.StandingDTO `json:"standings,omitempty"`
}

// toFrame maps a domain event to the frame broadcast to the session group.
// GameCreated has no broadcast: the host already got its Result.
func toFrame(evt event.DomainEvent) (Frame, bool) {
	code := evt.SessionCode().Value()
	switch e := evt.(type) {
	case event.PlayerJoined:
		return broadcast(FramePlayerJoined, playerJoinedPayload{
			GameCode: code,
			Player:   toPlayer(e.Player),
			Players:  services.ToPlayers(e.Players),
		}), true
	case event.GameStarted:
		return broadcast(FrameGameStarted, gameStartedPayload{
			GameCode:    code,
			CurrentTurn: e.CurrentTurn.Nickname.Value(),
			Card:        services.ToCard(e.Card),
			Players:     services.ToPlayers(e.Players),
		}), true
	case event.CardPlaced:
		payload := cardPlacedPayload{
			GameCode: code,
			Player:   e.Player.Nickname.Value(),
			Card:     services.ToCard(e.Card),
			IsValid:  e.Valid,
			Position: e.Position,
			Timeline: services.ToTimeline(e.Player.Timeline),
		}
		if e.CurrentTurn != nil {
			payload.CurrentTurn = e.CurrentTurn.Nickname.Value()
		}
		if e.NextCard != nil {
			next := services.ToCard(*e.NextCard)
			payload.NextCard = &next
		}
		return broadcast(FrameCardPlaced, payload), true
	case event.GameWon:
		return broadcast(FrameGameWon, gameWonPayload{
			GameCode:  code,
			Winner:    e.Winner.Nickname.Value(),
			Timeline:  services.ToTimeline(e.Winner.Timeline),
			Standings: services.ToStandings(e.Standings),
		}), true
	case event.GameEnded:
		return broadcast(FrameGameEnded, gameEndedPayload{
			GameCode:  code,
			Reason:    e.Reason,
			Standings: services.ToStandings(e.Standings),
		}), true
	case event.PlayerLeft:
		return broadcast(FramePlayerLeft, playerLeftPayload{
			GameCode:  code,
			Nickname:  e.Nickname.Value(),
			GameEnded: e.GameEnded,
			Players:   services.ToPlayers(e.Players),
			Standings: services.ToStandings(e.Standings),
		}), true
	case event.SessionExpired:
		return broadcast(FrameSessionExpired, sessionExpiredPayload{
			GameCode:  code,
			Standings: services.ToStandings(e.Standings),
		}), true
	default:
		return Frame{}, false
	}
}

func toPlayer(m domain.Member) services.PlayerDTO {
	return services.PlayerDTO{Nickname: m.Nickname.Value(), IsHost: m.IsHost}
}

func broadcast(frameType string, payload any) Frame {
	return Frame{Type: frameType, Payload: mustJSON(payload)}
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
