// Package projection builds read models from observed domain events.
// It never mutates sessions and never emits events.
package projection

import (
	"context"
	"slices"
	"songster/domain"
	"songster/domain/event"
	"strings"
	"sync"
	"time"
)

// PlayerView is one member as seen by an observer of the game.
type PlayerView struct {
	Nickname string `json:"nickname"`
	IsHost   bool   `json:"isHost"`
	Cards    int    `json:"cards"`
}

// GameView is the observable state of a live game.
type GameView struct {
	Code        string       `json:"gameCode"`
	Phase       domain.Phase `json:"phase"`
	Players     []PlayerView `json:"players"`
	CurrentTurn string       `json:"currentTurn,omitempty"`
	Placements  int          `json:"placements"`
	Winner      string       `json:"winner,omitempty"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Board keeps a GameView per live game. It is registered as a permanent
// sink so it sees every event, whatever the session.
type Board struct {
	mu    sync.RWMutex
	games map[string]*GameView
}

func NewBoard() *Board {
	return &Board{games: make(map[string]*GameView)}
}

func (b *Board) Consume(_ context.Context, e event.DomainEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	code := e.SessionCode().Value()
	switch evt := e.(type) {
	case event.GameCreated:
		b.games[code] = &GameView{
			Code:    code,
			Phase:   domain.PhaseLobby,
			Players: toPlayers([]domain.Member{evt.Host}),
		}
	case event.PlayerJoined:
		if view, ok := b.games[code]; ok {
			view.Players = toPlayers(evt.Players)
		}
	case event.GameStarted:
		if view, ok := b.games[code]; ok {
			view.Phase = domain.PhasePlaying
			view.Players = toPlayers(evt.Players)
			view.CurrentTurn = evt.CurrentTurn.Nickname.Value()
		}
	case event.CardPlaced:
		if view, ok := b.games[code]; ok {
			view.Placements++
			setCards(view, evt.Player.Nickname.Value(), len(evt.Player.Timeline))
			view.CurrentTurn = ""
			if evt.CurrentTurn != nil {
				view.CurrentTurn = evt.CurrentTurn.Nickname.Value()
			}
		}
	case event.GameWon:
		if view, ok := b.games[code]; ok {
			view.Phase = domain.PhaseFinished
			view.Placements++
			setCards(view, evt.Winner.Nickname.Value(), len(evt.Winner.Timeline))
			view.Winner = evt.Winner.Nickname.Value()
			view.CurrentTurn = ""
		}
	case event.GameEnded:
		if view, ok := b.games[code]; ok {
			view.Phase = domain.PhaseFinished
			view.CurrentTurn = ""
		}
	case event.PlayerLeft:
		if evt.GameEnded {
			delete(b.games, code)
			return nil
		}
		if view, ok := b.games[code]; ok {
			view.Players = slices.DeleteFunc(view.Players, func(p PlayerView) bool {
				return p.Nickname == evt.Nickname.Value()
			})
		}
	case event.SessionExpired:
		delete(b.games, code)
		return nil
	}

	if view, ok := b.games[code]; ok {
		view.UpdatedAt = e.OccurredAt()
	}
	return nil
}

// Games returns a copy of every live game, ordered by code.
func (b *Board) Games() []GameView {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]GameView, 0, len(b.games))
	for _, view := range b.games {
		game := *view
		game.Players = slices.Clone(view.Players)
		out = append(out, game)
	}
	slices.SortFunc(out, func(a, b GameView) int { return strings.Compare(a.Code, b.Code) })
	return out
}

func toPlayers(members []domain.Member) []PlayerView {
	out := make([]PlayerView, 0, len(members))
	for _, m := range members {
		out = append(out, PlayerView{Nickname: m.Nickname.Value(), IsHost: m.IsHost, Cards: len(m.Timeline)})
	}
	return out
}

func setCards(view *GameView, nickname string, cards int) {
	for i := range view.Players {
		if view.Players[i].Nickname == nickname {
			view.Players[i].Cards = cards
		}
	}
}
