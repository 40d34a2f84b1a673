package event

import (
	"songster/domain"
	"time"
)

// DomainEvent is a fact about one session, fanned out to the session group
// and to the permanent sinks.
type DomainEvent interface {
	SessionCode() domain.GameCode
	OccurredAt() time.Time
}

type GameCreated struct {
	Code domain.GameCode
	Host domain.Member
	At   time.Time
}

func (e GameCreated) SessionCode() domain.GameCode { return e.Code }
func (e GameCreated) OccurredAt() time.Time        { return e.At }

type PlayerJoined struct {
	Code    domain.GameCode
	Player  domain.Member
	Players []domain.Member
	At      time.Time
}

func (e PlayerJoined) SessionCode() domain.GameCode { return e.Code }
func (e PlayerJoined) OccurredAt() time.Time        { return e.At }

type GameStarted struct {
	Code        domain.GameCode
	CurrentTurn domain.Member
	Card        domain.Card
	Players     []domain.Member
	At          time.Time
}

func (e GameStarted) SessionCode() domain.GameCode { return e.Code }
func (e GameStarted) OccurredAt() time.Time        { return e.At }

// CardPlaced is published for every placement except the winning one,
// which is announced by GameWon. NextCard and CurrentTurn are empty once the
// game is over.
type CardPlaced struct {
	Code        domain.GameCode
	Player      domain.Member
	Card        domain.Card
	Valid       bool
	Position    int
	CurrentTurn *domain.Member
	NextCard    *domain.Card
	At          time.Time
}

func (e CardPlaced) SessionCode() domain.GameCode { return e.Code }
func (e CardPlaced) OccurredAt() time.Time        { return e.At }

// GameWon carries the winning placement: Card landed at Position in the
// winner's timeline.
type GameWon struct {
	Code      domain.GameCode
	Winner    domain.Member
	Card      domain.Card
	Position  int
	Standings []domain.Standing
	At        time.Time
}

func (e GameWon) SessionCode() domain.GameCode { return e.Code }
func (e GameWon) OccurredAt() time.Time        { return e.At }

// GameEnded closes a game that finished without a winner.
type GameEnded struct {
	Code      domain.GameCode
	Reason    string
	Standings []domain.Standing
	At        time.Time
}

func (e GameEnded) SessionCode() domain.GameCode { return e.Code }
func (e GameEnded) OccurredAt() time.Time        { return e.At }

// PlayerLeft is published after a disconnect. GameEnded is set when the
// departure destroyed the session.
type PlayerLeft struct {
	Code          domain.GameCode
	ConnectionID  domain.ConnectionID
	Nickname      domain.Nickname
	PreviousPhase domain.Phase
	GameEnded     bool
	Players       []domain.Member
	Standings     []domain.Standing
	At            time.Time
}

func (e PlayerLeft) SessionCode() domain.GameCode { return e.Code }
func (e PlayerLeft) OccurredAt() time.Time        { return e.At }

type SessionExpired struct {
	Code      domain.GameCode
	Phase     domain.Phase
	Members   []domain.Member
	Standings []domain.Standing
	At        time.Time
}

func (e SessionExpired) SessionCode() domain.GameCode { return e.Code }
func (e SessionExpired) OccurredAt() time.Time        { return e.At }

// ClosesGroup reports whether no further event will be published for the session.
func ClosesGroup(e DomainEvent) bool {
	switch evt := e.(type) {
	case PlayerLeft:
		return evt.GameEnded
	case SessionExpired:
		return true
	default:
		return false
	}
}
