package domain

// Session state machine. A Session is not safe for concurrent use;
// runtime.Engine serialises access to it.

import (
	"slices"
	"songster/errors"
	"time"
)

// Phase represents the lifecycle stage of a session.
type Phase string

const (
	// PhaseLobby accepts joins and waits for the host to start.
	PhaseLobby Phase = "lobby"
	// PhasePlaying accepts one placement per turn.
	PhasePlaying Phase = "playing"
	// PhaseFinished is terminal.
	PhaseFinished Phase = "finished"
)

const (
	MaxMembers            = 4
	MinMembersToStart     = 2
	WinningTimelineLength = 10
)

// Shuffler reorders cards in place.
type Shuffler func(cards []Card)

// Member is a connected player. Members are ordered by join order, which is also turn order.
type Member struct {
	ConnectionID ConnectionID
	Nickname     Nickname
	Timeline     []Card
	IsHost       bool
}

// Session is one game instance.
type Session struct {
	Code       GameCode
	Members    []Member
	Deck       []Card
	Discard    []Card
	ActiveCard *Card
	TurnIndex  int
	Phase      Phase
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Placement is the outcome of a placement attempt.
// An invalid placement is a normal outcome, not an error.
type Placement struct {
	Valid         bool
	Position      int
	Card          Card
	Member        Member
	Finished      bool
	DeckExhausted bool
}

// Departure describes a member leaving a session.
type Departure struct {
	Code          GameCode
	Member        Member
	PreviousPhase Phase
	SessionEnded  bool
	Remaining     []Member
}

func NewSession(code GameCode, host ConnectionID, nickname Nickname, now time.Time) *Session {
	return &Session{
		Code: code,
		Members: []Member{{
			ConnectionID: host,
			Nickname:     nickname,
			IsHost:       true,
		}},
		Phase:     PhaseLobby,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Session) memberIndex(id ConnectionID) int {
	return slices.IndexFunc(s.Members, func(m Member) bool { return m.ConnectionID == id })
}

// Member returns a copy of the member owning the connection.
func (s *Session) Member(id ConnectionID) (Member, bool) {
	idx := s.memberIndex(id)
	if idx < 0 {
		return Member{}, false
	}
	return s.Members[idx].clone(), true
}

func (s *Session) Host() (Member, bool) {
	idx := slices.IndexFunc(s.Members, func(m Member) bool { return m.IsHost })
	if idx < 0 {
		return Member{}, false
	}
	return s.Members[idx].clone(), true
}

// CurrentMember returns the member whose turn it is.
func (s *Session) CurrentMember() (Member, bool) {
	if s.TurnIndex < 0 || s.TurnIndex >= len(s.Members) {
		return Member{}, false
	}
	return s.Members[s.TurnIndex].clone(), true
}

func (s *Session) HasNickname(nickname Nickname) bool {
	return slices.ContainsFunc(s.Members, func(m Member) bool { return m.Nickname.EqualFold(nickname) })
}

// Winner returns the first member, in turn order, holding a winning timeline.
func (s *Session) Winner() (Member, bool) {
	idx := slices.IndexFunc(s.Members, func(m Member) bool { return len(m.Timeline) >= WinningTimelineLength })
	if idx < 0 {
		return Member{}, false
	}
	return s.Members[idx].clone(), true
}

// Join appends a non-host member.
func (s *Session) Join(id ConnectionID, nickname Nickname, now time.Time) error {
	if s.Phase != PhaseLobby {
		return errors.BusinessRule("Cannot join a game that has already started.")
	}
	if len(s.Members) >= MaxMembers {
		return errors.BusinessRule("Game is full. Maximum %d players allowed.", MaxMembers)
	}
	if s.memberIndex(id) >= 0 {
		return errors.Conflict("This connection has already joined the game.")
	}
	if s.HasNickname(nickname) {
		return errors.Conflict("A player with nickname '%s' already exists in this game.", nickname)
	}
	s.Members = append(s.Members, Member{ConnectionID: id, Nickname: nickname})
	s.UpdatedAt = now
	return nil
}

// Start shuffles the deck, moves to PhasePlaying and draws the first card.
func (s *Session) Start(cards []Card, shuffle Shuffler, now time.Time) error {
	if s.Phase != PhaseLobby {
		return errors.BusinessRule("Game has already been started.")
	}
	if len(s.Members) < MinMembersToStart {
		return errors.BusinessRule("At least %d players are required to start the game.", MinMembersToStart)
	}
	if len(cards) == 0 {
		return errors.BusinessRule("The music catalog has no playable cards.")
	}
	s.Deck = slices.Clone(cards)
	shuffle(s.Deck)
	s.Discard = nil
	s.TurnIndex = 0
	s.Phase = PhasePlaying
	s.draw(shuffle)
	s.UpdatedAt = now
	return nil
}

// Place attempts to insert the active card into the caller's timeline.
// A winning placement finishes the game without advancing the turn. Any other
// outcome, valid or not, passes the turn to the next member with a fresh card.
func (s *Session) Place(id ConnectionID, position Position, shuffle Shuffler, now time.Time) (Placement, error) {
	if s.Phase != PhasePlaying {
		return Placement{}, errors.BusinessRule("Game is not in playing state.")
	}
	if s.ActiveCard == nil {
		return Placement{}, errors.BusinessRule("No card is currently drawn.")
	}
	idx := s.memberIndex(id)
	if idx < 0 {
		return Placement{}, errors.NotFound("Player not found in game.")
	}
	if idx != s.TurnIndex {
		return Placement{}, errors.BusinessRule("It is not your turn.")
	}
	timeline := s.Members[idx].Timeline
	pos := position.Value()
	if pos > len(timeline) {
		return Placement{}, errors.BusinessRule("Position %d is out of range. Timeline length is %d.", pos, len(timeline))
	}

	card := *s.ActiveCard
	placement := Placement{
		Valid:    ValidatePlacement(timeline, card, pos),
		Position: pos,
		Card:     card,
	}
	s.UpdatedAt = now

	if placement.Valid {
		s.Members[idx].Timeline = insertCard(timeline, pos, card)
		if len(s.Members[idx].Timeline) >= WinningTimelineLength {
			s.Phase = PhaseFinished
			s.ActiveCard = nil
			placement.Finished = true
			placement.Member = s.Members[idx].clone()
			return placement, nil
		}
	} else {
		s.Discard = append(s.Discard, card)
	}

	s.ActiveCard = nil
	s.TurnIndex = (s.TurnIndex + 1) % len(s.Members)
	if !s.draw(shuffle) {
		s.Phase = PhaseFinished
		placement.Finished = true
		placement.DeckExhausted = true
	}
	placement.Member = s.Members[idx].clone()
	return placement, nil
}

// draw moves the front of the deck into the active slot. An empty deck is
// refilled from the shuffled discard pile; false means nothing is left to draw.
func (s *Session) draw(shuffle Shuffler) bool {
	if len(s.Deck) == 0 && len(s.Discard) > 0 {
		s.Deck, s.Discard = s.Discard, nil
		shuffle(s.Deck)
	}
	if len(s.Deck) == 0 {
		s.ActiveCard = nil
		return false
	}
	card := s.Deck[0]
	s.Deck = s.Deck[1:]
	s.ActiveCard = &card
	return true
}

// Remove drops the member owning the connection. The session ends when the
// host leaves or nobody is left.
func (s *Session) Remove(id ConnectionID, now time.Time) (Departure, bool) {
	idx := s.memberIndex(id)
	if idx < 0 {
		return Departure{}, false
	}
	member := s.Members[idx]
	previous := s.Phase
	s.Members = slices.Delete(s.Members, idx, idx+1)
	s.UpdatedAt = now

	ended := member.IsHost || len(s.Members) == 0
	if ended {
		s.Phase = PhaseFinished
		s.ActiveCard = nil
		s.TurnIndex = 0
	} else {
		if idx < s.TurnIndex {
			s.TurnIndex--
		}
		if s.TurnIndex >= len(s.Members) {
			s.TurnIndex = 0
		}
	}

	return Departure{
		Code:          s.Code,
		Member:        member.clone(),
		PreviousPhase: previous,
		SessionEnded:  ended,
		Remaining:     cloneMembers(s.Members),
	}, true
}

// Clone returns a deep copy safe to hand out of the engine.
func (s *Session) Clone() Session {
	out := *s
	out.Members = cloneMembers(s.Members)
	out.Deck = slices.Clone(s.Deck)
	out.Discard = slices.Clone(s.Discard)
	if s.ActiveCard != nil {
		card := *s.ActiveCard
		out.ActiveCard = &card
	}
	return out
}

func (m Member) clone() Member {
	m.Timeline = slices.Clone(m.Timeline)
	return m
}

func cloneMembers(members []Member) []Member {
	out := make([]Member, len(members))
	for i, m := range members {
		out[i] = m.clone()
	}
	return out
}
