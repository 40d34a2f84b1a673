package domain

import (
	"cmp"
	"slices"
	"time"
)

const (
	ReasonWon           = "won"
	ReasonDeckExhausted = "deck_exhausted"
	ReasonAbandoned     = "abandoned"
	ReasonExpired       = "expired"
)

// Standing is the score of one member at the end of a game.
type Standing struct {
	Nickname string
	Cards    int
}

// GameRecord is the archived summary of a finished game.
type GameRecord struct {
	Code       string
	Winner     string
	Reason     string
	Standings  []Standing
	FinishedAt time.Time
}

// Standings ranks members by timeline length, longest first. Ties keep turn order.
func Standings(members []Member) []Standing {
	out := make([]Standing, 0, len(members))
	for _, m := range members {
		out = append(out, Standing{Nickname: m.Nickname.Value(), Cards: len(m.Timeline)})
	}
	slices.SortStableFunc(out, func(a, b Standing) int {
		return cmp.Compare(b.Cards, a.Cards)
	})
	return out
}
