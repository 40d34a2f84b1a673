package services

import (
	"songster/domain"

	"github.com/samber/lo"
)

type PlayerDTO struct {
	Nickname string `json:"nickname"`
	IsHost   bool   `json:"isHost"`
}

type CardDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Year       int    `json:"year"`
	PreviewURL string `json:"previewUrl,omitempty"`
}

type StandingDTO struct {
	Nickname string `json:"nickname"`
	Cards    int    `json:"cards"`
}

func ToPlayers(members []domain.Member) []PlayerDTO {
	return lo.Map(members, func(m domain.Member, _ int) PlayerDTO {
		return PlayerDTO{Nickname: m.Nickname.Value(), IsHost: m.IsHost}
	})
}

func ToCard(card domain.Card) CardDTO {
	return CardDTO{
		ID:         card.ID,
		Title:      card.Title,
		Artist:     card.Artist,
		Year:       card.Year,
		PreviewURL: card.PreviewURL,
	}
}

func ToTimeline(cards []domain.Card) []CardDTO {
	return lo.Map(cards, func(c domain.Card, _ int) CardDTO { return ToCard(c) })
}

func ToStandings(standings []domain.Standing) []StandingDTO {
	return lo.Map(standings, func(s domain.Standing, _ int) StandingDTO {
		return StandingDTO{Nickname: s.Nickname, Cards: s.Cards}
	})
}
