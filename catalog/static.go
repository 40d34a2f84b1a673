// Package catalog supplies the playable cards a game deck is built from.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"songster/domain"
	"songster/errors"
)

//go:embed deck.json
var embeddedDeck []byte

type cardJSON struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Year       int    `json:"year"`
	PreviewURL string `json:"previewUrl"`
}

// StaticProvider serves a fixed list of cards.
type StaticProvider struct {
	cards []domain.Card
}

// NewStaticProvider loads the deck embedded in the binary.
func NewStaticProvider() (*StaticProvider, error) {
	return ParseDeck(embeddedDeck)
}

// ParseDeck decodes a JSON array of cards. Cards without title or year are rejected.
func ParseDeck(data []byte) (*StaticProvider, error) {
	var raw []cardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unable to decode deck: %w", err)
	}
	cards := make([]domain.Card, 0, len(raw))
	for i, c := range raw {
		if c.Title == "" || c.Year <= 0 {
			return nil, fmt.Errorf("card %d (%q) has no title or year", i, c.ID)
		}
		cards = append(cards, domain.Card{
			ID:         c.ID,
			Title:      c.Title,
			Artist:     c.Artist,
			Year:       c.Year,
			PreviewURL: c.PreviewURL,
		})
	}
	if len(cards) == 0 {
		return nil, errors.ErrEmptyCatalog
	}
	return &StaticProvider{cards: cards}, nil
}

func NewStaticProviderFrom(cards []domain.Card) *StaticProvider {
	return &StaticProvider{cards: slices.Clone(cards)}
}

// Cards returns a copy; callers are free to shuffle it.
func (p *StaticProvider) Cards(_ context.Context) ([]domain.Card, error) {
	return slices.Clone(p.cards), nil
}
