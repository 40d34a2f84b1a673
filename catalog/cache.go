package catalog

import (
	"context"
	"log/slog"
	"slices"
	"songster/contract"
	"songster/domain"
	"sync"
	"time"
)

// CachedProvider memoises a successful fetch for ttl. When a refresh fails
// the last good deck is served instead.
type CachedProvider struct {
	mu        sync.Mutex
	log       *slog.Logger
	source    contract.ICatalogProvider
	ttl       time.Duration
	cards     []domain.Card
	fetchedAt time.Time
	now       func() time.Time
}

func NewCachedProvider(log *slog.Logger, source contract.ICatalogProvider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		log:    log,
		source: source,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (p *CachedProvider) Cards(ctx context.Context) ([]domain.Card, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cards != nil && p.now().Sub(p.fetchedAt) < p.ttl {
		return slices.Clone(p.cards), nil
	}

	cards, err := p.source.Cards(ctx)
	if err != nil {
		if p.cards != nil {
			p.log.Warn("Catalog refresh failed, serving last known deck",
				"error", err, "age", p.now().Sub(p.fetchedAt), "cards", len(p.cards))
			return slices.Clone(p.cards), nil
		}
		return nil, err
	}

	p.cards = slices.Clone(cards)
	p.fetchedAt = p.now()
	p.log.Debug("Catalog refreshed", "cards", len(cards))
	return cards, nil
}
