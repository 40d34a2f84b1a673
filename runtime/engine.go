// Package runtime handles event production, propagation and session ownership.
// It orchestrates the system without containing game rules: those live in domain.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"songster/contract"
	"songster/domain"
	"songster/errors"
	"sync"
	"time"
)

// sessionEntry serialises every mutation of one session.
// closed is set under mu when the session is destroyed so that callers
// which looked the entry up before destruction observe NotFound.
type sessionEntry struct {
	mu      sync.Mutex
	session *domain.Session
	closed  bool
}

// Engine owns every live session.
// Lock order is always entry.mu then Engine.mu, never the reverse.
type Engine struct {
	mu          sync.RWMutex
	sessions    map[domain.GameCode]*sessionEntry
	connections map[domain.ConnectionID]domain.GameCode
	maxSessions int
	catalog     contract.ICatalogProvider
	rngMu       sync.Mutex
	rng         *rand.Rand
	now         func() time.Time
	log         *slog.Logger
}

func NewEngine(log *slog.Logger, catalog contract.ICatalogProvider, maxSessions int) *Engine {
	if maxSessions < 1 {
		maxSessions = 1
	}
	return &Engine{
		sessions:    make(map[domain.GameCode]*sessionEntry),
		connections: make(map[domain.ConnectionID]domain.GameCode),
		maxSessions: maxSessions,
		catalog:     catalog,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		now:         func() time.Time { return time.Now().UTC() },
		log:         log,
	}
}

func notFound(code domain.GameCode) error {
	return errors.NotFound("Game with code '%s' not found.", code)
}

func (e *Engine) shuffle(cards []domain.Card) {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	e.rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

func (e *Engine) newCode() domain.GameCode {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	for {
		code := domain.GenerateGameCode(e.rng)
		if _, taken := e.sessions[code]; !taken {
			return code
		}
	}
}

func (e *Engine) entry(code domain.GameCode) (*sessionEntry, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	entry, ok := e.sessions[code]
	return entry, ok
}

// CreateSession registers a new lobby hosted by the caller.
func (e *Engine) CreateSession(connectionID domain.ConnectionID, nickname domain.Nickname, hook contract.SessionHook) (domain.Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.connections[connectionID]; ok {
		return domain.Session{}, errors.Conflict("This connection is already part of a game.")
	}
	if len(e.sessions) >= e.maxSessions {
		if e.maxSessions == 1 {
			return domain.Session{}, errors.Conflict("A game already exists. Only one game at a time is supported.")
		}
		return domain.Session{}, errors.Conflict("Maximum number of concurrent games (%d) reached.", e.maxSessions)
	}

	code := e.newCode()
	session := domain.NewSession(code, connectionID, nickname, e.now())
	e.sessions[code] = &sessionEntry{session: session}
	e.connections[connectionID] = code

	e.log.Info("Game created", "game_code", code.Value(), "host", nickname.Value())
	// The new entry stays unreachable until e.mu is released.
	return commit(session, hook), nil
}

// commit snapshots the session and hands the snapshot to the hook.
// No other caller may reach the session while it runs.
func commit(session *domain.Session, hook contract.SessionHook) domain.Session {
	snapshot := session.Clone()
	if hook != nil {
		hook(snapshot)
	}
	return snapshot
}

// Session returns a deep copy of the session, if it is still alive.
func (e *Engine) Session(code domain.GameCode) (domain.Session, bool) {
	entry, ok := e.entry(code)
	if !ok {
		return domain.Session{}, false
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.closed {
		return domain.Session{}, false
	}
	return entry.session.Clone(), true
}

// SessionOf returns the code of the session the connection belongs to.
func (e *Engine) SessionOf(connectionID domain.ConnectionID) (domain.GameCode, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	code, ok := e.connections[connectionID]
	return code, ok
}

func (e *Engine) JoinSession(code domain.GameCode, connectionID domain.ConnectionID, nickname domain.Nickname,
	hook contract.SessionHook) (domain.Session, error) {
	entry, ok := e.entry(code)
	if !ok {
		return domain.Session{}, notFound(code)
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.closed {
		return domain.Session{}, notFound(code)
	}
	if err := e.join(code, entry.session, connectionID, nickname); err != nil {
		return domain.Session{}, err
	}

	e.log.Info("Player joined", "game_code", code.Value(), "nickname", nickname.Value(),
		"players", len(entry.session.Members))
	return commit(entry.session, hook), nil
}

func (e *Engine) join(code domain.GameCode, session *domain.Session, connectionID domain.ConnectionID, nickname domain.Nickname) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if other, ok := e.connections[connectionID]; ok && other != code {
		return errors.Conflict("This connection is already part of a game.")
	}
	if err := session.Join(connectionID, nickname, e.now()); err != nil {
		return err
	}
	e.connections[connectionID] = code
	return nil
}

// StartSession fetches the catalog before locking the session, so a slow
// catalog never blocks placements or joins of other sessions.
func (e *Engine) StartSession(ctx context.Context, code domain.GameCode, hook contract.SessionHook) (domain.Session, error) {
	if _, ok := e.entry(code); !ok {
		return domain.Session{}, notFound(code)
	}

	cards, err := e.catalog.Cards(ctx)
	if err != nil {
		e.log.Error("Unable to load the music catalog", "game_code", code.Value(), "error", err)
		return domain.Session{}, errors.BusinessRule("The music catalog is unavailable, try again later.")
	}

	entry, ok := e.entry(code)
	if !ok {
		return domain.Session{}, notFound(code)
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.closed {
		return domain.Session{}, notFound(code)
	}
	if err := entry.session.Start(cards, e.shuffle, e.now()); err != nil {
		return domain.Session{}, err
	}

	e.log.Info("Game started", "game_code", code.Value(), "deck_size", len(cards),
		"players", len(entry.session.Members))
	return commit(entry.session, hook), nil
}

func (e *Engine) PlaceCard(code domain.GameCode, connectionID domain.ConnectionID, position domain.Position,
	hook contract.PlacementHook) (domain.Placement, error) {
	entry, ok := e.entry(code)
	if !ok {
		return domain.Placement{}, notFound(code)
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.closed {
		return domain.Placement{}, notFound(code)
	}

	placement, err := entry.session.Place(connectionID, position, e.shuffle, e.now())
	if err != nil {
		return domain.Placement{}, err
	}
	e.log.Debug("Card placed", "game_code", code.Value(), "nickname", placement.Member.Nickname.Value(),
		"title", placement.Card.Title, "year", placement.Card.Year,
		"position", placement.Position, "valid", placement.Valid)
	if placement.Finished {
		e.log.Info("Game finished", "game_code", code.Value(), "deck_exhausted", placement.DeckExhausted)
	}
	if hook != nil {
		hook(placement, entry.session.Clone())
	}
	return placement, nil
}

// Winner returns the first member, in turn order, with a winning timeline.
func (e *Engine) Winner(code domain.GameCode) (domain.Member, bool) {
	entry, ok := e.entry(code)
	if !ok {
		return domain.Member{}, false
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.closed {
		return domain.Member{}, false
	}
	return entry.session.Winner()
}

// RemoveMember drops the connection from its session. The session is
// destroyed when the host or the last member leaves.
func (e *Engine) RemoveMember(connectionID domain.ConnectionID, hook contract.DepartureHook) (domain.Departure, bool) {
	code, ok := e.SessionOf(connectionID)
	if !ok {
		return domain.Departure{}, false
	}
	entry, ok := e.entry(code)
	if !ok {
		return domain.Departure{}, false
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.closed {
		return domain.Departure{}, false
	}

	departure, ok := e.remove(code, entry, connectionID)
	if !ok {
		return domain.Departure{}, false
	}
	if hook != nil {
		hook(departure)
	}
	return departure, true
}

func (e *Engine) remove(code domain.GameCode, entry *sessionEntry, connectionID domain.ConnectionID) (domain.Departure, bool) {
	departure, ok := entry.session.Remove(connectionID, e.now())

	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.connections, connectionID)
	if !ok {
		return domain.Departure{}, false
	}
	if departure.SessionEnded {
		e.destroy(code, entry)
		e.log.Info("Game closed", "game_code", code.Value(), "reason", fmt.Sprintf("%s left", departure.Member.Nickname))
	}
	return departure, true
}

// ExpireIdle destroys sessions which have not changed for ttl and returns
// their last state.
func (e *Engine) ExpireIdle(now time.Time, ttl time.Duration) []domain.Session {
	e.mu.RLock()
	entries := make(map[domain.GameCode]*sessionEntry, len(e.sessions))
	for code, entry := range e.sessions {
		entries[code] = entry
	}
	e.mu.RUnlock()

	var expired []domain.Session
	for code, entry := range entries {
		entry.mu.Lock()
		if !entry.closed && now.Sub(entry.session.UpdatedAt) >= ttl {
			expired = append(expired, entry.session.Clone())
			e.mu.Lock()
			e.destroy(code, entry)
			e.mu.Unlock()
			e.log.Info("Game expired", "game_code", code.Value(), "idle", now.Sub(entry.session.UpdatedAt))
		}
		entry.mu.Unlock()
	}
	return expired
}

// Count returns the number of live sessions.
func (e *Engine) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.sessions)
}

// destroy must be called with entry.mu and e.mu held.
func (e *Engine) destroy(code domain.GameCode, entry *sessionEntry) {
	entry.closed = true
	delete(e.sessions, code)
	for _, m := range entry.session.Members {
		if e.connections[m.ConnectionID] == code {
			delete(e.connections, m.ConnectionID)
		}
	}
}
