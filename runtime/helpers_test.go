package runtime

import (
	"context"
	"songster/domain"
	"songster/domain/event"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type Sink struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (s *Sink) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *Sink) Events() []event.DomainEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.DomainEvent{}, s.events...)
}

func newConnectionID(t *testing.T) domain.ConnectionID {
	t.Helper()
	id, err := domain.NewConnectionID(uuid.NewString())
	require.NoError(t, err)
	return id
}

func mustCode(t *testing.T, raw string) domain.GameCode {
	t.Helper()
	code, err := domain.NewGameCode(raw)
	require.NoError(t, err)
	return code
}

func mustNickname(t *testing.T, raw string) domain.Nickname {
	t.Helper()
	nickname, err := domain.NewNickname(raw)
	require.NoError(t, err)
	return nickname
}

func mustPosition(t *testing.T, raw int) domain.Position {
	t.Helper()
	position, err := domain.NewPosition(raw)
	require.NoError(t, err)
	return position
}
