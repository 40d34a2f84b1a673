package services

import (
	"songster/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func mustCode(t *testing.T, raw string) domain.GameCode {
	t.Helper()
	code, err := domain.NewGameCode(raw)
	require.NoError(t, err)
	return code
}

func mustConn(t *testing.T, raw string) domain.ConnectionID {
	t.Helper()
	id, err := domain.NewConnectionID(raw)
	require.NoError(t, err)
	return id
}

func mustNickname(t *testing.T, raw string) domain.Nickname {
	t.Helper()
	nickname, err := domain.NewNickname(raw)
	require.NoError(t, err)
	return nickname
}

// lobby builds a session hosted by "host" (Alice) with one guest per nickname,
// each guest connecting as its nickname.
func lobby(t *testing.T, code string, guests ...string) domain.Session {
	t.Helper()
	s := domain.NewSession(mustCode(t, code), mustConn(t, "host"), mustNickname(t, "Alice"), now)
	for _, guest := range guests {
		require.NoError(t, s.Join(mustConn(t, guest), mustNickname(t, guest), now))
	}
	return s.Clone()
}
