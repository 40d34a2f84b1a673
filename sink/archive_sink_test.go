package sink_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"songster/domain"
	"songster/domain/event"
	"songster/mocks"
	"songster/sink"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestArchiveSink_Consume(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	code, err := domain.NewGameCode("ABCD1234")
	require.NoError(t, err)
	alice, err := domain.NewNickname("Alice")
	require.NoError(t, err)
	standings := []domain.Standing{{Nickname: "Alice", Cards: 10}, {Nickname: "Bob", Cards: 4}}

	t.Run("archives a won game", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockArchive := mocks.NewMockIGameArchive(ctrl)
		s := sink.NewArchiveSink(mockArchive, logger)

		mockArchive.EXPECT().Store(domain.GameRecord{
			Code:       "ABCD1234",
			Winner:     "Alice",
			Reason:     domain.ReasonWon,
			Standings:  standings,
			FinishedAt: at,
		}).Return(nil)

		req.NoError(s.Consume(ctx, event.GameWon{
			Code:      code,
			Winner:    domain.Member{Nickname: alice},
			Standings: standings,
			At:        at,
		}))
	})

	t.Run("archives games ended early only once they were playing", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockArchive := mocks.NewMockIGameArchive(ctrl)
		s := sink.NewArchiveSink(mockArchive, logger)

		var reasons []string
		mockArchive.EXPECT().
			Store(gomock.Any()).
			DoAndReturn(func(record domain.GameRecord) error {
				reasons = append(reasons, record.Reason)
				return nil
			}).
			Times(3)

		for _, evt := range []event.DomainEvent{
			event.GameEnded{Code: code, Reason: domain.ReasonDeckExhausted, At: at},
			event.PlayerLeft{Code: code, GameEnded: true, PreviousPhase: domain.PhasePlaying, At: at},
			event.PlayerLeft{Code: code, GameEnded: true, PreviousPhase: domain.PhaseLobby, At: at},
			event.PlayerLeft{Code: code, GameEnded: false, PreviousPhase: domain.PhasePlaying, At: at},
			event.SessionExpired{Code: code, Phase: domain.PhasePlaying, At: at},
			event.SessionExpired{Code: code, Phase: domain.PhaseLobby, At: at},
			event.CardPlaced{Code: code, At: at},
		} {
			req.NoError(s.Consume(ctx, evt))
		}

		req.Equal([]string{domain.ReasonDeckExhausted, domain.ReasonAbandoned, domain.ReasonExpired}, reasons)
	})

	t.Run("returns the archive failure", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockArchive := mocks.NewMockIGameArchive(ctrl)
		s := sink.NewArchiveSink(mockArchive, logger)

		mockArchive.EXPECT().Store(gomock.Any()).Return(fmt.Errorf("disk full"))

		req.Error(s.Consume(ctx, event.GameEnded{Code: code, Reason: domain.ReasonDeckExhausted}))
	})

	t.Run("skips the store once the context expired", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockArchive := mocks.NewMockIGameArchive(ctrl)
		s := sink.NewArchiveSink(mockArchive, logger)
		expired, cancel := context.WithCancel(ctx)
		cancel()

		mockArchive.EXPECT().Store(gomock.Any()).Times(0)

		req.ErrorIs(s.Consume(expired, event.GameEnded{Code: code}), context.Canceled)
	})
}
