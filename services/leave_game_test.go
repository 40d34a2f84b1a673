package services

import (
	"io"
	"log/slog"
	"songster/contract"
	"songster/domain"
	"songster/domain/event"
	"songster/errors"
	"songster/mocks"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// removeMember expects one removal which hands departure to the hook.
func removeMember(engine *mocks.MockIEngine, connectionID any, departure domain.Departure) {
	engine.EXPECT().
		RemoveMember(connectionID, gomock.Any()).
		DoAndReturn(func(_ domain.ConnectionID, hook contract.DepartureHook) (domain.Departure, bool) {
			hook(departure)
			return departure, true
		})
}

func TestLeaveGameHandler_Handle(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("should notify the remaining members", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockEngine := mocks.NewMockIEngine(ctrl)
		mockOrchestrator := mocks.NewMockIOrchestrator(ctrl)
		handler := NewLeaveGameHandler(logger, mockEngine, mockOrchestrator)
		session := lobby(t, "ABCD1234", "Bob")

		removeMember(mockEngine, mustConn(t, "Bob"), domain.Departure{
			Code:          session.Code,
			Member:        session.Members[1],
			PreviousPhase: domain.PhaseLobby,
			Remaining:     session.Members[:1],
		})
		gomock.InOrder(
			mockOrchestrator.EXPECT().UnregisterParticipant(mustConn(t, "Bob"), session.Code),
			mockOrchestrator.EXPECT().
				Publish(gomock.Any()).
				Do(func(evt event.DomainEvent) {
					left, ok := evt.(event.PlayerLeft)
					req.True(ok)
					req.False(left.GameEnded)
					req.Nil(left.Standings)
					req.Equal("Bob", left.Nickname.Value())
				}),
		)

		resp, err := handler.Handle(domain.LeaveGameCommand{ConnectionID: "Bob"})

		req.NoError(err)
		req.False(resp.GameEnded)
		req.Equal([]PlayerDTO{{Nickname: "Alice", IsHost: true}}, resp.Players)
	})

	t.Run("should close the game with standings when the host leaves", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockEngine := mocks.NewMockIEngine(ctrl)
		mockOrchestrator := mocks.NewMockIOrchestrator(ctrl)
		handler := NewLeaveGameHandler(logger, mockEngine, mockOrchestrator)
		session := lobby(t, "ABCD1234", "Bob")
		bob := session.Members[1]
		bob.Timeline = []domain.Card{{ID: "1", Year: 1990}}

		removeMember(mockEngine, gomock.Any(), domain.Departure{
			Code:          session.Code,
			Member:        session.Members[0],
			PreviousPhase: domain.PhasePlaying,
			SessionEnded:  true,
			Remaining:     []domain.Member{bob},
		})
		mockOrchestrator.EXPECT().UnregisterParticipant(gomock.Any(), gomock.Any())
		mockOrchestrator.EXPECT().
			Publish(gomock.Any()).
			Do(func(evt event.DomainEvent) {
				left := evt.(event.PlayerLeft)
				req.True(left.GameEnded)
				req.Equal([]domain.Standing{{Nickname: "Bob", Cards: 1}, {Nickname: "Alice", Cards: 0}}, left.Standings)
				req.True(event.ClosesGroup(left))
			})

		resp, err := handler.Handle(domain.LeaveGameCommand{ConnectionID: "host"})

		req.NoError(err)
		req.True(resp.GameEnded)
	})

	t.Run("should report a connection outside any game", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockEngine := mocks.NewMockIEngine(ctrl)
		mockOrchestrator := mocks.NewMockIOrchestrator(ctrl)
		handler := NewLeaveGameHandler(logger, mockEngine, mockOrchestrator)

		mockEngine.EXPECT().RemoveMember(gomock.Any(), gomock.Any()).Return(domain.Departure{}, false)
		mockOrchestrator.EXPECT().Publish(gomock.Any()).Times(0)

		_, err := handler.Handle(domain.LeaveGameCommand{ConnectionID: "nobody"})

		req.ErrorIs(err, errors.ErrNotFound)
	})
}
