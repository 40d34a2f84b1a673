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

func TestCreateGameHandler_Handle(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("should create a lobby and subscribe the host", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockEngine := mocks.NewMockIEngine(ctrl)
		mockOrchestrator := mocks.NewMockIOrchestrator(ctrl)
		handler := NewCreateGameHandler(logger, mockEngine, mockOrchestrator, nil)
		session := lobby(t, "ABCD1234")

		mockEngine.EXPECT().
			CreateSession(mustConn(t, "host"), mustNickname(t, "Alice"), gomock.Any()).
			DoAndReturn(func(_ domain.ConnectionID, _ domain.Nickname, hook contract.SessionHook) (domain.Session, error) {
				hook(session)
				return session, nil
			})
		gomock.InOrder(
			mockOrchestrator.EXPECT().RegisterParticipant(mustConn(t, "host"), session.Code),
			mockOrchestrator.EXPECT().
				Publish(gomock.Any()).
				Do(func(evt event.DomainEvent) {
					created, ok := evt.(event.GameCreated)
					req.True(ok)
					req.Equal("Alice", created.Host.Nickname.Value())
				}),
		)

		resp, err := handler.Handle(domain.CreateGameCommand{ConnectionID: "host", Nickname: " Alice "})

		req.NoError(err)
		req.Equal("ABCD1234", resp.GameCode)
		req.Equal([]PlayerDTO{{Nickname: "Alice", IsHost: true}}, resp.Players)
	})

	t.Run("should reject an invalid nickname before touching the engine", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockEngine := mocks.NewMockIEngine(ctrl)
		mockOrchestrator := mocks.NewMockIOrchestrator(ctrl)
		handler := NewCreateGameHandler(logger, mockEngine, mockOrchestrator, nil)

		mockEngine.EXPECT().CreateSession(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := handler.Handle(domain.CreateGameCommand{ConnectionID: "host", Nickname: "A"})

		req.ErrorIs(err, errors.ErrValidation)
		req.Equal("Nickname must be at least 2 characters", errors.Message(err))
	})

	t.Run("should reject a nickname refused by moderation", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockEngine := mocks.NewMockIEngine(ctrl)
		mockOrchestrator := mocks.NewMockIOrchestrator(ctrl)
		mockFilter := mocks.NewMockINicknameFilter(ctrl)
		handler := NewCreateGameHandler(logger, mockEngine, mockOrchestrator, mockFilter)

		mockFilter.EXPECT().Accepts("Badname").Return(false)
		mockEngine.EXPECT().CreateSession(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := handler.Handle(domain.CreateGameCommand{ConnectionID: "host", Nickname: "Badname"})

		req.ErrorIs(err, errors.ErrValidation)
		req.Equal("Nickname is not allowed.", errors.Message(err))
	})

	t.Run("should surface the single game conflict without publishing", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		mockEngine := mocks.NewMockIEngine(ctrl)
		mockOrchestrator := mocks.NewMockIOrchestrator(ctrl)
		handler := NewCreateGameHandler(logger, mockEngine, mockOrchestrator, nil)

		mockEngine.EXPECT().
			CreateSession(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.Session{}, errors.Conflict("A game already exists. Only one game at a time is supported."))
		mockOrchestrator.EXPECT().Publish(gomock.Any()).Times(0)
		mockOrchestrator.EXPECT().RegisterParticipant(gomock.Any(), gomock.Any()).Times(0)

		_, err := handler.Handle(domain.CreateGameCommand{ConnectionID: "other", Nickname: "Bob"})

		req.ErrorIs(err, errors.ErrConflict)
	})
}
