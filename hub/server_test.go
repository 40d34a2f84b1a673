package hub_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"songster/catalog"
	"songster/domain"
	"songster/hub"
	"songster/runtime"
	"songster/runtime/workers"
	"songster/services"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

const testOrigin = "http://localhost:5173"

type resultPayload struct {
	Type         string               `json:"$type"`
	Success      bool                 `json:"success"`
	Message      string               `json:"message"`
	GameCode     string               `json:"gameCode"`
	Players      []services.PlayerDTO `json:"players"`
	IsValid      bool                 `json:"isValid"`
	GameFinished bool                 `json:"gameFinished"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func testCards() []domain.Card {
	return []domain.Card{
		{ID: "1", Title: "Billie Jean", Artist: "Michael Jackson", Year: 1982},
		{ID: "2", Title: "Smells Like Teen Spirit", Artist: "Nirvana", Year: 1991},
		{ID: "3", Title: "Hey Jude", Artist: "The Beatles", Year: 1968},
		{ID: "4", Title: "Rolling in the Deep", Artist: "Adele", Year: 2010},
	}
}

func newTestServer(t *testing.T, cfg hub.Config) *httptest.Server {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	engine := runtime.NewEngine(log, catalog.NewStaticProviderFrom(testCards()), 1)
	registry := runtime.NewRegistry()
	supervisor := workers.NewSupervisor(log, 10*time.Millisecond)
	orchestrator := runtime.NewOrchestrator(log, supervisor, registry, 100, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = orchestrator.Start(ctx) }()

	handlers := hub.Handlers{
		CreateGame: services.NewCreateGameHandler(log, engine, orchestrator, nil),
		JoinGame:   services.NewJoinGameHandler(log, engine, orchestrator, nil),
		StartGame:  services.NewStartGameHandler(log, engine, orchestrator),
		PlaceCard:  services.NewPlaceCardHandler(log, engine, orchestrator),
		LeaveGame:  services.NewLeaveGameHandler(log, engine, orchestrator),
	}
	srv := httptest.NewServer(hub.NewServer(log, cfg, orchestrator, handlers).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, origin string) (*websocket.Conn, error) {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + hub.Path
	return websocket.Dial(url, "", origin)
}

// client keeps the frames skipped while waiting for another type. Results
// and broadcasts are written by different goroutines and may interleave.
type client struct {
	t       *testing.T
	conn    *websocket.Conn
	backlog []hub.Frame
}

func connect(t *testing.T, srv *httptest.Server) *client {
	t.Helper()
	conn, err := dial(t, srv, testOrigin)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	c := &client{t: t, conn: conn}
	require.Equal(t, hub.FrameConnected, c.read().Type)
	return c
}

func (c *client) read() hub.Frame {
	c.t.Helper()
	require.NoError(c.t, c.conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame hub.Frame
	require.NoError(c.t, websocket.JSON.Receive(c.conn, &frame))
	return frame
}

func (c *client) next(frameType string) hub.Frame {
	c.t.Helper()
	for i, frame := range c.backlog {
		if frame.Type == frameType {
			c.backlog = append(c.backlog[:i], c.backlog[i+1:]...)
			return frame
		}
	}
	for i := 0; i < 20; i++ {
		frame := c.read()
		if frame.Type == frameType {
			return frame
		}
		c.backlog = append(c.backlog, frame)
	}
	c.t.Fatalf("no %s frame received", frameType)
	return hub.Frame{}
}

func (c *client) send(frameType, requestID string, payload any) {
	c.t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(c.t, err)
	require.NoError(c.t, websocket.JSON.Send(c.conn, hub.Frame{Type: frameType, RequestID: requestID, Payload: raw}))
}

func (c *client) call(frameType, requestID string, payload any) resultPayload {
	c.t.Helper()
	c.send(frameType, requestID, payload)
	frame := c.next(hub.FrameResult)
	require.Equal(c.t, requestID, frame.RequestID)
	var result resultPayload
	require.NoError(c.t, json.Unmarshal(frame.Payload, &result))
	return result
}

func decode[T any](t *testing.T, frame hub.Frame) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(frame.Payload, &out))
	return out
}

func TestHub_FullTurn(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, hub.Config{AllowedOrigins: []string{testOrigin}})
	host := connect(t, srv)
	guest := connect(t, srv)

	// Given a lobby created by the host
	created := host.call(hub.FrameCreateGame, "1", map[string]string{"nickname": "Alice"})
	req.Equal(hub.ResultCreateGame, created.Type)
	req.True(created.Success)
	req.Len(created.GameCode, domain.GameCodeLength)
	req.Equal([]services.PlayerDTO{{Nickname: "Alice", IsHost: true}}, created.Players)

	// When a guest joins with a lower-cased code
	joined := guest.call(hub.FrameJoinGame, "2",
		map[string]string{"gameCode": strings.ToLower(created.GameCode), "nickname": "Bob"})

	// Then the guest gets the roster and the host is notified
	req.Equal(hub.ResultJoinGame, joined.Type)
	req.Len(joined.Players, 2)
	playerJoined := decode[map[string]any](t, host.next(hub.FramePlayerJoined))
	req.Equal(created.GameCode, playerJoined["gameCode"])

	// When the host starts the game
	started := host.call(hub.FrameStartGame, "3", map[string]string{"gameCode": created.GameCode})
	req.Equal(hub.ResultStartGame, started.Type)
	req.True(started.Success)

	// Then both members learn whose turn it is
	for _, conn := range []*client{host, guest} {
		gameStarted := decode[map[string]any](t, conn.next(hub.FrameGameStarted))
		req.Equal("Alice", gameStarted["currentTurn"])
		req.NotNil(gameStarted["card"])
	}

	// When the host places the first card in an empty timeline
	placed := host.call(hub.FramePlaceCard, "4", map[string]any{"gameCode": created.GameCode, "position": 0})

	// Then it is valid and the turn passes to the guest
	req.Equal(hub.ResultPlaceCard, placed.Type)
	req.True(placed.IsValid)
	req.False(placed.GameFinished)
	cardPlaced := decode[map[string]any](t, guest.next(hub.FrameCardPlaced))
	req.Equal("Alice", cardPlaced["player"])
	req.Equal("Bob", cardPlaced["currentTurn"])
	req.Equal(true, cardPlaced["isValid"])

	// When the host plays out of turn
	outOfTurn := host.call(hub.FramePlaceCard, "5", map[string]any{"gameCode": created.GameCode, "position": 0})

	// Then the failure carries the rule message
	req.Equal(hub.ResultFailure, outOfTurn.Type)
	req.False(outOfTurn.Success)
	req.Equal("It is not your turn.", outOfTurn.Message)
}

func TestHub_FailureCarriesValidationMessage(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, hub.Config{})
	conn := connect(t, srv)

	result := conn.call(hub.FrameJoinGame, "1", map[string]string{"gameCode": "ABC", "nickname": "Bob"})

	req.Equal(hub.ResultFailure, result.Type)
	req.False(result.Success)
	req.Equal("Game code must be exactly 8 characters", result.Message)
}

func TestHub_InvalidCommandPayload(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, hub.Config{})
	conn := connect(t, srv)

	result := conn.call(hub.FramePlaceCard, "1", map[string]string{"gameCode": "ABCD1234", "position": "first"})

	req.Equal(hub.ResultFailure, result.Type)
	req.Equal("Invalid request payload.", result.Message)
}

func TestHub_UnsupportedFrameType(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, hub.Config{})
	conn := connect(t, srv)

	conn.send("DeleteGame", "7", map[string]string{})

	frame := conn.next(hub.FrameError)
	req.Equal("7", frame.RequestID)
	req.Equal("unsupported frame type", decode[errorPayload](t, frame).Message)
}

func TestHub_MalformedFramesCloseConnection(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, hub.Config{})
	conn := connect(t, srv)

	// Given three frames which are not JSON
	for i := 0; i < 3; i++ {
		req.NoError(websocket.Message.Send(conn.conn, "not json"))
	}

	// Then each is answered with an error, then the server hangs up
	for i := 0; i < 3; i++ {
		frame := conn.read()
		req.Equal(hub.FrameError, frame.Type)
		req.Equal("INVALID_ARGUMENT", decode[errorPayload](t, frame).Code)
	}
	req.Equal("too many malformed frames", decode[errorPayload](t, conn.read()).Message)

	req.NoError(conn.conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var frame hub.Frame
	req.Error(websocket.JSON.Receive(conn.conn, &frame))
}

func TestHub_DisconnectNotifiesRemainingMembers(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, hub.Config{})
	host := connect(t, srv)
	guest := connect(t, srv)

	// Given a lobby with two members
	created := host.call(hub.FrameCreateGame, "1", map[string]string{"nickname": "Alice"})
	guest.call(hub.FrameJoinGame, "2", map[string]string{"gameCode": created.GameCode, "nickname": "Bob"})

	// When the guest drops
	req.NoError(guest.conn.Close())

	// Then the host is told, and the game goes on
	left := decode[map[string]any](t, host.next(hub.FramePlayerLeft))
	req.Equal("Bob", left["nickname"])
	req.Equal(false, left["gameEnded"])
}

func TestHub_RejectsUnknownOrigin(t *testing.T) {
	req := require.New(t)
	srv := newTestServer(t, hub.Config{AllowedOrigins: []string{testOrigin + "/"}})

	_, err := dial(t, srv, "http://evil.example")
	req.Error(err)

	conn, err := dial(t, srv, testOrigin)
	req.NoError(err)
	req.NoError(conn.Close())
}
