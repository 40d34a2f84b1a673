// Package hub is the WebSocket transport of the game server.
// It turns client frames into commands, commands results into Result frames
// and domain events into broadcast frames for the session group.
package hub

import (
	"encoding/json"
	"sync"

	"golang.org/x/net/websocket"
)

// Frame is the envelope of every message exchanged on /gameHub.
type Frame struct {
	Type      string          `json:"type"`
	RequestID string          `json:"requestId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Client frames.
const (
	FrameCreateGame = "CreateGame"
	FrameJoinGame   = "JoinGame"
	FrameStartGame  = "StartGame"
	FramePlaceCard  = "PlaceCard"
)

// Server frames.
const (
	FrameConnected      = "Connected"
	FrameResult         = "Result"
	FrameError          = "Error"
	FramePlayerJoined   = "PlayerJoined"
	FrameGameStarted    = "GameStarted"
	FrameCardPlaced     = "CardPlaced"
	FrameGameWon        = "GameWon"
	FrameGameEnded      = "GameEnded"
	FramePlayerLeft     = "PlayerLeft"
	FrameSessionExpired = "SessionExpired"
)

const (
	codeInvalidArgument   = "INVALID_ARGUMENT"
	codeResourceExhausted = "RESOURCE_EXHAUSTED"
)

type createGamePayload struct {
	Nickname string `json:"nickname"`
}

type joinGamePayload struct {
	GameCode string `json:"gameCode"`
	Nickname string `json:"nickname"`
}

type startGamePayload struct {
	GameCode string `json:"gameCode"`
}

type placeCardPayload struct {
	GameCode string `json:"gameCode"`
	Position int    `json:"position"`
}

type connectedPayload struct {
	ConnectionID string `json:"connectionId"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// peer serialises writes on one connection. Results and broadcasts are
// written from different goroutines.
type peer struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func newPeer(conn *websocket.Conn) *peer {
	return &peer{conn: conn}
}

func (p *peer) writeFrame(frame Frame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return websocket.JSON.Send(p.conn, frame)
}

func writeError(p *peer, requestID string, code string, message string) error {
	return p.writeFrame(Frame{
		Type:      FrameError,
		RequestID: requestID,
		Payload:   mustJSON(errorPayload{Code: code, Message: message}),
	})
}
