package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"songster/contract"
	"songster/domain"
	"songster/errors"
	"songster/services"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/net/websocket"
	"golang.org/x/time/rate"
)

const (
	Path                   = "/gameHub"
	maxDecodeErrorsPerConn = 3
	defaultFramesPerSecond = 10
	defaultBufferSize      = 64
)

// Connections attaches and detaches the broadcast sink of a connection.
type Connections interface {
	Connect(connectionID domain.ConnectionID, sink contract.EventSink)
	Disconnect(connectionID domain.ConnectionID)
}

// Handlers groups the command handlers the hub dispatches to.
type Handlers struct {
	CreateGame *services.CreateGameHandler
	JoinGame   *services.JoinGameHandler
	StartGame  *services.StartGameHandler
	PlaceCard  *services.PlaceCardHandler
	LeaveGame  *services.LeaveGameHandler
}

type Config struct {
	// AllowedOrigins is the list of browser origins accepted during the
	// handshake. An empty list accepts any origin.
	AllowedOrigins       []string
	MaxFramesPerSecond   float64
	ConnectionBufferSize int
}

type Server struct {
	log         *slog.Logger
	cfg         Config
	connections Connections
	handlers    Handlers
}

func NewServer(log *slog.Logger, cfg Config, connections Connections, handlers Handlers) *Server {
	if cfg.MaxFramesPerSecond <= 0 {
		cfg.MaxFramesPerSecond = defaultFramesPerSecond
	}
	if cfg.ConnectionBufferSize <= 0 {
		cfg.ConnectionBufferSize = defaultBufferSize
	}
	cfg.AllowedOrigins = lo.FilterMap(cfg.AllowedOrigins, func(origin string, _ int) (string, bool) {
		origin = strings.TrimSuffix(strings.TrimSpace(origin), "/")
		return origin, origin != ""
	})
	return &Server{log: log, cfg: cfg, connections: connections, handlers: handlers}
}

// Handler serves the WebSocket endpoint.
func (s *Server) Handler() http.Handler {
	ws := websocket.Server{Handshake: s.handshake, Handler: s.serveConn}
	mux := http.NewServeMux()
	mux.HandleFunc(Path, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ws.ServeHTTP(w, r)
	})
	return mux
}

func (s *Server) handshake(config *websocket.Config, req *http.Request) error {
	if len(s.cfg.AllowedOrigins) == 0 {
		return nil
	}
	origin, err := websocket.Origin(config, req)
	if err != nil || origin == nil {
		return fmt.Errorf("missing origin")
	}
	candidate := strings.TrimSuffix(origin.String(), "/")
	if !lo.Contains(s.cfg.AllowedOrigins, candidate) {
		s.log.Warn("Rejected WebSocket handshake", "origin", candidate)
		return fmt.Errorf("origin %q is not allowed", candidate)
	}
	config.Origin = origin
	return nil
}

func (s *Server) serveConn(conn *websocket.Conn) {
	defer conn.Close()

	connectionID, err := domain.NewConnectionID(uuid.NewString())
	if err != nil {
		return
	}
	ctx, cancel := context.WithCancel(conn.Request().Context())
	defer cancel()

	p := newPeer(conn)
	sink := newConnectionSink(s.log, connectionID, p, s.cfg.ConnectionBufferSize)
	go sink.run(ctx)
	s.connections.Connect(connectionID, sink)
	defer s.disconnect(connectionID)

	s.log.Debug("Connection opened", "connection_id", connectionID.Value())
	if err := p.writeFrame(Frame{
		Type:    FrameConnected,
		Payload: mustJSON(connectedPayload{ConnectionID: connectionID.Value()}),
	}); err != nil {
		return
	}

	limiter := rate.NewLimiter(rate.Limit(s.cfg.MaxFramesPerSecond), int(s.cfg.MaxFramesPerSecond)+1)
	decodeErrors := 0
	for {
		var frame Frame
		if err := websocket.JSON.Receive(conn, &frame); err != nil {
			if !isMalformed(err) {
				if !errors.Is(err, io.EOF) {
					s.log.Debug("Connection read failed", "connection_id", connectionID.Value(), "error", err)
				}
				return
			}
			decodeErrors++
			_ = writeError(p, "", codeInvalidArgument, invalidFramePayload)
			if decodeErrors >= maxDecodeErrorsPerConn {
				_ = writeError(p, "", codeInvalidArgument, tooManyMalformedFrames)
				return
			}
			continue
		}

		if !limiter.Allow() {
			_ = writeError(p, frame.RequestID, codeResourceExhausted, rateLimitExceeded)
			continue
		}

		switch frame.Type {
		case FrameCreateGame, FrameJoinGame, FrameStartGame, FramePlaceCard:
			start := time.Now()
			result := s.dispatch(ctx, connectionID, frame)
			s.log.Debug("Frame handled", "type", frame.Type, "connection_id", connectionID.Value(),
				"result", result.ResultType(), "duration", time.Since(start))
			_ = p.writeFrame(Frame{Type: FrameResult, RequestID: frame.RequestID, Payload: mustJSON(result)})
		default:
			_ = writeError(p, frame.RequestID, codeInvalidArgument, unsupportedFrameType)
		}
	}
}

// disconnect runs the leave flow, so the remaining members get PlayerLeft,
// then detaches the sink.
func (s *Server) disconnect(connectionID domain.ConnectionID) {
	if _, err := s.handlers.LeaveGame.Handle(domain.LeaveGameCommand{ConnectionID: connectionID.Value()}); err != nil {
		if errors.KindOf(err) != errors.KindNotFound {
			s.log.Warn("Leave on disconnect failed", "connection_id", connectionID.Value(), "error", err)
		}
	}
	s.connections.Disconnect(connectionID)
	s.log.Debug("Connection closed", "connection_id", connectionID.Value())
}

// dispatch runs one command. A panic inside a handler becomes a generic failure
// and the connection stays open.
func (s *Server) dispatch(ctx context.Context, connectionID domain.ConnectionID, frame Frame) (result HubResult) {
	action := failureMessage(frame.Type)
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Handler panicked", "type", frame.Type, "connection_id", connectionID.Value(), "panic", r)
			result = NewFailure(action)
		}
	}()

	switch frame.Type {
	case FrameCreateGame:
		var payload createGamePayload
		if err := json.Unmarshal(frame.Payload, &payload); err != nil {
			return NewFailure(invalidRequestPayload)
		}
		resp, err := s.handlers.CreateGame.Handle(domain.CreateGameCommand{
			ConnectionID: connectionID.Value(),
			Nickname:     payload.Nickname,
		})
		if err != nil {
			return s.failure(action, err)
		}
		return NewCreateGameSuccess(resp)
	case FrameJoinGame:
		var payload joinGamePayload
		if err := json.Unmarshal(frame.Payload, &payload); err != nil {
			return NewFailure(invalidRequestPayload)
		}
		resp, err := s.handlers.JoinGame.Handle(domain.JoinGameCommand{
			GameCode:     payload.GameCode,
			ConnectionID: connectionID.Value(),
			Nickname:     payload.Nickname,
		})
		if err != nil {
			return s.failure(action, err)
		}
		return NewJoinGameSuccess(resp)
	case FrameStartGame:
		var payload startGamePayload
		if err := json.Unmarshal(frame.Payload, &payload); err != nil {
			return NewFailure(invalidRequestPayload)
		}
		if _, err := s.handlers.StartGame.Handle(ctx, domain.StartGameCommand{
			GameCode:     payload.GameCode,
			ConnectionID: connectionID.Value(),
		}); err != nil {
			return s.failure(action, err)
		}
		return NewStartGameSuccess()
	default:
		var payload placeCardPayload
		if err := json.Unmarshal(frame.Payload, &payload); err != nil {
			return NewFailure(invalidRequestPayload)
		}
		resp, err := s.handlers.PlaceCard.Handle(domain.PlaceCardCommand{
			GameCode:     payload.GameCode,
			ConnectionID: connectionID.Value(),
			Position:     payload.Position,
		})
		if err != nil {
			return s.failure(action, err)
		}
		return NewPlaceCardSuccess(resp)
	}
}

// failure exposes the message of typed errors only. Anything else is logged
// and hidden behind the generic action message.
func (s *Server) failure(action string, err error) Failure {
	if errors.KindOf(err) == errors.KindInternal {
		s.log.Error(action, "error", err)
		return NewFailure(action)
	}
	return NewFailure(errors.Message(err))
}

func failureMessage(frameType string) string {
	switch frameType {
	case FrameCreateGame:
		return failedToCreateGame
	case FrameJoinGame:
		return failedToJoinGame
	case FrameStartGame:
		return failedToStartGame
	default:
		return failedToPlaceCard
	}
}

func isMalformed(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
