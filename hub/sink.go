package hub

import (
	"context"
	"log/slog"
	"songster/domain"
	"songster/domain/event"
	"songster/errors"
)

// ConnectionSink buffers the broadcast frames of one connection.
// Consume is called by the fan-out; run drains the buffer onto the socket.
type ConnectionSink struct {
	log          *slog.Logger
	connectionID domain.ConnectionID
	peer         *peer
	frames       chan Frame
}

func newConnectionSink(log *slog.Logger, connectionID domain.ConnectionID, p *peer, bufferSize int) *ConnectionSink {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &ConnectionSink{
		log:          log,
		connectionID: connectionID,
		peer:         p,
		frames:       make(chan Frame, bufferSize),
	}
}

// Consume never waits on the socket. A full buffer drops the frame and
// reports ErrSlowConnection to the fan-out.
func (s *ConnectionSink) Consume(ctx context.Context, e event.DomainEvent) error {
	frame, ok := toFrame(e)
	if !ok {
		return nil
	}
	select {
	case s.frames <- frame:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.ErrSlowConnection
	}
}

func (s *ConnectionSink) run(ctx context.Context) {
	for {
		select {
		case frame := <-s.frames:
			if err := s.peer.writeFrame(frame); err != nil {
				s.log.Debug("Unable to write broadcast frame", "connection_id", s.connectionID.Value(),
					"type", frame.Type, "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
