// Package grpc exposes the standard gRPC health service used by load
// balancers and orchestrators to probe the game server.
package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"songster/errors"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// GameHubService is the service name reported for the WebSocket hub.
const GameHubService = "songster.GameHub"

type HealthServer struct {
	log        *slog.Logger
	grpcServer *gogrpc.Server
	health     *health.Server
}

// NewHealthServer registers the health service. Every service starts as
// NOT_SERVING until SetServing is called.
func NewHealthServer(log *slog.Logger) *HealthServer {
	grpcServer := gogrpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(GameHubService, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	return &HealthServer{log: log, grpcServer: grpcServer, health: healthServer}
}

// SetServing flips both the overall status and the hub status.
func (s *HealthServer) SetServing(serving bool) {
	status := grpc_health_v1.HealthCheckResponse_NOT_SERVING
	if serving {
		status = grpc_health_v1.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(GameHubService, status)
	s.log.Debug("Health status changed", "status", status.String())
}

// Serve blocks until ctx is cancelled or the listener fails.
func (s *HealthServer) Serve(ctx context.Context, listener net.Listener) error {
	s.log.Info("gRPC health server listening", "addr", listener.Addr().String())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, gogrpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, gogrpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}
