package grpc_test

import (
	"context"
	"log/slog"
	"net"
	songstergrpc "songster/grpc"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func startHealthServer(t *testing.T) (*songstergrpc.HealthServer, grpc_health_v1.HealthClient, chan error, context.CancelFunc) {
	t.Helper()
	listener := bufconn.Listen(1024 * 1024)
	server := songstergrpc.NewHealthServer(logs.GetLoggerFromLevel(slog.LevelDebug))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, listener) }()

	conn, err := gogrpc.NewClient("passthrough:///bufnet",
		gogrpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		gogrpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	t.Cleanup(cancel)

	return server, grpc_health_v1.NewHealthClient(conn), done, cancel
}

func TestHealthServer_ReportsServingStatus(t *testing.T) {
	req := require.New(t)
	server, client, _, _ := startHealthServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Given a server which has not been marked serving
	resp, err := client.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: songstergrpc.GameHubService})
	req.NoError(err)
	req.Equal(grpc_health_v1.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

	// When the hub is up
	server.SetServing(true)

	// Then both the hub and the overall status are serving
	resp, err = client.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: songstergrpc.GameHubService})
	req.NoError(err)
	req.Equal(grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())
	resp, err = client.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	req.NoError(err)
	req.Equal(grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestHealthServer_StopsOnContextCancel(t *testing.T) {
	req := require.New(t)
	_, _, done, cancel := startHealthServer(t)

	cancel()

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		req.Fail("health server did not stop")
	}
}
