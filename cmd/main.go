package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"songster/catalog"
	"songster/contract"
	"songster/domain/event"
	"songster/errors"
	songstergrpc "songster/grpc"
	"songster/hub"
	"songster/internal"
	"songster/moderation"
	"songster/observability"
	"songster/projection"
	"songster/repositories"
	"songster/runtime"
	"songster/runtime/workers"
	"songster/services"
	"songster/sink"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until a signal or a server failure.
// Deferred cleanups run before main exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	censorChar, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Database (BadgerDB)
	db, err := repositories.OpenBadger(config.BadgerFilepath)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	archive := repositories.NewGameArchive(db, log)

	// 3. Catalog & moderation
	provider, err := newCatalog(ctx, log, config)
	if err != nil {
		return err
	}
	blocked, err := moderation.NewEmbeddedLoader().LoadAll("blocked")
	if err != nil {
		return fmt.Errorf("unable to load blocked words: %w", err)
	}
	moderator, err := moderation.NewModerator(blocked.Words, censorChar, log)
	if err != nil {
		return fmt.Errorf("unable to build moderator: %w", err)
	}

	// 4. Supervision & orchestration
	engine := runtime.NewEngine(log, provider, config.MaxSessions)
	registry := runtime.NewRegistry()
	supervisor := workers.NewSupervisor(log, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(log, supervisor, registry, config.BufferSize, config.SinkTimeout)
	supervisor.WithTelemetry(orchestrator.TelemetryEvents())
	board := projection.NewBoard()
	orchestrator.Add(sink.NewArchiveSink(archive, log), board)

	counter := event.NewCounter()
	monitor := observability.NewMonitor(counter, engine.Count)
	handlers := []event.Handler{
		event.NewGameActivityHandler(log, counter),
		event.NewLatencyHandler(log, config.LatencyThreshold),
		event.NewChannelCapacityHandler(log, config.LowCapacityThreshold),
		event.NewProcessTrackerHandler(log),
		event.NewWorkerRestartedAfterPanicHandler(log, counter),
		monitor,
	}
	telemetryEvents := orchestrator.TelemetryEvents()
	orchestrator.AddWorkers(
		workers.NewTelemetryWorker(log, config.MetricInterval, telemetryEvents, handlers,
			orchestrator.DomainEventsProbe(),
			workers.ChannelProbe{
				Name:     "telemetry_events",
				Length:   func() int { return len(telemetryEvents) },
				Capacity: cap(telemetryEvents),
			}),
		workers.NewSessionJanitor(log, engine, orchestrator, config.JanitorInterval, config.SessionIdleTimeout),
	)

	// 5. Servers
	hubServer := hub.NewServer(log, hub.Config{
		AllowedOrigins:       internal.SplitOrigins(config.FrontendURL),
		MaxFramesPerSecond:   config.MaxFramesPerSecond,
		ConnectionBufferSize: config.ConnectionBufferSize,
	}, orchestrator, hub.Handlers{
		CreateGame: services.NewCreateGameHandler(log, engine, orchestrator, moderator),
		JoinGame:   services.NewJoinGameHandler(log, engine, orchestrator, moderator),
		StartGame:  services.NewStartGameHandler(log, engine, orchestrator),
		PlaceCard:  services.NewPlaceCardHandler(log, engine, orchestrator),
		LeaveGame:  services.NewLeaveGameHandler(log, engine, orchestrator),
	})
	healthServer := songstergrpc.NewHealthServer(log)
	debugServer := internal.NewDebugServer(log, archive, func() any { return monitor.Snapshot() }, board.Games)

	hubListener, err := listen(config.Host, config.Port)
	if err != nil {
		return err
	}
	grpcListener, err := listen(config.Host, config.GrpcPort)
	if err != nil {
		return err
	}
	debugListener, err := listen(config.Host, config.DebugPort)
	if err != nil {
		return err
	}

	// 6. Run until a signal or the first failure
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return orchestrator.Start(gctx)
	})
	g.Go(func() error {
		return serveHub(gctx, log, hubServer, hubListener, healthServer)
	})
	g.Go(func() error {
		return healthServer.Serve(gctx, grpcListener)
	})
	g.Go(func() error {
		return debugServer.Serve(gctx, debugListener)
	})

	err = g.Wait()
	orchestrator.Stop()
	log.Info("Program stopped cleanly")
	return err
}

func newCatalog(ctx context.Context, log *slog.Logger, config Config) (contract.ICatalogProvider, error) {
	switch config.CatalogSource {
	case "static":
		return catalog.NewStaticProvider()
	case "spotify":
		spotify, err := catalog.NewSpotifyProvider(ctx, log, catalog.SpotifyConfig{
			ClientID:          config.SpotifyClientID,
			ClientSecret:      config.SpotifyClientSecret,
			PlaylistID:        config.SpotifyPlaylistID,
			RequestsPerSecond: config.SpotifyRequestsPerSecond,
		})
		if err != nil {
			return nil, fmt.Errorf("spotify catalog: %w", err)
		}
		return catalog.NewCachedProvider(log, spotify, config.CatalogCacheTTL), nil
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q (expected static or spotify)", config.CatalogSource)
	}
}

func listen(host string, port int) (net.Listener, error) {
	address := fmt.Sprintf("%s:%d", host, port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	return listener, nil
}

// serveHub reports the hub as serving on the health endpoint while it accepts connections.
func serveHub(ctx context.Context, log *slog.Logger, hubServer *hub.Server, listener net.Listener,
	health *songstergrpc.HealthServer) error {
	server := &http.Server{Handler: hubServer.Handler(), ReadHeaderTimeout: 5 * time.Second}
	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting game hub", "address", listener.Addr().String(), "path", hub.Path)
		serveErr <- server.Serve(listener)
	}()
	health.SetServing(true)
	defer health.SetServing(false)

	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// Hijacked WebSocket connections are not tracked by Shutdown.
		return server.Shutdown(shutdownCtx)
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("game hub error: %w", err)
	}
}
