package main

import "time"

type Config struct {
	Host                     string        `env:"HOST,default=0.0.0.0"`
	Port                     int           `env:"PORT,default=5000"`
	GrpcPort                 int           `env:"GRPC_PORT,default=5001"`
	DebugPort                int           `env:"DEBUG_PORT,default=5002"`
	LogLevel                 string        `env:"LOG_LEVEL,default=INFO"`
	FrontendURL              string        `env:"FRONTEND_URL,default=http://localhost:5173"`
	MaxSessions              int           `env:"MAX_SESSIONS,default=1"`
	SessionIdleTimeout       time.Duration `env:"SESSION_IDLE_TIMEOUT,default=30m"`
	JanitorInterval          time.Duration `env:"JANITOR_INTERVAL,default=1m"`
	MetricInterval           time.Duration `env:"METRIC_INTERVAL,default=30s"`
	BufferSize               int           `env:"BUFFER_SIZE,default=1000"`
	ConnectionBufferSize     int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	SinkTimeout              time.Duration `env:"SINK_TIMEOUT,default=500ms"`
	RestartInterval          time.Duration `env:"RESTART_INTERVAL,default=1s"`
	LatencyThreshold         time.Duration `env:"LATENCY_THRESHOLD,default=200ms"`
	LowCapacityThreshold     int           `env:"LOW_CAPACITY_THRESHOLD,default=10"`
	MaxFramesPerSecond       float64       `env:"MAX_FRAMES_PER_SECOND,default=10"`
	CharReplacement          string        `env:"CHARACTER_REPLACEMENT,default=*"`
	BadgerFilepath           string        `env:"BADGER_FILEPATH"`
	CatalogSource            string        `env:"CATALOG_SOURCE,default=static"`
	CatalogCacheTTL          time.Duration `env:"CATALOG_CACHE_TTL,default=1h"`
	SpotifyClientID          string        `env:"SPOTIFY_CLIENT_ID"`
	SpotifyClientSecret      string        `env:"SPOTIFY_CLIENT_SECRET"`
	SpotifyPlaylistID        string        `env:"SPOTIFY_PLAYLIST_ID"`
	SpotifyRequestsPerSecond float64       `env:"SPOTIFY_REQUESTS_PER_SECOND,default=5"`
}
