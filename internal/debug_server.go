// Package internal holds the operator-facing debug server and small helpers
// shared by the binaries.
package internal

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"songster/contract"
	"songster/domain"
	"songster/errors"
	"songster/projection"
	"songster/services"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

//go:embed inspect.html
var templatesFS embed.FS

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 500
	shutdownTimeout     = 5 * time.Second
)

// InspectRow is one archived game as shown on the inspect page.
type InspectRow struct {
	Code       string
	FinishedAt string
	Reason     string
	Winner     string
	Standings  string
}

type PageData struct {
	Items []InspectRow
	Stats any
}

// StatsProvider returns a JSON-serialisable snapshot.
type StatsProvider func() any

// GamesProvider lists the games currently in memory.
type GamesProvider func() []projection.GameView

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type RecordDTO struct {
	Code       string                 `json:"gameCode"`
	Winner     string                 `json:"winner,omitempty"`
	Reason     string                 `json:"reason"`
	Standings  []services.StandingDTO `json:"standings"`
	FinishedAt time.Time              `json:"finishedAt"`
}

type DebugServer struct {
	log     *slog.Logger
	archive contract.IGameArchive
	stats   StatsProvider
	games   GamesProvider
	tmpl    *template.Template
}

func NewDebugServer(log *slog.Logger, archive contract.IGameArchive, stats StatsProvider, games GamesProvider) *DebugServer {
	return &DebugServer{
		log:     log,
		archive: archive,
		stats:   stats,
		games:   games,
		tmpl:    template.Must(template.ParseFS(templatesFS, "inspect.html")),
	}
}

func (s *DebugServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.health)
	mux.HandleFunc("GET /stats", s.statsHandler)
	mux.HandleFunc("GET /games", s.liveGames)
	mux.HandleFunc("GET /history", s.history)
	mux.HandleFunc("GET /inspect", s.inspect)
	return mux
}

// Serve blocks until ctx is cancelled, then shuts the server down gracefully.
func (s *DebugServer) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	s.log.Info("Debug server listening", "addr", listener.Addr().String())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("debug server shutdown: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("debug server: %w", err)
	}
}

func (s *DebugServer) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Timestamp: time.Now().UTC()})
}

func (s *DebugServer) statsHandler(w http.ResponseWriter, _ *http.Request) {
	if s.stats == nil {
		writeJSON(w, http.StatusOK, map[string]any{})
		return
	}
	writeJSON(w, http.StatusOK, s.stats())
}

func (s *DebugServer) liveGames(w http.ResponseWriter, _ *http.Request) {
	games := []projection.GameView{}
	if s.games != nil {
		games = s.games()
	}
	writeJSON(w, http.StatusOK, games)
}

func (s *DebugServer) history(w http.ResponseWriter, r *http.Request) {
	limit, err := ParseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	records, err := s.archive.Recent(limit)
	if err != nil {
		s.log.Error("Unable to read game history", "error", err)
		http.Error(w, "history unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, lo.Map(records, func(rec domain.GameRecord, _ int) RecordDTO {
		return RecordDTO{
			Code:       rec.Code,
			Winner:     rec.Winner,
			Reason:     rec.Reason,
			Standings:  services.ToStandings(rec.Standings),
			FinishedAt: rec.FinishedAt,
		}
	}))
}

func (s *DebugServer) inspect(w http.ResponseWriter, r *http.Request) {
	limit, err := ParseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	records, err := s.archive.Recent(limit)
	if err != nil {
		s.log.Error("Unable to read game history", "error", err)
	}
	data := PageData{Items: lo.Map(records, func(rec domain.GameRecord, _ int) InspectRow { return ToRow(rec) })}
	if s.stats != nil {
		data.Stats = s.stats()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		s.log.Error("Unable to render inspect page", "error", err)
	}
}

// ParseLimit reads the limit query parameter. Empty means the default limit.
func ParseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultHistoryLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("limit must be a positive integer, got %q", raw)
	}
	return min(limit, maxHistoryLimit), nil
}

func ToRow(record domain.GameRecord) InspectRow {
	winner := record.Winner
	if winner == "" {
		winner = "-"
	}
	return InspectRow{
		Code:       record.Code,
		FinishedAt: record.FinishedAt.Format("2006-01-02 15:04:05"),
		Reason:     record.Reason,
		Winner:     winner,
		Standings: strings.Join(lo.Map(record.Standings, func(st domain.Standing, _ int) string {
			return fmt.Sprintf("%s (%d)", st.Nickname, st.Cards)
		}), ", "),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
