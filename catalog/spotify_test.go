package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"songster/domain"
	"songster/errors"
	"sync/atomic"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newSpotifyServer(t *testing.T, pages map[string]string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var tokenRequests atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/token", func(w http.ResponseWriter, r *http.Request) {
		tokenRequests.Add(1)
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client" || pass != "secret" {
			http.Error(w, "invalid_client", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{"access_token":"token-123","token_type":"bearer","expires_in":3600}`)
	})
	mux.HandleFunc("GET /v1/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-123" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		body, ok := pages[r.URL.Path+"?"+r.URL.RawQuery]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, body)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &tokenRequests
}

func newTestSpotify(t *testing.T, srv *httptest.Server) *SpotifyProvider {
	t.Helper()
	provider, err := NewSpotifyProvider(context.Background(), logs.GetLoggerFromLevel(slog.LevelDebug), SpotifyConfig{
		ClientID:          "client",
		ClientSecret:      "secret",
		PlaylistID:        "party",
		RequestsPerSecond: 100,
		TokenURL:          srv.URL + "/api/token",
		BaseURL:           srv.URL + "/v1",
	})
	require.NoError(t, err)
	return provider
}

func TestSpotifyProvider_Cards(t *testing.T) {
	req := require.New(t)
	pages := map[string]string{}
	srv, tokenRequests := newSpotifyServer(t, pages)
	pages["/v1/playlists/party/tracks?limit=100&offset=0"] = fmt.Sprintf(`{
		"total": 4,
		"next": "%s/v1/playlists/party/tracks?limit=100&offset=100",
		"items": [
			{"track": {"id": "t1", "name": "Billie Jean", "artists": [{"name": "Michael Jackson"}],
				"album": {"release_date": "1982-11-30"}, "preview_url": "https://p/t1"}},
			{"track": {"id": "t2", "name": "Local file", "is_local": true, "album": {"release_date": "2001"}}},
			{"track": null}
		]}`, srv.URL)
	pages["/v1/playlists/party/tracks?limit=100&offset=100"] = `{
		"total": 4,
		"next": null,
		"items": [
			{"track": {"id": "t3", "name": "Under Pressure", "artists": [{"name": "Queen"}, {"name": "David Bowie"}],
				"album": {"release_date": "1981"}}},
			{"track": {"id": "t4", "name": "No date", "album": {"release_date": ""}}}
		]}`
	provider := newTestSpotify(t, srv)

	cards, err := provider.Cards(context.Background())

	req.NoError(err)
	req.Equal([]domain.Card{
		{ID: "t1", Title: "Billie Jean", Artist: "Michael Jackson", Year: 1982, PreviewURL: "https://p/t1"},
		{ID: "t3", Title: "Under Pressure", Artist: "Queen, David Bowie", Year: 1981},
	}, cards)
	// The token is fetched once and reused across pages
	req.Equal(int32(1), tokenRequests.Load())
}

func TestSpotifyProvider_Unavailable(t *testing.T) {
	req := require.New(t)
	srv, _ := newSpotifyServer(t, map[string]string{})
	provider := newTestSpotify(t, srv)

	_, err := provider.Cards(context.Background())

	req.ErrorIs(err, errors.ErrCatalogUnavailable)
}

func TestSpotifyProvider_EmptyPlaylist(t *testing.T) {
	req := require.New(t)
	srv, _ := newSpotifyServer(t, map[string]string{
		"/v1/playlists/party/tracks?limit=100&offset=0": `{"total": 0, "next": null, "items": []}`,
	})
	provider := newTestSpotify(t, srv)

	_, err := provider.Cards(context.Background())

	req.ErrorIs(err, errors.ErrEmptyCatalog)
}

func TestNewSpotifyProvider_MissingCredentials(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	_, err := NewSpotifyProvider(context.Background(), log, SpotifyConfig{PlaylistID: "party"})
	req.Error(err)
	_, err = NewSpotifyProvider(context.Background(), log, SpotifyConfig{ClientID: "client", ClientSecret: "secret"})
	req.Error(err)
}

func TestReleaseYear(t *testing.T) {
	req := require.New(t)
	for raw, want := range map[string]int{"1983": 1983, "1983-01": 1983, "1983-01-02": 1983} {
		year, ok := releaseYear(raw)
		req.True(ok)
		req.Equal(want, year)
	}
	for _, raw := range []string{"", "83", "abcd", "0000"} {
		_, ok := releaseYear(raw)
		req.False(ok, raw)
	}
}
