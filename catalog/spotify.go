package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"songster/domain"
	"songster/errors"
	"strconv"
	"strings"

	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"
	spotifyPageSize = 100
)

type SpotifyConfig struct {
	ClientID          string
	ClientSecret      string
	PlaylistID        string
	RequestsPerSecond float64
	// TokenURL and BaseURL default to the public Spotify endpoints.
	TokenURL string
	BaseURL  string
}

type spotifyArtist struct {
	Name string `json:"name"`
}

type spotifyAlbum struct {
	ReleaseDate string `json:"release_date"`
}

type spotifyTrack struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Artists    []spotifyArtist `json:"artists"`
	Album      spotifyAlbum    `json:"album"`
	PreviewURL string          `json:"preview_url"`
	IsLocal    bool            `json:"is_local"`
}

type spotifyPlaylistTrack struct {
	Track *spotifyTrack `json:"track"`
}

type spotifyPlaylistPage struct {
	Items []spotifyPlaylistTrack `json:"items"`
	Total int                    `json:"total"`
	Next  *string                `json:"next"`
}

// SpotifyProvider builds the deck from a Spotify playlist, authenticating
// with the client credentials flow.
type SpotifyProvider struct {
	log        *slog.Logger
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	playlistID string
}

func NewSpotifyProvider(ctx context.Context, log *slog.Logger, cfg SpotifyConfig) (*SpotifyProvider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("missing spotify client id or secret")
	}
	if cfg.PlaylistID == "" {
		return nil, fmt.Errorf("missing spotify playlist id")
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = spotifyTokenURL
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = spotifyBaseURL
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 5
	}

	credentials := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}
	return &SpotifyProvider{
		log:        log,
		httpClient: credentials.Client(ctx),
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		playlistID: cfg.PlaylistID,
	}, nil
}

// Cards walks every page of the playlist. Tracks without a usable release
// year are skipped.
func (p *SpotifyProvider) Cards(ctx context.Context) ([]domain.Card, error) {
	endpoint := fmt.Sprintf("%s/playlists/%s/tracks?limit=%d&offset=0",
		p.baseURL, url.PathEscape(p.playlistID), spotifyPageSize)

	var cards []domain.Card
	skipped := 0
	for endpoint != "" {
		var page spotifyPlaylistPage
		if err := p.doRequest(ctx, endpoint, &page); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrCatalogUnavailable, err)
		}
		for _, item := range page.Items {
			card, ok := toCard(item.Track)
			if !ok {
				skipped++
				continue
			}
			cards = append(cards, card)
		}
		endpoint = ""
		if page.Next != nil {
			endpoint = *page.Next
		}
	}

	p.log.Info("Spotify playlist loaded", "playlist_id", p.playlistID, "cards", len(cards), "skipped", skipped)
	if len(cards) == 0 {
		return nil, errors.ErrEmptyCatalog
	}
	return cards, nil
}

func (p *SpotifyProvider) doRequest(ctx context.Context, endpoint string, result any) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("spotify API error: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func toCard(track *spotifyTrack) (domain.Card, bool) {
	if track == nil || track.IsLocal || track.ID == "" || track.Name == "" {
		return domain.Card{}, false
	}
	year, ok := releaseYear(track.Album.ReleaseDate)
	if !ok {
		return domain.Card{}, false
	}
	artists := make([]string, 0, len(track.Artists))
	for _, a := range track.Artists {
		artists = append(artists, a.Name)
	}
	return domain.Card{
		ID:         track.ID,
		Title:      track.Name,
		Artist:     strings.Join(artists, ", "),
		Year:       year,
		PreviewURL: track.PreviewURL,
	}, true
}

// releaseYear accepts the three precisions Spotify uses: "1983", "1983-01" and "1983-01-02".
func releaseYear(releaseDate string) (int, bool) {
	if len(releaseDate) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil || year <= 0 {
		return 0, false
	}
	return year, true
}
