// Spotify Web API search client used for metadata enrichment
//
// Response types based on https://developer.spotify.com/documentation/web-api/reference/search
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/JamesABrownlee/vexo2-5/internal/shared"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"
)

// TrackMatch is the subset of Spotify track metadata enrichment backfills.
type TrackMatch struct {
	SpotifyID   string
	Album       string
	ReleaseYear *int
}

// spotifySearchResponse mirrors the /search payload, reduced to the fields used.
type spotifySearchResponse struct {
	Tracks struct {
		Items []struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Album struct {
				Name        string `json:"name"`
				ReleaseDate string `json:"release_date"`
			} `json:"album"`
		} `json:"items"`
	} `json:"tracks"`
}

// SpotifyClient searches the Spotify catalog using the client-credentials flow.
//
// The oauth2 transport handles token acquisition and refresh transparently.
type SpotifyClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSpotifyClient creates a search client from a client-credentials pair.
func NewSpotifyClient(ctx context.Context, clientID, clientSecret string) (*SpotifyClient, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("%w: spotify client_id and client_secret are required", shared.ErrMissingCredentials)
	}

	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyTokenURL,
	}

	return &SpotifyClient{
		baseURL:    spotifyBaseURL,
		httpClient: conf.Client(ctx),
	}, nil
}

// SearchTrack finds the best catalog match for a title and artist.
//
// Returns [shared.ErrNoMatch] when the search comes back empty.
func (c *SpotifyClient) SearchTrack(ctx context.Context, title, artist string) (*TrackMatch, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("track:%s artist:%s", title, artist))
	params.Set("type", "track")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var payload spotifySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	if len(payload.Tracks.Items) == 0 {
		return nil, fmt.Errorf("%w: %s - %s", shared.ErrNoMatch, artist, title)
	}

	item := payload.Tracks.Items[0]
	match := &TrackMatch{
		SpotifyID: item.ID,
		Album:     item.Album.Name,
	}
	if year := parseReleaseYear(item.Album.ReleaseDate); year != nil {
		match.ReleaseYear = year
	}

	return match, nil
}

// parseReleaseYear extracts the year from a Spotify release_date, which is
// "YYYY", "YYYY-MM", or "YYYY-MM-DD" depending on release_date_precision.
func parseReleaseYear(releaseDate string) *int {
	if len(releaseDate) < 4 {
		return nil
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil || year == 0 {
		return nil
	}
	return &year
}
