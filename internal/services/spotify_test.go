package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JamesABrownlee/vexo2-5/internal/shared"
)

// newTestSpotifyClient bypasses the token exchange so searches hit the test server directly.
func newTestSpotifyClient(baseURL string) *SpotifyClient {
	return &SpotifyClient{baseURL: baseURL, httpClient: http.DefaultClient}
}

func TestSpotifyClient(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("Missing Credentials", func(t *testing.T) {
			if _, err := NewSpotifyClient(context.Background(), "", ""); !errors.Is(err, shared.ErrMissingCredentials) {
				t.Errorf("expected ErrMissingCredentials, got %v", err)
			}
		})

		t.Run("With Credentials", func(t *testing.T) {
			c, err := NewSpotifyClient(context.Background(), "id", "secret")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if c.baseURL != spotifyBaseURL {
				t.Errorf("expected production base URL, got %s", c.baseURL)
			}
		})
	})

	t.Run("SearchTrack", func(t *testing.T) {
		t.Run("Returns Best Match", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/search" {
					t.Errorf("expected path '/search', got %s", r.URL.Path)
				}
				q := r.URL.Query()
				if q.Get("type") != "track" || q.Get("limit") != "1" {
					t.Errorf("unexpected query params: %v", q)
				}

				json.NewEncoder(w).Encode(map[string]any{
					"tracks": map[string]any{
						"items": []map[string]any{
							{
								"id":   "4cOdK2wGLETKBW3PvgPWqT",
								"name": "Never Gonna Give You Up",
								"album": map[string]any{
									"name":         "Whenever You Need Somebody",
									"release_date": "1987-11-12",
								},
							},
						},
					},
				})
			}))
			defer server.Close()

			c := newTestSpotifyClient(server.URL)
			match, err := c.SearchTrack(context.Background(), "Never Gonna Give You Up", "Rick Astley")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if match.SpotifyID != "4cOdK2wGLETKBW3PvgPWqT" {
				t.Errorf("unexpected spotify id: %s", match.SpotifyID)
			}
			if match.Album != "Whenever You Need Somebody" {
				t.Errorf("unexpected album: %s", match.Album)
			}
			if match.ReleaseYear == nil || *match.ReleaseYear != 1987 {
				t.Errorf("expected release year 1987, got %v", match.ReleaseYear)
			}
		})

		t.Run("Empty Result Is ErrNoMatch", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"tracks": map[string]any{"items": []any{}}})
			}))
			defer server.Close()

			c := newTestSpotifyClient(server.URL)
			if _, err := c.SearchTrack(context.Background(), "Nothing", "Nobody"); !errors.Is(err, shared.ErrNoMatch) {
				t.Errorf("expected ErrNoMatch, got %v", err)
			}
		})

		t.Run("Non-2xx Status Is An Error", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			}))
			defer server.Close()

			c := newTestSpotifyClient(server.URL)
			if _, err := c.SearchTrack(context.Background(), "a", "b"); !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})
	})
}

func TestParseReleaseYear(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1987-11-12", 1987, true},
		{"2020-05", 2020, true},
		{"1999", 1999, true},
		{"", 0, false},
		{"abc", 0, false},
	}

	for _, c := range cases {
		got := parseReleaseYear(c.in)
		if c.ok {
			if got == nil || *got != c.want {
				t.Errorf("parseReleaseYear(%q) = %v, want %d", c.in, got, c.want)
			}
		} else if got != nil {
			t.Errorf("parseReleaseYear(%q) = %d, want nil", c.in, *got)
		}
	}
}
