package models

// ServiceStatus is the lifecycle state a monitored service reports.
//
// Unknown values decode and render as-is so newer backends stay compatible.
type ServiceStatus string

const (
	StatusOnline     ServiceStatus = "online"
	StatusOffline    ServiceStatus = "offline"
	StatusStarting   ServiceStatus = "starting"
	StatusRestarting ServiceStatus = "restarting"
)

// Service is a named backend process whose liveness and restart are controllable from the console.
//
// Instances are created by deserializing the polling response and replaced wholesale on every successful poll.
type Service struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ServiceStatus `json:"status"`
	Uptime      string        `json:"uptime,omitempty"`
	Restartable bool          `json:"restartable"`
}

// LibraryItem is one song record with usage statistics and provenance tags.
//
// Genre, Contributors, and Sources are comma-joined token lists; an empty field means zero tokens, not an error.
// ReleaseYear and DurationSeconds are pointers so null stays distinguishable from zero.
type LibraryItem struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	ArtistName      string `json:"artist_name"`
	Album           string `json:"album,omitempty"`
	ReleaseYear     *int   `json:"release_year,omitempty"`
	DurationSeconds *int   `json:"duration_seconds,omitempty"`
	YTID            string `json:"yt_id,omitempty"`
	SpotifyID       string `json:"spotify_id,omitempty"`
	Genre           string `json:"genre,omitempty"`
	Contributors    string `json:"contributors,omitempty"`
	Sources         string `json:"sources,omitempty"`
	LastAdded       string `json:"last_added"`
	PlayCount       int    `json:"play_count"`
	LikeCount       int    `json:"like_count"`
	DislikeCount    int    `json:"dislike_count"`
}

// ThumbnailURL returns the YouTube thumbnail for the item, or "" when no video id is known.
//
// Callers render a generic icon for "" and make no network request.
func (i LibraryItem) ThumbnailURL() string {
	if i.YTID == "" {
		return ""
	}
	return "https://i.ytimg.com/vi/" + i.YTID + "/hqdefault.jpg"
}

// WatchURL returns the YouTube watch link for the item, or "" when no video id is known.
func (i LibraryItem) WatchURL() string {
	if i.YTID == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + i.YTID
}

// SpotifyURL returns the Spotify track link for the item, or "" when no track id is known.
func (i LibraryItem) SpotifyURL() string {
	if i.SpotifyID == "" {
		return ""
	}
	return "https://open.spotify.com/track/" + i.SpotifyID
}
