package tasks

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/JamesABrownlee/vexo2-5/internal/repositories"
	"github.com/JamesABrownlee/vexo2-5/internal/services"
	"github.com/JamesABrownlee/vexo2-5/internal/shared"
)

// TrackSearcher looks up a track by title and artist.
type TrackSearcher interface {
	SearchTrack(ctx context.Context, title, artist string) (*services.TrackMatch, error)
}

// EnrichOpts configures an enrichment run.
type EnrichOpts struct {
	Limit     int     // Maximum songs to process (default 100)
	RateLimit float64 // Searches per second (default 3)
}

// EnrichRow records the outcome for a single song.
type EnrichRow struct {
	SongID    int64
	Title     string
	Artist    string
	SpotifyID string
	Err       error
}

// EnrichResult summarizes an enrichment run.
type EnrichResult struct {
	Scanned int
	Updated int
	Failed  int
	Rows    []EnrichRow
}

// EnrichEngine backfills songs missing Spotify metadata by searching
// for matches and writing the results back to the catalog.
type EnrichEngine struct {
	repo     *repositories.LibraryRepository
	searcher TrackSearcher
	logger   *log.Logger
}

func NewEnrichEngine(repo *repositories.LibraryRepository, searcher TrackSearcher, logger *log.Logger) *EnrichEngine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &EnrichEngine{repo: repo, searcher: searcher, logger: logger}
}

// sendProgress sends a progress update through the channel without blocking.
func (e *EnrichEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Run scans for songs without a Spotify ID, searches for each, and
// applies any matches. Searches are rate limited. Individual match
// failures are recorded but do not abort the run.
func (e *EnrichEngine) Run(ctx context.Context, progress chan<- ProgressUpdate, opts EnrichOpts) (*EnrichResult, error) {
	if e.searcher == nil {
		return nil, fmt.Errorf("%w: Spotify search not configured", shared.ErrServiceUnavailable)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 100
	}
	perSecond := opts.RateLimit
	if perSecond <= 0 {
		perSecond = 3
	}

	songs, err := e.repo.MissingSpotifyID(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to scan library: %w", err)
	}

	result := &EnrichResult{Scanned: len(songs)}
	e.sendProgress(progress, scanLibraryUpdate(len(songs)))

	limiter := rate.NewLimiter(rate.Limit(perSecond), 1)
	total := len(songs)

	for i, song := range songs {
		if err := limiter.Wait(ctx); err != nil {
			return result, err
		}

		row := EnrichRow{SongID: song.ID, Title: song.Title, Artist: song.ArtistName}
		e.sendProgress(progress, searchMatchUpdate(i+1, total, song.Title, song.ArtistName))

		match, err := e.searcher.SearchTrack(ctx, song.Title, song.ArtistName)
		if err != nil {
			row.Err = err
			result.Failed++
			result.Rows = append(result.Rows, row)
			e.sendProgress(progress, matchFailedUpdate(i+1, total, song.Title, err))
			e.logger.Debug("no match", "song", song.Title, "error", err)
			continue
		}

		if err := e.repo.UpdateEnrichment(ctx, song.ID, match.SpotifyID, match.Album, match.ReleaseYear); err != nil {
			row.Err = err
			result.Failed++
			result.Rows = append(result.Rows, row)
			e.logger.Error("failed to apply enrichment", "song", song.Title, "error", err)
			continue
		}

		row.SpotifyID = match.SpotifyID
		result.Updated++
		result.Rows = append(result.Rows, row)
		e.sendProgress(progress, appliedUpdate(i+1, total, song.Title, match.SpotifyID))
	}

	return result, nil
}
