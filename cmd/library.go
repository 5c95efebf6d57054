package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/JamesABrownlee/vexo2-5/internal/formatter"
	"github.com/JamesABrownlee/vexo2-5/internal/library"
	"github.com/JamesABrownlee/vexo2-5/internal/models"
	"github.com/JamesABrownlee/vexo2-5/internal/repositories"
	"github.com/JamesABrownlee/vexo2-5/internal/services"
	"github.com/JamesABrownlee/vexo2-5/internal/shared"
	"github.com/JamesABrownlee/vexo2-5/internal/tasks"
)

// loadLibrary opens the catalog and loads the most recent songs.
func (r *Runner) loadLibrary(ctx context.Context, limit int) ([]models.LibraryItem, error) {
	db, err := r.openDatabase()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	repo := repositories.NewLibraryRepository(db)
	items, err := repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrLibraryUnavailable, err)
	}
	return items, nil
}

// LibraryList displays the song catalog with optional filters.
func (r *Runner) LibraryList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")

	sortKey, err := library.ParseSortKey(cmd.String("sort"))
	if err != nil {
		return err
	}

	items, err := r.loadLibrary(ctx, cmd.Int("limit"))
	if err != nil {
		return err
	}

	browser := library.NewBrowser(items)
	browser.SetQuery(cmd.String("query"))
	browser.SetGenre(cmd.String("genre"))
	browser.SetSource(cmd.String("source"))
	browser.SetSort(sortKey)

	filtered := browser.Items()
	if useJSON {
		return r.writeJSON(filtered, true)
	}

	title := fmt.Sprintf("Library (%d songs)", len(filtered))
	if browser.HasActiveFilters() {
		title = fmt.Sprintf("Library (%d of %d songs)", len(filtered), browser.Len())
	}
	r.writePlainHeader(title)

	for i, item := range filtered {
		r.writePlain("%d. %s - %s [%s]\n", i+1, item.ArtistName, item.Title, shared.FormatTrackDuration(item.DurationSeconds))
		if item.Genre != "" {
			r.writePlain("   genre: %s\n", item.Genre)
		}
		r.writePlain("   %d plays, %d likes, %d dislikes\n", item.PlayCount, item.LikeCount, item.DislikeCount)
	}
	return nil
}

// LibraryStats summarizes the whole catalog.
func (r *Runner) LibraryStats(ctx context.Context, cmd *cli.Command) error {
	items, err := r.loadLibrary(ctx, 0)
	if err != nil {
		return err
	}

	stats := library.NewBrowser(items).Stats()
	if cmd.Bool("json") {
		return r.writeJSON(stats, true)
	}

	r.writePlainHeader("Library Stats")
	r.writePlain("Songs:    %d\n", stats.Songs)
	r.writePlain("Artists:  %d\n", stats.Artists)
	r.writePlain("Genres:   %d\n", stats.Genres)
	r.writePlain("Plays:    %d\n", stats.TotalPlays)
	r.writePlain("Likes:    %d\n", stats.TotalLikes)
	r.writePlain("Audio:    %s\n", shared.FormatHours(stats.TotalSeconds))
	return nil
}

// LibraryExport writes the catalog to a file in the requested format.
func (r *Runner) LibraryExport(ctx context.Context, cmd *cli.Command) error {
	items, err := r.loadLibrary(ctx, cmd.Int("limit"))
	if err != nil {
		return err
	}

	path, err := formatter.WriteExport(items, cmd.String("format"), cmd.String("output"))
	if err != nil {
		return err
	}

	r.writePlain("✓ Exported %d songs to %s\n", len(items), path)
	return nil
}

// LibraryEnrich backfills Spotify metadata for songs missing it.
func (r *Runner) LibraryEnrich(ctx context.Context, cmd *cli.Command) error {
	creds := r.config.Credentials.Spotify
	spotify, err := services.NewSpotifyClient(ctx, creds.ClientID, creds.ClientSecret)
	if err != nil {
		return err
	}

	db, err := r.openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewLibraryRepository(db)
	engine := tasks.NewEnrichEngine(repo, spotify, r.logger)

	progress := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.writePlain("%s\n", update.Message)
		}
	}()

	result, err := engine.Run(ctx, progress, tasks.EnrichOpts{
		Limit:     cmd.Int("limit"),
		RateLimit: cmd.Float("rate"),
	})
	close(progress)
	<-done

	if err != nil {
		return fmt.Errorf("enrichment failed: %w", err)
	}

	r.writePlainln("Scanned %d, updated %d, failed %d", result.Scanned, result.Updated, result.Failed)
	return nil
}
