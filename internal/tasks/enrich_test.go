package tasks

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/JamesABrownlee/vexo2-5/internal/repositories"
	"github.com/JamesABrownlee/vexo2-5/internal/services"
	"github.com/JamesABrownlee/vexo2-5/internal/shared"
)

// fakeSearcher maps "title|artist" keys to canned results.
type fakeSearcher struct {
	matches map[string]*services.TrackMatch
	calls   int
}

func (f *fakeSearcher) SearchTrack(ctx context.Context, title, artist string) (*services.TrackMatch, error) {
	f.calls++
	if match, ok := f.matches[title+"|"+artist]; ok {
		return match, nil
	}
	return nil, shared.ErrNoMatch
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func intPtr(i int) *int { return &i }

func TestEnrichEngine(t *testing.T) {
	ctx := context.Background()

	t.Run("Run Applies Matches And Records Failures", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewLibraryRepository(db)

		hitID, err := repo.InsertSong(ctx, repositories.Song{Title: "Found", ArtistName: "Artist"})
		if err != nil {
			t.Fatalf("failed to insert song: %v", err)
		}
		if _, err := repo.InsertSong(ctx, repositories.Song{Title: "Lost", ArtistName: "Nobody"}); err != nil {
			t.Fatalf("failed to insert song: %v", err)
		}
		if _, err := repo.InsertSong(ctx, repositories.Song{Title: "Done", ArtistName: "Artist", SpotifyID: "already"}); err != nil {
			t.Fatalf("failed to insert song: %v", err)
		}

		searcher := &fakeSearcher{matches: map[string]*services.TrackMatch{
			"Found|Artist": {SpotifyID: "sp1", Album: "LP", ReleaseYear: intPtr(2010)},
		}}
		engine := NewEnrichEngine(repo, searcher, nil)

		progress := make(chan ProgressUpdate, 32)
		result, err := engine.Run(ctx, progress, EnrichOpts{RateLimit: 1000})
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}

		if result.Scanned != 2 {
			t.Errorf("expected 2 scanned, got %d", result.Scanned)
		}
		if result.Updated != 1 {
			t.Errorf("expected 1 updated, got %d", result.Updated)
		}
		if result.Failed != 1 {
			t.Errorf("expected 1 failed, got %d", result.Failed)
		}
		if searcher.calls != 2 {
			t.Errorf("expected 2 searches, got %d", searcher.calls)
		}

		var foundRow *EnrichRow
		for i := range result.Rows {
			if result.Rows[i].SongID == hitID {
				foundRow = &result.Rows[i]
			}
		}
		if foundRow == nil || foundRow.SpotifyID != "sp1" {
			t.Errorf("expected matched row with spotify id, got %+v", foundRow)
		}

		items, err := repo.Recent(ctx, 10)
		if err != nil {
			t.Fatalf("failed to fetch library: %v", err)
		}
		for _, item := range items {
			if item.ID == hitID && item.SpotifyID != "sp1" {
				t.Errorf("expected enrichment persisted, got %q", item.SpotifyID)
			}
		}

		close(progress)
		var phases []Phase
		for update := range progress {
			phases = append(phases, update.Phase)
		}
		if len(phases) == 0 || phases[0] != ScanLibrary {
			t.Errorf("expected scan update first, got %v", phases)
		}
	})

	t.Run("Run Respects Limit", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewLibraryRepository(db)

		for i := 0; i < 5; i++ {
			if _, err := repo.InsertSong(ctx, repositories.Song{Title: "Song", ArtistName: "A"}); err != nil {
				t.Fatalf("failed to insert song: %v", err)
			}
		}

		searcher := &fakeSearcher{}
		engine := NewEnrichEngine(repo, searcher, nil)

		result, err := engine.Run(ctx, nil, EnrichOpts{Limit: 2, RateLimit: 1000})
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		if result.Scanned != 2 || searcher.calls != 2 {
			t.Errorf("expected 2 scanned and searched, got %d/%d", result.Scanned, searcher.calls)
		}
	})

	t.Run("Run Requires A Searcher", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewLibraryRepository(db)

		engine := NewEnrichEngine(repo, nil, nil)
		if _, err := engine.Run(ctx, nil, EnrichOpts{}); !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected service unavailable error, got %v", err)
		}
	})

	t.Run("Run Stops On Cancelled Context", func(t *testing.T) {
		db := setupTestDB(t)
		repo := repositories.NewLibraryRepository(db)

		if _, err := repo.InsertSong(ctx, repositories.Song{Title: "Song", ArtistName: "A"}); err != nil {
			t.Fatalf("failed to insert song: %v", err)
		}

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		engine := NewEnrichEngine(repo, &fakeSearcher{}, nil)
		if _, err := engine.Run(cancelled, nil, EnrichOpts{RateLimit: 1000}); err == nil {
			t.Error("expected error from cancelled context")
		}
	})
}
