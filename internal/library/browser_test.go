package library

import (
	"testing"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
)

func intPtr(i int) *int { return &i }

func testItems() []models.LibraryItem {
	return []models.LibraryItem{
		{
			ID: 1, Title: "Midnight City", ArtistName: "M83",
			Genre: "Electronic,Synthpop", Sources: "spotify_import",
			LastAdded: "2026-08-03 10:00:00", PlayCount: 12, LikeCount: 4,
			DurationSeconds: intPtr(243),
		},
		{
			ID: 2, Title: "Dynamite", ArtistName: "BTS", Album: "BE",
			Genre: "K-Pop", Sources: "request",
			LastAdded: "2026-08-01 10:00:00", PlayCount: 30, LikeCount: 9,
			DurationSeconds: intPtr(199),
		},
		{
			ID: 3, Title: "Bohemian Rhapsody", ArtistName: "Queen",
			Genre: "Rock", Sources: "playlist_sync,request",
			LastAdded: "2026-08-02 10:00:00", PlayCount: 21, LikeCount: 15,
		},
		{
			ID: 4, Title: "Untagged", ArtistName: "Unknown",
			LastAdded: "2026-07-30 10:00:00",
		},
	}
}

func TestBrowser(t *testing.T) {
	t.Run("Default View Sorts By Last Added Descending", func(t *testing.T) {
		b := NewBrowser(testItems())
		items := b.Items()
		if len(items) != 4 {
			t.Fatalf("expected 4 items, got %d", len(items))
		}
		want := []int64{1, 3, 2, 4}
		for i, id := range want {
			if items[i].ID != id {
				t.Errorf("position %d: expected id %d, got %d", i, id, items[i].ID)
			}
		}
	})

	t.Run("Query Matches Title Artist And Album Case-Insensitively", func(t *testing.T) {
		b := NewBrowser(testItems())

		b.SetQuery("midnight")
		items := b.Items()
		if len(items) != 1 || items[0].ID != 1 {
			t.Errorf("expected only Midnight City, got %+v", items)
		}

		b.SetQuery("QUEEN")
		items = b.Items()
		if len(items) != 1 || items[0].ID != 3 {
			t.Errorf("expected only the Queen track, got %+v", items)
		}

		b.SetQuery("be")
		items = b.Items()
		if len(items) != 1 || items[0].ID != 2 {
			t.Errorf("expected the album match for %q, got %+v", "be", items)
		}
	})

	t.Run("Genre Filter Uses Substring Matching", func(t *testing.T) {
		b := NewBrowser(testItems())
		b.SetGenre("Pop")
		items := b.Items()
		// Both Synthpop and K-Pop contain "pop".
		if len(items) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(items))
		}
		for _, item := range items {
			if item.ID != 1 && item.ID != 2 {
				t.Errorf("unexpected match: %+v", item)
			}
		}
	})

	t.Run("Source Filter", func(t *testing.T) {
		b := NewBrowser(testItems())
		b.SetSource("request")
		items := b.Items()
		if len(items) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(items))
		}
	})

	t.Run("Filters Combine", func(t *testing.T) {
		b := NewBrowser(testItems())
		b.SetGenre("Rock")
		b.SetSource("request")
		items := b.Items()
		if len(items) != 1 || items[0].ID != 3 {
			t.Errorf("expected only the playlist_sync+request rock track, got %+v", items)
		}
	})

	t.Run("Untagged Items Never Match Tag Filters", func(t *testing.T) {
		b := NewBrowser(testItems())
		b.SetGenre("Rock")
		for _, item := range b.Items() {
			if item.ID == 4 {
				t.Error("expected untagged item excluded by genre filter")
			}
		}
	})

	t.Run("Sort Orders", func(t *testing.T) {
		b := NewBrowser(testItems())

		b.SetSort(SortTitle)
		items := b.Items()
		if items[0].Title != "Bohemian Rhapsody" {
			t.Errorf("expected title sort ascending, got %q first", items[0].Title)
		}

		b.SetSort(SortArtist)
		items = b.Items()
		if items[0].ArtistName != "BTS" {
			t.Errorf("expected artist sort ascending, got %q first", items[0].ArtistName)
		}

		b.SetSort(SortPlays)
		items = b.Items()
		if items[0].ID != 2 {
			t.Errorf("expected most played first, got id %d", items[0].ID)
		}

		b.SetSort(SortLikes)
		items = b.Items()
		if items[0].ID != 3 {
			t.Errorf("expected most liked first, got id %d", items[0].ID)
		}
	})

	t.Run("ClearFilters Resets Everything Including Sort", func(t *testing.T) {
		b := NewBrowser(testItems())
		b.SetQuery("dyna")
		b.SetGenre("K-Pop")
		b.SetSource("request")
		b.SetSort(SortPlays)

		if !b.HasActiveFilters() {
			t.Fatal("expected active filters")
		}
		b.ClearFilters()
		if b.HasActiveFilters() {
			t.Error("expected no active filters after clear")
		}
		if b.Sort() != SortRecent {
			t.Errorf("expected sort reset to recent, got %s", b.Sort())
		}
		if len(b.Items()) != 4 {
			t.Errorf("expected full library after clear, got %d items", len(b.Items()))
		}
	})

	t.Run("Sort Alone Is Not An Active Filter", func(t *testing.T) {
		b := NewBrowser(testItems())
		b.SetSort(SortLikes)
		if b.HasActiveFilters() {
			t.Error("expected sort order not to count as a filter")
		}
	})

	t.Run("Vocabulary Deduplicates Tags", func(t *testing.T) {
		b := NewBrowser(testItems())
		genres := b.Genres()
		if len(genres) != 4 {
			t.Errorf("expected 4 distinct genres, got %v", genres)
		}
		sources := b.Sources()
		// request appears on two items but is listed once.
		if len(sources) != 3 {
			t.Errorf("expected 3 distinct sources, got %v", sources)
		}
	})

	t.Run("Stats Ignore Active Filters", func(t *testing.T) {
		b := NewBrowser(testItems())
		b.SetQuery("nothing matches this")
		if len(b.Items()) != 0 {
			t.Fatal("expected empty filtered view")
		}

		stats := b.Stats()
		if stats.Songs != 4 {
			t.Errorf("expected 4 songs, got %d", stats.Songs)
		}
		if stats.Artists != 4 {
			t.Errorf("expected 4 artists, got %d", stats.Artists)
		}
		if stats.Genres != 4 {
			t.Errorf("expected 4 genres, got %d", stats.Genres)
		}
		if stats.TotalPlays != 63 {
			t.Errorf("expected 63 total plays, got %d", stats.TotalPlays)
		}
		if stats.TotalLikes != 28 {
			t.Errorf("expected 28 total likes, got %d", stats.TotalLikes)
		}
		if stats.TotalSeconds != 442 {
			t.Errorf("expected 442 total seconds, got %d", stats.TotalSeconds)
		}
	})

	t.Run("ParseSortKey", func(t *testing.T) {
		key, err := ParseSortKey(" Plays ")
		if err != nil || key != SortPlays {
			t.Errorf("expected plays key, got %v %v", key, err)
		}
		if _, err := ParseSortKey("bogus"); err == nil {
			t.Error("expected error for unknown key")
		}
	})
}
