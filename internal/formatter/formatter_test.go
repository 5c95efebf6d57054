package formatter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
)

func intPtr(i int) *int { return &i }

func sampleItems() []models.LibraryItem {
	return []models.LibraryItem{
		{
			ID: 1, Title: "Midnight City", ArtistName: "M83", Album: "Hurry Up, We're Dreaming",
			ReleaseYear: intPtr(2011), DurationSeconds: intPtr(243),
			Genre: "Electronic", Sources: "spotify_import",
			LastAdded: "2026-08-03 10:00:00", PlayCount: 12, LikeCount: 4,
		},
		{
			ID: 2, Title: "Untagged", ArtistName: "Unknown",
			LastAdded: "2026-07-30 10:00:00",
		},
	}
}

func TestFormatter(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(sampleItems())
		if err != nil {
			t.Fatalf("failed to export: %v", err)
		}

		records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		if err != nil {
			t.Fatalf("failed to parse CSV: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d", len(records))
		}
		if records[1][1] != "Midnight City" {
			t.Errorf("unexpected title column: %q", records[1][1])
		}
		// Quoted album with a comma survives the round trip.
		if records[1][3] != "Hurry Up, We're Dreaming" {
			t.Errorf("unexpected album column: %q", records[1][3])
		}
		if records[1][5] != "4:03" {
			t.Errorf("unexpected duration column: %q", records[1][5])
		}
		if records[2][4] != "" || records[2][5] != "--:--" {
			t.Errorf("expected empty year and placeholder duration, got %q / %q", records[2][4], records[2][5])
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(sampleItems(), "")
		if err != nil {
			t.Fatalf("failed to export: %v", err)
		}
		md := string(data)
		if !strings.Contains(md, "# Music Library") {
			t.Error("expected default title")
		}
		if !strings.Contains(md, "1. M83 - Midnight City (Hurry Up, We're Dreaming) [4:03]") {
			t.Errorf("unexpected track line:\n%s", md)
		}
		if !strings.Contains(md, "2. Unknown - Untagged [--:--]") {
			t.Errorf("expected album omitted when absent:\n%s", md)
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(sampleItems())
		if err != nil {
			t.Fatalf("failed to export: %v", err)
		}
		if !strings.Contains(string(data), `"artist_name": "M83"`) {
			t.Errorf("expected wire field names in JSON:\n%s", data)
		}
	})

	t.Run("WriteExport", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.csv")

		written, err := WriteExport(sampleItems(), "csv", path)
		if err != nil {
			t.Fatalf("failed to write export: %v", err)
		}
		if written != path {
			t.Errorf("expected path %q, got %q", path, written)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected export file on disk: %v", err)
		}
	})

	t.Run("WriteExport Unknown Format", func(t *testing.T) {
		if _, err := WriteExport(sampleItems(), "xml", ""); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}
