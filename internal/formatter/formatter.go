// package formatter provides functions to export library data to various formats (CSV, Markdown, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
	"github.com/JamesABrownlee/vexo2-5/internal/shared"
)

// ExportToCSV converts library items to CSV with columns: ID, Title, Artist, Album, Year, Duration, Genre, Sources, Last Added, Plays, Likes, Dislikes
func ExportToCSV(items []models.LibraryItem) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Album", "Year", "Duration", "Genre", "Sources", "Last Added", "Plays", "Likes", "Dislikes"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, item := range items {
		year := ""
		if item.ReleaseYear != nil {
			year = strconv.Itoa(*item.ReleaseYear)
		}
		record := []string{
			strconv.FormatInt(item.ID, 10),
			item.Title,
			item.ArtistName,
			item.Album,
			year,
			shared.FormatTrackDuration(item.DurationSeconds),
			item.Genre,
			item.Sources,
			item.LastAdded,
			strconv.Itoa(item.PlayCount),
			strconv.Itoa(item.LikeCount),
			strconv.Itoa(item.DislikeCount),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts library items to a Markdown listing
func ExportToMarkdown(items []models.LibraryItem, title string) ([]byte, error) {
	var buf bytes.Buffer

	if title == "" {
		title = "Music Library"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(items)))

	buf.WriteString("## Songs\n\n")
	for i, item := range items {
		duration := shared.FormatTrackDuration(item.DurationSeconds)
		albumPart := ""
		if item.Album != "" {
			albumPart = fmt.Sprintf(" (%s)", item.Album)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s]\n", i+1, item.ArtistName, item.Title, albumPart, duration))
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts library items to indented JSON
func ExportToJSON(items []models.LibraryItem) ([]byte, error) {
	return shared.MarshalJSON(items, true)
}

// WriteExport renders library items in the given format and writes them
// to path. The format must be one of csv, markdown, or json.
func WriteExport(items []models.LibraryItem, format, path string) (string, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case "csv":
		data, err = ExportToCSV(items)
	case "markdown", "md":
		data, err = ExportToMarkdown(items, "")
	case "json":
		data, err = ExportToJSON(items)
	default:
		return "", fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate export: %w", err)
	}

	if path == "" {
		switch format {
		case "markdown", "md":
			path = "library.md"
		default:
			path = "library." + format
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
