package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
	"github.com/JamesABrownlee/vexo2-5/internal/shared"
)

// sqliteTimeLayout is the format CURRENT_TIMESTAMP stores; explicit inserts
// use the same layout so last_added values stay lexicographically comparable.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Song holds the insertable columns of a catalog row.
type Song struct {
	Title           string
	ArtistName      string
	Album           string
	ReleaseYear     *int
	DurationSeconds *int
	YTID            string
	SpotifyID       string
}

// LibraryRepository reads and writes the song catalog.
type LibraryRepository struct {
	db *sql.DB
}

// NewLibraryRepository creates a LibraryRepository with the given database connection
func NewLibraryRepository(db *sql.DB) *LibraryRepository {
	return &LibraryRepository{db: db}
}

const libraryQuery = `
	SELECT
		s.id,
		s.title,
		s.artist_name,
		s.album,
		s.release_year,
		s.duration_seconds,
		s.yt_id,
		s.spotify_id,
		(SELECT GROUP_CONCAT(DISTINCT sg.genre) FROM song_genres sg WHERE sg.song_id = s.id) AS genre,
		(SELECT GROUP_CONCAT(DISTINCT sp.requested_by) FROM song_plays sp WHERE sp.song_id = s.id AND sp.requested_by IS NOT NULL) AS contributors,
		(SELECT GROUP_CONCAT(DISTINCT ss.source) FROM song_sources ss WHERE ss.song_id = s.id) AS sources,
		COALESCE((SELECT MAX(ss.added_at) FROM song_sources ss WHERE ss.song_id = s.id), s.created_at) AS last_added,
		(SELECT COUNT(*) FROM song_plays sp WHERE sp.song_id = s.id) AS play_count,
		(SELECT COUNT(*) FROM song_reactions sr WHERE sr.song_id = s.id AND sr.reaction = 'like') AS like_count,
		(SELECT COUNT(*) FROM song_reactions sr WHERE sr.song_id = s.id AND sr.reaction = 'dislike') AS dislike_count
	FROM songs s
	ORDER BY last_added DESC
	LIMIT ?
`

// Recent returns up to limit catalog rows, most recently added first.
//
// A non-positive limit falls back to 500, the default page size of the library view.
func (r *LibraryRepository) Recent(ctx context.Context, limit int) ([]models.LibraryItem, error) {
	if limit <= 0 {
		limit = 500
	}

	rows, err := r.db.QueryContext(ctx, libraryQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrLibraryUnavailable, err)
	}
	defer rows.Close()

	var items []models.LibraryItem
	for rows.Next() {
		item, err := scanLibraryRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return items, nil
}

// MissingSpotifyID returns up to limit rows that have no Spotify id yet, oldest first.
//
// Only the identity and enrichable fields are populated; counts and tag lists are skipped.
func (r *LibraryRepository) MissingSpotifyID(ctx context.Context, limit int) ([]models.LibraryItem, error) {
	query := `
		SELECT id, title, artist_name, album, release_year
		FROM songs
		WHERE spotify_id IS NULL OR spotify_id = ''
		ORDER BY id ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unenriched songs: %w", err)
	}
	defer rows.Close()

	var items []models.LibraryItem
	for rows.Next() {
		var (
			item  models.LibraryItem
			album sql.NullString
			year  sql.NullInt64
		)
		if err := rows.Scan(&item.ID, &item.Title, &item.ArtistName, &album, &year); err != nil {
			return nil, fmt.Errorf("failed to scan song: %w", err)
		}
		item.Album = album.String
		if year.Valid {
			y := int(year.Int64)
			item.ReleaseYear = &y
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return items, nil
}

// InsertSong inserts a catalog row and returns its id.
func (r *LibraryRepository) InsertSong(ctx context.Context, song Song) (int64, error) {
	query := `
		INSERT INTO songs (title, artist_name, album, release_year, duration_seconds, yt_id, spotify_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		song.Title,
		song.ArtistName,
		nullString(song.Album),
		nullInt(song.ReleaseYear),
		nullInt(song.DurationSeconds),
		nullString(song.YTID),
		nullString(song.SpotifyID),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert song: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get song id: %w", err)
	}

	return id, nil
}

// AddGenre tags a song with a genre; duplicate tags are ignored.
func (r *LibraryRepository) AddGenre(ctx context.Context, songID int64, genre string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO song_genres (song_id, genre) VALUES (?, ?)", songID, genre)
	if err != nil {
		return fmt.Errorf("failed to add genre: %w", err)
	}
	return nil
}

// AddSource records how a song entered the library at the given time.
func (r *LibraryRepository) AddSource(ctx context.Context, songID int64, source, addedBy string, addedAt time.Time) error {
	if addedAt.IsZero() {
		addedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO song_sources (song_id, source, added_by, added_at) VALUES (?, ?, ?, ?)",
		songID, source, nullString(addedBy), addedAt.UTC().Format(sqliteTimeLayout))
	if err != nil {
		return fmt.Errorf("failed to add source: %w", err)
	}
	return nil
}

// RecordPlay appends a playback event for a song.
func (r *LibraryRepository) RecordPlay(ctx context.Context, songID int64, requestedBy string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO song_plays (song_id, requested_by) VALUES (?, ?)", songID, nullString(requestedBy))
	if err != nil {
		return fmt.Errorf("failed to record play: %w", err)
	}
	return nil
}

// AddReaction stores a user's like or dislike, replacing any previous reaction by the same user.
func (r *LibraryRepository) AddReaction(ctx context.Context, songID int64, username, reaction string) error {
	if reaction != "like" && reaction != "dislike" {
		return fmt.Errorf("%w: reaction must be like or dislike", shared.ErrInvalidInput)
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO song_reactions (song_id, username, reaction) VALUES (?, ?, ?)",
		songID, username, reaction)
	if err != nil {
		return fmt.Errorf("failed to add reaction: %w", err)
	}
	return nil
}

// UpdateEnrichment backfills Spotify metadata on a row.
//
// The spotify_id is always written; album and release_year are filled only
// when the row does not already have a value.
func (r *LibraryRepository) UpdateEnrichment(ctx context.Context, songID int64, spotifyID, album string, releaseYear *int) error {
	query := `
		UPDATE songs
		SET spotify_id = ?,
			album = CASE WHEN album IS NULL OR album = '' THEN ? ELSE album END,
			release_year = COALESCE(release_year, ?)
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, spotifyID, nullString(album), nullInt(releaseYear), songID)
	if err != nil {
		return fmt.Errorf("failed to update enrichment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: id %d", shared.ErrSongNotFound, songID)
	}

	return nil
}

// scanLibraryRow scans one aggregated row from [libraryQuery].
func scanLibraryRow(rows *sql.Rows) (models.LibraryItem, error) {
	var (
		item         models.LibraryItem
		album        sql.NullString
		releaseYear  sql.NullInt64
		duration     sql.NullInt64
		ytID         sql.NullString
		spotifyID    sql.NullString
		genre        sql.NullString
		contributors sql.NullString
		sources      sql.NullString
	)

	err := rows.Scan(
		&item.ID,
		&item.Title,
		&item.ArtistName,
		&album,
		&releaseYear,
		&duration,
		&ytID,
		&spotifyID,
		&genre,
		&contributors,
		&sources,
		&item.LastAdded,
		&item.PlayCount,
		&item.LikeCount,
		&item.DislikeCount,
	)
	if err != nil {
		return models.LibraryItem{}, fmt.Errorf("failed to scan library row: %w", err)
	}

	item.Album = album.String
	if releaseYear.Valid {
		y := int(releaseYear.Int64)
		item.ReleaseYear = &y
	}
	if duration.Valid {
		d := int(duration.Int64)
		item.DurationSeconds = &d
	}
	item.YTID = ytID.String
	item.SpotifyID = spotifyID.String
	item.Genre = genre.String
	item.Contributors = contributors.String
	item.Sources = sources.String

	return item, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullInt(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}
