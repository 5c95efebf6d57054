// Package tasks orchestrates catalog maintenance with real-time progress reporting.
//
// # Core Operations
//
// [EnrichEngine.Run] backfills Spotify metadata:
//   - Scans the catalog for songs without a Spotify ID
//   - Searches Spotify for each (rate limited)
//   - Writes the Spotify ID back, filling album and release year only
//     where the catalog has none
//   - Returns per-song results including failed matches
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, and messages for UI rendering.
// Updates use select with default to prevent blocking.
package tasks
