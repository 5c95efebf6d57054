// package tasks implements long-running maintenance operations on the
// song catalog.
//
// The core abstraction is EnrichEngine, which backfills songs with
// Spotify metadata. Operations emit progress updates via channels for
// non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"fmt"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	ScanLibrary Phase = iota
	SearchMatches
	ApplyUpdates
)

func (p Phase) String() string {
	switch p {
	case ScanLibrary:
		return "scan_library"
	case SearchMatches:
		return "search_matches"
	case ApplyUpdates:
		return "apply_updates"
	default:
		return ""
	}
}

func scanLibraryUpdate(found int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ScanLibrary,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Found %d songs missing Spotify metadata", found),
	}
}

func searchMatchUpdate(step, total int, title, artist string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SearchMatches,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s - %s", step, total, artist, title),
	}
}

func matchFailedUpdate(step, total int, title string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SearchMatches,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, title, err),
	}
}

func appliedUpdate(step, total int, title, spotifyID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ApplyUpdates,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%s)", step, total, title, spotifyID),
	}
}
