package shared

import (
	"encoding/json"
	"fmt"
	"time"
)

// FormatTrackDuration renders a track length in seconds as "m:ss".
//
// A nil duration renders the fixed placeholder "--:--" rather than a zero length.
func FormatTrackDuration(seconds *int) string {
	if seconds == nil {
		return "--:--"
	}
	s := *seconds
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// FormatUptime renders an elapsed duration as "2d 3h 4m", "3h 4m", or "4m",
// dropping leading zero units.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	days := total / 86400
	hours := (total % 86400) / 3600
	mins := (total % 3600) / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// FormatHours renders a total number of seconds as "Xh Ym", used for library-wide duration aggregates.
func FormatHours(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	mins := (totalSeconds % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// MarshalJSON serializes data to JSON, optionally indented.
func MarshalJSON(data any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}
