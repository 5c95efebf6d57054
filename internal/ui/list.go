package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
	"github.com/JamesABrownlee/vexo2-5/internal/shared"
)

var (
	_ list.Item = songItem{}
)

// songItem wraps [models.LibraryItem] to implement [list.Item].
type songItem struct {
	song models.LibraryItem
}

func (i songItem) FilterValue() string { return i.song.Title + " " + i.song.ArtistName }
func (i songItem) Title() string       { return i.song.Title }
func (i songItem) Description() string {
	desc := fmt.Sprintf("%s • %s • %d plays", i.song.ArtistName, shared.FormatTrackDuration(i.song.DurationSeconds), i.song.PlayCount)
	if i.song.Genre != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.song.Genre)
	}
	return desc
}
