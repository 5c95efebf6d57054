package library

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
	"github.com/JamesABrownlee/vexo2-5/internal/shared"
)

// AllFilter is the selector value that disables a genre or source filter.
const AllFilter = "all"

// SortKey names an ordering of the library view.
type SortKey string

const (
	SortRecent SortKey = "recent"
	SortTitle  SortKey = "title"
	SortArtist SortKey = "artist"
	SortPlays  SortKey = "plays"
	SortLikes  SortKey = "likes"
)

// SortKeys returns every sort key in cycling order, starting from the
// default.
func SortKeys() []SortKey {
	return []SortKey{SortRecent, SortTitle, SortArtist, SortPlays, SortLikes}
}

// ParseSortKey validates a user-supplied sort name.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range SortKeys() {
		if key == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: unknown sort key %q", shared.ErrInvalidArgument, s)
}

// Stats summarizes the whole library, ignoring any active filters.
type Stats struct {
	Songs        int
	Artists      int
	Genres       int
	TotalPlays   int
	TotalLikes   int
	TotalSeconds int
}

// Browser filters and sorts a fixed set of library items. It is not
// safe for concurrent use.
type Browser struct {
	items    []models.LibraryItem
	collator *collate.Collator

	query  string
	genre  string
	source string
	sort   SortKey

	genres  []string
	sources []string

	memo      []models.LibraryItem
	memoValid bool
}

func NewBrowser(items []models.LibraryItem) *Browser {
	b := &Browser{
		items:    items,
		collator: collate.New(language.Und, collate.IgnoreCase),
		genre:    AllFilter,
		source:   AllFilter,
		sort:     SortRecent,
	}
	b.genres = b.vocabulary(func(item models.LibraryItem) string { return item.Genre })
	b.sources = b.vocabulary(func(item models.LibraryItem) string { return item.Sources })
	return b
}

// SplitTags breaks a comma-joined tag field into trimmed tokens,
// dropping empties.
func SplitTags(field string) []string {
	if field == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(field, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// vocabulary collects the distinct tags across all items, sorted
// case-insensitively, for the filter selectors.
func (b *Browser) vocabulary(field func(models.LibraryItem) string) []string {
	seen := make(map[string]string)
	for _, item := range b.items {
		for _, tag := range SplitTags(field(item)) {
			key := strings.ToLower(tag)
			if _, ok := seen[key]; !ok {
				seen[key] = tag
			}
		}
	}
	out := make([]string, 0, len(seen))
	for _, tag := range seen {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool {
		return b.collator.CompareString(out[i], out[j]) < 0
	})
	return out
}

// Genres returns the distinct genre tags present in the library.
func (b *Browser) Genres() []string { return b.genres }

// Sources returns the distinct source tags present in the library.
func (b *Browser) Sources() []string { return b.sources }

func (b *Browser) Query() string  { return b.query }
func (b *Browser) Genre() string  { return b.genre }
func (b *Browser) Source() string { return b.source }
func (b *Browser) Sort() SortKey  { return b.sort }
func (b *Browser) Len() int       { return len(b.items) }

// SetQuery updates the free-text filter. Matching is case-insensitive
// against title, artist, and album.
func (b *Browser) SetQuery(query string) {
	if b.query == query {
		return
	}
	b.query = query
	b.memoValid = false
}

// SetGenre updates the genre filter. AllFilter disables it.
func (b *Browser) SetGenre(genre string) {
	if b.genre == genre {
		return
	}
	b.genre = genre
	b.memoValid = false
}

// SetSource updates the source filter. AllFilter disables it.
func (b *Browser) SetSource(source string) {
	if b.source == source {
		return
	}
	b.source = source
	b.memoValid = false
}

// SetSort updates the sort order.
func (b *Browser) SetSort(key SortKey) {
	if b.sort == key {
		return
	}
	b.sort = key
	b.memoValid = false
}

// ClearFilters resets the query, both selectors, and the sort order in
// one step.
func (b *Browser) ClearFilters() {
	if !b.HasActiveFilters() && b.sort == SortRecent {
		return
	}
	b.query = ""
	b.genre = AllFilter
	b.source = AllFilter
	b.sort = SortRecent
	b.memoValid = false
}

// HasActiveFilters reports whether any filter narrows the view. The
// sort order alone does not count.
func (b *Browser) HasActiveFilters() bool {
	return b.query != "" || b.genre != AllFilter || b.source != AllFilter
}

// Items returns the filtered, sorted view. The result is memoized until
// a filter or the sort order changes.
func (b *Browser) Items() []models.LibraryItem {
	if b.memoValid {
		return b.memo
	}

	filtered := make([]models.LibraryItem, 0, len(b.items))
	for _, item := range b.items {
		if b.matches(item) {
			filtered = append(filtered, item)
		}
	}
	b.sortItems(filtered)

	b.memo = filtered
	b.memoValid = true
	return b.memo
}

func (b *Browser) matches(item models.LibraryItem) bool {
	if b.query != "" {
		q := strings.ToLower(b.query)
		if !strings.Contains(strings.ToLower(item.Title), q) &&
			!strings.Contains(strings.ToLower(item.ArtistName), q) &&
			!strings.Contains(strings.ToLower(item.Album), q) {
			return false
		}
	}
	if b.genre != AllFilter {
		if !strings.Contains(strings.ToLower(item.Genre), strings.ToLower(b.genre)) {
			return false
		}
	}
	if b.source != AllFilter {
		if !strings.Contains(strings.ToLower(item.Sources), strings.ToLower(b.source)) {
			return false
		}
	}
	return true
}

func (b *Browser) sortItems(items []models.LibraryItem) {
	switch b.sort {
	case SortTitle:
		sort.SliceStable(items, func(i, j int) bool {
			return b.collator.CompareString(items[i].Title, items[j].Title) < 0
		})
	case SortArtist:
		sort.SliceStable(items, func(i, j int) bool {
			return b.collator.CompareString(items[i].ArtistName, items[j].ArtistName) < 0
		})
	case SortPlays:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].PlayCount > items[j].PlayCount
		})
	case SortLikes:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].LikeCount > items[j].LikeCount
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].LastAdded > items[j].LastAdded
		})
	}
}

// Stats summarizes the full library regardless of active filters.
func (b *Browser) Stats() Stats {
	artists := make(map[string]struct{})
	genres := make(map[string]struct{})
	var stats Stats
	stats.Songs = len(b.items)
	for _, item := range b.items {
		if item.ArtistName != "" {
			artists[strings.ToLower(item.ArtistName)] = struct{}{}
		}
		for _, tag := range SplitTags(item.Genre) {
			genres[strings.ToLower(tag)] = struct{}{}
		}
		stats.TotalPlays += item.PlayCount
		stats.TotalLikes += item.LikeCount
		if item.DurationSeconds != nil {
			stats.TotalSeconds += *item.DurationSeconds
		}
	}
	stats.Artists = len(artists)
	stats.Genres = len(genres)
	return stats
}
