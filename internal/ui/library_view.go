package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/JamesABrownlee/vexo2-5/internal/shared"
)

func (m *Model) renderLibrary() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Library"))
	b.WriteString("\n")
	b.WriteString(m.query.View())
	b.WriteString("\n")
	b.WriteString(m.renderFilterLine())
	b.WriteString("\n\n")
	b.WriteString(m.songList.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatsLine())
	b.WriteString("\n")

	helpKeys := []key.Binding{m.keys.search, m.keys.genre, m.keys.source, m.keys.order, m.keys.clear, m.keys.tab, m.keys.quit}
	b.WriteString(m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderFilterLine() string {
	parts := []string{
		fmt.Sprintf("genre: %s", m.browser.Genre()),
		fmt.Sprintf("source: %s", m.browser.Source()),
		fmt.Sprintf("sort: %s", m.browser.Sort()),
	}
	line := styles.help.Render(strings.Join(parts, "  "))

	if m.browser.HasActiveFilters() {
		count := fmt.Sprintf("%d of %d songs", len(m.browser.Items()), m.browser.Len())
		line = fmt.Sprintf("%s  %s", line, styles.warn.Render(count))
	}
	return line
}

func (m *Model) renderStatsLine() string {
	stats := m.browser.Stats()
	return styles.help.Render(fmt.Sprintf(
		"%d songs • %d artists • %d genres • %d plays • %d likes • %s of audio",
		stats.Songs,
		stats.Artists,
		stats.Genres,
		stats.TotalPlays,
		stats.TotalLikes,
		shared.FormatHours(stats.TotalSeconds),
	))
}
