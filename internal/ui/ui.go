package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/JamesABrownlee/vexo2-5/internal/library"
	"github.com/JamesABrownlee/vexo2-5/internal/monitor"
	"github.com/JamesABrownlee/vexo2-5/internal/services"
	"github.com/JamesABrownlee/vexo2-5/internal/shared"
)

// ViewState represents the current panel in the TUI.
type ViewState int

const (
	ServicesView ViewState = iota
	LibraryView
)

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	client  services.StatusAPI
	monitor *monitor.Monitor
	browser *library.Browser

	width    int
	height   int
	selected int

	spinner  spinner.Model
	query    textinput.Model
	songList list.Model

	genreIdx  int
	sourceIdx int
	sortIdx   int

	help   help.Model
	keys   keyMap
	logger *log.Logger
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, client services.StatusAPI, mon *monitor.Monitor, browser *library.Browser, logger *log.Logger) *Model {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.warn

	query := textinput.New()
	query.Placeholder = "title, artist, album"
	query.Prompt = "/ "
	query.CharLimit = 64

	m := &Model{
		ctx:     ctx,
		view:    ServicesView,
		client:  client,
		monitor: mon,
		browser: browser,
		spinner: sp,
		query:   query,
		help:    help.New(),
		keys:    newKeyMap(),
		logger:  logger,
	}

	m.songList = list.New(m.songItems(), list.NewDefaultDelegate(), 0, 0)
	m.songList.Title = "Library"
	m.songList.SetFilteringEnabled(false)
	m.songList.SetShowHelp(false)
	return m
}

// Init starts the first fetch, the poll ticker, and the spinner.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchServices(), m.schedulePoll(), m.spinner.Tick)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.songList.SetSize(msg.Width-4, msg.Height-12)
		return m, nil

	case pollTickMsg:
		return m, tea.Batch(m.fetchServices(), m.schedulePoll())

	case servicesFetchedMsg:
		m.monitor.ApplyFetch(msg.services, msg.err)
		m.clampSelected()
		return m, nil

	case restartSettledMsg:
		m.monitor.ApplyFetch(msg.services, msg.err)
		m.monitor.EndRestart(msg.id)
		m.clampSelected()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.view == LibraryView && m.query.Focused() {
			return m.handleSearchKeys(msg)
		}
		switch m.view {
		case ServicesView:
			return m.handleServicesKeys(msg)
		case LibraryView:
			return m.handleLibraryKeys(msg)
		}
	}

	if m.view == LibraryView {
		var cmd tea.Cmd
		m.songList, cmd = m.songList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case ServicesView:
		return m.renderServices()
	case LibraryView:
		return m.renderLibrary()
	default:
		return ""
	}
}

func (m *Model) handleServicesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.tab):
		m.view = LibraryView
		return m, nil
	case key.Matches(msg, m.keys.up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case key.Matches(msg, m.keys.down):
		if m.selected < len(m.monitor.Services())-1 {
			m.selected++
		}
		return m, nil
	case key.Matches(msg, m.keys.restart):
		return m, m.restartSelected()
	case key.Matches(msg, m.keys.refresh):
		return m, m.fetchServices()
	}
	return m, nil
}

func (m *Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.tab):
		m.view = ServicesView
		return m, nil
	case key.Matches(msg, m.keys.search):
		m.query.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.genre):
		m.genreIdx = m.cycle(m.genreIdx, m.browser.Genres())
		m.browser.SetGenre(m.selector(m.genreIdx, m.browser.Genres()))
		m.refreshSongs()
		return m, nil
	case key.Matches(msg, m.keys.source):
		m.sourceIdx = m.cycle(m.sourceIdx, m.browser.Sources())
		m.browser.SetSource(m.selector(m.sourceIdx, m.browser.Sources()))
		m.refreshSongs()
		return m, nil
	case key.Matches(msg, m.keys.order):
		keys := library.SortKeys()
		m.sortIdx = (m.sortIdx + 1) % len(keys)
		m.browser.SetSort(keys[m.sortIdx])
		m.refreshSongs()
		return m, nil
	case key.Matches(msg, m.keys.clear):
		m.browser.ClearFilters()
		m.genreIdx, m.sourceIdx, m.sortIdx = 0, 0, 0
		m.query.SetValue("")
		m.refreshSongs()
		return m, nil
	case key.Matches(msg, m.keys.open):
		m.openSelected()
		return m, nil
	}

	var cmd tea.Cmd
	m.songList, cmd = m.songList.Update(msg)
	return m, cmd
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.query.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	m.browser.SetQuery(m.query.Value())
	m.refreshSongs()
	return m, cmd
}

// cycle advances a selector index through "all" plus the tag vocabulary.
func (m *Model) cycle(idx int, vocab []string) int {
	return (idx + 1) % (len(vocab) + 1)
}

// selector maps a selector index back to its filter value.
func (m *Model) selector(idx int, vocab []string) string {
	if idx == 0 {
		return library.AllFilter
	}
	return vocab[idx-1]
}

func (m *Model) refreshSongs() {
	m.songList.SetItems(m.songItems())
}

func (m *Model) songItems() []list.Item {
	songs := m.browser.Items()
	items := make([]list.Item, len(songs))
	for i, song := range songs {
		items[i] = songItem{song: song}
	}
	return items
}

// openSelected opens the highlighted song in the system browser,
// preferring its YouTube link over Spotify.
func (m *Model) openSelected() {
	item, ok := m.songList.SelectedItem().(songItem)
	if !ok {
		return
	}

	url := item.song.WatchURL()
	if url == "" {
		url = item.song.SpotifyURL()
	}
	if url == "" {
		return
	}
	if err := shared.OpenBrowser(url); err != nil {
		m.logger.Warn("failed to open browser", "url", url, "error", err)
	}
}

func (m *Model) clampSelected() {
	if n := len(m.monitor.Services()); m.selected >= n && n > 0 {
		m.selected = n - 1
	}
}

func (m *Model) restartSelected() tea.Cmd {
	svcs := m.monitor.Services()
	if m.selected >= len(svcs) {
		return nil
	}
	id := svcs[m.selected].ID

	if err := m.monitor.BeginRestart(id); err != nil {
		m.logger.Debug("restart not started", "service", id, "error", err)
		return nil
	}
	return tea.Batch(m.restartService(id), m.spinner.Tick)
}

func (m *Model) fetchServices() tea.Cmd {
	return func() tea.Msg {
		svcs, err := m.client.FetchServices(m.ctx)
		return servicesFetchedMsg{services: svcs, err: err}
	}
}

func (m *Model) schedulePoll() tea.Cmd {
	return tea.Tick(monitor.PollInterval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}

// restartService issues the restart command, waits out the grace
// period, then refetches. A failed command is logged and the refetch
// still runs.
func (m *Model) restartService(id string) tea.Cmd {
	grace := m.monitor.Grace()
	return func() tea.Msg {
		if err := m.client.RestartService(m.ctx, id); err != nil {
			m.logger.Error("restart command failed", "service", id, "error", err)
		}

		select {
		case <-time.After(grace):
		case <-m.ctx.Done():
			return restartSettledMsg{id: id, err: m.ctx.Err()}
		}

		svcs, err := m.client.FetchServices(m.ctx)
		return restartSettledMsg{id: id, services: svcs, err: err}
	}
}
