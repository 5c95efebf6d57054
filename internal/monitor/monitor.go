package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
	"github.com/JamesABrownlee/vexo2-5/internal/services"
	"github.com/JamesABrownlee/vexo2-5/internal/shared"
)

// PollInterval is how often the service list is refreshed.
const PollInterval = 30 * time.Second

// restartGrace is how long to wait after a restart command before
// refetching the service list.
const restartGrace = 5 * time.Second

// Monitor holds the last known service list and the set of services with
// a restart in flight. It is not safe for concurrent use: callers are
// expected to drive it from a single goroutine.
type Monitor struct {
	client services.StatusAPI
	logger *log.Logger
	grace  time.Duration

	services   []models.Service
	restarting map[string]struct{}
	fetchErr   error
}

func NewMonitor(client services.StatusAPI, logger *log.Logger) *Monitor {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Monitor{
		client:     client,
		logger:     logger,
		grace:      restartGrace,
		services:   FallbackServices(),
		restarting: make(map[string]struct{}),
	}
}

// FallbackServices is the service list shown when the status API cannot
// be reached. The bot is assumed down, the dashboard API itself is the
// thing answering requests so it stays listed as online.
func FallbackServices() []models.Service {
	return []models.Service{
		{
			ID:          "bot",
			Name:        "Discord Bot",
			Description: "Core Discord bot handling commands and audio playback",
			Status:      models.StatusOffline,
			Restartable: true,
		},
		{
			ID:          "dashboard",
			Name:        "Dashboard API",
			Description: "Web API for the dashboard",
			Status:      models.StatusOnline,
			Restartable: false,
		},
	}
}

// Refresh fetches the current service list and applies the result.
func (m *Monitor) Refresh(ctx context.Context) {
	list, err := m.client.FetchServices(ctx)
	m.ApplyFetch(list, err)
}

// ApplyFetch records the outcome of a fetch. On failure the fallback
// list replaces whatever was held before, so a dead API never leaves
// stale statuses on screen.
func (m *Monitor) ApplyFetch(list []models.Service, err error) {
	if err != nil {
		m.logger.Warn("service fetch failed, using fallback list", "error", err)
		m.services = FallbackServices()
		m.fetchErr = err
		return
	}
	m.services = list
	m.fetchErr = nil
}

// Services returns a copy of the current list. Services with a restart
// in flight are reported as restarting regardless of what the API said.
func (m *Monitor) Services() []models.Service {
	out := make([]models.Service, len(m.services))
	copy(out, m.services)
	for i := range out {
		if _, ok := m.restarting[out[i].ID]; ok {
			out[i].Status = models.StatusRestarting
		}
	}
	return out
}

// Lookup returns the service with the given id, if present.
func (m *Monitor) Lookup(id string) (models.Service, bool) {
	for _, svc := range m.Services() {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}

// Err returns the error from the most recent fetch, if any.
func (m *Monitor) Err() error {
	return m.fetchErr
}

// Restarting reports whether a restart is in flight for the service.
func (m *Monitor) Restarting(id string) bool {
	_, ok := m.restarting[id]
	return ok
}

// Counts returns how many services are online and offline. Restarting
// and starting services count as offline.
func (m *Monitor) Counts() (online, offline, total int) {
	list := m.Services()
	for _, svc := range list {
		if svc.Status == models.StatusOnline {
			online++
		} else {
			offline++
		}
	}
	return online, offline, len(list)
}

// BeginRestart marks a restart as in flight. It refuses services that
// are unknown, already restarting, or not restartable.
func (m *Monitor) BeginRestart(id string) error {
	svc, ok := m.Lookup(id)
	if !ok {
		return shared.ErrUnknownService
	}
	if m.Restarting(id) {
		return shared.ErrRestartInProgress
	}
	if !svc.Restartable {
		return shared.ErrNotRestartable
	}
	m.restarting[id] = struct{}{}
	return nil
}

// EndRestart clears the in-flight marker for the service.
func (m *Monitor) EndRestart(id string) {
	delete(m.restarting, id)
}

// Grace returns the wait applied between issuing a restart command and
// refetching the service list.
func (m *Monitor) Grace() time.Duration {
	return m.grace
}

// Restart runs the full restart sequence: mark the service as
// restarting, issue the command, wait out the grace period, then
// refetch so the displayed status reflects reality. A failed command is
// logged but does not abort the sequence, the refetch reports whatever
// state the service actually ended up in.
func (m *Monitor) Restart(ctx context.Context, id string) error {
	if err := m.BeginRestart(id); err != nil {
		return err
	}
	defer m.EndRestart(id)

	if err := m.client.RestartService(ctx, id); err != nil {
		m.logger.Error("restart command failed", "service", id, "error", err)
	}

	select {
	case <-time.After(m.grace):
	case <-ctx.Done():
		return ctx.Err()
	}

	m.Refresh(ctx)
	return nil
}
