package server

import (
	"sync"
	"time"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
	"github.com/JamesABrownlee/vexo2-5/internal/shared"
)

// Definition describes a managed service.
type Definition struct {
	ID          string
	Name        string
	Description string
	Restartable bool
}

// DefaultDefinitions lists the services this process manages.
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			ID:          "bot",
			Name:        "Discord Bot",
			Description: "Core Discord bot handling commands and audio playback",
			Restartable: true,
		},
		{
			ID:          "dashboard",
			Name:        "Dashboard API",
			Description: "Web API for the dashboard",
			Restartable: false,
		},
	}
}

type entry struct {
	def       Definition
	startedAt time.Time
	status    models.ServiceStatus
}

// Registry tracks service state and drives restart cycles. Safe for
// concurrent use.
type Registry struct {
	mu           sync.Mutex
	order        []string
	entries      map[string]*entry
	restartDelay time.Duration
	startDelay   time.Duration
}

func NewRegistry(defs []Definition) *Registry {
	r := &Registry{
		entries:      make(map[string]*entry, len(defs)),
		restartDelay: 2 * time.Second,
		startDelay:   3 * time.Second,
	}
	now := time.Now()
	for _, def := range defs {
		r.order = append(r.order, def.ID)
		r.entries[def.ID] = &entry{
			def:       def,
			startedAt: now,
			status:    models.StatusOnline,
		}
	}
	return r
}

// SetRestartDelays overrides the restart cycle timing.
func (r *Registry) SetRestartDelays(restart, start time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restartDelay = restart
	r.startDelay = start
}

// Snapshot returns the current service list with computed uptimes.
func (r *Registry) Snapshot() []models.Service {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Service, 0, len(r.order))
	for _, id := range r.order {
		e := r.entries[id]
		svc := models.Service{
			ID:          e.def.ID,
			Name:        e.def.Name,
			Description: e.def.Description,
			Status:      e.status,
			Restartable: e.def.Restartable,
		}
		if e.status == models.StatusOnline {
			svc.Uptime = shared.FormatUptime(time.Since(e.startedAt))
		}
		out = append(out, svc)
	}
	return out
}

// Restart begins a restart cycle for the service. The service goes
// restarting, then starting with a fresh start time, then online.
func (r *Registry) Restart(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return shared.ErrUnknownService
	}
	if !e.def.Restartable {
		return shared.ErrNotRestartable
	}
	if e.status == models.StatusRestarting || e.status == models.StatusStarting {
		return shared.ErrRestartInProgress
	}

	e.status = models.StatusRestarting
	restartDelay, startDelay := r.restartDelay, r.startDelay

	time.AfterFunc(restartDelay, func() {
		r.mu.Lock()
		e.status = models.StatusStarting
		e.startedAt = time.Now()
		r.mu.Unlock()

		time.AfterFunc(startDelay, func() {
			r.mu.Lock()
			e.status = models.StatusOnline
			r.mu.Unlock()
		})
	})
	return nil
}
