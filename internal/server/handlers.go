package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
	"github.com/JamesABrownlee/vexo2-5/internal/repositories"
	"github.com/JamesABrownlee/vexo2-5/internal/shared"
)

const defaultLibraryLimit = 500

// Handlers wires the registry and library repository into HTTP endpoints.
type Handlers struct {
	registry *Registry
	library  *repositories.LibraryRepository
	logger   *log.Logger
}

func NewHandlers(registry *Registry, library *repositories.LibraryRepository, logger *log.Logger) *Handlers {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Handlers{registry: registry, library: library, logger: logger}
}

// Register mounts the dashboard API routes. The restart endpoint is
// wrapped with the admin guard.
func (h *Handlers) Register(r *Router, adminToken string) {
	r.HandleFunc("GET /api/bot/services", h.ListServices)
	r.Handle("POST /api/bot/services/{id}/restart",
		AdminGuard(adminToken)(http.HandlerFunc(h.RestartService)))
	r.HandleFunc("GET /api/bot/library", h.Library)
	r.HandleFunc("GET /api/bot/status", h.Status)
}

// ListServices returns the current service snapshot.
func (h *Handlers) ListServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"services": h.registry.Snapshot(),
	})
}

// RestartService begins a restart cycle for the named service.
func (h *Handlers) RestartService(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.registry.Restart(id)
	switch {
	case err == nil:
		h.logger.Info("restart requested", "service", id)
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "restarting",
			"method": "registry",
		})
	case errors.Is(err, shared.ErrNotRestartable) && id == "dashboard":
		writeError(w, http.StatusBadRequest, "Dashboard cannot restart itself")
	case errors.Is(err, shared.ErrNotRestartable):
		writeError(w, http.StatusBadRequest, "Service cannot be restarted")
	case errors.Is(err, shared.ErrRestartInProgress):
		writeError(w, http.StatusConflict, "Restart already in progress")
	default:
		writeError(w, http.StatusNotFound, "Unknown service")
	}
}

// Library returns the most recently added songs with their aggregates.
func (h *Handlers) Library(w http.ResponseWriter, r *http.Request) {
	limit := defaultLibraryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	items, err := h.library.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("library query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Library unavailable")
		return
	}
	if items == nil {
		items = []models.LibraryItem{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"library": items,
		"count":   len(items),
	})
}

// Status reports process and host resource usage.
func (h *Handlers) Status(w http.ResponseWriter, r *http.Request) {
	body := map[string]any{"status": "ok"}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		body["cpu_percent"] = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		body["memory_percent"] = vm.UsedPercent
	}
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := proc.MemoryInfo(); err == nil {
			body["rss_mb"] = float64(info.RSS) / 1024 / 1024
		}
	}

	writeJSON(w, http.StatusOK, body)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
