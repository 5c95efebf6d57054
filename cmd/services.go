package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
	"github.com/JamesABrownlee/vexo2-5/internal/monitor"
	"github.com/JamesABrownlee/vexo2-5/internal/shared"
)

// ServicesList fetches and displays the current service list.
func (r *Runner) ServicesList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")

	mon := monitor.NewMonitor(r.status, r.logger)
	mon.Refresh(ctx)

	if useJSON {
		return r.writeJSON(mon.Services(), true)
	}

	online, _, total := mon.Counts()
	r.writePlainHeader(fmt.Sprintf("Services (%d/%d online)", online, total))
	if err := mon.Err(); err != nil {
		r.writePlain("⚠ status API unreachable, showing fallback list\n\n")
	}

	for _, svc := range mon.Services() {
		r.writePlain("%s %s (%s)\n", statusSymbol(svc.Status), svc.Name, svc.Status)
		if svc.Uptime != "" {
			r.writePlain("  uptime: %s\n", svc.Uptime)
		}
		if svc.Description != "" {
			r.writePlain("  %s\n", svc.Description)
		}
	}
	return nil
}

// ServicesRestart restarts a service and reports its settled status.
func (r *Runner) ServicesRestart(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	useJSON := cmd.Bool("json")

	if id == "" {
		return fmt.Errorf("%w: service id is required", shared.ErrMissingArgument)
	}

	mon := monitor.NewMonitor(r.status, r.logger)
	mon.Refresh(ctx)

	r.logger.Info("restarting service", "service", id, "grace", mon.Grace())
	if err := mon.Restart(ctx, id); err != nil {
		return fmt.Errorf("failed to restart %s: %w", id, err)
	}

	svc, ok := mon.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s disappeared after restart", shared.ErrUnknownService, id)
	}

	if useJSON {
		return r.writeJSON(svc, true)
	}

	r.writePlain("%s %s is now %s\n", statusSymbol(svc.Status), svc.Name, svc.Status)
	return nil
}

func statusSymbol(status models.ServiceStatus) string {
	switch status {
	case models.StatusOnline:
		return "✓"
	case models.StatusOffline:
		return "✗"
	default:
		return "…"
	}
}
