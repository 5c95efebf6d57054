package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/JamesABrownlee/vexo2-5/internal/library"
	"github.com/JamesABrownlee/vexo2-5/internal/models"
	"github.com/JamesABrownlee/vexo2-5/internal/monitor"
	"github.com/JamesABrownlee/vexo2-5/internal/shared"
	"github.com/JamesABrownlee/vexo2-5/internal/ui"
)

// TUI launches the interactive dashboard.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/vexo-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	items, err := r.loadLibrary(ctx, cmd.Int("limit"))
	if err != nil {
		// The services panel is still useful without a catalog.
		fileLogger.Warn("library unavailable, starting with an empty catalog", "error", err)
		items = []models.LibraryItem{}
	}

	mon := monitor.NewMonitor(r.status, fileLogger)
	browser := library.NewBrowser(items)

	model := ui.NewModel(ctx, r.status, mon, browser, fileLogger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
