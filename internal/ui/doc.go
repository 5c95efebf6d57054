// Package ui implements the interactive dashboard using bubbletea's Elm architecture.
//
// The TUI has two panels:
//  1. [ServicesView] : Service cards with live status, uptime, and restart control
//  2. [LibraryView] : Searchable, filterable song catalog with library stats
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// The service list refreshes on a fixed poll interval; a restart marks the
// service as restarting, issues the command, waits out a grace period, and
// refetches so the card reflects reality.
//
// Keyboard navigation uses vim-style bindings (j/k, tab, /, g/s/o, c, r, q)
// with contextual help displayed via charmbracelet/bubbles/help.
package ui
