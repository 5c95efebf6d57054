package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/JamesABrownlee/vexo2-5/internal/models"
)

func (m *Model) renderServices() string {
	var b strings.Builder

	online, _, total := m.monitor.Counts()
	b.WriteString(styles.title.Render(fmt.Sprintf("Services • %d/%d online", online, total)))
	b.WriteString("\n")

	if err := m.monitor.Err(); err != nil {
		b.WriteString(styles.banner.Render("status API unreachable, showing fallback list"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	cards := make([]string, 0, total)
	for i, svc := range m.monitor.Services() {
		cards = append(cards, m.renderCard(svc, i == m.selected))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n\n")

	helpKeys := []key.Binding{m.keys.up, m.keys.down, m.keys.restart, m.keys.tab, m.keys.quit}
	b.WriteString(m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderCard(svc models.Service, selected bool) string {
	var lines []string
	lines = append(lines, styles.title.Render(svc.Name))
	lines = append(lines, m.renderStatus(svc))
	if svc.Uptime != "" {
		lines = append(lines, styles.help.Render("up "+svc.Uptime))
	}
	if svc.Description != "" {
		lines = append(lines, svc.Description)
	}
	if svc.Restartable && !m.monitor.Restarting(svc.ID) {
		lines = append(lines, styles.help.Render("r to restart"))
	}

	body := strings.Join(lines, "\n")
	if selected {
		return styles.cardSel.Render(body)
	}
	return styles.card.Render(body)
}

func (m *Model) renderStatus(svc models.Service) string {
	switch svc.Status {
	case models.StatusOnline:
		return styles.ok.Render("● online")
	case models.StatusOffline:
		return styles.err.Render("● offline")
	case models.StatusRestarting:
		return styles.warn.Render(m.spinner.View() + " restarting")
	case models.StatusStarting:
		return styles.warn.Render(m.spinner.View() + " starting")
	default:
		return styles.warn.Render("● " + string(svc.Status))
	}
}
