package adminui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#F5A623")
	colorMuted  = lipgloss.Color("#6B7280")
	colorError  = lipgloss.Color("#E53935")
	colorOK     = lipgloss.Color("#8BC34A")
)

type Styles struct {
	Title       lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Selected    lipgloss.Style
	Muted       lipgloss.Style
	Label       lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Dialog      lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		ActiveTab:   lipgloss.NewStyle().Bold(true).Padding(0, 2).Foreground(lipgloss.Color("#101F38")).Background(colorAccent),
		InactiveTab: lipgloss.NewStyle().Padding(0, 2).Foreground(colorMuted),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Muted:       lipgloss.NewStyle().Foreground(colorMuted),
		Label:       lipgloss.NewStyle().Width(16).Foreground(colorMuted),
		Error:       lipgloss.NewStyle().Foreground(colorError),
		Success:     lipgloss.NewStyle().Foreground(colorOK),
		Dialog:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorError).Padding(0, 1),
	}
}
