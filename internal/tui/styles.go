package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/contactvanshdev-code/restaurant-website/internal/ui"
)

type styles struct {
	brand      lipgloss.Style
	title      lipgloss.Style
	text       lipgloss.Style
	muted      lipgloss.Style
	accent     lipgloss.Style
	errorText  lipgloss.Style
	success    lipgloss.Style
	chip       lipgloss.Style
	chipActive lipgloss.Style
	link       lipgloss.Style
	linkActive lipgloss.Style
	selected   lipgloss.Style
	box        lipgloss.Style
	header     lipgloss.Style
}

// newStyles derives styles from the active ui theme.
func newStyles() styles {
	t := ui.Current()
	box := lipgloss.NewStyle().
		Border(t.Frame).
		BorderForeground(t.Border).
		Padding(0, 1)
	header := lipgloss.NewStyle().
		Border(t.Frame, false, false, true, false).
		BorderForeground(t.Border)
	return styles{
		brand:      lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		title:      lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		text:       lipgloss.NewStyle().Foreground(t.Text),
		muted:      lipgloss.NewStyle().Foreground(t.Muted),
		accent:     lipgloss.NewStyle().Foreground(t.Accent),
		errorText:  lipgloss.NewStyle().Foreground(t.Error),
		success:    lipgloss.NewStyle().Foreground(t.Success),
		chip:       lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1),
		chipActive: lipgloss.NewStyle().Bold(true).Foreground(t.ChipActiveFg).Background(t.ChipActiveBg).Padding(0, 1),
		link:       lipgloss.NewStyle().Foreground(t.Muted),
		linkActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(t.Title),
		selected:   lipgloss.NewStyle().Foreground(t.Accent),
		box:        box,
		header:     header,
	}
}
