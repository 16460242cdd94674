package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Text   lipgloss.Color
	Success, Error, Border       lipgloss.Color
	ChipActiveFg, ChipActiveBg   lipgloss.Color
	HeatMild, HeatWarm, HeatBold lipgloss.Color

	Frame                lipgloss.Border
	Bullet, Check, Cross string
	MeterOn, MeterOff    string
}

var current Theme

func init() { SetTheme("ember") }

// SetTheme switches the palette. Unknown names fall back to ember.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "mono":
		// Empty colors render as the terminal default.
		current = Theme{
			Name:     "mono",
			Frame:    lipgloss.NormalBorder(),
			Bullet:   "-",
			Check:    "x",
			Cross:    "!",
			MeterOn:  "#",
			MeterOff: ".",
		}
	default: // ember
		current = Theme{
			Name:         "ember",
			Title:        lipgloss.Color("223"),
			Muted:        lipgloss.Color("245"),
			Accent:       lipgloss.Color("208"),
			Text:         lipgloss.Color("252"),
			Success:      lipgloss.Color("114"),
			Error:        lipgloss.Color("196"),
			Border:       lipgloss.Color("94"),
			ChipActiveFg: lipgloss.Color("230"),
			ChipActiveBg: lipgloss.Color("130"),
			HeatMild:     lipgloss.Color("179"),
			HeatWarm:     lipgloss.Color("208"),
			HeatBold:     lipgloss.Color("196"),
			Frame:        lipgloss.RoundedBorder(),
			Bullet:       "•",
			Check:        "✔",
			Cross:        "✖",
			MeterOn:      "▮",
			MeterOff:     "▯",
		}
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }
