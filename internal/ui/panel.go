package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/contactvanshdev-code/restaurant-website/internal/model"
)

// Meter renders a filled/empty bar, e.g. ▮▮▯ for 2 of 3.
func Meter(filled, total int) string {
	if total <= 0 {
		total = 1
	}
	if filled < 0 {
		filled = 0
	}
	if filled > total {
		filled = total
	}
	return strings.Repeat(current.MeterOn, filled) + strings.Repeat(current.MeterOff, total-filled)
}

var heatLevels = map[model.Heat]int{
	model.HeatMild: 1,
	model.HeatWarm: 2,
	model.HeatBold: 3,
}

// HeatColor is the badge color for a heat level.
func HeatColor(h model.Heat) lipgloss.Color {
	switch h {
	case model.HeatWarm:
		return current.HeatWarm
	case model.HeatBold:
		return current.HeatBold
	default:
		return current.HeatMild
	}
}

// HeatBadge is "▮▮▯ Warm Heat" in the heat's color.
func HeatBadge(h model.Heat) string {
	return C(HeatColor(h), Meter(heatLevels[h], 3)+" "+string(h)+" Heat")
}

// PanelString draws a framed box using the current theme.
func PanelString(lines []string) string {
	border := lipgloss.NewStyle().
		Border(current.Frame).
		BorderForeground(current.Border).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Panel prints a framed box.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(lines))
}
