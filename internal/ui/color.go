package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// C renders s in color with the default renderer.
func C(color lipgloss.Color, s string) string {
	return lipgloss.NewStyle().Foreground(color).Render(s)
}

// OK prints a success line.
func OK(w io.Writer, msg string) { Fprintln(w, current.Success, current.Check+" "+msg) }

// Fail prints an error line.
func Fail(w io.Writer, msg string) { Fprintln(w, current.Error, current.Cross+" "+msg) }

// Fprintln writes one colored line.
func Fprintln(w io.Writer, color lipgloss.Color, msg string) {
	fmt.Fprintln(w, C(color, msg))
}
