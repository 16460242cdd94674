package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// spliceOverlay replaces a rectangular region of a rendered view with
// overlay lines, anchored at (x, y). ANSI-aware so escape sequences on
// either side survive.
func spliceOverlay(view string, overlay []string, x, y int) string {
	if len(overlay) == 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	for len(lines) < y+len(overlay) {
		lines = append(lines, "")
	}
	width := ansi.StringWidth(overlay[0])

	for i, ol := range overlay {
		row := y + i
		if row < 0 {
			continue
		}
		line := lines[row]
		lineWidth := ansi.StringWidth(line)

		var b strings.Builder
		if x > 0 {
			prefix := ansi.Truncate(line, x, "")
			b.WriteString(prefix)
			if pad := x - ansi.StringWidth(prefix); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		b.WriteString("\x1b[0m")
		b.WriteString(ol)
		b.WriteString("\x1b[0m")
		if end := x + width; end < lineWidth {
			b.WriteString(ansi.TruncateLeft(line, end, ""))
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}
