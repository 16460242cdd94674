package content

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Render turns markdown into styled terminal text. style is a glamour
// standard style name ("dark", "light", "notty", "ascii"); an empty style
// picks one from the terminal background.
func Render(markdown string, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStylePath(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
