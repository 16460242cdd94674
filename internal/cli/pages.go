package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contactvanshdev-code/restaurant-website/internal/content"
)

var pages = map[string]content.Page{
	"guide":   content.FoodGuide,
	"culture": content.Culture,
}

func (a *app) newPageCmd(name, short string) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page := pages[name]
			out, err := content.Render(page.Markdown(), width, a.cfg.UI.MarkdownStyle)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 80, "wrap width")
	return cmd
}
