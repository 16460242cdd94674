package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/contactvanshdev-code/restaurant-website/internal/catalog"
	"github.com/contactvanshdev-code/restaurant-website/internal/dishimage"
	"github.com/contactvanshdev-code/restaurant-website/internal/export"
	"github.com/contactvanshdev-code/restaurant-website/internal/menu"
	"github.com/contactvanshdev-code/restaurant-website/internal/model"
	"github.com/contactvanshdev-code/restaurant-website/internal/tui"
	"github.com/contactvanshdev-code/restaurant-website/internal/ui"
)

func (a *app) newMenuCmd() *cobra.Command {
	var category, diet, query string
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "List dishes in one chapter of the menu",
		Long: `List the dishes that pass a filter: one category, an optional dietary
tag and an optional free-text search over name, description and ingredients.`,
		Example: `  emberoak menu --category sea --diet gf
  emberoak menu --query "cedar smoke"`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.filterFromFlags(category, diet, query)
			if err != nil {
				return err
			}
			printMenu(cmd.OutOrStdout(), f, menu.Apply(catalog.Items(), f))
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "earth, fire, sea, hearth, sweet, cellar")
	cmd.Flags().StringVarP(&diet, "diet", "d", "", "all, signature, veg, vegan, gf")
	cmd.Flags().StringVarP(&query, "query", "q", "", "search name, description and ingredients")

	cmd.AddCommand(
		a.newMenuShowCmd(),
		a.newMenuExportCmd(),
		a.newMenuCheckCmd(),
		a.newMenuCheckImagesCmd(),
	)
	return cmd
}

// filterFromFlags falls back to the configured defaults for empty flags.
func (a *app) filterFromFlags(category, diet, query string) (menu.Filter, error) {
	f := menu.DefaultFilter(a.cfg.Category())
	f.Dietary = a.cfg.Dietary()
	f.Query = query
	if category != "" {
		c, ok := model.ParseCategory(category)
		if !ok {
			return f, usagef("unknown category %q (want one of %s)", category, joinCategories())
		}
		f.Category = c
	}
	if diet != "" {
		d, ok := model.ParseDietaryFilter(diet)
		if !ok {
			return f, usagef("unknown dietary filter %q (want one of %s)", diet, joinDietary())
		}
		f.Dietary = d
	}
	return f, nil
}

func joinCategories() string {
	out := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		out[i] = string(c)
	}
	return strings.Join(out, ", ")
}

func joinDietary() string {
	out := make([]string, len(model.DietaryFilters))
	for i, d := range model.DietaryFilters {
		out[i] = string(d)
	}
	return strings.Join(out, ", ")
}

func printMenu(w io.Writer, f menu.Filter, items []model.Item) {
	info := catalog.Info(f.Category)
	t := ui.Current()
	head := []string{
		ui.C(t.Title, info.Label) + "  " + ui.C(t.Muted, info.Subtitle),
		ui.C(t.Muted, "dietary: "+f.Dietary.Label()),
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		head = append(head, ui.C(t.Muted, "search: "+q))
	}
	ui.Panel(w, head)

	if len(items) == 0 {
		fmt.Fprintln(w, ui.C(t.Muted, tui.EmptyMessage))
		return
	}
	for _, it := range items {
		fmt.Fprintf(w, "%s  %s  %s\n", ui.C(t.Muted, it.ID), ui.C(t.Text, it.Name), ui.C(t.Accent, it.Price))
		line := "         " + ui.HeatBadge(it.Heat)
		if tags := tagLabels(it.Dietary); tags != "" {
			line += "  " + ui.C(t.Muted, tags)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, ui.C(t.Muted, fmt.Sprintf("%d of %d dishes", len(items), catalog.CountByCategory()[f.Category])))
}

func tagLabels(tags []model.DietaryTag) string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.Label()
	}
	return strings.Join(out, " · ")
}

func (a *app) newMenuShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the plate detail for one dish",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := catalog.ByID(args[0])
			if err != nil {
				return err
			}
			printDetail(cmd.OutOrStdout(), it)
			return nil
		},
	}
}

func printDetail(w io.Writer, it model.Item) {
	t := ui.Current()
	allergens := strings.Join(it.Allergens, " • ")
	if allergens == "" {
		allergens = catalog.NoAllergens
	}
	tags := tagLabels(it.Dietary)
	if tags == "" {
		tags = "-"
	}
	ui.Panel(w, []string{
		ui.C(t.Title, it.Name) + "  " + ui.C(t.Accent, it.Price),
		ui.C(t.Muted, catalog.Info(it.Category).Label) + "  " + ui.HeatBadge(it.Heat),
		"",
		it.Description,
		"",
		ui.C(t.Accent, "Ingredients ") + strings.Join(it.Ingredients, ", "),
		ui.C(t.Accent, "Allergens   ") + allergens,
		ui.C(t.Accent, "Pairing     ") + it.Pairing,
		ui.C(t.Accent, "Dietary     ") + tags,
		ui.C(t.Accent, "Photo       ") + it.Image,
	})
}

func (a *app) newMenuExportCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "export <file.json|file.xlsx>",
		Short: "Export the menu to JSON or a spreadsheet",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := catalog.Items()
			if category != "" {
				c, ok := model.ParseCategory(category)
				if !ok {
					return usagef("unknown category %q (want one of %s)", category, joinCategories())
				}
				items = menu.Apply(items, menu.DefaultFilter(c))
			}
			if err := export.Write(args[0], items); err != nil {
				if errors.Is(err, export.ErrUnsupportedFormat) {
					return usageError{err}
				}
				return err
			}
			a.logger.Info("menu exported", zap.String("path", args[0]), zap.Int("items", len(items)))
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("exported %d items to %s", len(items), args[0]))
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "export one category only")
	return cmd
}

func (a *app) newMenuCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the compiled-in catalog",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := catalog.Validate(); err != nil {
				return fmt.Errorf("catalog invalid: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("catalog valid: %d items in %d categories",
				len(catalog.Items()), len(catalog.Categories())))
			return nil
		},
	}
}

// imageResult is where one dish photo ended up.
type imageResult struct {
	ID    string
	URL   string
	State dishimage.State
	Err   error
}

func (a *app) newMenuCheckImagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-images",
		Short: "Probe every dish photo and report fallbacks",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.prober
			if p == nil {
				p = dishimage.NewHTTPProber(a.cfg.Images.ProbeTimeout)
			}
			results, err := checkImages(cmd.Context(), p, catalog.Items(), a.cfg.Images.Concurrency)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			t := ui.Current()
			var failed int
			for _, r := range results {
				color := t.Success
				switch r.State {
				case dishimage.StateFallback:
					color = t.Accent
				case dishimage.StateExhausted:
					color = t.Error
					failed++
				}
				fmt.Fprintf(w, "%-10s %s  %s\n", r.ID, ui.C(color, fmt.Sprintf("%-9s", r.State)), ui.C(t.Muted, r.URL))
				if r.Err != nil {
					a.logger.Warn("image probe failed", zap.String("item", r.ID), zap.Error(r.Err))
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d photos failed to load, fallback included", failed, len(results))
			}
			ui.OK(w, fmt.Sprintf("%d photos checked", len(results)))
			return nil
		},
	}
}

// checkImages resolves every item's photo concurrently. Results keep
// catalog order.
func checkImages(ctx context.Context, p dishimage.Prober, items []model.Item, limit int) ([]imageResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]imageResult, len(items))
	var done atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))
	for i, it := range items {
		g.Go(func() error {
			r := dishimage.NewResolver(it.Image, catalog.FallbackImageURL)
			err := dishimage.Resolve(gctx, p, r)
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}
			results[i] = imageResult{ID: it.ID, URL: r.Current(), State: r.State(), Err: err}
			done.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("check images (%d/%d done): %w", done.Load(), len(items), err)
	}
	return results, nil
}
