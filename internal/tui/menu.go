package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/contactvanshdev-code/restaurant-website/internal/catalog"
	"github.com/contactvanshdev-code/restaurant-website/internal/menu"
	"github.com/contactvanshdev-code/restaurant-website/internal/model"
	"github.com/contactvanshdev-code/restaurant-website/internal/ui"
)

// EmptyMessage is shown when no dish passes the filter.
const EmptyMessage = "No dishes found with this filter. Try changing the dietary option or search phrase."

// dishItem adapts model.Item to bubbles/list.Item.
type dishItem struct{ model.Item }

func (d dishItem) FilterValue() string { return d.Name }

// dishDelegate renders a dish card as two lines.
type dishDelegate struct{ styles styles }

func (d dishDelegate) Height() int                               { return 2 }
func (d dishDelegate) Spacing() int                              { return 1 }
func (d dishDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d dishDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(dishItem)
	if !ok {
		return
	}
	prefix := "  "
	name := d.styles.text.Render(it.Name)
	if index == m.Index() {
		prefix = d.styles.selected.Render("> ")
		name = d.styles.title.Render(it.Name)
	}
	line1 := fmt.Sprintf("%s%s  %s", prefix, name, d.styles.accent.Render(it.Price))
	line2 := "  " + ui.HeatBadge(it.Heat)
	if tags := tagLabels(it.Dietary); tags != "" {
		line2 += "  " + d.styles.muted.Render(tags)
	}
	if width := m.Width(); width > 0 {
		line1 = ansi.Truncate(line1, width, "…")
		line2 = ansi.Truncate(line2, width, "…")
	}
	fmt.Fprint(w, line1+"\n"+line2)
}

func tagLabels(tags []model.DietaryTag) string {
	labels := make([]string, 0, len(tags))
	for _, t := range tags {
		labels = append(labels, t.Label())
	}
	return strings.Join(labels, " · ")
}

// menuPage is the live menu atlas: chapter chips, dietary chips, search
// and the dish list, plus the plate detail overlay.
type menuPage struct {
	keys   KeyMap
	styles styles
	atlas  *menu.Atlas
	images *imageState
	counts map[model.Category]int

	list   list.Model
	search textinput.Model

	width, height int
}

func newMenuPage(keys KeyMap, st styles, atlas *menu.Atlas, images *imageState) menuPage {
	l := list.New(nil, dishDelegate{styles: st}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.Styles.PaginationStyle = st.muted

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search dishes, ingredients..."
	ti.CharLimit = 80
	ti.SetValue(atlas.Filter().Query)

	p := menuPage{
		keys:   keys,
		styles: st,
		atlas:  atlas,
		images: images,
		counts: catalog.CountByCategory(),
		list:   l,
		search: ti,
	}
	p.refresh()
	return p
}

// refresh pushes the atlas's visible dishes into the list.
func (p *menuPage) refresh() {
	visible := p.atlas.Visible()
	items := make([]list.Item, 0, len(visible))
	for _, it := range visible {
		items = append(items, dishItem{it})
	}
	p.list.SetItems(items)
	p.list.ResetSelected()
}

// capturing reports whether keystrokes belong to the search box.
func (p menuPage) capturing() bool { return p.search.Focused() }

func (p menuPage) setSize(w, h int) menuPage {
	p.width, p.height = w, h
	p.search.Width = max(w-4, 10)
	p.list.SetSize(w, max(h-6, 3))
	return p
}

// leave runs when the page is navigated away from.
func (p menuPage) leave() menuPage {
	p.atlas.Selection.Clear()
	p.search.Blur()
	return p
}

func (p menuPage) Update(msg tea.Msg) (menuPage, tea.Cmd) {
	switch msg := msg.(type) {
	case imageProbedMsg:
		return p, p.images.handle(msg)
	case tea.KeyMsg:
		if p.search.Focused() {
			return p.updateSearch(msg)
		}
		if p.atlas.Selection.Open() {
			return p.updateDetail(msg)
		}
		return p.updateBrowse(msg)
	}
	if p.search.Focused() {
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p menuPage) updateSearch(msg tea.KeyMsg) (menuPage, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		p.search.Blur()
		return p, nil
	}
	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	if p.atlas.SetQuery(p.search.Value()) {
		p.refresh()
	}
	return p, cmd
}

func (p menuPage) updateDetail(msg tea.KeyMsg) (menuPage, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Back), key.Matches(msg, p.keys.Close):
		p.atlas.Selection.Clear()
	}
	return p, nil
}

func (p menuPage) updateBrowse(msg tea.KeyMsg) (menuPage, tea.Cmd) {
	for i, b := range p.keys.Category {
		if key.Matches(msg, b) && i < len(model.Categories) {
			if p.atlas.SetCategory(model.Categories[i]) {
				p.refresh()
			}
			return p, nil
		}
	}

	switch {
	case key.Matches(msg, p.keys.NextCategory):
		if p.atlas.StepCategory(1) {
			p.refresh()
		}
	case key.Matches(msg, p.keys.PrevCategory):
		if p.atlas.StepCategory(-1) {
			p.refresh()
		}
	case key.Matches(msg, p.keys.NextDietary):
		if p.atlas.SetDietary(p.atlas.Filter().Dietary.Next()) {
			p.refresh()
		}
	case key.Matches(msg, p.keys.PrevDietary):
		if p.atlas.SetDietary(p.atlas.Filter().Dietary.Prev()) {
			p.refresh()
		}
	case key.Matches(msg, p.keys.Search):
		return p, p.search.Focus()
	case key.Matches(msg, p.keys.Open):
		sel, ok := p.list.SelectedItem().(dishItem)
		if !ok {
			return p, nil
		}
		p.atlas.Selection.Select(sel.Item)
		return p, p.images.ensure(sel.Item)
	case key.Matches(msg, p.keys.Up):
		p.list.CursorUp()
	case key.Matches(msg, p.keys.Down):
		p.list.CursorDown()
	case key.Matches(msg, p.keys.PageUp):
		p.list.PrevPage()
	case key.Matches(msg, p.keys.PageDown):
		p.list.NextPage()
	}
	return p, nil
}

func (p menuPage) help() bindings {
	switch {
	case p.search.Focused():
		return bindings{p.keys.Back}
	case p.atlas.Selection.Open():
		return bindings{p.keys.Close, p.keys.Back, p.keys.Quit}
	}
	return bindings{p.keys.NextCategory, p.keys.NextDietary, p.keys.Search, p.keys.Open, p.keys.Drawer, p.keys.Quit}
}

func (p menuPage) View() string {
	f := p.atlas.Filter()
	info := catalog.Info(f.Category)

	var b strings.Builder
	b.WriteString(p.styles.title.Render("Menu Atlas") + "  " +
		p.styles.accent.Render(info.Label) + "  " + p.styles.muted.Render(info.Subtitle) + "\n")

	chips := make([]string, 0, len(model.Categories))
	for i, c := range model.Categories {
		label := fmt.Sprintf("%d %s · %d", i+1, catalog.Info(c).Label, p.counts[c])
		if c == f.Category {
			chips = append(chips, p.styles.chipActive.Render(label))
		} else {
			chips = append(chips, p.styles.chip.Render(label))
		}
	}
	b.WriteString(p.wrapChips(chips) + "\n")

	diets := make([]string, 0, len(model.DietaryFilters))
	for _, d := range model.DietaryFilters {
		if d == f.Dietary {
			diets = append(diets, p.styles.chipActive.Render(d.Label()))
		} else {
			diets = append(diets, p.styles.chip.Render(d.Label()))
		}
	}
	b.WriteString(p.wrapChips(diets) + "\n")

	switch {
	case p.search.Focused():
		b.WriteString(p.search.View())
	case f.Query != "":
		b.WriteString(p.styles.muted.Render("/ ") + f.Query)
	default:
		b.WriteString(p.styles.muted.Render("/ to search"))
	}
	b.WriteString("\n\n")

	if p.atlas.Empty() {
		b.WriteString(p.styles.muted.Render(EmptyMessage))
	} else {
		b.WriteString(p.list.View())
	}
	return b.String()
}

func (p menuPage) wrapChips(chips []string) string {
	row := lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	if p.width <= 0 || lipgloss.Width(row) <= p.width {
		return row
	}
	var lines []string
	var cur []string
	for _, c := range chips {
		if len(cur) > 0 && lipgloss.Width(lipgloss.JoinHorizontal(lipgloss.Top, append(cur, c)...)) > p.width {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cur...))
			cur = nil
		}
		cur = append(cur, c)
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cur...))
	return strings.Join(lines, "\n")
}

// detail renders the plate detail card, or nil when nothing is open.
func (p menuPage) detail(width int) []string {
	it, ok := p.atlas.Selection.Active()
	if !ok {
		return nil
	}
	inner := max(min(width-8, 64), 20)
	wrap := lipgloss.NewStyle().Width(inner)
	st := p.styles

	allergens := strings.Join(it.Allergens, " • ")
	if allergens == "" {
		allergens = catalog.NoAllergens
	}
	tags := tagLabels(it.Dietary)
	if tags == "" {
		tags = "-"
	}

	lines := []string{
		st.title.Render(it.Name) + "  " + st.accent.Render(it.Price),
		st.muted.Render(catalog.Info(it.Category).Label) + "  " + ui.HeatBadge(it.Heat),
		"",
		wrap.Render(it.Description),
		"",
		wrap.Render(st.accent.Render("Ingredients ") + strings.Join(it.Ingredients, ", ")),
		wrap.Render(st.accent.Render("Allergens ") + allergens),
		wrap.Render(st.accent.Render("Pairing ") + it.Pairing),
		wrap.Render(st.accent.Render("Dietary ") + tags),
		"",
		wrap.Render(st.muted.Render("Photo "+p.images.describe(it.ID)) + " " + p.images.url(it)),
		"",
		st.muted.Render("esc / x to close"),
	}
	card := st.box.Width(inner + 4).Render(strings.Join(lines, "\n"))
	return strings.Split(card, "\n")
}
