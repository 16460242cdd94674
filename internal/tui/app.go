// Package tui is the terminal front of house: a Bubble Tea program with
// the landing page, the live menu atlas, the reservation picker and the
// two informational pages, tied together by a header and a nav drawer.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/contactvanshdev-code/restaurant-website/internal/catalog"
	"github.com/contactvanshdev-code/restaurant-website/internal/config"
	"github.com/contactvanshdev-code/restaurant-website/internal/content"
	"github.com/contactvanshdev-code/restaurant-website/internal/dishimage"
	"github.com/contactvanshdev-code/restaurant-website/internal/menu"
	"github.com/contactvanshdev-code/restaurant-website/internal/model"
	"github.com/contactvanshdev-code/restaurant-website/internal/scrolllock"
)

type screen int

const (
	screenHome screen = iota
	screenMenu
	screenReserve
	screenGuide
	screenCulture
)

var routes = map[string]screen{
	"/":              screenHome,
	"/#story":        screenHome,
	"/#menu":         screenMenu,
	"/#reservations": screenReserve,
	"/food-guide":    screenGuide,
	"/culture":       screenCulture,
}

// Options configures a new App.
type Options struct {
	Route         string // starting route, "/" when empty
	Category      model.Category
	Dietary       model.DietaryFilter
	Prober        dishimage.Prober // nil shows photos unchecked
	ProbeTimeout  time.Duration
	MarkdownStyle string
	Now           time.Time
	Logger        *zap.Logger
}

// App is the root Bubble Tea model.
type App struct {
	keys   KeyMap
	styles styles
	logger *zap.Logger
	lock   *scrolllock.Lock
	atlas  *menu.Atlas
	drawer *drawer
	help   help.Model

	route   string
	screen  screen
	home    homePage
	menu    menuPage
	reserve reservePage
	guide   docPage
	culture docPage

	width, height int
}

// New builds the shell. The menu atlas is created here and lives for the
// whole session.
func New(opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	category := opts.Category
	if !category.Valid() {
		category = catalog.DefaultCategory
	}
	filter := menu.DefaultFilter(category)
	if opts.Dietary.Valid() {
		filter.Dietary = opts.Dietary
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	keys := DefaultKeyMap
	st := newStyles()
	lock := &scrolllock.Lock{}
	atlas := menu.NewAtlas(catalog.Items(), filter, lock)
	images := newImageState(opts.Prober, opts.ProbeTimeout, logger)

	landing := content.Story.Markdown() + "\n" + content.BeyondThePlate.Markdown()
	a := App{
		keys:    keys,
		styles:  st,
		logger:  logger,
		lock:    lock,
		atlas:   atlas,
		drawer:  &drawer{lock: lock},
		help:    help.New(),
		route:   "/",
		screen:  screenHome,
		home:    newHomePage(st, newDocPage(keys, lock, landing, opts.MarkdownStyle)),
		menu:    newMenuPage(keys, st, atlas, images),
		reserve: newReservePage(keys, st, now),
		guide:   newDocPage(keys, lock, content.FoodGuide.Markdown(), opts.MarkdownStyle),
		culture: newDocPage(keys, lock, content.Culture.Markdown(), opts.MarkdownStyle),
		width:   80,
		height:  24,
	}
	a.home, _ = a.home.enter()
	if opts.Route != "" {
		m, _ := a.navigate(opts.Route)
		a = m.(App)
	}
	a.resize()
	return a
}

func (a App) Init() tea.Cmd {
	if a.screen == screenHome {
		return heroTick(a.home.gen)
	}
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resize()
		return a, nil
	case heroTickMsg:
		var cmd tea.Cmd
		a.home, cmd = a.home.Update(msg)
		return a, cmd
	case imageProbedMsg:
		var cmd tea.Cmd
		a.menu, cmd = a.menu.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a.forward(msg)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a.quit()
	}
	if a.drawer.Open() {
		return a.updateDrawer(msg)
	}
	if a.capturing() {
		return a.forward(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	case key.Matches(msg, a.keys.Drawer):
		a.drawer.Show()
		return a, nil
	case key.Matches(msg, a.keys.Home):
		return a.navigate("/")
	case key.Matches(msg, a.keys.Menu):
		return a.navigate("/#menu")
	case key.Matches(msg, a.keys.Guide):
		return a.navigate("/food-guide")
	case key.Matches(msg, a.keys.Culture):
		return a.navigate("/culture")
	case key.Matches(msg, a.keys.Reserve):
		return a.navigate("/#reservations")
	}
	return a.forward(msg)
}

func (a App) updateDrawer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back), key.Matches(msg, a.keys.Drawer):
		a.drawer.Hide()
	case key.Matches(msg, a.keys.Up):
		a.drawer.Move(-1)
	case key.Matches(msg, a.keys.Down):
		a.drawer.Move(1)
	case key.Matches(msg, a.keys.Open):
		return a.navigate(a.drawer.Selected().Href)
	case key.Matches(msg, a.keys.Quit):
		return a.quit()
	}
	return a, nil
}

// capturing reports whether a text input owns the keyboard.
func (a App) capturing() bool {
	switch a.screen {
	case screenMenu:
		return a.menu.capturing()
	case screenReserve:
		return a.reserve.capturing()
	}
	return false
}

func (a App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.screen {
	case screenHome:
		a.home, cmd = a.home.Update(msg)
	case screenMenu:
		a.menu, cmd = a.menu.Update(msg)
	case screenReserve:
		a.reserve, cmd = a.reserve.Update(msg)
	case screenGuide:
		a.guide, cmd = a.guide.Update(msg)
	case screenCulture:
		a.culture, cmd = a.culture.Update(msg)
	}
	return a, cmd
}

// navigate switches routes. Any route change closes the drawer, and
// leaving a page dismisses whatever it had open.
func (a App) navigate(href string) (tea.Model, tea.Cmd) {
	target, ok := routes[href]
	if !ok {
		a.logger.Debug("unknown route", zap.String("route", href))
		return a, nil
	}
	a.drawer.Hide()
	prev := a.screen
	a.route = href
	a.screen = target
	a.logger.Debug("navigate", zap.String("route", href))
	if prev == target {
		return a, nil
	}

	switch prev {
	case screenHome:
		a.home = a.home.leave()
	case screenMenu:
		a.menu = a.menu.leave()
	case screenReserve:
		a.reserve = a.reserve.leave()
	}

	var cmd tea.Cmd
	if target == screenHome {
		a.home, cmd = a.home.enter()
	}
	return a, cmd
}

// quit releases the scroll lock holders, most recent first, before exiting.
func (a App) quit() (tea.Model, tea.Cmd) {
	a.drawer.Hide()
	a.atlas.Selection.Clear()
	a.home = a.home.leave()
	return a, tea.Quit
}

func (a *App) resize() {
	headerH := lipgloss.Height(a.headerView())
	bodyH := max(a.height-headerH-1, 3)

	a.menu = a.menu.setSize(a.width, bodyH)
	a.guide = a.guide.setSize(a.width, bodyH)
	a.culture = a.culture.setSize(a.width, bodyH)
	heroH := lipgloss.Height(a.home.hero(a.width))
	a.home.doc = a.home.doc.setSize(a.width, max(bodyH-heroH-1, 3))
}

func (a App) headerView() string {
	st := a.styles
	path := Pathname(a.route)

	render := func(links []Link) string {
		out := make([]string, 0, len(links))
		for _, l := range links {
			if IsActive(path, l.Href) {
				out = append(out, st.linkActive.Render(l.Label))
			} else {
				out = append(out, st.link.Render(l.Label))
			}
		}
		return strings.Join(out, "  ")
	}

	line1 := st.brand.Render(content.BrandName) + "  " + st.muted.Render(content.BrandTagline) +
		"    " + render(PrimaryLinks)
	line2 := st.muted.Render("jump ") + render(QuickLinks)
	header := st.header
	if a.width > 0 {
		header = header.Width(a.width)
	}
	return header.Render(line1 + "\n" + line2)
}

func (a App) drawerView() []string {
	st := a.styles
	path := Pathname(a.route)
	lines := []string{st.title.Render("Navigate"), ""}
	for i, l := range drawerLinks {
		if i == len(PrimaryLinks) {
			lines = append(lines, "", st.muted.Render("QUICK LINKS"))
		}
		prefix := "  "
		if i == a.drawer.cursor {
			prefix = st.selected.Render("> ")
		}
		label := st.link.Render(l.Label)
		if IsActive(path, l.Href) {
			label = st.linkActive.Render(l.Label)
		}
		lines = append(lines, prefix+label+"  "+st.muted.Render(l.Caption))
	}
	return strings.Split(st.box.Render(strings.Join(lines, "\n")), "\n")
}

func (a App) helpKeys() bindings {
	if a.drawer.Open() {
		return bindings{a.keys.Up, a.keys.Down, a.keys.Open, a.keys.Back}
	}
	switch a.screen {
	case screenMenu:
		return a.menu.help()
	case screenReserve:
		return a.reserve.help()
	}
	return bindings{a.keys.Down, a.keys.Menu, a.keys.Reserve, a.keys.Guide, a.keys.Culture, a.keys.Drawer, a.keys.Quit}
}

func (a App) View() string {
	header := a.headerView()
	headerH := lipgloss.Height(header)
	bodyH := max(a.height-headerH-1, 3)

	var body string
	switch a.screen {
	case screenHome:
		body = a.home.View(a.width)
	case screenMenu:
		body = a.menu.View()
	case screenReserve:
		body = a.reserve.View()
	case screenGuide:
		body = a.guide.View()
	case screenCulture:
		body = a.culture.View()
	}
	body = lipgloss.NewStyle().Height(bodyH).MaxHeight(bodyH).Render(body)
	view := header + "\n" + body + "\n" + a.help.View(a.helpKeys())

	if a.screen == screenMenu {
		if card := a.menu.detail(a.width); card != nil {
			x := max((a.width-ansi.StringWidth(card[0]))/2, 0)
			view = spliceOverlay(view, card, x, headerH+1)
		}
	}
	if a.drawer.Open() {
		panel := a.drawerView()
		x := max(a.width-ansi.StringWidth(panel[0]), 0)
		view = spliceOverlay(view, panel, x, headerH)
	}
	return view
}

// Route is the current route, e.g. "/#menu".
func (a App) Route() string { return a.route }

// Atlas exposes the menu state.
func (a App) Atlas() *menu.Atlas { return a.atlas }

// ScrollLock exposes the shared background scroll lock.
func (a App) ScrollLock() *scrolllock.Lock { return a.lock }

// Run starts the program and blocks until the guest quits.
func Run(cfg *config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := Options{
		Category:      cfg.Category(),
		Dietary:       cfg.Dietary(),
		ProbeTimeout:  cfg.Images.ProbeTimeout,
		MarkdownStyle: cfg.UI.MarkdownStyle,
		Logger:        logger,
	}
	if cfg.Images.Probe {
		opts.Prober = dishimage.NewHTTPProber(cfg.Images.ProbeTimeout)
	}

	var popts []tea.ProgramOption
	if cfg.UI.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(New(opts), popts...).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	if app, ok := final.(App); ok {
		logger.Info("session closed",
			zap.String("route", app.route),
			zap.Int("lock_holders", app.lock.Holders()))
	}
	return nil
}
