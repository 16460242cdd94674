package tui

import (
	"strings"

	"github.com/contactvanshdev-code/restaurant-website/internal/scrolllock"
)

// Link is a header or drawer entry. Href is a site route; "/#x" routes
// are anchors on the landing page.
type Link struct {
	Href    string
	Label   string
	Caption string
}

// PrimaryLinks are the page links shown in the header.
var PrimaryLinks = []Link{
	{Href: "/", Label: "Home", Caption: "Landing and highlights"},
	{Href: "/food-guide", Label: "Food Guide", Caption: "How to read and pair dishes"},
	{Href: "/culture", Label: "Food Culture", Caption: "Traditions and dining rituals"},
}

// QuickLinks jump to sections of the landing page.
var QuickLinks = []Link{
	{Href: "/#menu", Label: "Menu Atlas", Caption: "Browse all categories"},
	{Href: "/#story", Label: "Story", Caption: "Sourcing and kitchen values"},
	{Href: "/#reservations", Label: "Reserve", Caption: "Book your table fast"},
}

// drawerLinks is the drawer's entry order.
var drawerLinks = append(append([]Link(nil), PrimaryLinks...), QuickLinks...)

// Pathname strips the anchor from a route: "/#menu" is on "/".
func Pathname(href string) string {
	if i := strings.IndexByte(href, '#'); i >= 0 {
		href = href[:i]
	}
	if href == "" {
		return "/"
	}
	return href
}

// IsActive reports whether a link is highlighted on pathname. Home and
// every landing-page anchor are active on "/"; other links need an exact
// match.
func IsActive(pathname, href string) bool {
	if href == "/" || strings.HasPrefix(href, "/#") {
		return pathname == "/"
	}
	return pathname == href
}

// drawer is the navigation sheet. While open it holds the scroll lock.
type drawer struct {
	lock    *scrolllock.Lock
	release scrolllock.Release
	cursor  int
}

func (d *drawer) Open() bool { return d.release != nil }

func (d *drawer) Show() {
	if d.Open() {
		return
	}
	d.cursor = 0
	if d.lock != nil {
		d.release = d.lock.Acquire()
	} else {
		d.release = func() {}
	}
}

func (d *drawer) Hide() {
	if d.release == nil {
		return
	}
	d.release()
	d.release = nil
}

func (d *drawer) Toggle() {
	if d.Open() {
		d.Hide()
		return
	}
	d.Show()
}

func (d *drawer) Move(delta int) {
	n := len(drawerLinks)
	d.cursor = ((d.cursor+delta)%n + n) % n
}

func (d *drawer) Selected() Link { return drawerLinks[d.cursor] }
