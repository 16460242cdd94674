// Package content holds the static copy for the landing, food guide and
// culture pages, and renders it as terminal markdown.
package content

import (
	"fmt"
	"strings"
)

// Entry is a titled paragraph; Step is set for numbered flows.
type Entry struct {
	Step   string
	Title  string
	Detail string
}

// Section is a heading with entries under it.
type Section struct {
	Heading string
	Intro   string
	Entries []Entry
	// Numbered renders entries as "01 Title" rather than bullets.
	Numbered bool
}

// Link points at another page; Target is a route such as "/food-guide"
// or "/#menu".
type Link struct {
	Label  string
	Target string
}

// Page is one static page.
type Page struct {
	Slug        string
	Title       string
	Description string
	Kicker      string
	Headline    string
	Lede        string
	Sections    []Section
	Links       []Link
	Closing     string
}

// Markdown renders the page body.
func (p Page) Markdown() string {
	var b strings.Builder
	if p.Kicker != "" {
		fmt.Fprintf(&b, "*%s*\n\n", strings.ToUpper(p.Kicker))
	}
	fmt.Fprintf(&b, "# %s\n\n", p.Headline)
	if p.Lede != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Lede)
	}
	for _, s := range p.Sections {
		fmt.Fprintf(&b, "## %s\n\n", s.Heading)
		if s.Intro != "" {
			fmt.Fprintf(&b, "%s\n\n", s.Intro)
		}
		for _, e := range s.Entries {
			switch {
			case s.Numbered:
				fmt.Fprintf(&b, "%s. **%s** %s\n", strings.TrimLeft(e.Step, "0"), e.Title, e.Detail)
			case e.Title == "":
				fmt.Fprintf(&b, "- %s\n", e.Detail)
			default:
				fmt.Fprintf(&b, "- **%s** %s\n", e.Title, e.Detail)
			}
		}
		b.WriteString("\n")
	}
	if p.Closing != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Closing)
	}
	if len(p.Links) > 0 {
		labels := make([]string, 0, len(p.Links))
		for _, l := range p.Links {
			labels = append(labels, fmt.Sprintf("**%s** (`%s`)", l.Label, l.Target))
		}
		fmt.Fprintf(&b, "%s\n", strings.Join(labels, " · "))
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Brand strings shared by every page.
const (
	BrandName    = "EMBER & OAK"
	BrandTagline = "Wood-fired kitchen"
	SiteTitle    = "EMBER & OAK | Wood-Fired Kitchen"
	SiteSummary  = "Sensory-first dining experience with fire-kissed cuisine and high-end hospitality."
)
