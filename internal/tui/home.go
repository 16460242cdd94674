package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/contactvanshdev-code/restaurant-website/internal/content"
)

// HeroInterval is how long each hero word stays up.
const HeroInterval = 2600 * time.Millisecond

// heroTickMsg advances the hero word. Gen ties a tick to one visit of the
// landing page; ticks from an earlier visit are dropped.
type heroTickMsg struct{ Gen int }

func heroTick(gen int) tea.Cmd {
	return tea.Tick(HeroInterval, func(time.Time) tea.Msg {
		return heroTickMsg{Gen: gen}
	})
}

// homePage is the landing page: the rotating hero above the story.
type homePage struct {
	styles styles
	doc    docPage
	word   int
	gen    int
	active bool
}

func newHomePage(st styles, doc docPage) homePage {
	return homePage{styles: st, doc: doc}
}

// enter starts a fresh ticker generation.
func (h homePage) enter() (homePage, tea.Cmd) {
	h.gen++
	h.active = true
	return h, heroTick(h.gen)
}

// leave invalidates any tick in flight.
func (h homePage) leave() homePage {
	h.gen++
	h.active = false
	return h
}

func (h homePage) Update(msg tea.Msg) (homePage, tea.Cmd) {
	switch msg := msg.(type) {
	case heroTickMsg:
		if !h.active || msg.Gen != h.gen {
			return h, nil
		}
		h.word = (h.word + 1) % len(content.HeroWords)
		return h, heroTick(h.gen)
	}
	var cmd tea.Cmd
	h.doc, cmd = h.doc.Update(msg)
	return h, cmd
}

// Word is the hero word currently shown.
func (h homePage) Word() string { return content.HeroWords[h.word] }

func (h homePage) hero(width int) string {
	st := h.styles
	headline := st.title.Render("FIRE. FLAVOR. ") + st.accent.Render("["+h.Word()+"]")
	lede := content.HeroLede
	if width > 0 {
		lede = st.text.Width(width).Render(lede)
	}
	return strings.Join([]string{
		st.muted.Render(strings.ToUpper(content.BrandTagline)),
		headline,
		lede,
	}, "\n")
}

func (h homePage) View(width int) string {
	return h.hero(width) + "\n\n" + h.doc.View()
}
