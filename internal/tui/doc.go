package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/contactvanshdev-code/restaurant-website/internal/content"
	"github.com/contactvanshdev-code/restaurant-website/internal/scrolllock"
)

// docPage is a scrollable markdown page.
type docPage struct {
	keys     KeyMap
	lock     *scrolllock.Lock
	markdown string
	style    string

	vp       viewport.Model
	rendered int // width of the current render; 0 when stale
	err      error
}

func newDocPage(keys KeyMap, lock *scrolllock.Lock, markdown, style string) docPage {
	return docPage{
		keys:     keys,
		lock:     lock,
		markdown: markdown,
		style:    style,
		vp:       viewport.New(0, 0),
	}
}

// setSize re-renders when the width changes.
func (d docPage) setSize(w, h int) docPage {
	d.vp.Width, d.vp.Height = w, h
	if w <= 0 || w == d.rendered {
		return d
	}
	out, err := content.Render(d.markdown, w, d.style)
	d.err = err
	if err != nil {
		out = d.markdown
	}
	d.vp.SetContent(out)
	d.rendered = w
	return d
}

func (d docPage) Update(msg tea.Msg) (docPage, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || (d.lock != nil && d.lock.Suspended()) {
		return d, nil
	}
	switch {
	case key.Matches(km, d.keys.Up):
		d.vp.LineUp(1)
	case key.Matches(km, d.keys.Down):
		d.vp.LineDown(1)
	case key.Matches(km, d.keys.PageUp):
		d.vp.HalfViewUp()
	case key.Matches(km, d.keys.PageDown):
		d.vp.HalfViewDown()
	}
	return d, nil
}

func (d docPage) View() string { return d.vp.View() }
