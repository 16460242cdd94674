package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/contactvanshdev-code/restaurant-website/internal/reservation"
	"github.com/contactvanshdev-code/restaurant-website/internal/ui"
)

// reservePage is the "Claim your seat by the fire" picker.
type reservePage struct {
	keys   KeyMap
	styles styles
	form   reservation.Form
	date   textinput.Model
	slot   int // cursor into reservation.Slots
}

func newReservePage(keys KeyMap, st styles, now time.Time) reservePage {
	form := reservation.NewForm(now)
	ti := textinput.New()
	ti.Prompt = "Date "
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.SetValue(form.Date)
	return reservePage{keys: keys, styles: st, form: form, date: ti}
}

func (r reservePage) capturing() bool { return r.date.Focused() }

func (r reservePage) leave() reservePage {
	r.date.Blur()
	r.form.Date = r.date.Value()
	return r
}

func (r reservePage) Update(msg tea.Msg) (reservePage, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		if r.date.Focused() {
			r.date, cmd = r.date.Update(msg)
		}
		return r, cmd
	}
	if r.date.Focused() {
		switch km.String() {
		case "enter", "esc":
			r.date.Blur()
			r.form.Date = r.date.Value()
			return r, nil
		}
		var cmd tea.Cmd
		r.date, cmd = r.date.Update(km)
		r.form.Date = r.date.Value()
		return r, cmd
	}

	switch {
	case key.Matches(km, r.keys.EditDate):
		return r, r.date.Focus()
	case key.Matches(km, r.keys.FewerGuests):
		r.form.SetGuests(r.form.Guests - 1)
	case key.Matches(km, r.keys.MoreGuests):
		r.form.SetGuests(r.form.Guests + 1)
	case key.Matches(km, r.keys.Up):
		if r.slot > 0 {
			r.slot--
		}
	case key.Matches(km, r.keys.Down):
		if r.slot < len(reservation.Slots)-1 {
			r.slot++
		}
	case key.Matches(km, r.keys.Open):
		r.form.Pick(reservation.Slots[r.slot])
	}
	return r, nil
}

func (r reservePage) help() bindings {
	if r.date.Focused() {
		return bindings{r.keys.Back}
	}
	pick := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick time"))
	return bindings{r.keys.EditDate, r.keys.FewerGuests, pick, r.keys.Drawer, r.keys.Quit}
}

func (r reservePage) View() string {
	st := r.styles
	var b strings.Builder
	b.WriteString(st.muted.Render("RESERVATIONS") + "\n")
	b.WriteString(st.title.Render("Claim your seat by the fire.") + "\n")
	b.WriteString(st.text.Render("Choose date, party size, and a service window. Confirmation prints instantly with your dining details.") + "\n\n")

	if r.date.Focused() {
		b.WriteString(r.date.View())
	} else {
		b.WriteString(st.accent.Render("Date ") + r.form.FormattedDate() + st.muted.Render("  ("+r.form.Date+")"))
	}
	b.WriteString("\n")
	b.WriteString(st.accent.Render("Guests ") + reservation.GuestLabel(r.form.Guests) + "  " +
		ui.Meter(r.form.Guests, reservation.MaxGuests) + "\n\n")

	for i, s := range reservation.Slots {
		prefix := "  "
		if i == r.slot {
			prefix = st.selected.Render("> ")
		}
		label := st.chip.Render(s)
		if s == r.form.Time {
			label = st.chipActive.Render(s)
		}
		b.WriteString(prefix + label + "\n")
	}
	b.WriteString("\n")

	t, ok := r.form.Ticket()
	if !ok {
		b.WriteString(st.muted.Render("Select a time slot to generate your confirmation ticket."))
		return b.String()
	}
	ticket := strings.Join([]string{
		st.muted.Render("RESERVATION TICKET") + "  " + st.accent.Render(t.Code),
		"Date    " + t.Date,
		"Guests  " + reservation.GuestLabel(t.Guests),
		"Time    " + t.Time,
		"",
		st.success.Render(reservation.ClosingLine),
	}, "\n")
	b.WriteString(st.box.Render(ticket))
	return b.String()
}
