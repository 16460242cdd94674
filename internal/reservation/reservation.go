// Package reservation backs the "Claim your seat by the fire" picker. It
// only echoes what the guest chose; nothing is validated or stored.
package reservation

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Slots are the service windows offered each evening.
var Slots = []string{"5:30 PM", "6:00 PM", "6:45 PM", "7:30 PM", "8:15 PM", "9:00 PM"}

const (
	MinGuests     = 1
	MaxGuests     = 6
	DefaultGuests = 2
)

const dateLayout = "2006-01-02"

// Form is the picker state.
type Form struct {
	Date   string // YYYY-MM-DD as typed
	Guests int
	Time   string // empty until a slot is picked
	Code   string // confirmation code, issued when a slot is picked
}

// NewForm starts on today's date with two guests and no slot.
func NewForm(now time.Time) Form {
	return Form{Date: now.Format(dateLayout), Guests: DefaultGuests}
}

// FormattedDate renders the date as "Mon, Jan 2". The date is read at
// noon so no timezone shift can roll it into a neighbouring day.
func (f Form) FormattedDate() string {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(f.Date), time.Local)
	if err != nil {
		return "Select a date"
	}
	d = d.Add(12 * time.Hour)
	return d.Format("Mon, Jan 2")
}

// SetGuests clamps n into the offered party sizes.
func (f *Form) SetGuests(n int) {
	switch {
	case n < MinGuests:
		n = MinGuests
	case n > MaxGuests:
		n = MaxGuests
	}
	f.Guests = n
}

// GuestLabel is "1 Guest" or "N Guests".
func GuestLabel(n int) string {
	if n == 1 {
		return "1 Guest"
	}
	return strconv.Itoa(n) + " Guests"
}

// Pick chooses a slot and issues a fresh confirmation code when the slot
// changes. Unknown slots are ignored and report false.
func (f *Form) Pick(slot string) bool {
	for _, s := range Slots {
		if s != slot {
			continue
		}
		if f.Time != slot {
			f.Time = slot
			f.Code = NewCode()
		}
		return true
	}
	return false
}

// Confirmed reports whether a slot has been picked, which is all a ticket
// needs.
func (f Form) Confirmed() bool { return f.Time != "" }

// Ticket is the printed confirmation.
type Ticket struct {
	Code   string
	Date   string
	Guests int
	Time   string
}

// Ticket returns the confirmation for the form, or false if no slot is
// picked yet.
func (f Form) Ticket() (Ticket, bool) {
	if !f.Confirmed() {
		return Ticket{}, false
	}
	return Ticket{
		Code:   f.Code,
		Date:   f.FormattedDate(),
		Guests: f.Guests,
		Time:   f.Time,
	}, true
}

// NewCode returns a short confirmation code such as "EO-3F9A1C".
func NewCode() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "EO-" + strings.ToUpper(id[:6])
}

// ClosingLine is printed at the foot of every ticket.
const ClosingLine = "Confirmation complete. See you fireside."
