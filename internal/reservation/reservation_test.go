package reservation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormDefaults(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.Local)
	f := NewForm(now)
	assert.Equal(t, "2026-03-14", f.Date)
	assert.Equal(t, DefaultGuests, f.Guests)
	assert.False(t, f.Confirmed())

	_, ok := f.Ticket()
	assert.False(t, ok)
}

func TestFormattedDate(t *testing.T) {
	f := Form{Date: "2026-03-14"}
	assert.Equal(t, "Sat, Mar 14", f.FormattedDate())

	f.Date = "not a date"
	assert.Equal(t, "Select a date", f.FormattedDate())

	f.Date = ""
	assert.Equal(t, "Select a date", f.FormattedDate())
}

func TestSetGuestsClamps(t *testing.T) {
	var f Form
	f.SetGuests(0)
	assert.Equal(t, MinGuests, f.Guests)
	f.SetGuests(9)
	assert.Equal(t, MaxGuests, f.Guests)
	f.SetGuests(4)
	assert.Equal(t, 4, f.Guests)
}

func TestGuestLabel(t *testing.T) {
	assert.Equal(t, "1 Guest", GuestLabel(1))
	assert.Equal(t, "3 Guests", GuestLabel(3))
}

func TestPickAndTicket(t *testing.T) {
	f := Form{Date: "2026-03-14", Guests: 4}
	assert.False(t, f.Pick("11:00 PM"))
	assert.False(t, f.Confirmed())

	require.True(t, f.Pick("7:30 PM"))
	code := f.Code
	assert.True(t, strings.HasPrefix(code, "EO-"))
	assert.Len(t, code, 9)

	require.True(t, f.Pick("7:30 PM"))
	assert.Equal(t, code, f.Code, "re-picking the same slot keeps the code")

	ticket, ok := f.Ticket()
	require.True(t, ok)
	assert.Equal(t, Ticket{Code: code, Date: "Sat, Mar 14", Guests: 4, Time: "7:30 PM"}, ticket)
}
