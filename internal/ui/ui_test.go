package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/contactvanshdev-code/restaurant-website/internal/model"
)

func TestMeter(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("ember")

	assert.Equal(t, "##.", Meter(2, 3))
	assert.Equal(t, "###", Meter(5, 3))
	assert.Equal(t, "...", Meter(-1, 3))
	assert.Equal(t, ".", Meter(0, 0))
}

func TestHeatBadgePlain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	SetTheme("mono")
	defer SetTheme("ember")

	assert.Equal(t, "#.. Mild Heat", HeatBadge(model.HeatMild))
	assert.Equal(t, "### Bold Heat", HeatBadge(model.HeatBold))
}

func TestPanelFramesEveryLine(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	SetTheme("mono")
	defer SetTheme("ember")

	var buf bytes.Buffer
	Panel(&buf, []string{"From the Fire", "6 dishes"})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.Contains(t, lines[1], "From the Fire")
}

func TestUnknownThemeFallsBackToEmber(t *testing.T) {
	SetTheme("neon")
	assert.Equal(t, "ember", Current().Name)
}

func TestOKAndFail(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	SetTheme("mono")
	defer SetTheme("ember")

	var buf bytes.Buffer
	OK(&buf, "exported 36 items")
	Fail(&buf, "unknown category")
	assert.Equal(t, "x exported 36 items\n! unknown category\n", buf.String())
}
