package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/contactvanshdev-code/restaurant-website/internal/catalog"
	"github.com/contactvanshdev-code/restaurant-website/internal/config"
	"github.com/contactvanshdev-code/restaurant-website/internal/dishimage"
	"github.com/contactvanshdev-code/restaurant-website/internal/export"
)

type harness struct {
	app    *app
	out    *bytes.Buffer
	errOut *bytes.Buffer
	tuiRan bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"EMBEROAK_THEME", "EMBEROAK_CATEGORY", "EMBEROAK_DIET", "EMBEROAK_LOG_LEVEL", "EMBEROAK_PROBE_IMAGES"} {
		t.Setenv(k, "")
	}

	h := &harness{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	h.app = &app{
		out:    h.out,
		errOut: h.errOut,
		runTUI: func(*config.Config, *zap.Logger) error {
			h.tuiRan = true
			return nil
		},
	}
	return h
}

func (h *harness) run(args ...string) int {
	return h.app.run(append([]string{"--no-color"}, args...))
}

func TestRootLaunchesTUI(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 0, h.run())
	assert.True(t, h.tuiRan)
}

func TestUnknownCommandIsUsageError(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.run("brunch"))
	assert.False(t, h.tuiRan)
	assert.Contains(t, h.errOut.String(), "brunch")
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.run("menu", "--spicy"))
}

func TestMenuDefaultsToFire(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("menu"))
	out := h.out.String()
	assert.Contains(t, out, "From the Fire")
	for _, id := range []string{"fire-01", "fire-02", "fire-03", "fire-04", "fire-05", "fire-06"} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "6 of 6 dishes")
}

func TestMenuFilters(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("menu", "--category", "fire", "--diet", "gluten-free"))
	out := h.out.String()
	assert.Contains(t, out, "fire-05")
	assert.NotContains(t, out, "fire-04")
	assert.Contains(t, out, "4 of 6 dishes")
}

func TestMenuEmptyState(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("menu", "--query", "zzzzz"))
	assert.Contains(t, h.out.String(), "No dishes found with this filter.")
}

func TestMenuBadValues(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.run("menu", "--category", "lunch"))
	assert.Equal(t, 2, h.run("menu", "--diet", "keto"))
}

func TestMenuShow(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("menu", "show", "fire-01"))
	assert.Contains(t, h.out.String(), "48-Hour Oakfire Ribeye")

	assert.Equal(t, 1, h.run("menu", "show", "fire-99"))
	assert.Equal(t, 2, h.run("menu", "show"))
}

func TestMenuExport(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "menu.json")
	require.Equal(t, 0, h.run("menu", "export", path))

	items, err := export.ReadJSON(path)
	require.NoError(t, err)
	assert.Len(t, items, len(catalog.Items()))

	seaPath := filepath.Join(t.TempDir(), "sea.xlsx")
	require.Equal(t, 0, h.run("menu", "export", "--category", "sea", seaPath))
	_, err = os.Stat(seaPath)
	assert.NoError(t, err)

	assert.Equal(t, 2, h.run("menu", "export", filepath.Join(t.TempDir(), "menu.txt")))
}

func TestMenuCheck(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("menu", "check"))
	assert.Contains(t, h.out.String(), "catalog valid")
}

func TestMenuCheckImages(t *testing.T) {
	broken, err := catalog.ByID("sea-02")
	require.NoError(t, err)

	h := newHarness(t)
	h.app.prober = dishimage.ProberFunc(func(_ context.Context, url string) error {
		if url == broken.Image {
			return errors.New("404")
		}
		return nil
	})
	require.Equal(t, 0, h.run("menu", "check-images"))

	var line string
	for _, l := range strings.Split(h.out.String(), "\n") {
		if strings.HasPrefix(l, "sea-02") {
			line = l
		}
	}
	assert.Contains(t, line, "fallback")
	assert.Contains(t, line, catalog.FallbackImageURL)
}

func TestMenuCheckImagesAllFail(t *testing.T) {
	h := newHarness(t)
	h.app.prober = dishimage.ProberFunc(func(context.Context, string) error {
		return errors.New("offline")
	})
	assert.Equal(t, 1, h.run("menu", "check-images"))
	assert.Contains(t, h.errOut.String(), "photos failed to load")
}

func TestCheckImagesKeepsOrder(t *testing.T) {
	items := catalog.Items()
	ok := dishimage.ProberFunc(func(context.Context, string) error { return nil })
	results, err := checkImages(context.Background(), ok, items, 3)
	require.NoError(t, err)
	require.Len(t, results, len(items))
	for i, r := range results {
		assert.Equal(t, items[i].ID, r.ID)
		assert.Equal(t, dishimage.StatePrimary, r.State)
	}
}

func TestCheckImagesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := dishimage.ProberFunc(func(ctx context.Context, _ string) error { return ctx.Err() })
	_, err := checkImages(ctx, p, catalog.Items(), 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReserve(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("reserve", "--date", "2026-03-14", "--guests", "4", "--time", "7:30 PM"))
	out := h.out.String()
	assert.Contains(t, out, "Sat, Mar 14")
	assert.Contains(t, out, "Guests  4 Guests")
	assert.Contains(t, out, "7:30 PM")
	assert.Contains(t, out, "EO-")
	assert.Contains(t, out, "See you fireside.")
}

func TestReserveSingleGuest(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("reserve", "--date", "2026-03-14", "-g", "1", "-t", "7:30 PM"))
	assert.Contains(t, h.out.String(), "Guests  1 Guest")
	assert.NotContains(t, h.out.String(), "1 Guests")
}

func TestReserveWithoutTime(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("reserve", "--date", "not-a-date"))
	assert.Contains(t, h.out.String(), "Select a date")
	assert.NotContains(t, h.out.String(), "RESERVATION TICKET")
}

func TestReserveBadInput(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.run("reserve", "--guests", "9"))
	assert.Equal(t, 2, h.run("reserve", "--time", "4:00 AM"))
}

func TestPages(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("guide"))
	assert.Contains(t, h.out.String(), "Menu signals")

	h.out.Reset()
	require.Equal(t, 0, h.run("culture"))
	assert.NotEmpty(t, h.out.String())
}

func TestConfigInitAndShow(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.Equal(t, 0, h.run("--config", path, "config", "init"))
	_, err := os.Stat(path)
	require.NoError(t, err)

	assert.Equal(t, 1, h.run("--config", path, "config", "init"), "refuses to overwrite")
	assert.Equal(t, 0, h.run("--config", path, "config", "init", "--force"))

	h.out.Reset()
	require.Equal(t, 0, h.run("--config", path, "--theme", "mono", "config", "show"))
	assert.Contains(t, h.out.String(), "theme: mono")
	assert.Contains(t, h.out.String(), "default_category: fire")
}

func TestConfigInitRepairsBrokenFile(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: neon\n"), 0o644))

	assert.Equal(t, 1, h.run("--config", path, "menu"), "broken file blocks normal commands")

	h.errOut.Reset()
	require.Equal(t, 0, h.run("--config", path, "config", "init", "--force"), h.errOut.String())
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ember", cfg.UI.Theme)

	assert.Equal(t, 0, h.run("--config", path, "menu"))
}

func TestBadThemeIsUsageError(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.run("--theme", "neon", "menu"))
}
