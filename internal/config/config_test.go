package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactvanshdev-code/restaurant-website/internal/model"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"EMBEROAK_THEME", "EMBEROAK_CATEGORY", "EMBEROAK_DIET", "EMBEROAK_LOG_LEVEL", "EMBEROAK_PROBE_IMAGES"} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, model.CategoryFire, cfg.Category())
	assert.Equal(t, model.DietaryAll, cfg.Dietary())
	assert.Equal(t, "ember", cfg.UI.Theme)
	assert.True(t, cfg.Images.Probe)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Menu, cfg.Menu)
}

func TestSaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.Menu.DefaultCategory = "sea"
	cfg.Menu.DefaultDietary = "gluten-free"
	cfg.Images.ProbeTimeout = 1500 * time.Millisecond
	cfg.UI.Theme = "mono"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, model.CategorySea, loaded.Category())
	assert.Equal(t, model.DietaryFilter(model.TagGlutenFree), loaded.Dietary())
	assert.Equal(t, 1500*time.Millisecond, loaded.Images.ProbeTimeout)
	assert.Equal(t, "mono", loaded.UI.Theme)
}

func TestPartialFileKeepsOtherDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("menu:\n  default_category: sweet\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, model.CategorySweet, cfg.Category())
	assert.Equal(t, "ember", cfg.UI.Theme)
	assert.Equal(t, 6, cfg.Images.Concurrency)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMBEROAK_CATEGORY", "cellar")
	t.Setenv("EMBEROAK_DIET", "vegan")
	t.Setenv("EMBEROAK_THEME", "mono")
	t.Setenv("EMBEROAK_PROBE_IMAGES", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, model.CategoryCellar, cfg.Category())
	assert.Equal(t, model.DietaryFilter(model.TagVegan), cfg.Dietary())
	assert.Equal(t, "mono", cfg.UI.Theme)
	assert.False(t, cfg.Images.Probe)
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "menu:\n  default_category: brunch\n  default_dietary: keto\nui:\n  theme: neon\nlogging:\n  level: loud\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	for _, want := range []string{"brunch", "keto", "neon", "loud"} {
		assert.ErrorContains(t, err, want)
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("menu: [oops"), 0o644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}
