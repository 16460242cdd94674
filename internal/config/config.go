// Package config loads the optional ~/.emberoak/config.yaml. Every field
// has a default, so a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/contactvanshdev-code/restaurant-website/internal/catalog"
	"github.com/contactvanshdev-code/restaurant-website/internal/model"
)

const (
	dirName        = ".emberoak"
	configFileName = "config.yaml"
	logFileName    = "emberoak.log"
)

// Config is the full settings tree.
type Config struct {
	Menu    MenuConfig    `yaml:"menu"`
	Images  ImagesConfig  `yaml:"images"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// MenuConfig picks the filter state the atlas mounts with.
type MenuConfig struct {
	DefaultCategory string `yaml:"default_category"`
	DefaultDietary  string `yaml:"default_dietary"`
}

// ImagesConfig controls dish photo probing.
type ImagesConfig struct {
	Probe        bool          `yaml:"probe"`
	ProbeTimeout time.Duration `yaml:"probe_timeout"`
	Concurrency  int           `yaml:"concurrency"` // menu check-images
}

// UIConfig is terminal presentation.
type UIConfig struct {
	Theme         string `yaml:"theme"`          // ember, mono
	MarkdownStyle string `yaml:"markdown_style"` // glamour style; empty = auto
	AltScreen     bool   `yaml:"alt_screen"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"` // debug, info, warn, error
	File    string `yaml:"file"`
}

// Dir is ~/.emberoak.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// DefaultPath is ~/.emberoak/config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Default returns the built-in settings.
func Default() *Config {
	logFile := logFileName
	if dir, err := Dir(); err == nil {
		logFile = filepath.Join(dir, logFileName)
	}
	return &Config{
		Menu: MenuConfig{
			DefaultCategory: string(catalog.DefaultCategory),
			DefaultDietary:  string(model.DietaryAll),
		},
		Images: ImagesConfig{
			Probe:        true,
			ProbeTimeout: 4 * time.Second,
			Concurrency:  6,
		},
		UI: UIConfig{
			Theme:         "ember",
			MarkdownStyle: "dark",
			AltScreen:     true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			File:    logFile,
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("EMBEROAK_THEME")); v != "" {
		c.UI.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("EMBEROAK_CATEGORY")); v != "" {
		c.Menu.DefaultCategory = v
	}
	if v := strings.TrimSpace(os.Getenv("EMBEROAK_DIET")); v != "" {
		c.Menu.DefaultDietary = v
	}
	if v := strings.TrimSpace(os.Getenv("EMBEROAK_LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("EMBEROAK_PROBE_IMAGES")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Images.Probe = b
		}
	}
}

var (
	knownThemes = map[string]bool{"ember": true, "mono": true}
	knownLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Validate rejects values the UI can't honour.
func (c *Config) Validate() error {
	var errs []error
	if _, ok := model.ParseCategory(c.Menu.DefaultCategory); !ok {
		errs = append(errs, fmt.Errorf("menu.default_category: unknown category %q", c.Menu.DefaultCategory))
	}
	if _, ok := model.ParseDietaryFilter(c.Menu.DefaultDietary); !ok {
		errs = append(errs, fmt.Errorf("menu.default_dietary: unknown filter %q", c.Menu.DefaultDietary))
	}
	if !knownThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, fmt.Errorf("ui.theme: unknown theme %q", c.UI.Theme))
	}
	if !knownLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}
	if c.Images.ProbeTimeout < 0 {
		errs = append(errs, errors.New("images.probe_timeout: must not be negative"))
	}
	if c.Images.Concurrency < 1 {
		errs = append(errs, errors.New("images.concurrency: must be at least 1"))
	}
	return errors.Join(errs...)
}

// Category returns the validated default category.
func (c *Config) Category() model.Category {
	cat, ok := model.ParseCategory(c.Menu.DefaultCategory)
	if !ok {
		return catalog.DefaultCategory
	}
	return cat
}

// Dietary returns the validated default dietary chip.
func (c *Config) Dietary() model.DietaryFilter {
	f, ok := model.ParseDietaryFilter(c.Menu.DefaultDietary)
	if !ok {
		return model.DietaryAll
	}
	return f
}
