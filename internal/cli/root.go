// Package cli wires the emberoak command tree. Every command returns an
// exit code: 0 ok, 1 runtime error, 2 usage error.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/contactvanshdev-code/restaurant-website/internal/config"
	"github.com/contactvanshdev-code/restaurant-website/internal/dishimage"
	"github.com/contactvanshdev-code/restaurant-website/internal/logging"
	"github.com/contactvanshdev-code/restaurant-website/internal/tui"
	"github.com/contactvanshdev-code/restaurant-website/internal/ui"
)

// usageError marks bad input: unknown flags, wrong arity, values outside
// an enumeration.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: %s", cmd.UseLine())
		}
		return nil
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}

// app is the state shared by all commands of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	// Root flags.
	configPath string
	verbose    bool
	noColor    bool
	theme      string

	cfg    *config.Config
	logger *zap.Logger

	runTUI func(*config.Config, *zap.Logger) error
	prober dishimage.Prober // nil: HTTP prober built from config
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string) int {
	a := &app{out: os.Stdout, errOut: os.Stderr, runTUI: tui.Run}
	return a.run(args)
}

func (a *app) run(args []string) int {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.Execute()
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err == nil {
		return 0
	}

	ui.Fail(a.errOut, err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		return 2
	}
	if a.logger != nil {
		a.logger.Error("command failed", zap.Error(err))
	}
	return 1
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "emberoak",
		Short: "Ember & Oak, wood-fired kitchen",
		Long: `Ember & Oak in the terminal.

Run without arguments to open the site: the landing page, the live menu
atlas, reservations, the food guide and the culture page.`,
		Args:              noArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Info("tui start")
			return a.runTUI(a.cfg, a.logger)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ~/.emberoak/config.yaml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colors")
	pf.StringVar(&a.theme, "theme", "", "color theme: ember, mono")

	root.AddCommand(
		a.newMenuCmd(),
		a.newReserveCmd(),
		a.newPageCmd("guide", "Print the food guide"),
		a.newPageCmd("culture", "Print the food culture page"),
		a.newConfigCmd(),
	)
	return root
}

// resolveConfigPath fills in the default config path when --config is unset.
func (a *app) resolveConfigPath() error {
	if a.configPath != "" {
		return nil
	}
	p, err := config.DefaultPath()
	if err != nil {
		return err
	}
	a.configPath = p
	return nil
}

// setup loads config, applies the theme and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.resolveConfigPath(); err != nil {
		return err
	}
	path := a.configPath

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.theme != "" {
		cfg.UI.Theme = a.theme
		if err := cfg.Validate(); err != nil {
			return usageError{err}
		}
	}
	if a.noColor {
		cfg.UI.MarkdownStyle = "notty"
	}
	a.cfg = cfg

	ui.SetTheme(cfg.UI.Theme)
	ui.SetColorForcing(false, a.noColor)

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logging.WithSession(logger).With(zap.String("command", cmd.CommandPath()))
	a.logger.Debug("config loaded", zap.String("path", path))
	return nil
}
