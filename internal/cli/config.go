package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/contactvanshdev-code/restaurant-website/internal/config"
	"github.com/contactvanshdev-code/restaurant-website/internal/ui"
)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  noArgs,
		// Skips config.Load so a broken file can still be overwritten.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ui.SetColorForcing(false, a.noColor)
			return a.resolveConfigPath()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.configPath)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat config: %w", err)
			}
			if err := config.Default().Save(a.configPath); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "wrote "+a.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", a.configPath, data)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
