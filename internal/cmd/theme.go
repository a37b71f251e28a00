package cmd

import (
	"fmt"

	"github.com/harrison/lsx/internal/theme"
	"github.com/spf13/cobra"
)

// NewThemeCommand creates the theme command group for managing the color
// configuration file.
func NewThemeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage the lsx color theme",
		Long: `Manage the color theme configuration file.

The theme file lives at ~/.config/lsx/config.yaml (or under
$XDG_CONFIG_HOME when set). A missing file means the built-in defaults
are used.`,
	}

	cmd.AddCommand(newThemeInitCommand())
	cmd.AddCommand(newThemePathCommand())
	cmd.AddCommand(newThemeResetCommand())

	return cmd
}

func newThemeInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented sample theme config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := theme.ConfigPath()
			if err != nil {
				return err
			}
			if err := theme.Init(path); err != nil {
				return err
			}

			show, _ := cmd.Flags().GetBool("show")
			if show {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "theme config created at %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().Bool("show", false, "Print only the config file path after creation")
	return cmd
}

func newThemePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the theme config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := theme.ConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newThemeResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the theme config to the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := theme.ConfigPath()
			if err != nil {
				return err
			}
			if err := theme.Reset(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "theme config reset at %s\n", path)
			return nil
		},
	}
}
