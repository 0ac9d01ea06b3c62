package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/hexfield/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the saved theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), themes.Theme())
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between dark and light",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		next, err := themes.Toggle()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), next)
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set dark|light",
	Short:     "Save a theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(theme.Dark), string(theme.Light)},
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := theme.Parse(args[0])
		if err != nil {
			return err
		}
		if err := themes.Set(n); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeToggleCmd, themeSetCmd)
}
