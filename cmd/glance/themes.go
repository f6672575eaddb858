package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/glance/internal/renderer/theme"
)

func newThemesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List or export the built-in color themes",
	}
	cmd.AddCommand(newThemesListCommand(), newThemesExportCommand())
	return cmd
}

func newThemesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range theme.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newThemesExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export NAME",
		Short: "Export a built-in theme as VS Code color theme JSON",
		Long: `Export a built-in theme as VS Code color theme JSON.

The file can be edited and loaded back with the theme.import setting.

Examples:
  # Print the monokai theme
  glance themes export monokai

  # Save it for editing
  glance themes export monokai -o ~/.config/glance/mine.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := theme.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown theme %q", args[0])
			}
			data, err := theme.ExportVSCode(t)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of standard output")
	return cmd
}
