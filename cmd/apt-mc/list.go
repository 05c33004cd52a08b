package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List installed plugins",
	Long: `List the plugin jars in the plugins directory.

Name, version, and API version are read from each jar's plugin.yml when
present; jars without one are listed by file name only.

Examples:
  apt-mc list`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	installed, err := svc.Installed()
	if err != nil {
		return err
	}

	if len(installed) == 0 {
		_, _ = fmt.Fprintln(out, "No plugins installed.")
		return nil
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return stylePackage.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		}).
		Headers("FILE", "NAME", "VERSION", "API")

	for _, plugin := range installed {
		t.Row(plugin.FileName, plugin.Name, plugin.Version, plugin.APIVersion)
	}

	_, _ = fmt.Fprintln(out, t.Render())

	return nil
}
