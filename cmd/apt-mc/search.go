package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for plugins",
	Long: `Search the plugin registry.

Only Spigot/Paper/Purpur/Bukkit plugins are returned; pure mods are
filtered out server-side.

Examples:
  apt-mc search worldedit
  apt-mc search "anti cheat"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	svc, settings, err := newService()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	query := args[0]

	statusLine(out, "Sorting...")
	statusLine(out, "Full Text Search...")

	hits, err := svc.Client().Search(context.Background(), query, settings.SearchLimit)
	if err != nil {
		// Search never fails the process; report and exit 0, matching apt's
		// behavior of degrading to an error line.
		printErrorTo(cmd.ErrOrStderr(), errors.Wrap(err, "Failed to search"))
		return nil
	}

	if len(hits) == 0 {
		_, _ = fmt.Fprintf(out, "No plugins found for %q.\n", query)
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
			case col == 2:
				return styleAuthor.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		}).
		Headers("PACKAGE", "DESCRIPTION", "AUTHOR", "DOWNLOADS")

	for _, hit := range hits {
		t.Row(hit.Slug, truncate(hit.Description, 50), hit.Author, strconv.Itoa(hit.Downloads))
	}

	_, _ = fmt.Fprintln(out, t.Render())

	return nil
}
