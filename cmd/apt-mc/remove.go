package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Negativity-MC/apt-mc/internal/domain/registry"
)

var removeCmd = &cobra.Command{
	Use:   "remove <slug>",
	Short: "Remove a plugin",
	Long: `Delete an installed plugin jar from the plugins directory.

No manifest records what was installed, so the jar is located by matching
the slug against file names. When several jars match, nothing is removed.

Examples:
  apt-mc remove worldedit`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	statusLine(out, "Reading package lists...")
	statusLine(out, "Building dependency tree...")

	slug, err := registry.ParseSlug(args[0])
	if err != nil {
		return err
	}

	removed, err := svc.Remove(slug)
	if err != nil {
		return cliError(slug, err)
	}

	_, _ = fmt.Fprintf(out, "Removing %s (%s)...\n", slug, removed.FileName)

	return nil
}
