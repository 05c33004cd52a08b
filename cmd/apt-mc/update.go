package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Negativity-MC/apt-mc/internal/domain/compat"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update list of available packages",
	Long: `Check that the plugin registry is reachable.

Nothing is cached locally; the registry is queried live on every search and
install, so update amounts to a connectivity check.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	svc, settings, err := newService()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ctx := context.Background()

	if err := svc.Client().Ping(ctx); err != nil {
		return fmt.Errorf("Failed to fetch %s: %w", settings.RegistryURL, err)
	}

	for i, loader := range compat.AcceptedLoaders() {
		_, _ = fmt.Fprintf(out, "%s %s/search %s\n",
			styleHit.Render(fmt.Sprintf("Hit:%d", i+1)), settings.RegistryURL, loader)
	}

	statusLine(out, "Reading package lists...")
	statusLine(out, "Building dependency tree...")
	statusLine(out, "Reading state information...")

	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	_, _ = fmt.Fprintf(out, "\n%s is up to date.\n", wd)

	return nil
}
