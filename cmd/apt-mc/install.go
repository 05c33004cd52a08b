package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Negativity-MC/apt-mc/internal/domain/manager"
	"github.com/Negativity-MC/apt-mc/internal/domain/registry"
)

var installCmd = &cobra.Command{
	Use:   "install <slug>...",
	Short: "Install plugins",
	Long: `Download the newest compatible build of each plugin into the plugins
directory.

The newest version with a Spigot/Paper/Purpur/Bukkit build is selected; an
existing file of the same name is overwritten.

Examples:
  apt-mc install worldedit
  apt-mc install worldedit essentialsx luckperms`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ctx := context.Background()

	statusLine(out, "Reading package lists...")
	statusLine(out, "Building dependency tree...")

	// Resolve everything up front so the transaction preamble lists exactly
	// what will be fetched.
	resolutions := make([]*manager.Resolution, 0, len(args))
	for _, arg := range args {
		slug, err := registry.ParseSlug(arg)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(out, "Check %s...\n", slug)

		res, err := svc.Resolve(ctx, slug)
		if err != nil {
			return cliError(slug, err)
		}
		resolutions = append(resolutions, res)
	}

	_, _ = fmt.Fprintln(out, "\nThe following NEW packages will be installed:")
	for _, res := range resolutions {
		_, _ = fmt.Fprintf(out, "  %s\n", stylePackage.Render(res.Project.Slug))
	}
	_, _ = fmt.Fprintf(out, "\n0 upgraded, %d newly installed, 0 to remove and 0 not upgraded.\n", len(resolutions))

	for i, res := range resolutions {
		installed, err := svc.Fetch(ctx, res)
		if err != nil {
			return fmt.Errorf("Failed to install %s: %w", res.Project.Slug, err)
		}

		_, _ = fmt.Fprintf(out, "Get:%d %s %s [%s]\n",
			i+1, stylePackage.Render(installed.FileName), installed.Version, formatSize(installed.Size))
	}

	statusLine(out, "Unpacking plugins...")

	return nil
}
