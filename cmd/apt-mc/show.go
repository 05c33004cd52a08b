package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Negativity-MC/apt-mc/internal/domain/compat"
	"github.com/Negativity-MC/apt-mc/internal/domain/registry"
)

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show plugin details",
	Long: `Display registry details for a plugin: title, description, categories,
download count, and the version an install would fetch.

Examples:
  apt-mc show worldedit`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	svc, _, err := newService()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ctx := context.Background()

	slug, err := registry.ParseSlug(args[0])
	if err != nil {
		return err
	}

	project, err := svc.Client().Project(ctx, slug)
	if err != nil {
		return cliError(slug, err)
	}

	// The candidate is whatever install would pick. A mod-only project
	// simply has none.
	candidate := "(none)"
	if versions, err := svc.Client().Versions(ctx, slug, compat.AcceptedLoaders()); err == nil {
		if compatible := compat.Filter(versions); len(compatible) > 0 {
			candidate = compatible[0].VersionNumber
		}
	}

	_, _ = fmt.Fprintf(out, "%s %s\n", styleHeader.Render("Package:"), stylePackage.Render(project.Slug))
	_, _ = fmt.Fprintf(out, "%s %s\n", styleHeader.Render("Title:"), project.Title)
	_, _ = fmt.Fprintf(out, "%s %s\n", styleHeader.Render("Candidate:"), candidate)
	_, _ = fmt.Fprintf(out, "%s %d\n", styleHeader.Render("Downloads:"), project.Downloads)
	_, _ = fmt.Fprintf(out, "%s %s\n", styleHeader.Render("Categories:"), strings.Join(project.Categories, ", "))
	_, _ = fmt.Fprintf(out, "%s %s\n", styleHeader.Render("Description:"), project.Description)

	return nil
}
