package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Negativity-MC/apt-mc/internal/domain/config"
	"github.com/Negativity-MC/apt-mc/internal/domain/manager"
	"github.com/Negativity-MC/apt-mc/internal/domain/registry"
)

var (
	// Global flags
	cfgFile     string
	pluginsDir  string
	registryURL string
)

var rootCmd = &cobra.Command{
	Use:   "apt-mc",
	Short: "The Advanced Packaging Tool for Minecraft servers",
	Long: `apt-mc manages Spigot, Paper, Purpur, and Bukkit plugins with a familiar
apt-style interface, backed by the Modrinth registry.

Plugins are installed into the server's plugins directory as plain jar
files; there is no manifest, lockfile, or cache beyond the files themselves.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "settings file")
	rootCmd.PersistentFlags().StringVar(&pluginsDir, "plugins-dir", "", "plugins directory (default: ./plugins)")
	rootCmd.PersistentFlags().StringVar(&registryURL, "registry", "", "registry API base URL")

	rootCmd.AddCommand(versionCmd)
}

// loadSettings reads the optional settings file and applies flag overrides.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(cfgFile)
	if err != nil {
		return settings, err
	}
	if pluginsDir != "" {
		settings.PluginsDir = pluginsDir
	}
	if registryURL != "" {
		settings.RegistryURL = registryURL
	}
	return settings, nil
}

// newService builds a manager service from the effective settings.
func newService() (*manager.Service, config.Settings, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, settings, err
	}

	cfg := manager.DefaultConfig()
	cfg.PluginsDir = settings.PluginsDir
	cfg.Client.BaseURL = settings.RegistryURL

	return manager.NewService(cfg), settings, nil
}

// cliError translates domain errors into the apt-style messages users see.
// Errors outside the known taxonomy pass through unchanged.
func cliError(slug registry.Slug, err error) error {
	switch {
	case errors.Is(err, registry.ErrNotFound), errors.Is(err, manager.ErrNotInstalled):
		return fmt.Errorf("Unable to locate package %s", slug)
	case errors.Is(err, manager.ErrIncompatible):
		return fmt.Errorf("Package %s has no installable Spigot/Paper/Purpur/Bukkit build", slug)
	case errors.Is(err, manager.ErrAmbiguous):
		return fmt.Errorf("Multiple candidates found for %s. Be more specific", slug)
	default:
		return err
	}
}

// printError prints an error message to stderr with the apt "E:" prefix.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintln(w, errorLine(err.Error()))
}
