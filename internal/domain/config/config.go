// Package config loads optional apt-mc settings from a YAML file.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/Negativity-MC/apt-mc/internal/domain/registry"
)

// DefaultFile is the settings file looked up in the working directory.
const DefaultFile = "apt-mc.yaml"

// defaultSearchLimit caps search results when the settings file does not
// say otherwise.
const defaultSearchLimit = 10

// Settings are the tunables apt-mc reads at startup. Everything has a
// default; the file is optional.
type Settings struct {
	// RegistryURL is the base URL of the registry API
	RegistryURL string `yaml:"registry_url"`
	// PluginsDir is where plugin jars are installed
	PluginsDir string `yaml:"plugins_dir"`
	// SearchLimit is the maximum number of search results shown
	SearchLimit int `yaml:"search_limit"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		RegistryURL: registry.DefaultBaseURL,
		PluginsDir:  "plugins",
		SearchLimit: defaultSearchLimit,
	}
}

// Load reads settings from path. A missing file yields the defaults with no
// error; a malformed file is an error. Fields absent from the file keep
// their defaults.
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, errors.Wrapf(err, "failed to read %s", path)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Default(), errors.Wrapf(err, "failed to parse %s", path)
	}

	if settings.RegistryURL == "" {
		settings.RegistryURL = registry.DefaultBaseURL
	}
	if settings.PluginsDir == "" {
		settings.PluginsDir = "plugins"
	}
	if settings.SearchLimit <= 0 {
		settings.SearchLimit = defaultSearchLimit
	}

	return settings, nil
}
