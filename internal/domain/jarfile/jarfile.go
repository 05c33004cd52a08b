// Package jarfile extracts plugin metadata from installed jar files by
// reading the plugin.yml or paper-plugin.yml they carry.
package jarfile

import (
	"archive/zip"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ErrNoPluginYML reports a jar that carries neither plugin.yml nor
// paper-plugin.yml. Such a file is not a Bukkit-family plugin.
var ErrNoPluginYML = errors.New("jar contains no plugin manifest")

// Metadata is the subset of plugin.yml apt-mc displays.
type Metadata struct {
	// Name is the plugin name from plugin.yml.
	Name string
	// Version is the plugin version string.
	Version string
	// APIVersion is the Minecraft API version (e.g. "1.21").
	APIVersion string
}

// pluginYML maps the relevant fields of a plugin.yml or paper-plugin.yml.
type pluginYML struct {
	Name       string `yaml:"name"`
	Version    string `yaml:"version"`
	APIVersion string `yaml:"api-version"`
}

// Extract opens the jar at path and reads its plugin manifest. Prefers
// paper-plugin.yml over plugin.yml when both exist.
func Extract(path string) (*Metadata, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s as jar", path)
	}
	defer func() { _ = zr.Close() }()

	var pluginFile, paperPluginFile *zip.File
	for _, f := range zr.File {
		switch f.Name {
		case "plugin.yml":
			pluginFile = f
		case "paper-plugin.yml":
			paperPluginFile = f
		}
	}

	target := paperPluginFile
	if target == nil {
		target = pluginFile
	}
	if target == nil {
		return nil, ErrNoPluginYML
	}

	rc, err := target.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s in jar", target.Name)
	}
	defer func() { _ = rc.Close() }()

	var yml pluginYML
	if err := yaml.NewDecoder(rc).Decode(&yml); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", target.Name)
	}

	return &Metadata{
		Name:       yml.Name,
		Version:    yml.Version,
		APIVersion: yml.APIVersion,
	}, nil
}
