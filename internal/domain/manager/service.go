// Package manager orchestrates plugin installs and removals against the
// local plugins directory. There is no manifest or lockfile: the files in
// the directory are the only record of what is installed.
package manager

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/Negativity-MC/apt-mc/internal/domain/compat"
	"github.com/Negativity-MC/apt-mc/internal/domain/jarfile"
	"github.com/Negativity-MC/apt-mc/internal/domain/registry"
)

// Service errors.
var (
	ErrIncompatible = errors.New("no compatible server build")
	ErrDownload     = errors.New("download failed")
	ErrNotInstalled = errors.New("plugin not installed")
	ErrAmbiguous    = errors.New("multiple candidates")
)

// Config configures the manager service.
type Config struct {
	// PluginsDir is the directory plugin jars are installed into
	PluginsDir string
	// Client configures the registry HTTP client
	Client registry.ClientConfig
}

// DefaultConfig returns sensible defaults: the server's plugins directory
// relative to the working directory, and the public registry.
func DefaultConfig() Config {
	return Config{
		PluginsDir: "plugins",
		Client:     registry.DefaultClientConfig(),
	}
}

// Service provides install, remove, and list operations.
type Service struct {
	config Config
	client *registry.Client
}

// NewService creates a new manager service.
func NewService(config Config) *Service {
	return &Service{
		config: config,
		client: registry.NewClient(config.Client),
	}
}

// Client exposes the underlying registry client for commands that talk to
// the registry directly (search, show, update).
func (s *Service) Client() *registry.Client {
	return s.client
}

// Resolution is a project paired with the newest compatible downloadable
// artifact.
type Resolution struct {
	Project *registry.Project
	Version registry.Version
	File    registry.VersionFile
}

// Installed describes a completed install.
type Installed struct {
	Slug     registry.Slug
	Version  string
	FileName string
	Path     string
	Size     int64
}

// Removed describes a completed removal.
type Removed struct {
	Slug     registry.Slug
	FileName string
	Path     string
}

// InstalledPlugin is a jar found in the plugins directory. Name, Version,
// and APIVersion come from the embedded plugin.yml and are empty when the
// jar carries none.
type InstalledPlugin struct {
	FileName   string
	Name       string
	Version    string
	APIVersion string
}

// Resolve looks up a project and picks its newest compatible version. An
// unknown slug yields registry.ErrNotFound; a project with no server-plugin
// build (mod-only, e.g. fabric) yields ErrIncompatible.
func (s *Service) Resolve(ctx context.Context, slug registry.Slug) (*Resolution, error) {
	project, err := s.client.Project(ctx, slug)
	if err != nil {
		return nil, err
	}

	versions, err := s.client.Versions(ctx, slug, compat.AcceptedLoaders())
	if err != nil {
		return nil, err
	}

	compatible := compat.Filter(versions)
	if len(compatible) == 0 {
		return nil, errors.Wrapf(ErrIncompatible, "%s", slug)
	}

	// Registry order is newest-first; the head is the pick.
	latest := compatible[0]
	file, ok := latest.PrimaryFile()
	if !ok {
		return nil, errors.Wrapf(ErrIncompatible, "%s %s has no downloadable file", slug, latest.VersionNumber)
	}

	return &Resolution{
		Project: project,
		Version: latest,
		File:    file,
	}, nil
}

// Fetch streams a resolved artifact into the plugins directory, overwriting
// any existing file of the same name. The transfer goes through a temporary
// file renamed into place on success, so a failed download never leaves a
// truncated jar under the final name.
func (s *Service) Fetch(ctx context.Context, res *Resolution) (*Installed, error) {
	if err := os.MkdirAll(s.config.PluginsDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create plugins directory")
	}

	body, _, err := s.client.Download(ctx, res.File.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownload, err)
	}
	defer func() { _ = body.Close() }()

	dest := filepath.Join(s.config.PluginsDir, res.File.Filename)

	tmp, err := os.CreateTemp(s.config.PluginsDir, "."+res.File.Filename+".*.part")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownload, err)
	}

	written, err := io.Copy(tmp, body)
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("%w: %w", ErrDownload, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("%w: %w", ErrDownload, err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("%w: %w", ErrDownload, err)
	}

	return &Installed{
		Slug:     registry.Slug(res.Project.Slug),
		Version:  res.Version.VersionNumber,
		FileName: res.File.Filename,
		Path:     dest,
		Size:     written,
	}, nil
}

// Install resolves and fetches the newest compatible artifact for slug.
func (s *Service) Install(ctx context.Context, slug registry.Slug) (*Installed, error) {
	res, err := s.Resolve(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.Fetch(ctx, res)
}

// Remove deletes the installed jar matching slug. Identity is inferred by
// name: a jar matches when its lowercase file name contains the slug. Zero
// matches yields ErrNotInstalled; more than one yields ErrAmbiguous and
// nothing is deleted.
func (s *Service) Remove(slug registry.Slug) (*Removed, error) {
	candidates, err := s.matchingJars(slug)
	if err != nil {
		return nil, err
	}

	switch len(candidates) {
	case 0:
		return nil, errors.Wrapf(ErrNotInstalled, "%s", slug)
	case 1:
		// Fall through
	default:
		return nil, errors.Wrapf(ErrAmbiguous, "%s matches %s", slug, strings.Join(candidates, ", "))
	}

	path := filepath.Join(s.config.PluginsDir, candidates[0])
	if err := os.Remove(path); err != nil {
		return nil, errors.Wrapf(err, "failed to remove %s", path)
	}

	return &Removed{
		Slug:     slug,
		FileName: candidates[0],
		Path:     path,
	}, nil
}

// Installed lists the jars in the plugins directory with whatever metadata
// their plugin.yml carries. A missing directory means nothing is installed.
func (s *Service) Installed() ([]InstalledPlugin, error) {
	entries, err := os.ReadDir(s.config.PluginsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to read plugins directory")
	}

	var installed []InstalledPlugin
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".jar") {
			continue
		}

		plugin := InstalledPlugin{FileName: entry.Name()}
		if meta, err := jarfile.Extract(filepath.Join(s.config.PluginsDir, entry.Name())); err == nil {
			plugin.Name = meta.Name
			plugin.Version = meta.Version
			plugin.APIVersion = meta.APIVersion
		}
		installed = append(installed, plugin)
	}

	sort.Slice(installed, func(i, j int) bool {
		return installed[i].FileName < installed[j].FileName
	})

	return installed, nil
}

// matchingJars returns the jar files whose name contains slug,
// case-insensitively. A missing plugins directory yields ErrNotInstalled.
func (s *Service) matchingJars(slug registry.Slug) ([]string, error) {
	entries, err := os.ReadDir(s.config.PluginsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotInstalled, "%s", slug)
		}
		return nil, errors.Wrap(err, "failed to read plugins directory")
	}

	needle := strings.ToLower(slug.String())

	var candidates []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".jar") {
			continue
		}
		if strings.Contains(strings.ToLower(name), needle) {
			candidates = append(candidates, name)
		}
	}

	return candidates, nil
}
