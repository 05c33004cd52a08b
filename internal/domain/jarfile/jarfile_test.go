package jarfile

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeJar creates a jar at path containing the given entries.
func writeJar(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
}

func TestExtract(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "worldedit.jar")
	writeJar(t, path, map[string]string{
		"plugin.yml": "name: WorldEdit\nversion: 7.3.0\napi-version: '1.21'\nmain: com.sk89q.worldedit.bukkit.WorldEditPlugin\n",
	})

	meta, err := Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "WorldEdit", meta.Name)
	assert.Equal(t, "7.3.0", meta.Version)
	assert.Equal(t, "1.21", meta.APIVersion)
}

func TestExtract_PrefersPaperPluginYML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plugin.jar")
	writeJar(t, path, map[string]string{
		"plugin.yml":       "name: Legacy\nversion: 1.0.0\n",
		"paper-plugin.yml": "name: Modern\nversion: 2.0.0\napi-version: '1.21'\n",
	})

	meta, err := Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "Modern", meta.Name)
	assert.Equal(t, "2.0.0", meta.Version)
}

func TestExtract_NoManifest(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "library.jar")
	writeJar(t, path, map[string]string{
		"META-INF/MANIFEST.MF": "Manifest-Version: 1.0\n",
	})

	_, err := Extract(path)
	assert.ErrorIs(t, err, ErrNoPluginYML)
}

func TestExtract_NotAJar(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "garbage.jar")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))

	_, err := Extract(path)
	assert.Error(t, err)
}

func TestExtract_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Extract(filepath.Join(t.TempDir(), "absent.jar"))
	assert.Error(t, err)
}
