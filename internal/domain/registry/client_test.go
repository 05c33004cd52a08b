package registry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return NewClient(ClientConfig{
		BaseURL:   baseURL,
		Timeout:   5 * time.Second,
		UserAgent: "apt-mc-test/1.0",
	})
}

func TestDefaultClientConfig(t *testing.T) {
	t.Parallel()

	config := DefaultClientConfig()
	assert.Equal(t, DefaultBaseURL, config.BaseURL)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Contains(t, config.UserAgent, "apt-mc")
}

func TestClient_Search(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "worldedit", r.URL.Query().Get("query"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Contains(t, r.URL.Query().Get("facets"), "project_type:plugin")
		assert.Contains(t, r.URL.Query().Get("facets"), "categories:paper")
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"hits": [
				{
					"project_id": "1u6yNU1z",
					"slug": "worldedit",
					"title": "WorldEdit",
					"description": "A Minecraft map editor",
					"author": "EngineHub",
					"categories": ["paper", "spigot"],
					"downloads": 12345678
				}
			],
			"total_hits": 1
		}`))
	}))
	defer server.Close()

	hits, err := testClient(server.URL).Search(context.Background(), "worldedit", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "worldedit", hits[0].Slug)
	assert.Equal(t, "EngineHub", hits[0].Author)
	assert.Equal(t, 12345678, hits[0].Downloads)
}

func TestClient_Search_Empty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"hits": [], "total_hits": 0}`))
	}))
	defer server.Close()

	hits, err := testClient(server.URL).Search(context.Background(), "nosuchplugin", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestClient_Search_ServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Search(context.Background(), "worldedit", 10)
	assert.ErrorIs(t, err, ErrAPI)
}

func TestClient_Search_NetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	_, err := testClient(server.URL).Search(context.Background(), "worldedit", 10)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestClient_Project(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/project/worldedit", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"id": "1u6yNU1z",
			"slug": "worldedit",
			"title": "WorldEdit",
			"description": "A Minecraft map editor",
			"categories": ["paper"],
			"downloads": 42
		}`))
	}))
	defer server.Close()

	project, err := testClient(server.URL).Project(context.Background(), "worldedit")
	require.NoError(t, err)
	assert.Equal(t, "worldedit", project.Slug)
	assert.Equal(t, "WorldEdit", project.Title)
}

func TestClient_Project_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Project(context.Background(), "nosuchplugin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Versions(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/project/worldedit/version", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("loaders"), "paper")

		_, _ = w.Write([]byte(`[
			{
				"id": "newer",
				"version_number": "7.3.0",
				"loaders": ["paper", "spigot"],
				"date_published": "2024-05-01T10:00:00Z",
				"files": [{"url": "https://cdn.example/worldedit-7.3.0.jar", "filename": "worldedit-7.3.0.jar", "primary": true, "size": 100}]
			},
			{
				"id": "older",
				"version_number": "7.2.0",
				"loaders": ["bukkit"],
				"date_published": "2023-01-01T10:00:00Z",
				"files": [{"url": "https://cdn.example/worldedit-7.2.0.jar", "filename": "worldedit-7.2.0.jar", "primary": true, "size": 90}]
			}
		]`))
	}))
	defer server.Close()

	versions, err := testClient(server.URL).Versions(context.Background(), "worldedit", []string{"spigot", "paper", "purpur", "bukkit"})
	require.NoError(t, err)
	require.Len(t, versions, 2)

	// Registry order is preserved: newest first.
	assert.Equal(t, "7.3.0", versions[0].VersionNumber)
	assert.Equal(t, "7.2.0", versions[1].VersionNumber)
}

func TestClient_Download(t *testing.T) {
	t.Parallel()

	content := []byte("jar bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cdn/worldedit-7.3.0.jar", r.URL.Path)
		_, _ = w.Write(content)
	}))
	defer server.Close()

	body, size, err := testClient(server.URL).Download(context.Background(), server.URL+"/cdn/worldedit-7.3.0.jar")
	require.NoError(t, err)
	defer func() { _ = body.Close() }()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, int64(len(content)), size)
}

func TestClient_Download_BadStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, _, err := testClient(server.URL).Download(context.Background(), server.URL+"/cdn/gone.jar")
	assert.ErrorIs(t, err, ErrAPI)
}

func TestClient_Ping(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"hits": []}`))
	}))
	defer server.Close()

	assert.NoError(t, testClient(server.URL).Ping(context.Background()))
}

func TestClient_Ping_Unreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	err := testClient(server.URL).Ping(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
}
