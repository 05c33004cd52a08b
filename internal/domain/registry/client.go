package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"
)

// Client errors.
var (
	ErrNetwork  = errors.New("network error")
	ErrAPI      = errors.New("registry error")
	ErrNotFound = errors.New("project not found")
)

// DefaultBaseURL is the public Modrinth API.
const DefaultBaseURL = "https://api.modrinth.com/v2"

// ClientConfig configures the HTTP client.
type ClientConfig struct {
	// BaseURL is the base URL of the registry API
	BaseURL string
	// Timeout is the HTTP request timeout
	Timeout time.Duration
	// UserAgent is the User-Agent header value; Modrinth requires one
	UserAgent string
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:   DefaultBaseURL,
		Timeout:   30 * time.Second,
		UserAgent: "apt-mc/1.0 (+https://github.com/Negativity-MC/apt-mc)",
	}
}

// Client provides HTTP access to the plugin registry.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
}

// NewClient creates a new registry client.
func NewClient(config ClientConfig) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// searchFacets restricts search results to server plugins. Pure mods
// (fabric, forge, quilt builds) never make it into the result set.
var searchFacets = [][]string{
	{"project_type:plugin"},
	{"categories:spigot", "categories:paper", "categories:purpur", "categories:bukkit"},
}

// Search queries the registry for plugins matching query. An empty hit list
// is a valid result, not an error.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	facets, err := json.Marshal(searchFacets)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode facets")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("facets", string(facets))
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}

	data, err := c.get(ctx, c.config.BaseURL+"/search?"+params.Encode())
	if err != nil {
		return nil, errors.Wrap(err, "search failed")
	}

	return parseSearch(data)
}

// Project fetches a single project by slug. An unknown slug yields
// ErrNotFound.
func (c *Client) Project(ctx context.Context, slug Slug) (*Project, error) {
	data, err := c.get(ctx, c.config.BaseURL+"/project/"+url.PathEscape(slug.String()))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch project %s", slug)
	}

	return parseProject(data)
}

// Versions lists a project's released versions, newest first, restricted to
// the given loaders. The registry applies the loader filter server-side but
// callers should not rely on that alone.
func (c *Client) Versions(ctx context.Context, slug Slug, loaders []string) ([]Version, error) {
	endpoint := c.config.BaseURL + "/project/" + url.PathEscape(slug.String()) + "/version"

	if len(loaders) > 0 {
		filter, err := json.Marshal(loaders)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode loader filter")
		}
		params := url.Values{}
		params.Set("loaders", string(filter))
		endpoint += "?" + params.Encode()
	}

	data, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch versions for %s", slug)
	}

	return parseVersions(data)
}

// Download opens a streaming GET for an artifact URL. The caller owns the
// returned body and must close it.
func (c *Client) Download(ctx context.Context, fileURL string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, 0, errors.Wrap(ErrNetwork, "request creation failed")
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(ErrNetwork, "request failed")
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, 0, errors.Wrapf(ErrAPI, "status %d fetching %s", resp.StatusCode, fileURL)
	}

	return resp.Body, resp.ContentLength, nil
}

// Ping checks that the registry is reachable. Nothing is cached; the update
// command uses this as its package-list refresh.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/search?limit=0", nil)
	if err != nil {
		return errors.Wrap(ErrNetwork, "request creation failed")
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(ErrNetwork, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(ErrAPI, "registry unhealthy: status %d", resp.StatusCode)
	}

	return nil
}

// get performs an HTTP GET request and maps status codes onto the client's
// error taxonomy.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(ErrNetwork, "request creation failed")
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrNetwork, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Continue
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, errors.Wrapf(ErrAPI, "status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(ErrNetwork, "failed to read response")
	}

	return data, nil
}
