// Package registry provides a typed HTTP client for the Modrinth v2 API,
// covering the search, project, version, and file-download endpoints that
// apt-mc consumes.
package registry

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// Project is a plugin project as returned by the project endpoint.
type Project struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Downloads   int      `json:"downloads"`
}

// SearchHit is a single result from the search endpoint. The search index
// carries the author name, which the project endpoint does not.
type SearchHit struct {
	ProjectID   string   `json:"project_id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Categories  []string `json:"categories"`
	Downloads   int      `json:"downloads"`
}

// searchResponse is the envelope around search hits.
type searchResponse struct {
	Hits []SearchHit `json:"hits"`
}

// parseProject decodes and validates a project payload. A payload without a
// slug is a schema mismatch and reported as ErrAPI.
func parseProject(data []byte) (*Project, error) {
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(ErrAPI, "malformed project response")
	}
	if p.Slug == "" {
		return nil, errors.Wrap(ErrAPI, "project response missing slug")
	}
	return &p, nil
}

// parseSearch decodes and validates a search payload. Zero hits is a valid
// result, not an error.
func parseSearch(data []byte) ([]SearchHit, error) {
	var resp searchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.Wrap(ErrAPI, "malformed search response")
	}
	for _, hit := range resp.Hits {
		if hit.Slug == "" {
			return nil, errors.Wrap(ErrAPI, "search hit missing slug")
		}
	}
	return resp.Hits, nil
}
