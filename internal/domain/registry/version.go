package registry

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
)

// VersionFile is a downloadable artifact attached to a version.
type VersionFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Primary  bool   `json:"primary"`
	Size     int64  `json:"size"`
}

// Version is a released plugin version. The registry returns versions
// newest-first and that ordering is preserved everywhere downstream.
type Version struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	VersionNumber string        `json:"version_number"`
	Loaders       []string      `json:"loaders"`
	DatePublished time.Time     `json:"date_published"`
	Files         []VersionFile `json:"files"`
}

// PrimaryFile returns the file the registry flags as primary, falling back
// to the first listed file. The second return is false when the version has
// no files at all.
func (v Version) PrimaryFile() (VersionFile, bool) {
	for _, f := range v.Files {
		if f.Primary {
			return f, true
		}
	}
	if len(v.Files) > 0 {
		return v.Files[0], true
	}
	return VersionFile{}, false
}

// parseVersions decodes and validates a version-list payload. Versions
// without a downloadable file are kept; selection deals with them later.
func parseVersions(data []byte) ([]Version, error) {
	var versions []Version
	if err := json.Unmarshal(data, &versions); err != nil {
		return nil, errors.Wrap(ErrAPI, "malformed version response")
	}
	for _, v := range versions {
		if v.ID == "" {
			return nil, errors.Wrap(ErrAPI, "version response missing id")
		}
	}
	return versions, nil
}
